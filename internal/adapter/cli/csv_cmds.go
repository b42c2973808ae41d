package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
)

// exportCmd writes all records as CSV.
type exportCmd struct {
	app    *App
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export assets and liabilities as CSV" }
func (*exportCmd) Usage() string {
	return `networth export [-o <file>]

  Writes assets then liabilities in the 11-column import format. Links and
  ids are not exported. Writes to stdout unless -o is given.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file, stdout when empty")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	err := c.app.writeTo(c.output, func(w io.Writer) error {
		return c.app.Tracker.ExportCSV(ctx, w)
	})
	if err != nil {
		return c.app.fail(err)
	}
	return subcommands.ExitSuccess
}

// templateCmd writes the CSV import template.
type templateCmd struct {
	app    *App
	output string
}

func (*templateCmd) Name() string     { return "template" }
func (*templateCmd) Synopsis() string { return "write an example CSV file to start an import from" }
func (*templateCmd) Usage() string {
	return `networth template [-o <file>]

  Writes the CSV header and five example rows.
`
}

func (c *templateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file, stdout when empty")
}

func (c *templateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.app.writeTo(c.output, c.app.Tracker.ExportTemplate); err != nil {
		return c.app.fail(err)
	}
	return subcommands.ExitSuccess
}

// importCmd appends the records of a CSV file.
type importCmd struct {
	app *App
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import assets and liabilities from CSV" }
func (*importCmd) Usage() string {
	return `networth import <file.csv|->

  Appends every valid row as a new record. Rows that are short, of an
  unknown type or with invalid values are skipped and counted. Use - to
  read from stdin.
`
}

func (*importCmd) SetFlags(*flag.FlagSet) {}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(c.app.Err, "Error: expected exactly one file")
		return subcommands.ExitUsageError
	}

	var in io.Reader = c.app.In
	if name := f.Arg(0); name != "-" {
		file, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(c.app.Err, "Error opening %q: %v\n", name, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		in = file
	}

	result, err := c.app.Tracker.ImportCSV(ctx, in)
	if err != nil {
		return c.app.fail(err)
	}
	fmt.Fprintf(c.app.Out, "Imported %d assets and %d liabilities", result.Assets, result.Liabilities)
	if result.Skipped > 0 {
		fmt.Fprintf(c.app.Out, ", skipped %d invalid rows", result.Skipped)
	}
	fmt.Fprintln(c.app.Out, ".")
	return subcommands.ExitSuccess
}

// writeTo runs write against the named file, or the app output when name
// is empty
func (a *App) writeTo(name string, write func(io.Writer) error) error {
	if name == "" {
		return write(a.Out)
	}

	file, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", name, err)
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %q: %w", name, err)
	}
	fmt.Fprintf(a.Err, "Wrote %s\n", name)
	return nil
}
