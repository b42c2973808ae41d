package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// resetCmd deletes everything.
type resetCmd struct {
	app *App
	yes bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "delete all assets, liabilities and snapshots" }
func (*resetCmd) Usage() string {
	return `networth reset [-y]

  Deletes every record after confirmation. This cannot be undone.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *resetCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.app.Tracker.DeleteAll(ctx, c.app.Confirmer(c.yes)); err != nil {
		return c.app.fail(err)
	}
	fmt.Fprintln(c.app.Out, "All data deleted.")
	return subcommands.ExitSuccess
}

// seedCmd loads the demo records into an empty tracker.
type seedCmd struct {
	app *App
}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "load example records into an empty tracker" }
func (*seedCmd) Usage() string {
	return `networth seed

  Imports the template rows when there are no assets and no liabilities yet.
`
}

func (*seedCmd) SetFlags(*flag.FlagSet) {}

func (c *seedCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	seeded, err := c.app.NewSeeder().Seed(ctx)
	if err != nil {
		return c.app.fail(err)
	}
	if !seeded {
		fmt.Fprintln(c.app.Out, "Tracker already holds data, nothing seeded.")
		return subcommands.ExitSuccess
	}
	fmt.Fprintln(c.app.Out, "Demo records loaded.")
	return subcommands.ExitSuccess
}

// serveCmd runs the local gRPC API.
type serveCmd struct {
	app *App
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the local gRPC API until interrupted" }
func (*serveCmd) Usage() string {
	return `networth serve

  Serves networth.v1.NetWorthService on GRPC_ADDR. Calls must carry the
  API_TOKEN in the authorization metadata. Stops on SIGINT or SIGTERM.
`
}

func (*serveCmd) SetFlags(*flag.FlagSet) {}

func (c *serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.app.Serve == nil {
		fmt.Fprintln(c.app.Err, "Error: serving is not available in this build")
		return subcommands.ExitFailure
	}
	if err := c.app.Serve(ctx); err != nil {
		return c.app.fail(err)
	}
	return subcommands.ExitSuccess
}
