// Package cli implements the networth command line interface.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/simaogato/networth/internal/domain"
	"github.com/simaogato/networth/internal/log"
	"github.com/simaogato/networth/internal/usecase/seeder"
	"github.com/simaogato/networth/internal/usecase/snapshot"
	"github.com/simaogato/networth/internal/usecase/tracker"
)

// App holds what every subcommand needs.
// As a CLI application it has a short lifecycle: main builds one App, loads
// the tracker and runs a single subcommand against it.
type App struct {
	Tracker  *tracker.TrackerService
	Renderer *Renderer
	Logger   *log.Logger

	// SnapshotLimit is how many snapshots the summary and history show
	SnapshotLimit int

	// Serve runs the local gRPC API until ctx is done
	Serve func(ctx context.Context) error

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// NewApp creates an App writing to the process standard streams
func NewApp(t *tracker.TrackerService, renderer *Renderer, logger *log.Logger) *App {
	return &App{
		Tracker:       t,
		Renderer:      renderer,
		Logger:        logger.WithComponent(log.ComponentCLI),
		SnapshotLimit: snapshot.DefaultDisplayLimit,
		In:            os.Stdin,
		Out:           os.Stdout,
		Err:           os.Stderr,
	}
}

// Register the subcommands.
// A main package will call Register() and then Execute() on the commander.
func Register(c *subcommands.Commander, app *App) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&summaryCmd{app: app}, "reports")
	c.Register(&assetsCmd{app: app}, "reports")
	c.Register(&liabilitiesCmd{app: app}, "reports")
	c.Register(&snapshotsCmd{app: app}, "reports")

	c.Register(&addAssetCmd{app: app}, "records")
	c.Register(&addLiabilityCmd{app: app}, "records")
	c.Register(&deleteAssetCmd{app: app}, "records")
	c.Register(&deleteLiabilityCmd{app: app}, "records")
	c.Register(&snapshotCmd{app: app}, "records")

	c.Register(&exportCmd{app: app}, "csv")
	c.Register(&templateCmd{app: app}, "csv")
	c.Register(&importCmd{app: app}, "csv")

	c.Register(&resetCmd{app: app}, "data")
	c.Register(&seedCmd{app: app}, "data")

	c.Register(&serveCmd{app: app}, "server")
}

// NewSeeder returns the demo seeder for the app tracker
func (a *App) NewSeeder() *seeder.DemoSeeder {
	return seeder.NewDemoSeeder(a.Tracker)
}

// Confirmer returns the confirmation source for destructive commands.
// With yes set every request is approved, otherwise the user is prompted.
func (a *App) Confirmer(yes bool) domain.Confirmer {
	if yes {
		return domain.AlwaysConfirm
	}
	return &promptConfirmer{in: bufio.NewReader(a.In), out: a.Err}
}

// fail reports err and maps it to an exit status.
// A persistence failure means the change was applied but not saved.
func (a *App) fail(err error) subcommands.ExitStatus {
	switch {
	case errors.Is(err, domain.ErrCancelled):
		fmt.Fprintln(a.Err, "Cancelled, nothing was changed.")
		return subcommands.ExitSuccess
	case errors.Is(err, domain.ErrValidation):
		fmt.Fprintf(a.Err, "Error: %v\n", err)
		return subcommands.ExitUsageError
	case errors.Is(err, domain.ErrPersistence):
		fmt.Fprintf(a.Err, "Warning: the change was applied but could not be saved: %v\n", err)
		return subcommands.ExitFailure
	default:
		fmt.Fprintf(a.Err, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
}

// print renders a Markdown report to the app output
func (a *App) print(md string) subcommands.ExitStatus {
	if err := a.Renderer.Print(a.Out, md); err != nil {
		return a.fail(err)
	}
	return subcommands.ExitSuccess
}

// promptConfirmer asks a yes/no question on the terminal.
// Anything but y or yes is a refusal.
type promptConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *promptConfirmer) Confirm(message string) bool {
	fmt.Fprintf(p.out, "%s [y/N]: ", message)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(p.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
