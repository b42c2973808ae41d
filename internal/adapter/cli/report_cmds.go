package cli

import (
	"context"
	"flag"
	"strings"

	"github.com/google/subcommands"
)

func formatFlag(f *flag.FlagSet, r *Renderer) {
	f.StringVar(&r.Format, "format", r.Format, "Output format ("+strings.Join(Formats, ", ")+")")
}

// summaryCmd prints the dashboard.
type summaryCmd struct {
	app *App
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display net worth, equity and category breakdowns" }
func (*summaryCmd) Usage() string {
	return `networth summary [-format term|markdown|html]

  Displays total assets, total liabilities, net worth, real estate and
  vehicle equity, the change since the latest snapshot, and the category
  breakdowns.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	formatFlag(f, c.app.Renderer)
}

func (c *summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	recent := c.app.Tracker.RecentSnapshots(c.app.SnapshotLimit)
	return c.app.print(c.app.Renderer.SummaryMarkdown(c.app.Tracker.Dashboard, recent))
}

// assetsCmd lists the assets.
type assetsCmd struct {
	app *App
}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "list assets" }
func (*assetsCmd) Usage() string {
	return `networth assets [-format term|markdown|html]

  Lists every asset with its gain, equity and linked debt.
`
}

func (c *assetsCmd) SetFlags(f *flag.FlagSet) {
	formatFlag(f, c.app.Renderer)
}

func (c *assetsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t := c.app.Tracker
	return c.app.print(c.app.Renderer.AssetsMarkdown(t.Dashboard, t.Store.Assets()))
}

// liabilitiesCmd lists the liabilities.
type liabilitiesCmd struct {
	app *App
}

func (*liabilitiesCmd) Name() string     { return "liabilities" }
func (*liabilitiesCmd) Synopsis() string { return "list liabilities" }
func (*liabilitiesCmd) Usage() string {
	return `networth liabilities [-format term|markdown|html]

  Lists every liability with its payoff percentage and linked asset.
`
}

func (c *liabilitiesCmd) SetFlags(f *flag.FlagSet) {
	formatFlag(f, c.app.Renderer)
}

func (c *liabilitiesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t := c.app.Tracker
	return c.app.print(c.app.Renderer.LiabilitiesMarkdown(t.Dashboard, t.Store.Liabilities()))
}

// snapshotsCmd lists the snapshot history.
type snapshotsCmd struct {
	app   *App
	limit int
}

func (*snapshotsCmd) Name() string     { return "snapshots" }
func (*snapshotsCmd) Synopsis() string { return "list net worth snapshots, newest first" }
func (*snapshotsCmd) Usage() string {
	return `networth snapshots [-n <count>] [-format term|markdown|html]

  Lists the most recent snapshots. -n 0 lists the whole history.
`
}

func (c *snapshotsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", c.app.SnapshotLimit, "Number of snapshots to show, 0 for all")
	formatFlag(f, c.app.Renderer)
}

func (c *snapshotsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.app.print(c.app.Renderer.SnapshotsMarkdown(c.app.Tracker.RecentSnapshots(c.limit)))
}
