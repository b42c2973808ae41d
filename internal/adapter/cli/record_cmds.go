package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/google/uuid"

	"github.com/simaogato/networth/internal/domain"
	"github.com/simaogato/networth/internal/usecase/tracker"
)

// formFlag binds one string flag to one field of a form
type formFlag[F any] struct {
	name  string
	usage string
	field func(*F) *string
}

var assetFlags = []formFlag[tracker.AssetForm]{
	{"id", "ID of the asset to edit, omit to create a new one", func(f *tracker.AssetForm) *string { return &f.ID }},
	{"name", "Asset name", func(f *tracker.AssetForm) *string { return &f.Name }},
	{"category", "Asset category, label or slug (e.g. real-estate)", func(f *tracker.AssetForm) *string { return &f.Category }},
	{"purchase-date", "Purchase date, YYYY-MM-DD", func(f *tracker.AssetForm) *string { return &f.PurchaseDate }},
	{"purchase-price", "Purchase price", func(f *tracker.AssetForm) *string { return &f.PurchasePrice }},
	{"value", "Current value", func(f *tracker.AssetForm) *string { return &f.CurrentValue }},
	{"debt", "ID of the liability financing this asset", func(f *tracker.AssetForm) *string { return &f.AssociatedDebtID }},
	{"notes", "Free-form notes", func(f *tracker.AssetForm) *string { return &f.Notes }},
}

var liabilityFlags = []formFlag[tracker.LiabilityForm]{
	{"id", "ID of the liability to edit, omit to create a new one", func(f *tracker.LiabilityForm) *string { return &f.ID }},
	{"name", "Liability name", func(f *tracker.LiabilityForm) *string { return &f.Name }},
	{"category", "Liability category, label or slug (e.g. auto-loan)", func(f *tracker.LiabilityForm) *string { return &f.Category }},
	{"original", "Original amount borrowed", func(f *tracker.LiabilityForm) *string { return &f.OriginalAmount }},
	{"balance", "Current balance", func(f *tracker.LiabilityForm) *string { return &f.CurrentBalance }},
	{"rate", "Annual interest rate in percent, defaults to 0", func(f *tracker.LiabilityForm) *string { return &f.InterestRate }},
	{"start", "Start date, YYYY-MM-DD", func(f *tracker.LiabilityForm) *string { return &f.StartDate }},
	{"asset", "ID of the asset this liability finances", func(f *tracker.LiabilityForm) *string { return &f.AssociatedAssetID }},
	{"notes", "Free-form notes", func(f *tracker.LiabilityForm) *string { return &f.Notes }},
}

func bindForm[F any](f *flag.FlagSet, form *F, flags []formFlag[F]) {
	for _, ff := range flags {
		f.StringVar(ff.field(form), ff.name, "", ff.usage)
	}
}

// overlay copies into dst the fields whose flag was set on the command line
func overlay[F any](f *flag.FlagSet, dst, src *F, flags []formFlag[F]) {
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	for _, ff := range flags {
		if set[ff.name] {
			*ff.field(dst) = *ff.field(src)
		}
	}
}

func assetFormFrom(a domain.Asset) tracker.AssetForm {
	form := tracker.AssetForm{
		ID:            a.ID.String(),
		Name:          a.Name,
		Category:      string(a.Category),
		PurchaseDate:  a.PurchaseDate.String(),
		PurchasePrice: a.PurchasePrice.String(),
		CurrentValue:  a.CurrentValue.String(),
		Notes:         a.Notes,
	}
	if a.HasDebtLink() {
		form.AssociatedDebtID = a.AssociatedDebtID.String()
	}
	return form
}

func liabilityFormFrom(l domain.Liability) tracker.LiabilityForm {
	form := tracker.LiabilityForm{
		ID:             l.ID.String(),
		Name:           l.Name,
		Category:       string(l.Category),
		OriginalAmount: l.OriginalAmount.String(),
		CurrentBalance: l.CurrentBalance.String(),
		InterestRate:   l.InterestRate.String(),
		StartDate:      l.StartDate.String(),
		Notes:          l.Notes,
	}
	if l.HasAssetLink() {
		form.AssociatedAssetID = l.AssociatedAssetID.String()
	}
	return form
}

// addAssetCmd creates or edits an asset.
type addAssetCmd struct {
	app  *App
	form tracker.AssetForm
}

func (*addAssetCmd) Name() string     { return "add-asset" }
func (*addAssetCmd) Synopsis() string { return "add an asset, or edit one with -id" }
func (*addAssetCmd) Usage() string {
	return `networth add-asset -name <name> -category <category> -value <amount> [-purchase-price <amount>] [-purchase-date <date>] [-debt <liability id>] [-notes <text>]
networth add-asset -id <id> [flags to change]

  Adds an asset. With -id, edits an existing asset: only the flags given
  are changed.
`
}

func (c *addAssetCmd) SetFlags(f *flag.FlagSet) {
	bindForm(f, &c.form, assetFlags)
}

func (c *addAssetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t := c.app.Tracker
	form := c.form
	if id, err := uuid.Parse(strings.TrimSpace(form.ID)); err == nil {
		if existing, ok := t.Store.FindAsset(id); ok {
			form = assetFormFrom(existing)
			overlay(f, &form, &c.form, assetFlags)
		}
	}

	asset, err := t.SaveAsset(ctx, form)
	if err != nil {
		return c.app.fail(err)
	}
	fmt.Fprintf(c.app.Out, "Saved asset %q (%s)\n", asset.Name, asset.ID)

	if !asset.HasDebtLink() {
		if candidates := t.AssetLinkCandidates(asset.Category); len(candidates) > 0 {
			fmt.Fprintln(c.app.Out, "Link it to its debt with -debt <id>:")
			for _, l := range candidates {
				fmt.Fprintf(c.app.Out, "  %s  %s\n", l.ID, l.Name)
			}
		}
	}
	return subcommands.ExitSuccess
}

// addLiabilityCmd creates or edits a liability.
type addLiabilityCmd struct {
	app  *App
	form tracker.LiabilityForm
}

func (*addLiabilityCmd) Name() string     { return "add-liability" }
func (*addLiabilityCmd) Synopsis() string { return "add a liability, or edit one with -id" }
func (*addLiabilityCmd) Usage() string {
	return `networth add-liability -name <name> -category <category> -original <amount> -balance <amount> -start <date> [-rate <percent>] [-asset <asset id>] [-notes <text>]
networth add-liability -id <id> [flags to change]

  Adds a liability. With -id, edits an existing liability: only the flags
  given are changed.
`
}

func (c *addLiabilityCmd) SetFlags(f *flag.FlagSet) {
	bindForm(f, &c.form, liabilityFlags)
}

func (c *addLiabilityCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t := c.app.Tracker
	form := c.form
	if id, err := uuid.Parse(strings.TrimSpace(form.ID)); err == nil {
		if existing, ok := t.Store.FindLiability(id); ok {
			form = liabilityFormFrom(existing)
			overlay(f, &form, &c.form, liabilityFlags)
		}
	}

	liability, err := t.SaveLiability(ctx, form)
	if err != nil {
		return c.app.fail(err)
	}
	fmt.Fprintf(c.app.Out, "Saved liability %q (%s)\n", liability.Name, liability.ID)

	if !liability.HasAssetLink() {
		if candidates := t.LiabilityLinkCandidates(liability.Category); len(candidates) > 0 {
			fmt.Fprintln(c.app.Out, "Link it to the asset it finances with -asset <id>:")
			for _, a := range candidates {
				fmt.Fprintf(c.app.Out, "  %s  %s\n", a.ID, a.Name)
			}
		}
	}
	return subcommands.ExitSuccess
}

// deleteAssetCmd removes an asset.
type deleteAssetCmd struct {
	app *App
	yes bool
}

func (*deleteAssetCmd) Name() string     { return "delete-asset" }
func (*deleteAssetCmd) Synopsis() string { return "delete an asset" }
func (*deleteAssetCmd) Usage() string {
	return `networth delete-asset [-y] <id>

  Deletes an asset after confirmation. Liabilities linked to it keep their
  link, which then no longer resolves.
`
}

func (c *deleteAssetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *deleteAssetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, status, ok := parseIDArg(c.app, f)
	if !ok {
		return status
	}
	if err := c.app.Tracker.DeleteAsset(ctx, id, c.app.Confirmer(c.yes)); err != nil {
		return c.app.fail(err)
	}
	fmt.Fprintln(c.app.Out, "Asset deleted.")
	return subcommands.ExitSuccess
}

// deleteLiabilityCmd removes a liability.
type deleteLiabilityCmd struct {
	app *App
	yes bool
}

func (*deleteLiabilityCmd) Name() string     { return "delete-liability" }
func (*deleteLiabilityCmd) Synopsis() string { return "delete a liability" }
func (*deleteLiabilityCmd) Usage() string {
	return `networth delete-liability [-y] <id>

  Deletes a liability after confirmation.
`
}

func (c *deleteLiabilityCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *deleteLiabilityCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, status, ok := parseIDArg(c.app, f)
	if !ok {
		return status
	}
	if err := c.app.Tracker.DeleteLiability(ctx, id, c.app.Confirmer(c.yes)); err != nil {
		return c.app.fail(err)
	}
	fmt.Fprintln(c.app.Out, "Liability deleted.")
	return subcommands.ExitSuccess
}

func parseIDArg(app *App, f *flag.FlagSet) (uuid.UUID, subcommands.ExitStatus, bool) {
	if f.NArg() != 1 {
		fmt.Fprintln(app.Err, "Error: expected exactly one record id")
		return uuid.Nil, subcommands.ExitUsageError, false
	}
	id, err := uuid.Parse(f.Arg(0))
	if err != nil {
		fmt.Fprintf(app.Err, "Error: invalid id %q: %v\n", f.Arg(0), err)
		return uuid.Nil, subcommands.ExitUsageError, false
	}
	return id, subcommands.ExitSuccess, true
}

// snapshotCmd records the current totals.
type snapshotCmd struct {
	app  *App
	note string
}

func (*snapshotCmd) Name() string     { return "snapshot" }
func (*snapshotCmd) Synopsis() string { return "record the current net worth in the history" }
func (*snapshotCmd) Usage() string {
	return `networth snapshot [-note <text>]

  Freezes the current total assets, total liabilities and net worth.
`
}

func (c *snapshotCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.note, "note", "", "Optional note, e.g. \"after bonus\"")
}

func (c *snapshotCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, err := c.app.Tracker.TakeSnapshot(ctx, strings.TrimSpace(c.note))
	if err != nil {
		return c.app.fail(err)
	}
	fmt.Fprintf(c.app.Out, "Snapshot taken: net worth %s\n", c.app.Renderer.Money(snap.NetWorth))
	return subcommands.ExitSuccess
}
