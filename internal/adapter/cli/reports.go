package cli

import (
	"bytes"
	"strconv"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/simaogato/networth/internal/domain"
	"github.com/simaogato/networth/internal/usecase/dashboard"
)

var categoryAlignment = []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight}

// SummaryMarkdown renders the dashboard: headline totals, change since the
// latest snapshot, category breakdowns and recent snapshots
func (r *Renderer) SummaryMarkdown(dash *dashboard.DashboardService, recent []domain.Snapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	summary := dash.GetSummary()

	doc.H1("Net Worth").LF()
	doc.Table(md.TableSet{
		Header:    []string{"", "Amount"},
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Rows: [][]string{
			{"Total Assets", r.Money(summary.TotalAssets)},
			{"Total Liabilities", r.Money(summary.TotalLiabilities)},
			{md.Bold("Net Worth"), md.Bold(r.Money(summary.NetWorth))},
			{"Real Estate Equity", r.Money(summary.RealEstateEquity)},
			{"Vehicle Equity", r.Money(summary.VehicleEquity)},
		},
	})

	switch {
	case summary.HasPrevious && len(recent) > 0:
		doc.PlainTextf("Change since last snapshot (%s): %s (%s)",
			recent[0].Date.Format(domain.DateFormat),
			r.SignedMoney(summary.Change.Amount),
			SignedPercent(summary.Change.Percent))
	case summary.HasPrevious:
		doc.PlainTextf("Change since last snapshot: %s (%s)",
			r.SignedMoney(summary.Change.Amount),
			SignedPercent(summary.Change.Percent))
	default:
		doc.PlainText("No snapshot yet. Run " + md.Code("networth snapshot") + " to start tracking changes.")
	}
	doc.LF()

	if totals := dash.AssetsByCategory(); len(totals) > 0 {
		doc.H2("Assets by Category").LF()
		doc.Table(r.categoryTable(totals)).LF()
	}
	if totals := dash.LiabilitiesByCategory(); len(totals) > 0 {
		doc.H2("Liabilities by Category").LF()
		doc.Table(r.categoryTable(totals)).LF()
	}

	if len(recent) > 0 {
		doc.H2("Recent Snapshots").LF()
		doc.Table(r.snapshotTable(recent))
	}

	return doc.String()
}

func (r *Renderer) categoryTable(totals []dashboard.CategoryTotal) md.TableSet {
	rows := make([][]string, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, []string{t.Category, strconv.Itoa(t.Count), r.Money(t.Total), Percent(t.Share)})
	}
	return md.TableSet{
		Header:    []string{"Category", "Count", "Total", "Share"},
		Alignment: categoryAlignment,
		Rows:      rows,
	}
}

// AssetsMarkdown lists the assets with their gain and equity
func (r *Renderer) AssetsMarkdown(dash *dashboard.DashboardService, assets []domain.Asset) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Assets").LF()
	if len(assets) == 0 {
		doc.PlainText("No assets yet.")
		return doc.String()
	}

	rows := make([][]string, 0, len(assets))
	for _, a := range assets {
		debt := ""
		if l, ok := dash.LinkedLiability(a); ok {
			debt = inline(l.Name)
		}
		rows = append(rows, []string{
			a.Category.Info().Icon + " " + inline(a.Name),
			string(a.Category),
			a.PurchaseDate.String(),
			r.Money(a.PurchasePrice),
			r.Money(a.CurrentValue),
			r.SignedMoney(dash.AssetGain(a)),
			r.Money(dash.AssetEquity(a)),
			debt,
			a.ID.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Name", "Category", "Purchased", "Price", "Value", "Gain", "Equity", "Debt", "ID"},
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignLeft,
			md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
			md.AlignLeft, md.AlignLeft,
		},
		Rows: rows,
	}).LF()
	doc.PlainTextf("Total: %s", r.Money(dash.TotalAssets()))
	return doc.String()
}

// LiabilitiesMarkdown lists the liabilities with their payoff progress
func (r *Renderer) LiabilitiesMarkdown(dash *dashboard.DashboardService, liabilities []domain.Liability) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Liabilities").LF()
	if len(liabilities) == 0 {
		doc.PlainText("No liabilities yet.")
		return doc.String()
	}

	rows := make([][]string, 0, len(liabilities))
	for _, l := range liabilities {
		asset := ""
		if a, ok := dash.LinkedAsset(l); ok {
			asset = inline(a.Name)
		}
		rows = append(rows, []string{
			l.Category.Info().Icon + " " + inline(l.Name),
			string(l.Category),
			r.Money(l.OriginalAmount),
			r.Money(l.CurrentBalance),
			Percent(l.InterestRate),
			l.StartDate.String(),
			Percent(dash.PayoffPercentage(l)),
			asset,
			l.ID.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Name", "Category", "Original", "Balance", "Rate", "Start", "Paid Off", "Asset", "ID"},
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft,
			md.AlignRight, md.AlignRight, md.AlignRight,
			md.AlignLeft, md.AlignRight,
			md.AlignLeft, md.AlignLeft,
		},
		Rows: rows,
	}).LF()
	doc.PlainTextf("Total: %s", r.Money(dash.TotalLiabilities()))
	return doc.String()
}

// SnapshotsMarkdown lists snapshots, newest first
func (r *Renderer) SnapshotsMarkdown(snaps []domain.Snapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Snapshots").LF()
	if len(snaps) == 0 {
		doc.PlainText("No snapshots yet.")
		return doc.String()
	}
	doc.Table(r.snapshotTable(snaps))
	return doc.String()
}

func (r *Renderer) snapshotTable(snaps []domain.Snapshot) md.TableSet {
	rows := make([][]string, 0, len(snaps))
	for _, s := range snaps {
		rows = append(rows, []string{
			s.Date.Format("2006-01-02 15:04"),
			r.Money(s.TotalAssets),
			r.Money(s.TotalLiabilities),
			r.Money(s.NetWorth),
			inline(s.Notes),
		})
	}
	return md.TableSet{
		Header:    []string{"Date", "Assets", "Liabilities", "Net Worth", "Notes"},
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignLeft},
		Rows:      rows,
	}
}

// inline keeps free text typed by the user on one table row
func inline(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}
