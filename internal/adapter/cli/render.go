package cli

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/glamour"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Output formats accepted by the -format flag
const (
	FormatTerminal = "term"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Formats lists the supported output formats
var Formats = []string{FormatTerminal, FormatMarkdown, FormatHTML}

// Renderer formats money and prints Markdown reports
type Renderer struct {
	Currency string
	Format   string
	Style    string // glamour style, "auto" picks one from the terminal
	Width    int
}

// NewRenderer creates a Renderer for the given currency code
func NewRenderer(currency string) *Renderer {
	return &Renderer{
		Currency: currency,
		Format:   FormatTerminal,
		Style:    "auto",
		Width:    100,
	}
}

// Bounds of the minor-unit amounts go-money can format
var (
	minInt64 = decimal.NewFromInt(-math.MaxInt64)
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
)

// Money formats an amount in the renderer currency, e.g. $1,234.50
func (r *Renderer) Money(d decimal.Decimal) string {
	cur := money.GetCurrency(r.Currency)
	if cur == nil {
		cur = money.GetCurrency(money.USD)
	}
	minor := d.Shift(int32(cur.Fraction)).Round(0)
	if minor.LessThan(minInt64) || minor.GreaterThan(maxInt64) {
		return d.StringFixed(int32(cur.Fraction)) + " " + cur.Code
	}
	return cur.Formatter().Format(minor.IntPart())
}

// SignedMoney is like Money with an explicit + for positive amounts
func (r *Renderer) SignedMoney(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + r.Money(d)
	}
	return r.Money(d)
}

// Percent formats a percentage with one decimal, e.g. 12.5%
func Percent(d decimal.Decimal) string {
	return d.StringFixed(1) + "%"
}

// SignedPercent is like Percent with an explicit + for positive values
func SignedPercent(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + Percent(d)
	}
	return Percent(d)
}

// Print writes the Markdown document md to w in the renderer format
func (r *Renderer) Print(w io.Writer, md string) error {
	switch r.Format {
	case FormatMarkdown:
		if !strings.HasSuffix(md, "\n") {
			md += "\n"
		}
		_, err := io.WriteString(w, md)
		return err
	case FormatHTML:
		var buf bytes.Buffer
		converter := goldmark.New(goldmark.WithExtensions(extension.GFM))
		if err := converter.Convert([]byte(md), &buf); err != nil {
			return fmt.Errorf("failed to convert report to html: %w", err)
		}
		_, err := w.Write(buf.Bytes())
		return err
	default:
		opts := []glamour.TermRendererOption{glamour.WithWordWrap(r.Width)}
		if r.Style == "" || r.Style == "auto" {
			opts = append(opts, glamour.WithAutoStyle())
		} else {
			opts = append(opts, glamour.WithStandardStyle(r.Style))
		}
		tr, err := glamour.NewTermRenderer(opts...)
		if err != nil {
			return fmt.Errorf("failed to create terminal renderer: %w", err)
		}
		out, err := tr.Render(md)
		if err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
		_, err = io.WriteString(w, out)
		return err
	}
}
