// Package output provides utilities for formatting and displaying footprint results.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/iwvelando/carbon-footprint/internal/footprint"
	"github.com/iwvelando/carbon-footprint/pkg/constants"
	"github.com/iwvelando/carbon-footprint/pkg/format"
	"github.com/iwvelando/carbon-footprint/pkg/mathutil"
	"github.com/iwvelando/carbon-footprint/pkg/optimization"
)

// Result is the report computed for one named scenario.
type Result struct {
	Name   string           `json:"name" yaml:"name"`
	Report footprint.Report `json:"report" yaml:"report"`
	// Budget is set when the scenario carried a budget directive.
	Budget *optimization.Summary `json:"budget,omitempty" yaml:"budget,omitempty"`
}

// PrettyOptions controls the human-readable table.
type PrettyOptions struct {
	// Language selects category labels; the zero value renders English.
	Language language.Tag
	// Styled adds terminal colours. Leave false when writing to a file or pipe.
	Styled bool
}

// Colours follow the ANSI 256 palette.
const (
	colorHeader    = lipgloss.Color("86")
	colorLabel     = lipgloss.Color("245")
	colorValue     = lipgloss.Color("255")
	colorHighlight = lipgloss.Color("214")
	colorMuted     = lipgloss.Color("241")
)

type renderFunc func(string) string

func render(style lipgloss.Style) renderFunc {
	return func(s string) string { return style.Render(s) }
}

type prettyStyles struct {
	header    renderFunc
	label     renderFunc
	value     renderFunc
	highlight renderFunc
	muted     renderFunc
}

func newPrettyStyles(styled bool) prettyStyles {
	if !styled {
		plain := func(s string) string { return s }
		return prettyStyles{header: plain, label: plain, value: plain, highlight: plain, muted: plain}
	}
	return prettyStyles{
		header:    render(lipgloss.NewStyle().Foreground(colorHeader).Bold(true)),
		label:     render(lipgloss.NewStyle().Foreground(colorLabel)),
		value:     render(lipgloss.NewStyle().Foreground(colorValue)),
		highlight: render(lipgloss.NewStyle().Foreground(colorHighlight).Bold(true)),
		muted:     render(lipgloss.NewStyle().Foreground(colorMuted).Italic(true)),
	}
}

// PrettyFormat writes a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, results []Result, opts PrettyOptions) error {
	tag := opts.Language
	if tag == language.Und {
		tag = language.English
	}
	st := newPrettyStyles(opts.Styled)

	var sb strings.Builder
	for i, result := range results {
		report := result.Report
		b := report.Breakdown

		sb.WriteString(st.header(fmt.Sprintf("--- Results for scenario %s (%s) ---", result.Name, report.PeriodLabel)))
		sb.WriteString("\n")

		labels := make([]string, 0, len(footprint.Categories()))
		for _, c := range footprint.Categories() {
			labels = append(labels, c.Label(tag))
		}
		width := lipgloss.Width("Total before recycling")
		for _, l := range labels {
			width = max(width, lipgloss.Width(l))
		}
		pad := func(s string) string {
			return s + strings.Repeat(" ", width-lipgloss.Width(s))
		}

		fmt.Fprintf(&sb, "%s | %-20s | %s\n", pad("Category"), "Emissions", "Share")
		fmt.Fprintf(&sb, "%s | %-20s | %s\n", pad("________"), "_________", "_____")
		for j, c := range footprint.Categories() {
			kg := b.Value(c)
			share := mathutil.CalculatePercentage(kg, b.TotalBeforeMitigation)
			fmt.Fprintf(&sb, "%s | %s | %s\n",
				st.label(pad(labels[j])),
				st.value(fmt.Sprintf("%-20s", format.Kilograms(kg))),
				strconv.FormatFloat(mathutil.Round(share), 'f', 1, 64)+"%")
		}
		fmt.Fprintf(&sb, "%s | %s\n", pad("Total before recycling"), format.Kilograms(b.TotalBeforeMitigation))
		fmt.Fprintf(&sb, "%s | %s\n", pad("Recycling factor"), strconv.FormatFloat(b.RecyclingFactor, 'f', -1, 64))
		fmt.Fprintf(&sb, "%s | %s\n", pad("Total"), st.highlight(format.Kilograms(b.Total)))
		fmt.Fprintf(&sb, "%s | %s\n", pad("Trees to offset"), st.highlight(format.Count(b.Trees)))

		if len(report.Advisory) > 0 {
			sb.WriteString("\nAdvice:\n")
			for _, rec := range report.Advisory {
				fmt.Fprintf(&sb, "  - %s\n", rec.String())
			}
		}
		if result.Budget != nil {
			fmt.Fprintf(&sb, "\nBudget: %s\n", result.Budget.String())
			for _, note := range result.Budget.Notes {
				fmt.Fprintf(&sb, "  %s\n", st.muted(note))
			}
		}
		if report.FactorTable.Name != "" {
			sb.WriteString(st.muted(fmt.Sprintf("Factor table %s %s", report.FactorTable.Name, report.FactorTable.Version)))
			sb.WriteString("\n")
		}
		if i < len(results)-1 {
			sb.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// CsvFormat writes results in comma-separated value format, one column per
// scenario.
func CsvFormat(w io.Writer, results []Result) error {
	var sb strings.Builder
	sb.WriteString(`"category"`)
	for _, result := range results {
		fmt.Fprintf(&sb, `,"kg CO2e (%s)"`, csvEscape(result.Name))
	}
	sb.WriteString("\n")

	row := func(name string, value func(footprint.Report) string) {
		fmt.Fprintf(&sb, `"%s"`, name)
		for _, result := range results {
			fmt.Fprintf(&sb, `,"%s"`, value(result.Report))
		}
		sb.WriteString("\n")
	}
	kg := func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

	row("period days", func(r footprint.Report) string { return strconv.FormatFloat(r.PeriodDays, 'f', -1, 64) })
	for _, c := range footprint.Categories() {
		row(string(c), func(r footprint.Report) string { return kg(r.Breakdown.Value(c)) })
	}
	row("total before recycling", func(r footprint.Report) string { return kg(r.Breakdown.TotalBeforeMitigation) })
	row("recycling factor", func(r footprint.Report) string {
		return strconv.FormatFloat(r.Breakdown.RecyclingFactor, 'f', -1, 64)
	})
	row("total", func(r footprint.Report) string { return kg(r.Breakdown.Total) })
	row("trees", func(r footprint.Report) string { return strconv.Itoa(r.Breakdown.Trees) })
	row("advice", func(r footprint.Report) string {
		cats := r.Advisory.Categories()
		names := make([]string, len(cats))
		for i, c := range cats {
			names[i] = string(c)
		}
		return strings.Join(names, ",")
	})

	_, err := io.WriteString(w, sb.String())
	return err
}

// CsvString returns the CsvFormat rendering of results.
func CsvString(results []Result) (string, error) {
	var buf bytes.Buffer
	if err := CsvFormat(&buf, results); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func csvEscape(s string) string {
	return strings.ReplaceAll(s, `"`, `""`)
}

// JSONFormat writes results as an indented JSON array.
func JSONFormat(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// YAMLFormat writes results as a YAML sequence.
func YAMLFormat(w io.Writer, results []Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return err
	}
	return enc.Close()
}

// Write renders results in the named output format.
func Write(w io.Writer, outputFormat string, results []Result, opts PrettyOptions) error {
	switch outputFormat {
	case constants.OutputFormatPretty, "":
		return PrettyFormat(w, results, opts)
	case constants.OutputFormatCSV:
		return CsvFormat(w, results)
	case constants.OutputFormatJSON:
		return JSONFormat(w, results)
	case constants.OutputFormatYAML:
		return YAMLFormat(w, results)
	default:
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}
}

// FactorsFormat writes a factor table in json or yaml; any other format
// falls back to yaml, the table's document layout.
func FactorsFormat(w io.Writer, outputFormat string, factors *footprint.EmissionFactors) error {
	if outputFormat == constants.OutputFormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(factors.Spec())
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(factors); err != nil {
		return err
	}
	return enc.Close()
}
