// Package report renders analyzer findings for humans and machines. The
// analyzer emits findings in discovery order; sorting by severity and
// filtering by rule or threshold happen here.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"gascan/internal/analyzer"
)

// Reporter formats findings against the source text they were produced from.
type Reporter struct {
	filename string
	lines    []string
}

func NewReporter(filename, source string) *Reporter {
	return &Reporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// Sorted returns a copy of findings ordered by severity (high first), then
// line, then column. The input slice is left untouched.
func Sorted(findings []analyzer.Finding) []analyzer.Finding {
	out := make([]analyzer.Finding, len(findings))
	copy(out, findings)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Severity.Rank() != out[j].Severity.Rank() {
			return out[i].Severity.Rank() < out[j].Severity.Rank()
		}
		if out[i].Line != out[j].Line {
			return out[i].Line < out[j].Line
		}
		return out[i].Column < out[j].Column
	})
	return out
}

// Filter drops findings for disabled rules and findings below the minimum
// severity. An empty minimum keeps everything.
func Filter(findings []analyzer.Finding, disabled []string, min analyzer.Severity) []analyzer.Finding {
	off := make(map[string]bool, len(disabled))
	for _, rule := range disabled {
		off[rule] = true
	}

	var out []analyzer.Finding
	for _, f := range findings {
		if off[f.Rule] {
			continue
		}
		if min != "" && f.Severity.Rank() > min.Rank() {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Render produces the full colorized text report: severity-sorted findings
// with source context, then a summary line.
func (r *Reporter) Render(findings []analyzer.Finding) string {
	var result strings.Builder

	sorted := Sorted(findings)
	for _, f := range sorted {
		result.WriteString(r.FormatFinding(f))
	}
	result.WriteString(r.Summary(sorted))
	return result.String()
}

// FormatFinding renders one finding with its source line and a caret marker.
func (r *Reporter) FormatFinding(f analyzer.Finding) string {
	var result strings.Builder

	severityColor := severityColorFunc(f.Severity)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	result.WriteString(fmt.Sprintf("%s[%s]: %s\n",
		severityColor(string(f.Severity)), f.Rule, bold(f.Message)))

	lineNumberWidth := lineNumberWidth(f.Line)
	indent := strings.Repeat(" ", lineNumberWidth)

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), r.filename, f.Line, f.Column))

	if f.Line > 0 && f.Line <= len(r.lines) {
		result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", lineNumberWidth, f.Line)),
			dim("│"),
			r.lines[f.Line-1]))

		marker := strings.Repeat(" ", maxInt(0, f.Column-1)) + severityColor("^")
		result.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("│"), marker))
	}

	if f.Description != "" {
		noteColor := color.New(color.FgBlue).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), noteColor("note:"), f.Description))
	}

	if f.Before != "" && f.After != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), helpColor("help:"), "replace `"+f.Before+"` with `"+f.After+"`"))
	}

	if f.EstimatedSavings != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), helpColor("saves:"), f.EstimatedSavings))
	}

	result.WriteString("\n")
	return result.String()
}

// Summary renders the closing count line, e.g.
// "5 optimizations found (2 high, 1 medium, 2 low)".
func (r *Reporter) Summary(findings []analyzer.Finding) string {
	if len(findings) == 0 {
		ok := color.New(color.FgGreen, color.Bold).SprintFunc()
		return ok("✓") + " no gas optimizations found\n"
	}

	counts := map[analyzer.Severity]int{}
	for _, f := range findings {
		counts[f.Severity]++
	}

	var parts []string
	for _, sev := range []analyzer.Severity{
		analyzer.SeverityHigh, analyzer.SeverityMedium, analyzer.SeverityLow, analyzer.SeverityInfo,
	} {
		if counts[sev] > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", counts[sev], sev))
		}
	}

	noun := "optimizations"
	if len(findings) == 1 {
		noun = "optimization"
	}
	return fmt.Sprintf("%d %s found (%s)\n", len(findings), noun, strings.Join(parts, ", "))
}

func severityColorFunc(s analyzer.Severity) func(...interface{}) string {
	switch s {
	case analyzer.SeverityHigh:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	case analyzer.SeverityMedium:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case analyzer.SeverityLow:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	default:
		return color.New(color.FgCyan, color.Bold).SprintFunc()
	}
}

func lineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3
	}
	return width
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
