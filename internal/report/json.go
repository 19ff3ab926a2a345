package report

import (
	"encoding/json"
	"fmt"

	"gascan/internal/analyzer"
)

// Location pins a finding to a source position.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// JSONFinding is the wire shape editor integrations consume.
type JSONFinding struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Severity    string   `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    Location `json:"location"`
	Function    string   `json:"function,omitempty"`
	Contract    string   `json:"contract,omitempty"`
	GasSavings  string   `json:"gasSavings,omitempty"`
	Before      string   `json:"before,omitempty"`
	After       string   `json:"after,omitempty"`
}

// JSONReport wraps the findings for one analyzed file.
type JSONReport struct {
	File     string        `json:"file"`
	Findings []JSONFinding `json:"findings"`
}

// ToJSONFindings converts findings into their wire shape. The id is
// synthesized as {rule}-{line}-{index}, with index counting over the input
// order, so repeated findings on one line stay distinguishable.
func ToJSONFindings(findings []analyzer.Finding) []JSONFinding {
	out := make([]JSONFinding, len(findings))
	for i, f := range findings {
		out[i] = JSONFinding{
			ID:          fmt.Sprintf("%s-%d-%d", f.Rule, f.Line, i),
			Type:        f.Rule,
			Severity:    string(f.Severity),
			Title:       f.Message,
			Description: f.Description,
			Location:    Location{Line: f.Line, Column: f.Column},
			Function:    f.Function,
			Contract:    f.Contract,
			GasSavings:  f.EstimatedSavings,
			Before:      f.Before,
			After:       f.After,
		}
	}
	return out
}

// RenderJSON marshals a severity-sorted report for one file.
func RenderJSON(filename string, findings []analyzer.Finding) ([]byte, error) {
	reportBody := JSONReport{
		File:     filename,
		Findings: ToJSONFindings(Sorted(findings)),
	}
	return json.MarshalIndent(reportBody, "", "  ")
}
