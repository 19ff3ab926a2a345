package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gascan/internal/analyzer"
)

func init() {
	color.NoColor = true
}

func sampleFindings() []analyzer.Finding {
	return []analyzer.Finding{
		{
			Rule:     analyzer.RulePrefixIncrement,
			Severity: analyzer.SeverityLow,
			Line:     3, Column: 5,
			Message: "Use prefix ++",
		},
		{
			Rule:     analyzer.RuleCacheArrayLength,
			Severity: analyzer.SeverityHigh,
			Line:     2, Column: 5,
			Message:          "Cache 'items.length' outside the loop",
			Description:      "The array length is re-read each iteration.",
			EstimatedSavings: "~100 gas per iteration",
			Contract:         "Vault",
			Function:         "sum",
		},
		{
			Rule:     analyzer.RuleCustomErrors,
			Severity: analyzer.SeverityMedium,
			Line:     5, Column: 9,
			Message: "Replace require string with a custom error",
			Before:  `require(..., "nope")`,
			After:   "if (...) revert SomeError();",
		},
	}
}

func TestSortedBySeverityThenLine(t *testing.T) {
	sorted := Sorted(sampleFindings())
	require.Len(t, sorted, 3)
	assert.Equal(t, analyzer.RuleCacheArrayLength, sorted[0].Rule)
	assert.Equal(t, analyzer.RuleCustomErrors, sorted[1].Rule)
	assert.Equal(t, analyzer.RulePrefixIncrement, sorted[2].Rule)
}

func TestSortedLeavesInputUntouched(t *testing.T) {
	findings := sampleFindings()
	Sorted(findings)
	assert.Equal(t, analyzer.RulePrefixIncrement, findings[0].Rule)
}

func TestFilterDisabledRules(t *testing.T) {
	filtered := Filter(sampleFindings(), []string{analyzer.RulePrefixIncrement}, "")
	require.Len(t, filtered, 2)
	for _, f := range filtered {
		assert.NotEqual(t, analyzer.RulePrefixIncrement, f.Rule)
	}
}

func TestFilterMinSeverity(t *testing.T) {
	filtered := Filter(sampleFindings(), nil, analyzer.SeverityMedium)
	require.Len(t, filtered, 2)
	for _, f := range filtered {
		assert.NotEqual(t, analyzer.SeverityLow, f.Severity)
	}
}

func TestRenderTextReport(t *testing.T) {
	source := "contract Vault {\n    for (uint i = 0; i < items.length; i++) {\n    i++;\n    x;\n        require(a, \"nope\");\n}\n"
	r := NewReporter("vault.sol", source)

	out := r.Render(sampleFindings())

	assert.Contains(t, out, "high[CACHE_ARRAY_LENGTH]")
	assert.Contains(t, out, "vault.sol:2:5")
	assert.Contains(t, out, "note: The array length is re-read each iteration.")
	assert.Contains(t, out, "saves: ~100 gas per iteration")
	assert.Contains(t, out, "3 optimizations found (1 high, 1 medium, 1 low)")

	// High severity must be rendered before low.
	assert.Less(t,
		strings.Index(out, "CACHE_ARRAY_LENGTH"),
		strings.Index(out, "PREFIX_INCREMENT"))
}

func TestRenderEmptyReport(t *testing.T) {
	r := NewReporter("empty.sol", "contract C {}\n")
	out := r.Render(nil)
	assert.Contains(t, out, "no gas optimizations found")
}

func TestSummarySingular(t *testing.T) {
	r := NewReporter("one.sol", "")
	out := r.Summary([]analyzer.Finding{{Severity: analyzer.SeverityHigh}})
	assert.Contains(t, out, "1 optimization found (1 high)")
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON("vault.sol", sampleFindings())
	require.NoError(t, err)

	var decoded JSONReport
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "vault.sol", decoded.File)
	require.Len(t, decoded.Findings, 3)

	first := decoded.Findings[0]
	assert.Equal(t, "CACHE_ARRAY_LENGTH-2-0", first.ID)
	assert.Equal(t, "CACHE_ARRAY_LENGTH", first.Type)
	assert.Equal(t, "high", first.Severity)
	assert.Equal(t, "Cache 'items.length' outside the loop", first.Title)
	assert.Equal(t, 2, first.Location.Line)
	assert.Equal(t, 5, first.Location.Column)
	assert.Equal(t, "Vault", first.Contract)
	assert.Equal(t, "sum", first.Function)
	assert.Equal(t, "~100 gas per iteration", first.GasSavings)
}

func TestJSONOmitsEmptyOptionalFields(t *testing.T) {
	data, err := RenderJSON("a.sol", []analyzer.Finding{{
		Rule:     analyzer.RuleDefaultValue,
		Severity: analyzer.SeverityLow,
		Line:     1, Column: 1,
		Message: "m",
	}})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "gasSavings")
	assert.NotContains(t, string(data), "before")
}
