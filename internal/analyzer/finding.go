package analyzer

// Severity ranks the expected gas impact of a finding.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
	SeverityInfo   Severity = "info"
)

// Rank orders severities for sorting and threshold filtering, highest first.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 2
	default:
		return 3
	}
}

// Rule identifiers. Stable strings: reports, editor diagnostics, and config
// rule filters all key on these.
const (
	RuleUseCalldata          = "USE_CALLDATA"
	RuleExternalVisibility   = "EXTERNAL_VISIBILITY"
	RuleCacheArrayLength     = "CACHE_ARRAY_LENGTH"
	RuleUncheckedIncrement   = "UNCHECKED_INCREMENT"
	RulePrefixIncrement      = "PREFIX_INCREMENT"
	RuleCustomErrors         = "CUSTOM_ERRORS"
	RuleUseConstant          = "USE_CONSTANT"
	RuleUseImmutable         = "USE_IMMUTABLE"
	RuleUseNeqZero           = "USE_NEQ_ZERO"
	RuleUseShift             = "USE_SHIFT"
	RuleShortCircuit         = "SHORT_CIRCUIT"
	RuleDefaultValue         = "DEFAULT_VALUE"
	RuleUseIncrementOperator = "USE_INCREMENT_OPERATOR"
	RuleStoragePacking       = "STORAGE_PACKING"
	RuleCacheStorageInLoop   = "CACHE_STORAGE_IN_LOOP"
)

// Finding is one reported optimization opportunity. Findings are appended in
// discovery order and never mutated; sorting and filtering belong to the
// reporter.
type Finding struct {
	Rule             string
	Severity         Severity
	Line             int
	Column           int
	Message          string
	Description      string
	EstimatedSavings string
	Before           string // optional illustrative snippet
	After            string // optional illustrative snippet
	Contract         string // enclosing contract name, if any
	Function         string // enclosing function name, if any
}
