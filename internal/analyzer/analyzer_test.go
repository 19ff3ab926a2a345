package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gascan/internal/parser"
)

func analyze(t *testing.T, source string) []Finding {
	t.Helper()
	tokens := parser.NewScanner(source).ScanTokens()
	p := parser.NewParser("test.sol", tokens, source)
	unit, err := p.ParseSourceUnit()
	require.NoError(t, err)
	return New().Analyze(unit)
}

func rulesOf(findings []Finding) []string {
	rules := make([]string, len(findings))
	for i, f := range findings {
		rules[i] = f.Rule
	}
	return rules
}

func findByRule(findings []Finding, rule string) []Finding {
	var out []Finding
	for _, f := range findings {
		if f.Rule == rule {
			out = append(out, f)
		}
	}
	return out
}

func TestStateArrayLoop(t *testing.T) {
	findings := analyze(t, `
contract Vault {
    uint256[] public items;
    uint256 total;

    function sum() public {
        for (uint i = 0; i < items.length; i++) {
            total += items[i];
        }
    }
}
`)
	rules := rulesOf(findings)
	assert.Contains(t, rules, RuleCacheArrayLength)
	assert.Contains(t, rules, RulePrefixIncrement)
	assert.Contains(t, rules, RuleUncheckedIncrement)

	cached := findByRule(findings, RuleCacheArrayLength)
	require.Len(t, cached, 1)
	assert.Equal(t, SeverityHigh, cached[0].Severity)
	assert.Contains(t, cached[0].Message, "items.length")
	assert.Equal(t, "Vault", cached[0].Contract)
	assert.Equal(t, "sum", cached[0].Function)
}

func TestUncheckedIncrementSuppressedByUncheckedBlock(t *testing.T) {
	findings := analyze(t, `
contract C {
    uint256 total;
    function f(uint256 n) public {
        for (uint256 i = 0; i < n; ++i) {
            unchecked { total += i; }
        }
    }
}
`)
	assert.Empty(t, findByRule(findings, RuleUncheckedIncrement))
}

func TestPostfixIncrementReportedTwiceInLoopUpdate(t *testing.T) {
	// The loop-update check and the generic postfix check both fire on the
	// same operator; the duplicate is intentional.
	findings := analyze(t, `
contract C {
    function f(uint256 n) public {
        for (uint256 i = 1; i < n; i++) { }
    }
}
`)
	assert.Len(t, findByRule(findings, RulePrefixIncrement), 2)
}

func TestUseConstant(t *testing.T) {
	findings := analyze(t, `
contract Token {
    uint256 public MAX_SUPPLY = 10000;
}
`)
	got := findByRule(findings, RuleUseConstant)
	require.Len(t, got, 1)
	assert.Equal(t, SeverityHigh, got[0].Severity)
	assert.Contains(t, got[0].Message, "MAX_SUPPLY")

	clean := analyze(t, `
contract Token {
    uint256 public constant MAX_SUPPLY = 10000;
}
`)
	assert.Empty(t, findByRule(clean, RuleUseConstant))
}

func TestUseConstantIgnoresNonLiteralInitializer(t *testing.T) {
	findings := analyze(t, `
contract C {
    uint256 limit = compute();
}
`)
	assert.Empty(t, findByRule(findings, RuleUseConstant))
}

func TestUseImmutable(t *testing.T) {
	findings := analyze(t, `
contract C {
    address owner;
    address immutable treasury;
    uint256 supply;
}
`)
	got := findByRule(findings, RuleUseImmutable)
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Message, "owner")
}

func TestStoragePacking(t *testing.T) {
	findings := analyze(t, `
contract Packed {
    uint128 a;
    uint256 b;
    uint128 c;
}
`)
	got := findByRule(findings, RuleStoragePacking)
	require.Len(t, got, 1)
	assert.Equal(t, SeverityHigh, got[0].Severity)
	assert.Contains(t, got[0].Description, "3 slots")
	assert.Equal(t, "Packed", got[0].Contract)

	reordered := analyze(t, `
contract Packed {
    uint128 a;
    uint128 c;
    uint256 b;
}
`)
	assert.Empty(t, findByRule(reordered, RuleStoragePacking))
}

func TestStoragePackingNeedsTwoVariables(t *testing.T) {
	findings := analyze(t, `
contract C {
    uint128 a;
}
`)
	assert.Empty(t, findByRule(findings, RuleStoragePacking))
}

func TestCustomErrors(t *testing.T) {
	findings := analyze(t, `
contract C {
    uint256 balance;
    function withdraw(uint256 amount) public {
        require(balance >= amount, "Insufficient balance");
    }
}
`)
	got := findByRule(findings, RuleCustomErrors)
	require.Len(t, got, 1)
	assert.Equal(t, SeverityMedium, got[0].Severity)
	assert.Contains(t, got[0].Description, "Insufficient balance")

	bare := analyze(t, `
contract C {
    function f(uint256 x) public { require(x != 0); }
}
`)
	assert.Empty(t, findByRule(bare, RuleCustomErrors))
}

func TestUseCalldata(t *testing.T) {
	findings := analyze(t, `
contract C {
    function f(uint256[] memory data) external pure returns (uint256) {
        return data.length;
    }
}
`)
	got := findByRule(findings, RuleUseCalldata)
	require.Len(t, got, 1)
	assert.Equal(t, SeverityMedium, got[0].Severity)
	assert.Contains(t, got[0].Message, "data")
	assert.Equal(t, "uint256[] calldata data", got[0].After)
}

func TestUseCalldataSkipsReassignedParameter(t *testing.T) {
	findings := analyze(t, `
contract C {
    function f(uint256[] memory data) external pure returns (uint256) {
        data = sort(data);
        return data.length;
    }
}
`)
	assert.Empty(t, findByRule(findings, RuleUseCalldata))
}

func TestUseCalldataIgnoresPublicFunctions(t *testing.T) {
	findings := analyze(t, `
contract C {
    function f(uint256[] memory data) public pure returns (uint256) {
        return data.length;
    }
}
`)
	assert.Empty(t, findByRule(findings, RuleUseCalldata))
}

func TestExternalVisibility(t *testing.T) {
	findings := analyze(t, `
contract C {
    function g(string memory name) public { }
    function h(uint256 n) public { }
}
`)
	got := findByRule(findings, RuleExternalVisibility)
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Message, "g")
}

func TestUseNeqZero(t *testing.T) {
	findings := analyze(t, `
contract C {
    function f(uint256 x) public pure returns (bool) {
        return x > 0;
    }
}
`)
	got := findByRule(findings, RuleUseNeqZero)
	require.Len(t, got, 1)
	assert.Equal(t, "x > 0", got[0].Before)
	assert.Equal(t, "x != 0", got[0].After)
}

func TestUseShift(t *testing.T) {
	findings := analyze(t, `
contract C {
    function f(uint256 x) public pure returns (uint256) {
        return x * 8 + x / 4 + x * 3 + x * 1;
    }
}
`)
	got := findByRule(findings, RuleUseShift)
	require.Len(t, got, 2)
	assert.Equal(t, "x << 3", got[0].After)
	assert.Equal(t, "x >> 2", got[1].After)
}

func TestShortCircuit(t *testing.T) {
	findings := analyze(t, `
contract C {
    function f(bool flag) public {
        if (expensive() && flag) { }
        if (flag && expensive()) { }
    }
}
`)
	got := findByRule(findings, RuleShortCircuit)
	require.Len(t, got, 1)
	assert.Equal(t, "expensive(...) && flag", got[0].Before)
	assert.Equal(t, "flag && expensive(...)", got[0].After)
}

func TestDefaultValue(t *testing.T) {
	findings := analyze(t, `
contract C {
    function f() public {
        uint256 a = 0;
        uint256 b = 1;
        uint256 c;
    }
}
`)
	got := findByRule(findings, RuleDefaultValue)
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Message, "a")
}

func TestUseIncrementOperator(t *testing.T) {
	findings := analyze(t, `
contract C {
    uint256 x;
    function f() public {
        x = x + 1;
        x = x - 1;
        x = x + 2;
    }
}
`)
	got := findByRule(findings, RuleUseIncrementOperator)
	require.Len(t, got, 2)
	assert.Contains(t, got[0].Message, "++x")
	assert.Contains(t, got[1].Message, "--x")
}

func TestCacheStorageInLoop(t *testing.T) {
	findings := analyze(t, `
contract C {
    uint256 pending;
    function drain() public {
        while (pending != 0) {
            pending -= 1;
        }
        do { pending -= 1; } while (pending != 0);
    }
}
`)
	got := findByRule(findings, RuleCacheStorageInLoop)
	require.Len(t, got, 2)
	assert.Equal(t, SeverityHigh, got[0].Severity)
	assert.Contains(t, got[0].Message, "pending")
}

func TestCacheStorageInLoopIgnoresLocals(t *testing.T) {
	findings := analyze(t, `
contract C {
    function f(uint256 n) public {
        while (n != 0) { n -= 1; }
    }
}
`)
	assert.Empty(t, findByRule(findings, RuleCacheStorageInLoop))
}

func TestStateVariableScopedPerContract(t *testing.T) {
	// items belongs to Other, not to C, so the loop in C is not flagged.
	findings := analyze(t, `
contract Other {
    uint256[] items;
}
contract C {
    function f(uint256[] memory items) internal {
        for (uint256 i = 0; i < items.length; ++i) { }
    }
}
`)
	assert.Empty(t, findByRule(findings, RuleCacheArrayLength))
}

func TestAnalyzeDeterministic(t *testing.T) {
	source := `
contract C {
    uint256[] items;
    uint256 public MAX = 100;
    function f() public {
        for (uint256 i = 0; i < items.length; i++) { }
    }
}
`
	first := analyze(t, source)
	second := analyze(t, source)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestAnalyzeNilUnit(t *testing.T) {
	assert.Nil(t, New().Analyze(nil))
}

func TestFindingLinesReferenceSource(t *testing.T) {
	source := `contract C {
    uint256 public MAX = 100;
    address owner;
}
`
	findings := analyze(t, source)
	require.NotEmpty(t, findings)
	for _, f := range findings {
		assert.Greater(t, f.Line, 0)
		assert.LessOrEqual(t, f.Line, 4)
	}
}

func TestSeverityRank(t *testing.T) {
	assert.Less(t, SeverityHigh.Rank(), SeverityMedium.Rank())
	assert.Less(t, SeverityMedium.Rank(), SeverityLow.Rank())
	assert.Less(t, SeverityLow.Rank(), SeverityInfo.Rank())
}
