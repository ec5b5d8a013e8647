package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangzhangming/shuyu/internal/lexer"
	"github.com/tangzhangming/shuyu/internal/parser"
)

func runText(t *testing.T, text string) (string, error) {
	t.Helper()
	tokens := lexer.Lex(text)
	stmts, err := parser.Parse(tokens)
	require.NoError(t, err)
	return New().Run(stmts)
}

func TestSayStringLiteral(t *testing.T) {
	out, err := runText(t, "摆哈儿：“这踏踏儿巴适得板！”。")
	require.NoError(t, err)
	assert.Equal(t, "这踏踏儿巴适得板！\n", out)
}

func TestVarDeclAssignSay(t *testing.T) {
	out, err := runText(t, "王麻子凶得很。\n王麻子巴倒250。\n摆哈儿：王麻子。")
	require.NoError(t, err)
	assert.Equal(t, "250\n", out)
}

func TestArithmeticPrecedence(t *testing.T) {
	out, err := runText(t, "摆哈儿：五加七乘二。")
	require.NoError(t, err)
	assert.Equal(t, "19\n", out)
}

func TestParenOverridesPrecedence(t *testing.T) {
	out, err := runText(t, "摆哈儿：（五加七）乘二。")
	require.NoError(t, err)
	assert.Equal(t, "24\n", out)
}

func TestComparisonsAndConcat(t *testing.T) {
	out, err := runText(t, "摆哈儿：五比二大、五比二小、一跟倒2一模一样呢、1跟倒二不一样。")
	require.NoError(t, err)
	assert.Equal(t, "对错错对\n", out)
}

func TestLoopCountsUpInclusive(t *testing.T) {
	out, err := runText(t, "王麻子从1拢3打转转儿：摆哈儿：王麻子。转完了。")
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestLoopCountsDownWhenStartAfterEnd(t *testing.T) {
	out, err := runText(t, "王麻子从3拢1打转转儿：摆哈儿：王麻子。转完了。")
	require.NoError(t, err)
	assert.Equal(t, "3\n2\n1\n", out)
}

func TestLoopRunsOnceWhenStartEqualsEnd(t *testing.T) {
	out, err := runText(t, "王麻子从2拢2打转转儿：摆哈儿：王麻子。转完了。")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestRecursiveFunctionCall(t *testing.T) {
	out, err := runText(t,
		"【阶乘】（好多）啷个办：看哈儿：好多比一小啵？要是呢话爬远点一。爬远点好多乘喊【阶乘】（好多减一）。刹脚。摆哈儿：喊【阶乘】（五）。")
	require.NoError(t, err)
	assert.Equal(t, "120\n", out)
}

func TestIncByDecByDefaultAndStepped(t *testing.T) {
	out, err := runText(t, "x凶得很。x走哈儿。x走5步。x倒起走哈儿。摆哈儿：x。")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestIntegerDivisionAlwaysYieldsFloat(t *testing.T) {
	out, err := runText(t, "摆哈儿：十除以二。")
	require.NoError(t, err)
	assert.Equal(t, "5.0\n", out)
}

func TestFunctionParamsShadowGlobals(t *testing.T) {
	out, err := runText(t,
		"计数凶得很。计数巴倒0。"+
			"【累加】（计数）啷个办：计数走哈儿。摆哈儿：计数。刹脚。"+
			"喊【累加】（10）。摆哈儿：计数。")
	require.NoError(t, err)
	// The parameter named 计数 shadows the global inside 累加, so the
	// printed value inside the call is the incremented parameter, but the
	// global 计数 itself is untouched by the call.
	assert.Equal(t, "11\n0\n", out)
}

func TestUndeclaredVariableIsNameError(t *testing.T) {
	_, err := runText(t, "摆哈儿：不存在。")
	require.Error(t, err)
	assert.IsType(t, &NameError{}, err)
}

func TestNonBooleanConditionIsTypeError(t *testing.T) {
	_, err := runText(t, "看哈儿：五啵？要是呢话摆哈儿：一。")
	require.Error(t, err)
	assert.IsType(t, &TypeError{}, err)
}

func TestArityMismatchIsArityError(t *testing.T) {
	_, err := runText(t, "【加一】（数）啷个办：爬远点数加一。刹脚。摆哈儿：喊【加一】（1，2）。")
	require.Error(t, err)
	assert.IsType(t, &ArityError{}, err)
}

func TestReturnOutsideFunctionIsError(t *testing.T) {
	_, err := runText(t, "爬远点。")
	require.Error(t, err)
	assert.IsType(t, &ReturnOutsideFunctionError{}, err)
}

func TestBlockStatementExecutesInOrderNoNewScope(t *testing.T) {
	out, err := runText(t, "x凶得很。开始：x巴倒1。摆哈儿：x。刹脚。摆哈儿：x。")
	require.NoError(t, err)
	assert.Equal(t, "1\n1\n", out)
}
