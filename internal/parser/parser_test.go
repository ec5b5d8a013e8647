package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangzhangming/shuyu/internal/ast"
	"github.com/tangzhangming/shuyu/internal/lexer"
)

func parseText(t *testing.T, text string) []ast.Stmt {
	t.Helper()
	stmts, err := Parse(lexer.Lex(text))
	require.NoError(t, err)
	return stmts
}

func TestParseVarDeclAssignSay(t *testing.T) {
	stmts := parseText(t, "王麻子凶得很。王麻子巴倒250。摆哈儿：王麻子。")
	require.Len(t, stmts, 3)
	assert.IsType(t, &ast.VarDecl{}, stmts[0])
	assign, ok := stmts[1].(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "王麻子", assign.Name)
	assert.IsType(t, &ast.Say{}, stmts[2])
}

func TestParseArithmeticPrecedence(t *testing.T) {
	stmts := parseText(t, "摆哈儿：五加七乘二。")
	say := stmts[0].(*ast.Say)
	top, ok := say.Value.(*ast.Arithmetic)
	require.True(t, ok)
	assert.Equal(t, ast.Add, top.Op)
	rhs, ok := top.Rhs.(*ast.Arithmetic)
	require.True(t, ok)
	assert.Equal(t, ast.Mul, rhs.Op)
}

func TestParseLeftAssociativeSubtraction(t *testing.T) {
	stmts := parseText(t, "摆哈儿：五减三减一。")
	say := stmts[0].(*ast.Say)
	top, ok := say.Value.(*ast.Arithmetic)
	require.True(t, ok)
	assert.Equal(t, ast.Sub, top.Op)
	_, lhsIsArith := top.Lhs.(*ast.Arithmetic)
	assert.True(t, lhsIsArith, "subtraction should nest on the left")
}

func TestParseSingleComparison(t *testing.T) {
	stmts := parseText(t, "摆哈儿：五比二大。")
	say := stmts[0].(*ast.Say)
	cmp, ok := say.Value.(*ast.Comparison)
	require.True(t, ok)
	assert.Equal(t, ast.Gt, cmp.Op)
}

func TestParseConcatCollectsComparisons(t *testing.T) {
	stmts := parseText(t, "摆哈儿：五比二大、五比二小。")
	say := stmts[0].(*ast.Say)
	concat, ok := say.Value.(*ast.Concat)
	require.True(t, ok)
	assert.Len(t, concat.Items, 2)
}

func TestParseLoop(t *testing.T) {
	stmts := parseText(t, "王麻子从1拢3打转转儿：摆哈儿：王麻子。转完了。")
	loop, ok := stmts[0].(*ast.Loop)
	require.True(t, ok)
	assert.Equal(t, "王麻子", loop.Counter)
	require.Len(t, loop.Body, 1)
}

func TestParseConditionalDanglingElse(t *testing.T) {
	stmts := parseText(t, "看哈儿：五比二大啵？要是呢话看哈儿：一比二大啵？要是呢话摆哈儿：一。不是呢话摆哈儿：二。")
	outer, ok := stmts[0].(*ast.Conditional)
	require.True(t, ok)
	require.NotNil(t, outer.Then)
	inner, ok := outer.Then.(*ast.Conditional)
	require.True(t, ok)
	assert.NotNil(t, inner.Else, "else should bind to the innermost conditional")
}

func TestParseFuncDefAndCall(t *testing.T) {
	stmts := parseText(t,
		"【阶乘】（好多）啷个办：看哈儿：好多比一小啵？要是呢话爬远点一。爬远点好多乘喊【阶乘】（好多减一）。刹脚。摆哈儿：喊【阶乘】（五）。")
	fn, ok := stmts[0].(*ast.FuncDef)
	require.True(t, ok)
	assert.Equal(t, "阶乘", fn.Name)
	assert.Equal(t, []string{"好多"}, fn.Params)

	say, ok := stmts[1].(*ast.Say)
	require.True(t, ok)
	call, ok := say.Value.(*ast.Call)
	require.True(t, ok)
	assert.Equal(t, "阶乘", call.Callee)
	require.Len(t, call.Args, 1)
}

func TestParseCallStatement(t *testing.T) {
	stmts := parseText(t, "【打个招呼】啷个办：摆哈儿：“你好”。刹脚。喊【打个招呼】。")
	callStmt, ok := stmts[1].(*ast.CallStmt)
	require.True(t, ok)
	assert.Equal(t, "打个招呼", callStmt.Call.Callee)
	assert.Empty(t, callStmt.Call.Args)
}

func TestParseMissingTerminatorIsError(t *testing.T) {
	_, err := Parse(lexer.Lex("王麻子凶得很"))
	require.Error(t, err)
	assert.IsType(t, &Error{}, err)
}

func TestParseUnclosedBlockIsError(t *testing.T) {
	_, err := Parse(lexer.Lex("开始：摆哈儿：一。"))
	require.Error(t, err)
}
