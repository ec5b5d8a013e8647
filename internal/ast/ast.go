// ast 包定义了解析器产出、求值器遍历的表达式和语句节点。
package ast

import "github.com/tangzhangming/shuyu/internal/token"

// Expr 是所有表达式节点都要实现的接口。
type Expr interface{ exprNode() }

// Stmt 是所有语句节点都要实现的接口。
type Stmt interface{ stmtNode() }

// ---------- 表达式 ----------

// Literal 是一个常量，整数或字符串。
type Literal struct {
	Tok token.Token // Kind 是 KindInt 或 KindString
}

// Variable 是对一个具名值的引用。
type Variable struct {
	Name string
}

// Paren 是一个带括号的表达式，保留它只是为了 AST 能原样往返；求值时它在
// 语义上是透明的。
type Paren struct {
	Inner Expr
}

// ArithOp 枚举二元算术运算符。
type ArithOp int

const (
	Add ArithOp = iota
	Sub
	Mul
	Div
)

// Arithmetic 是一个二元算术表达式：Lhs op Rhs。
type Arithmetic struct {
	Lhs Expr
	Op  ArithOp
	Rhs Expr
}

// CompareOp 枚举比较运算符。
type CompareOp int

const (
	Gt CompareOp = iota
	Lt
	Eq
	Neq
)

// Comparison 是一个二元比较表达式，值永远是 Boolean。
type Comparison struct {
	Lhs Expr
	Op  CompareOp
	Rhs Expr
}

// Call 是一个函数调用表达式：喊 Callee（Args...）。
type Call struct {
	Callee string
	Args   []Expr
}

// Concat 是一个 n 元（≥2）字符串拼接表达式：e1、e2、……。
type Concat struct {
	Items []Expr
}

func (*Literal) exprNode()    {}
func (*Variable) exprNode()   {}
func (*Paren) exprNode()      {}
func (*Arithmetic) exprNode() {}
func (*Comparison) exprNode() {}
func (*Call) exprNode()       {}
func (*Concat) exprNode()     {}

// ---------- 语句 ----------

// VarDecl 声明一个变量，如果它还不存在就初始化为 Integer(0)。
type VarDecl struct {
	Name string
}

// Assign 把 Value 的求值结果存进 Name，不存在就新建，存在就覆盖。
type Assign struct {
	Name  string
	Value Expr
}

// Say 打印 Value 的字符串化结果，后面跟一个换行。
type Say struct {
	Value Expr
}

// IncBy 把 Delta 的值加到 Name 上。
type IncBy struct {
	Name  string
	Delta Expr
}

// DecBy 把 Delta 的值从 Name 上减掉。
type DecBy struct {
	Name  string
	Delta Expr
}

// Loop 是一个含两端的计数循环：for Counter = Start ... End，执行 Body。
type Loop struct {
	Counter string
	Start   Expr
	End     Expr
	Body    []Stmt
}

// Conditional 是一个 if/else 语句，Else 可以为 nil。
type Conditional struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

// FuncDef 定义（或重新定义）一个具名函数。
type FuncDef struct {
	Name   string
	Params []string
	Body   []Stmt
}

// CallStmt 是 Call 的语句形式：求值后丢弃结果。
type CallStmt struct {
	Call *Call
}

// Return 用 Value 的结果（Value 为 nil 时用 Void）结束最近一层包裹它的
// 函数调用。
type Return struct {
	Value Expr // 裸的 爬远点。 时为 nil
}

// Block 是一个复合语句（开始：……刹脚。）：其中的语句按顺序执行，不引入
// 新的作用域。
type Block struct {
	Stmts []Stmt
}

func (*VarDecl) stmtNode()     {}
func (*Assign) stmtNode()      {}
func (*Say) stmtNode()         {}
func (*IncBy) stmtNode()       {}
func (*DecBy) stmtNode()       {}
func (*Loop) stmtNode()        {}
func (*Conditional) stmtNode() {}
func (*FuncDef) stmtNode()     {}
func (*CallStmt) stmtNode()    {}
func (*Return) stmtNode()      {}
func (*Block) stmtNode()       {}
