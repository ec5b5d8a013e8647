package interpreter

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/tangzhangming/shuyu/internal/ast"
	"github.com/tangzhangming/shuyu/internal/token"
)

// Interpreter 遍历已解析好的程序，在一个两层环境上求值表达式、执行语句。
// 输出累积在一个缓冲区里，程序跑完（或出错中止）之后整个返回。
type Interpreter struct {
	env *Environment
	out strings.Builder
}

// New 创建一个带有全新、空的全局环境的解释器。
func New() *Interpreter {
	return &Interpreter{env: NewEnvironment()}
}

// Run 按顺序执行 program 里的每条语句，返回写进输出缓冲区的全部内容。
// 出现致命错误时，目前为止产生的输出依然会和错误一起返回。
func (i *Interpreter) Run(program []ast.Stmt) (string, error) {
	for _, stmt := range program {
		if err := i.execStmt(stmt); err != nil {
			var ret *returnSignal
			if errors.As(err, &ret) {
				return i.out.String(), &ReturnOutsideFunctionError{}
			}
			return i.out.String(), err
		}
	}
	logrus.WithField("output_bytes", i.out.Len()).Debug("interpreter: program finished")
	return i.out.String(), nil
}

// ---------- 语句 ----------

func (i *Interpreter) execStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		i.env.Declare(s.Name)
		return nil

	case *ast.Assign:
		val, err := i.evalExpr(s.Value)
		if err != nil {
			return err
		}
		i.env.Set(s.Name, val)
		return nil

	case *ast.Say:
		val, err := i.evalExpr(s.Value)
		if err != nil {
			return err
		}
		i.out.WriteString(stringify(val))
		i.out.WriteByte('\n')
		return nil

	case *ast.IncBy:
		return i.execIncDec(s.Name, s.Delta, 1)

	case *ast.DecBy:
		return i.execIncDec(s.Name, s.Delta, -1)

	case *ast.Loop:
		return i.execLoop(s)

	case *ast.Conditional:
		cond, err := i.evalExpr(s.Cond)
		if err != nil {
			return err
		}
		b, ok := cond.(*Boolean)
		if !ok {
			return &TypeError{Message: "看哈儿 的条件必须是布尔值"}
		}
		if b.Value {
			return i.execStmt(s.Then)
		}
		if s.Else != nil {
			return i.execStmt(s.Else)
		}
		return nil

	case *ast.FuncDef:
		i.env.DefineFunction(&Function{Name: s.Name, Params: s.Params, Body: s.Body})
		return nil

	case *ast.CallStmt:
		_, err := i.evalCall(s.Call)
		return err

	case *ast.Return:
		if s.Value == nil {
			return &returnSignal{Value: voidObj}
		}
		val, err := i.evalExpr(s.Value)
		if err != nil {
			return err
		}
		return &returnSignal{Value: val}

	case *ast.Block:
		for _, inner := range s.Stmts {
			if err := i.execStmt(inner); err != nil {
				return err
			}
		}
		return nil

	default:
		return &TypeError{Message: "未知的语句节点"}
	}
}

func (i *Interpreter) execIncDec(name string, deltaExpr ast.Expr, sign int64) error {
	cur, ok := i.env.Get(name)
	if !ok {
		return &NameError{Name: name}
	}
	if !isNumeric(cur) {
		return &TypeError{Message: "走/倒起走 只能用于数值变量"}
	}
	delta, err := i.evalExpr(deltaExpr)
	if err != nil {
		return err
	}
	if !isNumeric(delta) {
		return &TypeError{Message: "走/倒起走 的步数必须是数值"}
	}

	if curI, curIsInt := cur.(*Integer); curIsInt {
		if di, deltaIsInt := delta.(*Integer); deltaIsInt {
			n := di.Value
			if sign < 0 {
				n = -n
			}
			i.env.Set(name, &Integer{Value: curI.Value + n})
			return nil
		}
	}
	step := asFloat(delta)
	if sign < 0 {
		step = -step
	}
	i.env.Set(name, &Float{Value: asFloat(cur) + step})
	return nil
}

func (i *Interpreter) execLoop(s *ast.Loop) error {
	startV, err := i.evalExpr(s.Start)
	if err != nil {
		return err
	}
	endV, err := i.evalExpr(s.End)
	if err != nil {
		return err
	}
	start, ok := startV.(*Integer)
	if !ok {
		return &TypeError{Message: "打转转儿 的起始值必须是整数"}
	}
	end, ok := endV.(*Integer)
	if !ok {
		return &TypeError{Message: "打转转儿 的结束值必须是整数"}
	}

	step := int64(1)
	if end.Value < start.Value {
		step = -1
	}
	for n := start.Value; ; n += step {
		i.env.Set(s.Counter, &Integer{Value: n})
		for _, inner := range s.Body {
			if err := i.execStmt(inner); err != nil {
				return err
			}
		}
		if n == end.Value {
			break
		}
	}
	return nil
}

// ---------- 表达式 ----------

func (i *Interpreter) evalExpr(expr ast.Expr) (Object, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e), nil

	case *ast.Variable:
		v, ok := i.env.Get(e.Name)
		if !ok {
			return nil, &NameError{Name: e.Name}
		}
		return v, nil

	case *ast.Paren:
		return i.evalExpr(e.Inner)

	case *ast.Arithmetic:
		return i.evalArithmetic(e)

	case *ast.Comparison:
		return i.evalComparison(e)

	case *ast.Call:
		return i.evalCall(e)

	case *ast.Concat:
		var b strings.Builder
		for _, item := range e.Items {
			v, err := i.evalExpr(item)
			if err != nil {
				return nil, err
			}
			b.WriteString(stringify(v))
		}
		return &String{Value: b.String()}, nil

	default:
		return nil, &TypeError{Message: "未知的表达式节点"}
	}
}

func literalValue(lit *ast.Literal) Object {
	if lit.Tok.Kind == token.KindInt {
		return &Integer{Value: lit.Tok.Int}
	}
	return &String{Value: lit.Tok.Text}
}

func (i *Interpreter) evalArithmetic(e *ast.Arithmetic) (Object, error) {
	lhs, err := i.evalExpr(e.Lhs)
	if err != nil {
		return nil, err
	}
	rhs, err := i.evalExpr(e.Rhs)
	if err != nil {
		return nil, err
	}

	if !isNumeric(lhs) || !isNumeric(rhs) {
		return nil, &TypeError{Message: "算术运算符只能用于数值；字符串拼接请用 、"}
	}

	li, lIsInt := lhs.(*Integer)
	ri, rIsInt := rhs.(*Integer)

	if e.Op == ast.Div {
		return &Float{Value: asFloat(lhs) / asFloat(rhs)}, nil
	}

	if lIsInt && rIsInt {
		switch e.Op {
		case ast.Add:
			return &Integer{Value: li.Value + ri.Value}, nil
		case ast.Sub:
			return &Integer{Value: li.Value - ri.Value}, nil
		case ast.Mul:
			return &Integer{Value: li.Value * ri.Value}, nil
		}
	}

	lf, rf := asFloat(lhs), asFloat(rhs)
	switch e.Op {
	case ast.Add:
		return &Float{Value: lf + rf}, nil
	case ast.Sub:
		return &Float{Value: lf - rf}, nil
	case ast.Mul:
		return &Float{Value: lf * rf}, nil
	}
	return nil, &TypeError{Message: "未知的算术运算符"}
}

func (i *Interpreter) evalComparison(e *ast.Comparison) (Object, error) {
	lhs, err := i.evalExpr(e.Lhs)
	if err != nil {
		return nil, err
	}
	rhs, err := i.evalExpr(e.Rhs)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case ast.Eq:
		return boolObj(valuesEqual(lhs, rhs)), nil
	case ast.Neq:
		return boolObj(!valuesEqual(lhs, rhs)), nil
	}

	if !isNumeric(lhs) || !isNumeric(rhs) {
		return nil, &TypeError{Message: "比 大/小 只能比较数值"}
	}
	lf, rf := asFloat(lhs), asFloat(rhs)
	switch e.Op {
	case ast.Gt:
		return boolObj(lf > rf), nil
	case ast.Lt:
		return boolObj(lf < rf), nil
	}
	return nil, &TypeError{Message: "未知的比较运算符"}
}

func valuesEqual(lhs, rhs Object) bool {
	if ls, ok := lhs.(*String); ok {
		if rs, ok := rhs.(*String); ok {
			return ls.Value == rs.Value
		}
		return false
	}
	if lb, ok := lhs.(*Boolean); ok {
		if rb, ok := rhs.(*Boolean); ok {
			return lb.Value == rb.Value
		}
		return false
	}
	if isNumeric(lhs) && isNumeric(rhs) {
		return asFloat(lhs) == asFloat(rhs)
	}
	return false
}

func (i *Interpreter) evalCall(call *ast.Call) (Object, error) {
	fn, ok := i.env.LookupFunction(call.Callee)
	if !ok {
		return nil, &NameError{Name: call.Callee}
	}
	if len(call.Args) != len(fn.Params) {
		return nil, &ArityError{Callee: call.Callee, Want: len(fn.Params), Got: len(call.Args)}
	}

	args := make([]Object, len(call.Args))
	for idx, argExpr := range call.Args {
		v, err := i.evalExpr(argExpr)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	frame := make(map[string]Object, len(fn.Params))
	for idx, p := range fn.Params {
		frame[p] = args[idx]
	}
	restore := i.env.pushFrame(frame)
	defer restore()

	logrus.WithField("function", call.Callee).Debug("interpreter: call")

	for _, stmt := range fn.Body {
		if err := i.execStmt(stmt); err != nil {
			var ret *returnSignal
			if errors.As(err, &ret) {
				return ret.Value, nil
			}
			return nil, err
		}
	}
	return voidObj, nil
}
