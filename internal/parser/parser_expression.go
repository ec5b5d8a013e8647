package parser

import (
	"github.com/tangzhangming/shuyu/internal/ast"
	"github.com/tangzhangming/shuyu/internal/token"
)

// parseExpr 解析最低优先级（拼接）层的完整表达式：
// Comparison (、 Comparison)*。只有一项时直接返回，不包一层；两项及以上
// 收集进一个 Concat 节点。
func (p *Parser) parseExpr() (ast.Expr, error) {
	first, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	if !p.curIsKeyword(token.Concat) {
		return first, nil
	}
	items := []ast.Expr{first}
	for p.curIsKeyword(token.Concat) {
		p.advance()
		next, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		items = append(items, next)
	}
	return &ast.Concat{Items: items}, nil
}

// parseComparison 解析一个加减法层级的左操作数，后面可以跟恰好一种环绕式
// 比较形式：`Lhs 比 Rhs 大`、`Lhs 比 Rhs 小`、`Lhs 跟倒 Rhs 一模一样呢`、
// `Lhs 跟倒 Rhs 不一样`。比较运算不能链式连用。
func (p *Parser) parseComparison() (ast.Expr, error) {
	lhs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	switch {
	case p.curIsKeyword("比"):
		p.advance()
		rhs, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		switch {
		case p.curIsKeyword("大"):
			p.advance()
			return &ast.Comparison{Lhs: lhs, Op: ast.Gt, Rhs: rhs}, nil
		case p.curIsKeyword("小"):
			p.advance()
			return &ast.Comparison{Lhs: lhs, Op: ast.Lt, Rhs: rhs}, nil
		default:
			return nil, errAt(p.cur(), "比较式 %q 后期望 \"大\" 或 \"小\"，实际遇到 %s", "比", p.cur())
		}

	case p.curIsKeyword("跟倒"):
		p.advance()
		rhs, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		switch {
		case p.curIsKeyword("一模一样呢"):
			p.advance()
			return &ast.Comparison{Lhs: lhs, Op: ast.Eq, Rhs: rhs}, nil
		case p.curIsKeyword("不一样"):
			p.advance()
			return &ast.Comparison{Lhs: lhs, Op: ast.Neq, Rhs: rhs}, nil
		default:
			return nil, errAt(p.cur(), "比较式 %q 后期望 \"一模一样呢\" 或 \"不一样\"，实际遇到 %s", "跟倒", p.cur())
		}

	default:
		return lhs, nil
	}
}

// parseAdditive 解析左结合的 加/减 链，操作数是乘除法层级的表达式。
func (p *Parser) parseAdditive() (ast.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.curIsKeyword("加") || p.curIsKeyword("减") {
		op := ast.Add
		if p.curIsKeyword("减") {
			op = ast.Sub
		}
		p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.Arithmetic{Lhs: left, Op: op, Rhs: right}
	}
	return left, nil
}

// parseMultiplicative 解析左结合的 乘/除以 链，操作数是原子表达式。
func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.curIsKeyword("乘") || p.curIsKeyword("除以") {
		op := ast.Mul
		if p.curIsKeyword("除以") {
			op = ast.Div
		}
		p.advance()
		right, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		left = &ast.Arithmetic{Lhs: left, Op: op, Rhs: right}
	}
	return left, nil
}

// parseAtom 解析优先级最高的表达式形式：整数和字符串字面量、变量引用、
// 带括号的子表达式，以及函数调用。
func (p *Parser) parseAtom() (ast.Expr, error) {
	switch {
	case p.cur().Kind == token.KindInt:
		return &ast.Literal{Tok: p.advance()}, nil

	case p.curIsKeyword(token.QuoteOpen):
		p.advance()
		if p.cur().Kind != token.KindString {
			return nil, errAt(p.cur(), "期望字符串字面量，实际遇到 %s", p.cur())
		}
		lit := &ast.Literal{Tok: p.advance()}
		if err := p.expectKeyword(token.QuoteClose); err != nil {
			return nil, err
		}
		return lit, nil

	case p.curIsKeyword("喊"):
		return p.parseCallExpr()

	case p.curIsKeyword(token.WideLParen) || p.curIsKeyword(token.NarrowLParen):
		closer := closingParen(p.advance().Text)
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectKeyword(closer); err != nil {
			return nil, err
		}
		return &ast.Paren{Inner: inner}, nil

	case p.cur().Kind == token.KindIdentifier:
		return &ast.Variable{Name: p.advance().Text}, nil

	default:
		return nil, errAt(p.cur(), "无法识别的表达式起始 %s", p.cur())
	}
}

// parseCallExpr 处理 `喊 Identifier [（ args ）]`，既可以作为更大表达式里
// 的一个原子，也可以是整条调用语句。参数列表用逗号（， 或 ,）分隔；全角
// 和半角括号可以自由混用，但同一次调用里开闭括号必须配对。
func (p *Parser) parseCallExpr() (*ast.Call, error) {
	if err := p.expectKeyword("喊"); err != nil {
		return nil, err
	}
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}

	call := &ast.Call{Callee: name}
	if !p.curIsKeyword(token.WideLParen) && !p.curIsKeyword(token.NarrowLParen) {
		return call, nil
	}
	closer := closingParen(p.advance().Text)
	for !p.curIsKeyword(closer) {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)
		if p.curIsComma() {
			p.advance()
			continue
		}
		break
	}
	if err := p.expectKeyword(closer); err != nil {
		return nil, err
	}
	return call, nil
}
