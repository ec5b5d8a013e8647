package parser

import (
	"github.com/tangzhangming/shuyu/internal/ast"
	"github.com/tangzhangming/shuyu/internal/token"
)

// parseStatement 根据开头的 token 分派到某一种具体的语句形式。
func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch {
	case p.curIsKeyword("摆哈儿"):
		return p.parseSay()
	case p.curIsKeyword("看哈儿"):
		return p.parseConditional()
	case p.curIsKeyword("喊"):
		return p.parseCallStmt()
	case p.curIsKeyword("爬远点"):
		return p.parseReturn()
	case p.curIsKeyword("开始："):
		return p.parseBlock()
	case p.cur().Kind == token.KindIdentifier:
		return p.parseIdentifierLedStatement()
	default:
		return nil, errAt(p.cur(), "无法识别的语句起始 %s", p.cur())
	}
}

// parseIdentifierLedStatement 处理所有以标识符开头的语句形式：VarDecl、
// Assign、IncBy、DecBy、Loop 和 FuncDef。
func (p *Parser) parseIdentifierLedStatement() (ast.Stmt, error) {
	name := p.advance().Text

	switch {
	case p.curIsKeyword("凶得很"):
		p.advance()
		if err := p.expectTerminator(); err != nil {
			return nil, err
		}
		return &ast.VarDecl{Name: name}, nil

	case p.curIsKeyword("巴倒"):
		p.advance()
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectTerminator(); err != nil {
			return nil, err
		}
		return &ast.Assign{Name: name, Value: val}, nil

	case p.curIsKeyword("走哈儿"):
		p.advance()
		if err := p.expectTerminator(); err != nil {
			return nil, err
		}
		return &ast.IncBy{Name: name, Delta: oneLiteral()}, nil

	case p.curIsKeyword("走"):
		p.advance()
		n, err := p.parseIntLiteralExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectKeyword("步"); err != nil {
			return nil, err
		}
		if err := p.expectTerminator(); err != nil {
			return nil, err
		}
		return &ast.IncBy{Name: name, Delta: n}, nil

	case p.curIsKeyword("倒起走哈儿"):
		p.advance()
		if err := p.expectTerminator(); err != nil {
			return nil, err
		}
		return &ast.DecBy{Name: name, Delta: oneLiteral()}, nil

	case p.curIsKeyword("倒起走"):
		p.advance()
		n, err := p.parseIntLiteralExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectKeyword("步"); err != nil {
			return nil, err
		}
		if err := p.expectTerminator(); err != nil {
			return nil, err
		}
		return &ast.DecBy{Name: name, Delta: n}, nil

	case p.curIsKeyword("从"):
		return p.parseLoop(name)

	case p.curIsKeyword("（") || p.curIsKeyword("(") || p.curIsKeyword("啷个办："):
		return p.parseFuncDef(name)

	default:
		return nil, errAt(p.cur(), "标识符 %q 之后出现无法识别的语句延续 %s", name, p.cur())
	}
}

func oneLiteral() ast.Expr {
	return &ast.Literal{Tok: token.Int(1)}
}

// parseIntLiteralExpr 要求当前 token 是一个裸的 IntLiteral 并把它包装成
// 表达式，用于 走N步/倒起走N步 里的步数。
func (p *Parser) parseIntLiteralExpr() (ast.Expr, error) {
	if p.cur().Kind != token.KindInt {
		return nil, errAt(p.cur(), "期望整数字面量，实际遇到 %s", p.cur())
	}
	return &ast.Literal{Tok: p.advance()}, nil
}

// parseSay 处理 `摆哈儿： Expr 。`。
func (p *Parser) parseSay() (ast.Stmt, error) {
	p.advance() // 摆哈儿
	if err := p.expectKeyword(token.Colon); err != nil {
		return nil, err
	}
	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectTerminator(); err != nil {
		return nil, err
	}
	return &ast.Say{Value: val}, nil
}

// parseLoop 处理 `Identifier 从 Expr 拢 Expr 打转转儿： <stmts> 转完了 。`。
func (p *Parser) parseLoop(counter string) (ast.Stmt, error) {
	p.advance() // 从
	start, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("拢"); err != nil {
		return nil, err
	}
	end, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("打转转儿："); err != nil {
		return nil, err
	}
	body, err := p.parseStmtsUntil("转完了")
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("转完了"); err != nil {
		return nil, err
	}
	if err := p.expectTerminator(); err != nil {
		return nil, err
	}
	return &ast.Loop{Counter: counter, Start: start, End: end, Body: body}, nil
}

// parseConditional 处理
// `看哈儿： Expr 啵？ 要是呢话 Stmt [不是呢话 Stmt]`。
// else 分支（如果有）总是绑定到当前这一层、也就是最内层未闭合的条件语句上。
func (p *Parser) parseConditional() (ast.Stmt, error) {
	p.advance() // 看哈儿
	if err := p.expectKeyword(token.Colon); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("啵？"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("要是呢话"); err != nil {
		return nil, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	var elseStmt ast.Stmt
	if p.curIsKeyword("不是呢话") {
		p.advance()
		elseStmt, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.Conditional{Cond: cond, Then: then, Else: elseStmt}, nil
}

// parseFuncDef 处理
// `Identifier [（ params ）] 啷个办： <stmts> 刹脚 。`。
func (p *Parser) parseFuncDef(name string) (ast.Stmt, error) {
	var params []string
	if p.curIsKeyword("（") || p.curIsKeyword("(") {
		closer := closingParen(p.advance().Text)
		for !p.curIsKeyword(closer) {
			pname, err := p.expectIdentifier()
			if err != nil {
				return nil, err
			}
			params = append(params, pname)
			if p.curIsComma() {
				p.advance()
				continue
			}
			break
		}
		if err := p.expectKeyword(closer); err != nil {
			return nil, err
		}
	}
	if err := p.expectKeyword("啷个办："); err != nil {
		return nil, err
	}
	body, err := p.parseStmtsUntil("刹脚")
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("刹脚"); err != nil {
		return nil, err
	}
	if err := p.expectTerminator(); err != nil {
		return nil, err
	}
	return &ast.FuncDef{Name: name, Params: params, Body: body}, nil
}

// parseCallStmt 处理 `喊 Identifier [（ args ）] 。`。
func (p *Parser) parseCallStmt() (ast.Stmt, error) {
	call, err := p.parseCallExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectTerminator(); err != nil {
		return nil, err
	}
	return &ast.CallStmt{Call: call}, nil
}

// parseReturn 处理 `爬远点 [Expr] 。`。
func (p *Parser) parseReturn() (ast.Stmt, error) {
	p.advance() // 爬远点
	if p.curIsKeyword(token.Terminator) {
		p.advance()
		return &ast.Return{}, nil
	}
	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectTerminator(); err != nil {
		return nil, err
	}
	return &ast.Return{Value: val}, nil
}

// parseBlock 处理 `开始： <stmts> 刹脚 。`。
func (p *Parser) parseBlock() (ast.Stmt, error) {
	p.advance() // 开始：
	stmts, err := p.parseStmtsUntil("刹脚")
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("刹脚"); err != nil {
		return nil, err
	}
	if err := p.expectTerminator(); err != nil {
		return nil, err
	}
	return &ast.Block{Stmts: stmts}, nil
}

// parseStmtsUntil 一直解析语句，直到当前 token 是给定的收尾关键字为止
// （这个收尾关键字本身不会被消费）。
func (p *Parser) parseStmtsUntil(closingKeyword string) ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.atEnd() && !p.curIsKeyword(closingKeyword) {
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	if p.atEnd() {
		return nil, errAt(p.cur(), "未找到匹配的 %q", closingKeyword)
	}
	return stmts, nil
}

func closingParen(open string) string {
	if open == "（" {
		return "）"
	}
	return ")"
}
