// parser 包实现蜀语的递归下降、运算符优先级解析器：把 token 流变成 AST。
package parser

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/tangzhangming/shuyu/internal/ast"
	"github.com/tangzhangming/shuyu/internal/token"
)

// Error 报告程序里的一处语法错误：意外的 token、缺失的终止符，或者格式
// 不对的表达式。解析器是单遍的，不做错误恢复。
type Error struct {
	Message string
	Tok     token.Token
}

func (e *Error) Error() string {
	return fmt.Sprintf("语法错误: %s（在 %s，行 %d 列 %d）", e.Message, e.Tok, e.Tok.Line, e.Tok.Column)
}

func errAt(tok token.Token, format string, args ...interface{}) error {
	return &Error{Message: fmt.Sprintf(format, args...), Tok: tok}
}

// Parser 在一个扁平的 token 切片上游走，只有一个向前看的位置，没有回溯。
type Parser struct {
	tokens []token.Token
	pos    int
}

// New 基于 tokens（通常是 lexer.Lex 的输出）创建一个 Parser。
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse 一直读语句，直到 token 流耗尽，返回按顺序排列的语句列表作为整个
// 程序。
func Parse(tokens []token.Token) ([]ast.Stmt, error) {
	p := New(tokens)
	var stmts []ast.Stmt
	for !p.atEnd() {
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	logrus.WithField("statements", len(stmts)).Debug("parser: program parsed")
	return stmts, nil
}

func (p *Parser) atEnd() bool { return p.pos >= len(p.tokens) }

func (p *Parser) cur() token.Token {
	if p.atEnd() {
		return token.Token{Kind: token.KindKeyword, Text: "<EOF>"}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peek(offset int) token.Token {
	i := p.pos + offset
	if i < 0 || i >= len(p.tokens) {
		return token.Token{Kind: token.KindKeyword, Text: "<EOF>"}
	}
	return p.tokens[i]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if !p.atEnd() {
		p.pos++
	}
	return t
}

// curIsKeyword 判断当前 token 是不是携带 text 的关键字。
func (p *Parser) curIsKeyword(text string) bool {
	return p.cur().IsKeyword(text)
}

// expectKeyword 如果当前 token 是 Keyword(text) 就消费掉它，否则返回一个
// 语法错误。
func (p *Parser) expectKeyword(text string) error {
	if !p.curIsKeyword(text) {
		return errAt(p.cur(), "期望关键字 %q，实际遇到 %s", text, p.cur())
	}
	p.advance()
	return nil
}

// expectIdentifier 如果当前 token 是标识符就消费并返回它的文本，否则返回
// 一个语法错误。
func (p *Parser) expectIdentifier() (string, error) {
	if p.cur().Kind != token.KindIdentifier {
		return "", errAt(p.cur(), "期望标识符，实际遇到 %s", p.cur())
	}
	return p.advance().Text, nil
}

// expectTerminator 消费语句终止符。（"!"/"！" 在词法分析阶段已经被归一化
// 成。了）。
func (p *Parser) expectTerminator() error {
	return p.expectKeyword(token.Terminator)
}

// curIsComma 判断当前 token 是不是两种逗号写法中的一种。
func (p *Parser) curIsComma() bool {
	return p.curIsKeyword(token.Comma1) || p.curIsKeyword(token.Comma2)
}
