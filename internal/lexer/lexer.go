// lexer 包负责把蜀语源代码字符串转换成 token 流。
//
// 整个过程分三个有序的遍历：BasicTokenize（第一遍）产出
// Keyword/Char/StringLiteral/Identifier（方括号标识符）token；ParseInteger
// （第二遍）把连续的数字 Char 折叠成 IntLiteral；ParseChars（第三遍）把剩下
// 的 Char 折叠成 Identifier。Lex 把三遍依次串起来，是解析器唯一调用的入口。
//
// "!"/"！" 归一化为语句终止符"。"的规则在 BasicTokenize 内部完成（见
// normalizeBang），而不是对原始文本做整体替换——字符串字面量“……”内部的
// 感叹号是 scanStringLiteral 逐字符读出来的，根本不会走到关键字匹配这一
// 步，自然就原样保留了。
package lexer

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/tangzhangming/shuyu/internal/token"
)

// scanner 记录 BasicTokenize 在 rune 流上的读取位置。
type scanner struct {
	runes  []rune
	pos    int
	line   int
	column int
}

func newScanner(text string) *scanner {
	return &scanner{runes: []rune(text), line: 1, column: 1}
}

func (s *scanner) eof() bool { return s.pos >= len(s.runes) }

func (s *scanner) peekAt(offset int) (rune, bool) {
	i := s.pos + offset
	if i < 0 || i >= len(s.runes) {
		return 0, false
	}
	return s.runes[i], true
}

func (s *scanner) advance() rune {
	r := s.runes[s.pos]
	s.pos++
	if r == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return r
}

// skipWhitespaceAndComments 跳过 ASCII 空白字符和"#"到行尾的注释。
func (s *scanner) skipWhitespaceAndComments() {
	for !s.eof() {
		r := s.runes[s.pos]
		switch {
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			s.advance()
		case r == '#':
			for !s.eof() && s.runes[s.pos] != '\n' {
				s.advance()
			}
		default:
			return
		}
	}
}

// BasicTokenize 是词法分析的第一遍：把源文本切成
// Keyword/Char/StringLiteral/Identifier token（方括号标识符在这一遍就已经
// 折叠好了；其余字符先留成单字符的 Char token，交给后面两遍去折叠）。
//
// "!"/"！"在这里被直接归一化成语句终止符关键字"。"——字符串字面量内部的
// 感叹号由 quoteOpenRune 分支里的 scanStringLiteral 整体读走，不会落到这条
// 归一化规则上。
func BasicTokenize(text string) []token.Token {
	s := newScanner(text)
	var out []token.Token

	for {
		s.skipWhitespaceAndComments()
		if s.eof() {
			break
		}
		line, col := s.line, s.column

		switch {
		case s.runes[s.pos] == bracketOpenRune:
			out = append(out, withPos(scanBracketedIdentifier(s), line, col))
		case s.runes[s.pos] == quoteOpenRune:
			out = append(out, withPos(token.Keyword(token.QuoteOpen), line, col))
			s.advance()
			litLine, litCol := s.line, s.column
			out = append(out, withPos(scanStringLiteral(s), litLine, litCol))
			out = append(out, withPos(token.Keyword(token.QuoteClose), s.line, s.column))
		case matchKeyword(s) != "":
			kw := matchKeyword(s)
			for range []rune(kw) {
				s.advance()
			}
			out = append(out, withPos(token.Keyword(normalizeBang(kw)), line, col))
		default:
			r := s.advance()
			out = append(out, withPos(token.Char(string(r)), line, col))
		}
	}

	logrus.WithField("tokens", len(out)).Debug("lexer: pass A (BasicTokenize) complete")
	return out
}

// normalizeBang 把"!"和"！"折成规范的语句终止符"。"；其余关键字原样返回。
func normalizeBang(kw string) string {
	if kw == "!" || kw == "！" {
		return token.Terminator
	}
	return kw
}

const (
	bracketOpenRune  = '【'
	bracketCloseRune = '】'
	quoteOpenRune    = '“'
	quoteCloseRune   = '”'
)

func withPos(t token.Token, line, col int) token.Token {
	t.Line, t.Column = line, col
	return t
}

// scanBracketedIdentifier 消费【……】之间的内容，返回一个 Identifier
// token，其文本是括号内所有非空白字符拼接起来的结果。
func scanBracketedIdentifier(s *scanner) token.Token {
	s.advance() // 消费【
	var b strings.Builder
	for !s.eof() && s.runes[s.pos] != bracketCloseRune {
		r := s.advance()
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			continue
		}
		b.WriteRune(r)
	}
	if !s.eof() {
		s.advance() // 消费】
	}
	return token.Identifier(b.String())
}

// scanStringLiteral 原样读出直到（但不包含）配对的右引号”为止的全部文本，
// 空白字符一个不丢。调用方负责生成右引号对应的 Keyword token并把游标移过去。
func scanStringLiteral(s *scanner) token.Token {
	var b strings.Builder
	for !s.eof() && s.runes[s.pos] != quoteCloseRune {
		b.WriteRune(s.advance())
	}
	lit := token.String(b.String())
	if !s.eof() {
		s.advance() // 消费”
	}
	return lit
}

// keywordsByLength 是按长度从长到短排好序的 token.Keywords，这样
// matchKeyword 的线性扫描天然就是"最长匹配优先"。
var keywordsByLength = sortedKeywords()

func sortedKeywords() []string {
	kws := append([]string(nil), token.Keywords...)
	for i := 1; i < len(kws); i++ {
		for j := i; j > 0 && len([]rune(kws[j])) > len([]rune(kws[j-1])); j-- {
			kws[j], kws[j-1] = kws[j-1], kws[j]
		}
	}
	return kws
}

// matchKeyword 返回在 s 当前位置能匹配上的最长保留关键字，匹配不到则返回
// ""。【和“这两个定界符由 BasicTokenize 自己的分支处理，不在这里参与匹配。
func matchKeyword(s *scanner) string {
	for _, kw := range keywordsByLength {
		if kw == token.BracketOpen || kw == token.BracketClose ||
			kw == token.QuoteOpen || kw == token.QuoteClose {
			continue
		}
		kwRunes := []rune(kw)
		ok := true
		for i, want := range kwRunes {
			got, present := s.peekAt(i)
			if !present || got != want {
				ok = false
				break
			}
		}
		if ok {
			return kw
		}
	}
	return ""
}

// ParseInteger 是词法分析的第二遍：把连续的、值为数字的 Char token 折叠成
// 一个 IntLiteral token。
func ParseInteger(tokens []token.Token) []token.Token {
	var out []token.Token
	i := 0
	for i < len(tokens) {
		t := tokens[i]
		if t.Kind != token.KindChar {
			out = append(out, t)
			i++
			continue
		}
		r := []rune(t.Text)[0]
		switch digitClassOf(r) {
		case classASCII:
			j := i
			var b strings.Builder
			for j < len(tokens) && tokens[j].Kind == token.KindChar &&
				digitClassOf([]rune(tokens[j].Text)[0]) == classASCII {
				b.WriteString(tokens[j].Text)
				j++
			}
			v, _ := strconv.ParseInt(b.String(), 10, 64)
			out = append(out, withPos(token.Int(v), t.Line, t.Column))
			i = j
		case classChinese:
			j := i
			var runes []rune
			for j < len(tokens) && tokens[j].Kind == token.KindChar &&
				digitClassOf([]rune(tokens[j].Text)[0]) == classChinese {
				runes = append(runes, []rune(tokens[j].Text)[0])
				j++
			}
			out = append(out, withPos(token.Int(parseChineseDigits(runes)), t.Line, t.Column))
			i = j
		default:
			out = append(out, t)
			i++
		}
	}
	logrus.WithField("tokens", len(out)).Debug("lexer: pass B (ParseInteger) complete")
	return out
}

type digitClass int

const (
	classNone digitClass = iota
	classASCII
	classChinese
)

func digitClassOf(r rune) digitClass {
	if r >= '0' && r <= '9' {
		return classASCII
	}
	if _, ok := token.ChineseDigits[r]; ok {
		return classChinese
	}
	if r == token.ChineseTen {
		return classChinese
	}
	return classNone
}

// parseChineseDigits 实现中文数字连续串的进位约定：单个数字就是它本身的值；
// 单独的十是 10；X十 是 X·10；十Y 是 10+Y；X十Y 是 X·10+Y。更长的形式
// （百、千）不支持。
func parseChineseDigits(runes []rune) int64 {
	if len(runes) == 1 {
		if runes[0] == token.ChineseTen {
			return 10
		}
		return token.ChineseDigits[runes[0]]
	}
	tenIdx := -1
	for i, r := range runes {
		if r == token.ChineseTen {
			tenIdx = i
			break
		}
	}
	if tenIdx == -1 {
		// 这串数字里没有十，是不支持的更长形式：按 ASCII 数字串一样，
		// 逐位按十进制读。
		var v int64
		for _, r := range runes {
			v = v*10 + token.ChineseDigits[r]
		}
		return v
	}
	var tens int64 = 1
	if tenIdx > 0 {
		tens = token.ChineseDigits[runes[tenIdx-1]]
	}
	var ones int64
	if tenIdx+1 < len(runes) {
		ones = token.ChineseDigits[runes[tenIdx+1]]
	}
	return tens*10 + ones
}

// ParseChars 是词法分析的第三遍：把剩下的、连续的 Char token 折叠成一个
// Identifier token。
func ParseChars(tokens []token.Token) []token.Token {
	var out []token.Token
	i := 0
	for i < len(tokens) {
		t := tokens[i]
		if t.Kind != token.KindChar {
			out = append(out, t)
			i++
			continue
		}
		j := i
		var b strings.Builder
		for j < len(tokens) && tokens[j].Kind == token.KindChar {
			b.WriteString(tokens[j].Text)
			j++
		}
		out = append(out, withPos(token.Identifier(b.String()), t.Line, t.Column))
		i = j
	}
	logrus.WithField("tokens", len(out)).Debug("lexer: pass C (ParseChars) complete")
	return out
}

// Lex 依次跑完三遍词法分析，产出解析器要消费的最终 token 流。Lex 跑完之后
// 不会再剩下任何 Char token。
func Lex(text string) []token.Token {
	tokens := BasicTokenize(text)
	tokens = ParseInteger(tokens)
	tokens = ParseChars(tokens)
	return tokens
}
