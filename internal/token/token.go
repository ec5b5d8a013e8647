// token 包定义了蜀语的词法单元表：封闭的保留关键字集合，以及词法分析器
// 产出的带标签 Token 值。
package token

import "fmt"

// Kind 标识一个 Token 携带的是五种变体中的哪一种。
type Kind int

const (
	// KindKeyword 是来自封闭关键字集合（Keywords）的保留字或标点符号。
	KindKeyword Kind = iota
	// KindChar 是一个尚未折叠成标识符的单字符。只有词法分析前几遍会产出
	// 这种 token，不会有任何 KindChar 活着到达解析器。
	KindChar
	// KindIdentifier 是用户自己取的名字。
	KindIdentifier
	// KindInt 是一个非负整数字面量。
	KindInt
	// KindString 是一段（可能为空的）引号内字符串内容。
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindKeyword:
		return "Keyword"
	case KindChar:
		return "Char"
	case KindIdentifier:
		return "Identifier"
	case KindInt:
		return "IntLiteral"
	case KindString:
		return "StringLiteral"
	default:
		return "Unknown"
	}
}

// Token 是一个带标签的值对：Text 携带 Keyword/Char/Identifier/StringLiteral
// 的原文，Int 携带 IntLiteral 解码后的数值。
type Token struct {
	Kind Kind
	Text string
	Int  int64

	// Line 和 Column 是从 1 开始计数的源码位置，仅用于诊断信息。它们是
	// 尽力而为的估计（只跟踪词法分析器的读取位置，不是一个精确的区间），
	// 不要求绝对准确。
	Line   int
	Column int
}

// Keyword 构造一个 KindKeyword token。
func Keyword(text string) Token { return Token{Kind: KindKeyword, Text: text} }

// Char 构造一个 KindChar token，代表一个还没折叠的单字符。
func Char(text string) Token { return Token{Kind: KindChar, Text: text} }

// Identifier 构造一个 KindIdentifier token。
func Identifier(text string) Token { return Token{Kind: KindIdentifier, Text: text} }

// Int 构造一个 KindInt token。
func Int(v int64) Token { return Token{Kind: KindInt, Int: v} }

// String 构造一个 KindString token。
func String(text string) Token { return Token{Kind: KindString, Text: text} }

// String 用于调试日志和诊断信息的字符串表示。
func (t Token) String() string {
	switch t.Kind {
	case KindInt:
		return fmt.Sprintf("IntLiteral(%d)", t.Int)
	case KindString:
		return fmt.Sprintf("StringLiteral(%q)", t.Text)
	default:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
	}
}

// IsKeyword 判断 t 是否恰好是携带 text 这段文本的 Keyword token。
func (t Token) IsKeyword(text string) bool {
	return t.Kind == KindKeyword && t.Text == text
}

// 句子和语句块相关的标点符号。
const (
	Terminator  = "。" // 语句终止符；"!"/"！" 会被归一化成这个
	Colon       = "："
	Comma1      = "，"
	Comma2      = ","
	Concat      = "、"
	Question    = "？"
	WideLParen  = "（"
	WideRParen  = "）"
	NarrowLParen = "("
	NarrowRParen = ")"
	QuoteOpen   = "“"
	QuoteClose  = "”"
	BracketOpen = "【"
	BracketClose = "】"
)

// Keywords 是封闭的保留字和标点符号集合。在词法分析器当前位置上，匹配规则
// 是"最长匹配优先"，所以这张表要按长度从长到短来查（见 lexer.keywordsByLength）。
//
// 打转转儿：、啷个办： 和 开始： 把末尾的冒号也算进了关键字文本里，而
// 摆哈儿 和 看哈儿 没有——它们后面的冒号单独切成 Colon。
var Keywords = []string{
	"打转转儿：",
	"啷个办：",
	"开始：",
	"啵？",
	"倒起走哈儿",
	"一模一样呢",
	"要是呢话",
	"不是呢话",
	"倒起走",
	"转完了",
	"摆哈儿",
	"凶得很",
	"走哈儿",
	"不一样",
	"刹脚",
	"巴倒",
	"跟倒",
	"爬远点",
	"除以",
	"看哈儿",
	"比",
	"加", "减", "乘",
	"大", "小",
	"从", "拢",
	"走", "步",
	"喊",
	"。", "：", "，", "、", "？",
	"（", "）", "(", ")",
	"“", "”",
	"！", "!",
}

// ChineseDigits 把十个中文数字字符映射到它们各自的数值。
var ChineseDigits = map[rune]int64{
	'零': 0, '一': 1, '二': 2, '三': 3, '四': 4,
	'五': 5, '六': 6, '七': 7, '八': 8, '九': 9,
}

// ChineseTen 是表示"十"这个进位的字符。
const ChineseTen = '十'
