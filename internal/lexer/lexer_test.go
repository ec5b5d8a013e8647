package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tangzhangming/shuyu/internal/token"
)

func TestLexBangOutsideStringBecomesTerminator(t *testing.T) {
	tokens := Lex("摆哈儿：五！")
	assert.Equal(t, token.Terminator, tokens[len(tokens)-1].Text)

	tokens = Lex("摆哈儿：五!")
	assert.Equal(t, token.Terminator, tokens[len(tokens)-1].Text)
}

func TestLexBangInsideStringLiteralIsPreserved(t *testing.T) {
	tokens := Lex("摆哈儿：“这踏踏儿巴适得板！”。")
	var lit token.Token
	for _, tok := range tokens {
		if tok.Kind == token.KindString {
			lit = tok
		}
	}
	assert.Equal(t, "这踏踏儿巴适得板！", lit.Text)
}

func TestLexKeywordsAndIdentifier(t *testing.T) {
	tokens := Lex("王麻子凶得很。")
	want := []token.Token{
		{Kind: token.KindIdentifier, Text: "王麻子"},
		{Kind: token.KindKeyword, Text: "凶得很"},
		{Kind: token.KindKeyword, Text: "。"},
	}
	requireNoChars(t, tokens)
	for i, w := range want {
		assert.Equal(t, w.Kind, tokens[i].Kind, "token %d kind", i)
		assert.Equal(t, w.Text, tokens[i].Text, "token %d text", i)
	}
}

func TestLexBracketedIdentifierStripsInteriorWhitespace(t *testing.T) {
	tokens := Lex("【阶 乘】凶得很。")
	assert.Equal(t, token.KindIdentifier, tokens[0].Kind)
	assert.Equal(t, "阶乘", tokens[0].Text)
}

func TestLexStringLiteralPreservesWhitespace(t *testing.T) {
	tokens := Lex("摆哈儿：“这 踏踏儿”。")
	var lit token.Token
	for _, tok := range tokens {
		if tok.Kind == token.KindString {
			lit = tok
		}
	}
	assert.Equal(t, "这 踏踏儿", lit.Text)
}

func TestLexAsciiIntegerRun(t *testing.T) {
	tokens := Lex("摆哈儿：250。")
	found := false
	for _, tok := range tokens {
		if tok.Kind == token.KindInt {
			assert.Equal(t, int64(250), tok.Int)
			found = true
		}
	}
	assert.True(t, found, "expected an IntLiteral token")
}

func TestParseChineseDigits(t *testing.T) {
	cases := map[string]int64{
		"五":  5,
		"十":  10,
		"二十": 20,
		"十七": 17,
		"三十五": 35,
	}
	for text, want := range cases {
		got := parseChineseDigits([]rune(text))
		assert.Equal(t, want, got, "parseChineseDigits(%q)", text)
	}
}

func TestLexLongestMatchKeyword(t *testing.T) {
	// "打转转儿：" must be matched whole, not as "打" "转" "转" "儿" "：".
	tokens := Lex("王麻子从1拢3打转转儿：摆哈儿：王麻子。转完了。")
	found := false
	for _, tok := range tokens {
		if tok.IsKeyword("打转转儿：") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestLexEndsWithNoCharTokens(t *testing.T) {
	tokens := Lex("摆哈儿：“这踏踏儿巴适得板！”。")
	requireNoChars(t, tokens)
}

func requireNoChars(t *testing.T, tokens []token.Token) {
	t.Helper()
	for i, tok := range tokens {
		assert.NotEqual(t, token.KindChar, tok.Kind, "token %d should not be Char: %s", i, tok)
	}
}
