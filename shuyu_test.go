package shuyu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunConcreteScenarios(t *testing.T) {
	cases := []struct {
		name    string
		program string
		want    string
	}{
		{
			name:    "string literal say",
			program: "摆哈儿：“这踏踏儿巴适得板！”。",
			want:    "这踏踏儿巴适得板！\n",
		},
		{
			name:    "var decl assign say",
			program: "王麻子凶得很。\n王麻子巴倒250。\n摆哈儿：王麻子。",
			want:    "250\n",
		},
		{
			name:    "multiplication binds tighter than addition",
			program: "摆哈儿：五加七乘二。",
			want:    "19\n",
		},
		{
			name:    "parens override precedence",
			program: "摆哈儿：（五加七）乘二。",
			want:    "24\n",
		},
		{
			name:    "comparisons and concat",
			program: "摆哈儿：五比二大、五比二小、一跟倒2一模一样呢、1跟倒二不一样。",
			want:    "对错错对\n",
		},
		{
			name:    "inclusive counting loop",
			program: "王麻子从1拢3打转转儿：摆哈儿：王麻子。转完了。",
			want:    "1\n2\n3\n",
		},
		{
			name: "recursive factorial",
			program: "【阶乘】（好多）啷个办：看哈儿：好多比一小啵？要是呢话爬远点一。" +
				"爬远点好多乘喊【阶乘】（好多减一）。刹脚。摆哈儿：喊【阶乘】（五）。",
			want: "120\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Run(tc.program)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestRunExclamationAndTerminatorAreInterchangeable(t *testing.T) {
	withBang, err := Run("摆哈儿：五加七乘二！")
	require.NoError(t, err)
	withDot, err := Run("摆哈儿：五加七乘二。")
	require.NoError(t, err)
	assert.Equal(t, withDot, withBang)
}

func TestRunWhitespaceAndCommentsAreIgnoredOutsideStrings(t *testing.T) {
	plain, err := Run("摆哈儿：五加七乘二。")
	require.NoError(t, err)
	spaced, err := Run("  摆哈儿 ： 五 加 七 乘 二 。  # 注释\n")
	require.NoError(t, err)
	assert.Equal(t, plain, spaced)
}

func TestRunReturnsPartialOutputAlongsideError(t *testing.T) {
	out, err := Run("摆哈儿：“先打印这个”。摆哈儿：不存在。")
	require.Error(t, err)
	assert.Equal(t, "先打印这个\n", out)
}
