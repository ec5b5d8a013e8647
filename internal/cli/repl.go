package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tangzhangming/shuyu/internal/interpreter"
	"github.com/tangzhangming/shuyu/internal/lexer"
	"github.com/tangzhangming/shuyu/internal/parser"
)

var (
	replEchoColor = color.New(color.FgGreen)
	openers       = []string{"啷个办：", "开始：", "打转转儿："}
	closers       = []string{"刹脚", "转完了"}
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "进入交互式蜀语解释器",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl()
		},
	}
}

// replSession pairs a persistent interpreter with the byte offset into its
// output buffer already printed, so each evaluated chunk only emits the
// output it newly produced.
type replSession struct {
	interp  *interpreter.Interpreter
	printed int
}

func runRepl() error {
	rl, err := readline.New("蜀语> ")
	if err != nil {
		return fmt.Errorf("初始化交互式输入失败: %w", err)
	}
	defer rl.Close()

	session := &replSession{interp: interpreter.New()}
	var pending strings.Builder
	depth := 0

	for {
		prompt := "蜀语> "
		if depth > 0 {
			prompt = "....> "
		}
		rl.SetPrompt(prompt)

		line, err := rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			return nil
		}
		if err != nil {
			return err
		}

		pending.WriteString(line)
		pending.WriteByte('\n')
		depth += balanceDelta(line)
		if depth > 0 {
			continue
		}
		if strings.TrimSpace(pending.String()) == "" {
			pending.Reset()
			continue
		}

		session.evalAndPrint(pending.String())
		pending.Reset()
		depth = 0
	}
}

func (s *replSession) evalAndPrint(chunk string) {
	tokens := lexer.Lex(chunk)
	stmts, err := parser.Parse(tokens)
	if err != nil {
		errColor.Fprintf(os.Stderr, "%s\n", err)
		return
	}

	out, err := s.interp.Run(stmts)
	if len(out) > s.printed {
		replEchoColor.Print(out[s.printed:])
		s.printed = len(out)
	}
	if err != nil {
		errColor.Fprintf(os.Stderr, "%s\n", err)
	}
}

// balanceDelta counts how many statement blocks line opens minus how many
// it closes, so the REPL knows when a multi-line 啷个办：/开始：/打转转儿：
// form is complete.
func balanceDelta(line string) int {
	delta := 0
	for _, kw := range openers {
		delta += strings.Count(line, kw)
	}
	for _, kw := range closers {
		delta -= strings.Count(line, kw)
	}
	return delta
}
