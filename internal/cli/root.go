// Package cli is the command-line driver around the shuyu interpreter:
// run a file, evaluate a one-liner, or drop into an interactive REPL.
package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tangzhangming/shuyu/internal/tracelog"
)

var trace bool

// Execute builds and runs the root cobra command, returning whatever error
// the selected subcommand produced.
func Execute() error {
	root := &cobra.Command{
		Use:   "shuyu",
		Short: "蜀语解释器",
		Long:  "shuyu 运行蜀语（四川话语法的小型解释型语言）程序。",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			tracelog.Configure(trace)
		},
	}
	root.PersistentFlags().BoolVarP(&trace, "trace", "v", false, "打印词法/语法/求值阶段的调试日志")

	root.AddCommand(newRunCmd(), newExecCmd(), newReplCmd())
	return root.Execute()
}

var errColor = color.New(color.FgRed, color.Bold)
