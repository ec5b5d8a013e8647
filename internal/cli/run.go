package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tangzhangming/shuyu"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <文件路径>",
		Short: "运行蜀语源文件",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("读取文件失败: %w", err)
			}
			out, err := shuyu.Run(string(src))
			fmt.Print(out)
			if err != nil {
				errColor.Fprintf(os.Stderr, "%s\n", err)
				os.Exit(1)
			}
			return nil
		},
	}
}
