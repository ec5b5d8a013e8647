package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tangzhangming/shuyu"
)

func newExecCmd() *cobra.Command {
	var src string
	cmd := &cobra.Command{
		Use:   "exec",
		Short: "直接运行一段蜀语程序文本",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := shuyu.Run(src)
			fmt.Print(out)
			if err != nil {
				errColor.Fprintf(os.Stderr, "%s\n", err)
				os.Exit(1)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&src, "code", "c", "", "要执行的蜀语源码")
	cmd.MarkFlagRequired("code")
	return cmd
}
