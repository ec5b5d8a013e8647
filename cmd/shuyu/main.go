// Command shuyu is the 蜀语 interpreter's command-line entry point.
package main

import (
	"fmt"
	"os"

	"github.com/tangzhangming/shuyu/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
