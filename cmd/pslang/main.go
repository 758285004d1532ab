// Command pslang runs the stack-oriented postfix-language interpreter.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-pslang/cmd/pslang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
