package main

import (
	"fmt"
	"os"

	"github.com/wl-lang/scanner/cmd/wltoken/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
