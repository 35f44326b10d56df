// Command ctcdecode is the reference driver for the decoder package:
// it loads a graph and an oracle, runs a decode session to completion,
// and prints or records the best path.
package main

import (
	"os"

	"github.com/ieee0824/ctcfasterdecoder/cmd/ctcdecode/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
