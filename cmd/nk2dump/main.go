// nk2dump is a command line application that decodes autocomplete name-cache
// files.
package main

import (
	"NK2Reader/cmd/nk2dump/command"
	"fmt"
	"os"
)

func main() {
	if err := command.NewRootCommand().Execute(); err != nil {
		fmt.Printf("nk2dump error: %s\n", err)
		os.Exit(-1)
	}
}
