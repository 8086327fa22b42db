package main

import (
	"NK2Reader/bootstrap"
	"flag"
	"fmt"
	"os"
)

func main() {
	flag.Parse()
	fmt.Println("Starting nk2 decode server...")

	if _, err := bootstrap.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Server error:", err)
		os.Exit(1)
	}
}
