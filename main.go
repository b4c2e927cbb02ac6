package main

import (
	"os"

	"github.com/quickchat/quickchat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
