package main

import (
	"os"

	"github.com/ledgerkit/ing2qif/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
