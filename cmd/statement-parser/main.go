package main

import (
	"os"

	"github.com/quillbooks/statement-parser/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
