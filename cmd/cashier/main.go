package main

import (
	"os"

	"github.com/SscSPs/cashier_app/cmd/cashier/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
