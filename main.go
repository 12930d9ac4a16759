package main

import (
	"os"

	"github.com/joaovmb/trilha/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
