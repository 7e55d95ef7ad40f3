package main

import (
	"os"
	_ "time/tzdata"

	"github.com/msto63/timeconv/cmd/timeconv/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
