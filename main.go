package main

import (
	"os"

	"workout_tui/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
