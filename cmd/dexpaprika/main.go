package main

import (
	"os"

	"github.com/donbagger/plugin-dexpaprika/internal/app"
)

func main() {
	runner := app.NewRunner()
	os.Exit(runner.Run(os.Args[1:]))
}
