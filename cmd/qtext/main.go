package main

import (
	"fmt"
	"os"

	"github.com/kobzarvs/qtext/internal/app"
	"github.com/kobzarvs/qtext/internal/logger"
)

func main() {
	if err := logger.Init(os.Getenv("QTEXT_DEBUG") != ""); err != nil {
		fmt.Fprintln(os.Stderr, "qtext: logging disabled:", err)
	}

	args := os.Args[1:]
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	err := app.New(args).Run()
	logger.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "qtext:", err)
		os.Exit(1)
	}
}
