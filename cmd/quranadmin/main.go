package main

import (
	"os"

	"github.com/rashidq/quranadmin/pkg/logging"
	"github.com/rashidq/quranadmin/ui"
)

func main() {
	// Default to "info"; override with QURANADMIN_LOG_LEVEL env var (debug, info, warn, error).
	level := "info"
	if v := os.Getenv("QURANADMIN_LOG_LEVEL"); v != "" {
		level = v
	}
	format := "text"
	if v := os.Getenv("QURANADMIN_LOG_FORMAT"); v != "" {
		format = v
	}
	_ = logging.Setup(logging.Options{
		Level:  level,
		Format: format,
		Output: os.Stderr,
	})

	app := ui.NewApp()
	app.Run()
}
