package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/kyaoi/pathtree/internal/app"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdin, os.Stdout); err != nil {
		slog.Error("pathtree failed.", "error", err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer) error {
	return app.Run(in, out)
}
