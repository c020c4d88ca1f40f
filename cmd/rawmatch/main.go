package main

import (
	"errors"
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errNoMatch) {
			os.Exit(1)
		}
		slog.Error("rawmatch failed", "err", err)
		os.Exit(2)
	}
}
