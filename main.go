package main

import (
	"errors"
	"github.com/joho/godotenv"
	"github.com/warmans/puzzleboard/cmd/cmd"
	"io/fs"
	"log/slog"
	"os"
)

func main() {
	logger := slog.Default()
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("failed to load .env", slog.String("err", err.Error()))
	}
	if err := cmd.Execute(logger); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
