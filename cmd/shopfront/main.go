package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/angelmondragon/shopfront/pkg/logger"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "shopfront", Output: os.Stderr})

	if err := godotenv.Load(); err != nil {
		logg.Debug(context.Background(), ".env file not found, relying on environment")
	}

	app := newApp(os.Stdout)
	if err := app.Run(os.Args); err != nil {
		logg.Error(context.Background(), "shopfront command failed", err)
		os.Exit(1)
	}
}
