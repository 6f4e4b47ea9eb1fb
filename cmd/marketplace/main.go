package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"marketplace/cmd/internal/app"
)

func main() {
	// A missing .env is fine; env vars may come from the environment itself.
	_ = godotenv.Load()

	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "marketplace:", err)
		os.Exit(1)
	}
}
