package main

import (
	"context"
	"log"

	"github.com/forn8njoell-cmd/promptstudio/internal/app"
)

func main() {
	a, err := app.New(context.Background())
	if err != nil {
		log.Fatalf("❌ promptstudio failed to start: %v", err)
	}
	if err := a.Run(); err != nil {
		log.Fatalf("❌ promptstudio exited: %v", err)
	}
}
