package main

import (
	"log"

	"github.com/pinforge/pinforge/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ pinforge failed to start: %v", err)
	}
}
