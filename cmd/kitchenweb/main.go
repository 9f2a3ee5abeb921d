package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/CristianSsousa/new-kitchen-web/internal/app"
	"github.com/CristianSsousa/new-kitchen-web/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
