// @title Campus Files API
// @version 0.1
// @description HTTP backend for user file records stored in S3.

// @host localhost:8080
// @BasePath /
// @schemes http

package main

import (
	"log"

	"campusdocs/files_backend/internal/app"
	"campusdocs/files_backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	app.Run(cfg)
}
