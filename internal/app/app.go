package app

import (
	"log"

	"campusdocs/files_backend/internal/config"
	"campusdocs/files_backend/internal/handler"
	"campusdocs/files_backend/internal/model"
	"campusdocs/files_backend/internal/repository"
	"campusdocs/files_backend/internal/service"
)

func Run(cfg *config.Config) {
	db, err := repository.NewDB(cfg.DSN())
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(&model.Category{}, &model.File{}); err != nil {
		log.Fatal(err)
	}

	s3Service, err := service.NewS3Service(cfg)
	if err != nil {
		log.Fatal(err)
	}

	fileRepo := repository.NewFileRepository(db)
	fileService := service.NewFileService(fileRepo, s3Service)
	fileHandler := handler.NewFileHandler(fileService)

	server := NewServer(fileHandler, cfg.CORSAllowedOrigin)
	server.Run(cfg.ServerPort)
}
