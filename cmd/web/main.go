package main

import (
	"resumebuilder_backend/internal/app"
	"resumebuilder_backend/internal/logger"
)

// @title Resume Builder API
// @version 1.0
// @description Backend for the resume builder service: auth, resumes,
// @description templates, payments and email sharing.
// @BasePath /
func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("server exited", "error", err)
	}
}
