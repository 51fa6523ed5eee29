package main

import (
	"aperture/config"
	"aperture/di"
	"aperture/shared/logger"
)

// @title Aperture API
// @version 1.0
// @description Photography portfolio backend.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
