package main

import (
	"seeds-backend/internal/api"

	_ "seeds-backend/docs"

	log "github.com/sirupsen/logrus"
)

// @title Seeds License API
// @version 1.0
// @description Users, clients, licenses with seed images and payment status.
// @BasePath /
func main() {
	log.Info("App start")
	api.StartServer()
	log.Info("App terminated")
}
