package main

import (
	"context"

	"github.com/mileusna/crontab"
	_ "jajresources.com/image-gateway/docs"
	"jajresources.com/image-gateway/app/domain/healthcheck"
	"jajresources.com/image-gateway/app/interfaces/http"
	"jajresources.com/image-gateway/app/utils/httpclients/cloudinary"
	"jajresources.com/image-gateway/app/utils/logger"
	"jajresources.com/image-gateway/config/environment_variables"
)

type Application struct {
	HttpServer         *http.HttpServer
	HealthcheckService *healthcheck.HealthcheckCrontabService
}

func (application *Application) Start() {
	cron := crontab.New()
	crontabContext := context.Background()
	if err := application.HealthcheckService.Start(crontabContext, cron); err != nil {
		logger.GetLogger().Errorf("healthcheck: failed to schedule job: %v", err)
	}
	if err := application.HttpServer.Run(); err != nil {
		panic(err)
	}
}

func init() {
	environment_variables.Reload()
	cloudinary.Init()
}

// @title       Image Gateway API
// @version     1.0
// @description Cached image metadata and tag management backed by Cloudinary.
// @BasePath    /
func main() {
	application, err := CreateApplication()
	if err != nil {
		panic(err)
	}
	application.Start()
}
