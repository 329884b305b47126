//go:build wireinject

package main

import (
	"github.com/google/wire"
	"jajresources.com/image-gateway/app/domain"
	"jajresources.com/image-gateway/app/infrastructure"
	"jajresources.com/image-gateway/app/interfaces/http"
	"jajresources.com/image-gateway/app/interfaces/http/routes"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		infrastructure.InfrastructureProvider,
		domain.ServiceProvider,
		routes.RouteProvider,
		http.NewHttpServer,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
