package domain

import (
	"github.com/google/wire"
	"jajresources.com/image-gateway/app/domain/healthcheck"
	"jajresources.com/image-gateway/app/domain/image"
)

var ServiceProvider = wire.NewSet(
	image.NewService,
	healthcheck.NewService,
)
