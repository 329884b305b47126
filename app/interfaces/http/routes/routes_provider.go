package routes

import (
	"github.com/google/wire"
	"jajresources.com/image-gateway/app/interfaces/http/routes/api"
	"jajresources.com/image-gateway/app/interfaces/http/routes/api/images"
)

var RouteProvider = wire.NewSet(
	images.NewImagesRoute,
	api.NewAPIRoute,
)
