package infrastructure

import (
	"github.com/google/wire"
	"jajresources.com/image-gateway/app/domain/healthcheck"
	"jajresources.com/image-gateway/app/domain/image"
	"jajresources.com/image-gateway/app/infrastructure/assetstore"
	"jajresources.com/image-gateway/app/infrastructure/cache"
	"jajresources.com/image-gateway/app/utils/httpclients/cloudinary"
)

var InfrastructureProvider = wire.NewSet(
	cloudinary.NewClient,
	assetstore.NewCloudinaryImageStore,
	wire.Bind(new(image.ImageStore), new(*assetstore.CloudinaryImageStore)),
	wire.Bind(new(healthcheck.Pinger), new(*assetstore.CloudinaryImageStore)),
	cache.NewSnapshotStore,
)
