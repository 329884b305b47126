package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"jajresources.com/image-gateway/app/interfaces/http/routes/api/images"
	"jajresources.com/image-gateway/config"
)

type APIRoute struct {
	imagesRoute *images.ImagesRoute
}

func NewAPIRoute(imagesRoute *images.ImagesRoute) *APIRoute {
	return &APIRoute{
		imagesRoute,
	}
}

func (apiRoute *APIRoute) RegisterRouter(router gin.IRouter) {
	apiRouter := router.Group("/api")
	apiRouter.GET("/version", GetVersion)
	apiRoute.imagesRoute.RegisterRouter(apiRouter)
}

// GetVersion godoc
// @Summary     Get API build version
// @Description Returns the current build version of the API server.
// @Tags        system
// @Produce     json
// @Success     200 {object} map[string]string "version info"
// @Router      /api/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": config.Version,
	})
}
