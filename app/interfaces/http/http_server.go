package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"jajresources.com/image-gateway/app/domain/healthcheck"
	"jajresources.com/image-gateway/app/interfaces/http/middleware"
	"jajresources.com/image-gateway/app/interfaces/http/routes/api"
	"jajresources.com/image-gateway/app/utils/logger"
	"jajresources.com/image-gateway/config/environment_variables"
)

type HttpServer struct {
	engine             *gin.Engine
	apiRoute           *api.APIRoute
	healthcheckService *healthcheck.HealthcheckCrontabService
}

type HealthCheckResponse struct {
	Status     string             `json:"status"`
	AssetStore healthcheck.Status `json:"asset_store"`
}

func NewHttpServer(apiRoute *api.APIRoute, healthcheckService *healthcheck.HealthcheckCrontabService) *HttpServer {
	gin.SetMode(gin.ReleaseMode)
	server := HttpServer{
		engine:             gin.New(),
		apiRoute:           apiRoute,
		healthcheckService: healthcheckService,
	}
	server.engine.MaxMultipartMemory = environment_variables.EnvironmentVariables().MaxUploadBytes()
	server.engine.Use(
		gin.Recovery(),
		middleware.LoggerMiddleware(logger.GetLogger()),
		middleware.CORS(),
		middleware.ErrorHandler(),
	)
	server.engine.GET("/health-check", server.healthCheck)
	if environment_variables.EnvironmentVariables().SwaggerEnabled() {
		server.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	server.apiRoute.RegisterRouter(server.engine.Group("/"))
	return &server
}

func (httpServer *HttpServer) Handler() http.Handler {
	return httpServer.engine
}

func (httpServer *HttpServer) Run() error {
	port := environment_variables.EnvironmentVariables().HTTPPort()
	logger.GetLogger().Infof("http server listening on :%d", port)
	if err := httpServer.engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		return err
	}
	return nil
}

// healthCheck godoc
// @Summary     Health check
// @Tags        system
// @Produce     json
// @Success     200 {object} HealthCheckResponse
// @Router      /health-check [get]
func (httpServer *HttpServer) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthCheckResponse{
		Status:     "ok",
		AssetStore: httpServer.healthcheckService.Status(),
	})
}
