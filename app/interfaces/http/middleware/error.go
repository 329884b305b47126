package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"jajresources.com/image-gateway/app/domain/common"
	"jajresources.com/image-gateway/app/interfaces/http/responses"
	"jajresources.com/image-gateway/app/utils/logger"
)

// ErrorHandler renders the last error a handler attached with c.Error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		status := http.StatusInternalServerError
		body := responses.ErrorResponse{
			Success: false,
			Message: "Internal server error",
			Code:    responses.ErrorCodeInternal,
		}
		var domainErr *common.Error
		if errors.As(err, &domainErr) {
			body.Message = domainErr.Message
			body.Code = domainErr.Code
		}
		if common.IsInvalidInput(err) {
			status = http.StatusBadRequest
		} else {
			logger.GetLogger().Errorf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		}

		c.JSON(status, body)
	}
}
