package httpclients

import (
	"time"

	"jajresources.com/image-gateway/app/utils/logger"
	"resty.dev/v3"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultRetryCount = 2
)

// NewClient builds a resty client shared by every outbound integration.
// Retries only apply to idempotent methods; uploads and deletes are never replayed.
func NewClient(name string) *resty.Client {
	return resty.New().
		SetLogger(logger.GetLogger()).
		SetTimeout(defaultTimeout).
		SetRetryCount(defaultRetryCount).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(3*time.Second).
		SetAllowNonIdempotentRetry(false).
		SetHeader("User-Agent", "image-gateway/"+name)
}
