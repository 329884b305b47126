package environment_variables

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

const (
	DefaultPort            = 8080
	DefaultImageCacheTTL   = time.Hour
	DefaultMaxUploadSizeMB = 10
)

type EnvironmentVariable struct {
	PORT                    string   `optional:"true"`
	LOG_LEVEL               string   `optional:"true"`
	ALLOWED_CORS_HOSTS      []string `optional:"true"`
	FRONTEND_URL            string   `optional:"true"`
	CLOUDINARY_URL          string   `optional:"true"`
	CLOUDINARY_CLOUD_NAME   string   `optional:"true"`
	CLOUDINARY_API_KEY      string   `optional:"true"`
	CLOUDINARY_API_SECRET   string   `optional:"true"`
	CLOUDINARY_API_BASE_URL string   `optional:"true"`
	IMAGE_CACHE_TTL         string   `optional:"true"`
	CACHE_TYPE              string   `optional:"true"`
	CACHE_URL               string   `optional:"true"`
	CACHE_PASSWORD          string   `optional:"true"`
	CACHE_DB                string   `optional:"true"`
	MAX_UPLOAD_SIZE_MB      string   `optional:"true"`
	HEALTHCHECK_SCHEDULE    string   `optional:"true"`
	ENABLE_SWAGGER          string   `optional:"true"`
}

func (ev *EnvironmentVariable) LoadFromEnv() {
	v := reflect.ValueOf(ev).Elem()
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		envKey := field.Name
		envValue := os.Getenv(envKey)
		if envValue == "" {
			if field.Tag.Get("optional") != "true" {
				fmt.Printf("Missing SYSENV: %s\n", envKey)
			}
			continue
		}
		switch v.Field(i).Kind() {
		case reflect.String:
			v.Field(i).SetString(envValue)
		case reflect.Slice:
			if field.Type.Elem().Kind() == reflect.String {
				v.Field(i).Set(reflect.ValueOf(splitList(envValue)))
			}
		}
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}

// HTTPPort returns PORT, falling back to DefaultPort when unset or malformed.
func (ev *EnvironmentVariable) HTTPPort() int {
	if port, err := strconv.Atoi(ev.PORT); err == nil && port > 0 {
		return port
	}
	return DefaultPort
}

// ImageCacheTTL returns the maximum age of a fresh image snapshot.
func (ev *EnvironmentVariable) ImageCacheTTL() time.Duration {
	if ev.IMAGE_CACHE_TTL == "" {
		return DefaultImageCacheTTL
	}
	ttl, err := time.ParseDuration(ev.IMAGE_CACHE_TTL)
	if err != nil || ttl <= 0 {
		return DefaultImageCacheTTL
	}
	return ttl
}

func (ev *EnvironmentVariable) MaxUploadBytes() int64 {
	size, err := strconv.ParseInt(ev.MAX_UPLOAD_SIZE_MB, 10, 64)
	if err != nil || size <= 0 {
		size = DefaultMaxUploadSizeMB
	}
	return size << 20
}

func (ev *EnvironmentVariable) SwaggerEnabled() bool {
	enabled, _ := strconv.ParseBool(ev.ENABLE_SWAGGER)
	return enabled
}

// CorsHosts merges ALLOWED_CORS_HOSTS with FRONTEND_URL.
func (ev *EnvironmentVariable) CorsHosts() []string {
	hosts := make([]string, 0, len(ev.ALLOWED_CORS_HOSTS)+1)
	hosts = append(hosts, ev.ALLOWED_CORS_HOSTS...)
	if frontend := strings.TrimRight(strings.TrimSpace(ev.FRONTEND_URL), "/"); frontend != "" {
		hosts = append(hosts, frontend)
	}
	return hosts
}

var current atomic.Pointer[EnvironmentVariable]

func init() {
	current.Store(&EnvironmentVariable{})
}

// EnvironmentVariables returns the published configuration. Callers must not
// modify it; Reload and Replace swap in a new value instead.
func EnvironmentVariables() *EnvironmentVariable {
	return current.Load()
}

// Reload reads the process environment into a new value and publishes it, so
// variables removed since the last load fall back to their zero value.
func Reload() *EnvironmentVariable {
	ev := &EnvironmentVariable{}
	ev.LoadFromEnv()
	current.Store(ev)
	return ev
}

// Replace publishes ev and returns the previous configuration.
func Replace(ev *EnvironmentVariable) *EnvironmentVariable {
	return current.Swap(ev)
}
