package environment_variables

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_CORS_HOSTS", "https://a.example, ,https://b.example")
	t.Setenv("IMAGE_CACHE_TTL", "15m")
	t.Setenv("CACHE_TYPE", "redis")

	ev := EnvironmentVariable{}
	ev.LoadFromEnv()

	assert.Equal(t, 9090, ev.HTTPPort())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, ev.ALLOWED_CORS_HOSTS)
	assert.Equal(t, 15*time.Minute, ev.ImageCacheTTL())
	assert.Equal(t, "redis", ev.CACHE_TYPE)
}

func TestDefaults(t *testing.T) {
	ev := EnvironmentVariable{IMAGE_CACHE_TTL: "soon", PORT: "-1"}

	assert.Equal(t, DefaultImageCacheTTL, ev.ImageCacheTTL())
	assert.Equal(t, DefaultPort, ev.HTTPPort())
	assert.Equal(t, int64(DefaultMaxUploadSizeMB)<<20, ev.MaxUploadBytes())
	assert.False(t, ev.SwaggerEnabled())
}

func TestCorsHosts(t *testing.T) {
	ev := EnvironmentVariable{
		ALLOWED_CORS_HOSTS: []string{"https://jajresources.com"},
		FRONTEND_URL:       "https://app.example/",
	}
	assert.Equal(t, []string{"https://jajresources.com", "https://app.example"}, ev.CorsHosts())
}

func TestReloadResetsRemovedVariables(t *testing.T) {
	original := Replace(&EnvironmentVariable{})
	t.Cleanup(func() { Replace(original) })

	t.Setenv("FRONTEND_URL", "https://app.example")
	t.Setenv("ENABLE_SWAGGER", "true")
	Reload()
	assert.Equal(t, []string{"https://app.example"}, EnvironmentVariables().CorsHosts())
	assert.True(t, EnvironmentVariables().SwaggerEnabled())

	t.Setenv("FRONTEND_URL", "")
	t.Setenv("ENABLE_SWAGGER", "")
	Reload()
	assert.Empty(t, EnvironmentVariables().CorsHosts())
	assert.False(t, EnvironmentVariables().SwaggerEnabled())
}

func TestReloadPublishesNewValue(t *testing.T) {
	original := Replace(&EnvironmentVariable{})
	t.Cleanup(func() { Replace(original) })

	before := EnvironmentVariables()
	t.Setenv("ALLOWED_CORS_HOSTS", "https://a.example")
	reloaded := Reload()

	assert.NotSame(t, before, reloaded)
	assert.Same(t, reloaded, EnvironmentVariables())
	assert.Empty(t, before.ALLOWED_CORS_HOSTS)
}
