package cloudinary

import (
	"fmt"
	"net/url"
	"strings"

	"jajresources.com/image-gateway/config/environment_variables"
)

const DefaultBaseURL = "https://api.cloudinary.com/v1_1"

type Config struct {
	CloudName string
	APIKey    string
	APISecret string
	BaseURL   string
}

// ParseURL reads credentials in the cloudinary://<api_key>:<api_secret>@<cloud_name> form.
func ParseURL(raw string) (Config, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("invalid CLOUDINARY_URL: %w", err)
	}
	if u.Scheme != "cloudinary" {
		return Config{}, fmt.Errorf("invalid CLOUDINARY_URL scheme %q", u.Scheme)
	}
	config := Config{CloudName: u.Host}
	if u.User != nil {
		config.APIKey = u.User.Username()
		config.APISecret, _ = u.User.Password()
	}
	return config, config.validate()
}

func ConfigFromEnv() (Config, error) {
	env := environment_variables.EnvironmentVariables()
	var config Config
	if env.CLOUDINARY_URL != "" {
		parsed, err := ParseURL(env.CLOUDINARY_URL)
		if err != nil {
			return Config{}, err
		}
		config = parsed
	} else {
		config = Config{
			CloudName: env.CLOUDINARY_CLOUD_NAME,
			APIKey:    env.CLOUDINARY_API_KEY,
			APISecret: env.CLOUDINARY_API_SECRET,
		}
	}
	config.BaseURL = env.CLOUDINARY_API_BASE_URL
	return config, config.validate()
}

func (c Config) validate() error {
	var missing []string
	if c.CloudName == "" {
		missing = append(missing, "cloud name")
	}
	if c.APIKey == "" {
		missing = append(missing, "api key")
	}
	if c.APISecret == "" {
		missing = append(missing, "api secret")
	}
	if len(missing) > 0 {
		return fmt.Errorf("cloudinary config: missing %s", strings.Join(missing, ", "))
	}
	return nil
}

func (c Config) endpoint(path string) string {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimRight(base, "/") + "/" + c.CloudName + path
}
