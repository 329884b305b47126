package config

// Version is overridden at build time with -ldflags "-X jajresources.com/image-gateway/config.Version=...".
var Version = "dev"
