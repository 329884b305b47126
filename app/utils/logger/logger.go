package logger

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"jajresources.com/image-gateway/config/environment_variables"
)

var (
	once     sync.Once
	instance *logrus.Logger
)

func GetLogger() *logrus.Logger {
	once.Do(func() {
		instance = logrus.New()
		instance.SetOutput(os.Stdout)
		instance.SetFormatter(&logrus.JSONFormatter{})
		level, err := logrus.ParseLevel(environment_variables.EnvironmentVariables().LOG_LEVEL)
		if err != nil {
			level = logrus.InfoLevel
		}
		instance.SetLevel(level)
	})
	return instance
}
