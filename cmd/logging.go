package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hallworks/ms-go-hall/config"
)

func configureLogging(cfg *config.Config) error {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("parsing log level %q: %w", cfg.Log.Level, err)
	}

	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	return nil
}
