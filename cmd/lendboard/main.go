package main

import (
	"context"
	"errors"
	"os"

	"github.com/fsdevblog/lendboard/internal/app"
	"github.com/fsdevblog/lendboard/internal/config"
	"github.com/fsdevblog/lendboard/internal/logger"
)

func main() {
	conf := config.MustLoadConfig()
	log := logger.New(os.Stdout)

	if err := app.New(conf, log).Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("graceful shutdown complete")
			return
		}
		log.WithError(err).Fatal("application stopped")
	}
}
