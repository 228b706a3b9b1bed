package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/lendboard/internal/config"
	"github.com/fsdevblog/lendboard/internal/service"
	"github.com/fsdevblog/lendboard/internal/transport/api"
	"github.com/fsdevblog/lendboard/internal/transport/lendcore"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	conf *config.Config
	log  *logrus.Logger
}

func New(conf *config.Config, log *logrus.Logger) *App {
	return &App{conf: conf, log: log}
}

// Run поднимает HTTP сервер и блокируется до сигнала завершения
// или фатальной ошибки сервера.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := lendcore.New(a.conf.LendCoreAddress)
	services := service.Factory(client, []byte(a.conf.JWTSessionSecret), a.log)

	router := api.New(api.RouterArgs{
		Logger:             a.log,
		AuthService:        services.AuthService,
		LoanService:        services.LoanService,
		UserService:        services.UserService,
		BalanceService:     services.BalanceService,
		InstallmentService: services.InstallmentService,
		DashboardService:   services.DashboardService,
		ReportService:      services.ReportService,
		JWTSecretKey:       []byte(a.conf.JWTSessionSecret),
	})

	server := &http.Server{
		Addr:    a.conf.RunAddress,
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		a.log.WithField("address", a.conf.RunAddress).Info("starting http server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return context.Canceled
	case err := <-errChan:
		return err
	}
}
