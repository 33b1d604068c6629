package cmd

import (
	"context"
	"errors"
	"feedback/internal/config"
	"feedback/internal/core"
	"feedback/internal/db"
	"feedback/internal/http/handler"
	"feedback/internal/http/handler/middleware"
	"feedback/internal/http/payload"
	"feedback/internal/http/server"
	"feedback/internal/repository"
	"feedback/internal/web"
	"feedback/pkg/jwt"
	"feedback/pkg/log"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func Start() error {
	level := zap.NewAtomicLevel()
	logger := log.NewZapLogger("feedback", level)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}
	level.SetLevel(config.LogLevel)

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL, logger)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Errorw("failed to close database connection", "error", err)
		}
	}()

	// repository
	repo := repository.NewRepository(dbConn)
	if err := repo.MigrateTables(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.SessionSecret))

	// core
	accounts := core.NewAccounts(logger, repo, repo, config.BcryptCost)
	sessions := core.NewSessions(logger, repo, jwtService, config.SessionTTL)
	feedbacks := core.NewFeedbacks(logger, repo)

	views, err := web.NewViews()
	if err != nil {
		logger.Errorw("failed to parse templates", "error", err)
		return err
	}

	// handler
	cookies := handler.CookieSettings{
		Secure:     config.SecureCookies,
		SessionTTL: config.SessionTTL,
	}
	webHlr := handler.NewWebHandler(
		logger,
		payload.DecodeValidator{},
		accounts,
		sessions,
		feedbacks,
		views,
		handler.NewFlashes(logger, jwtService, cookies),
		cookies)

	// register routes
	mux := http.NewServeMux()
	webHlr.Routes(mux)

	// middleware
	hdlr := middleware.NewSessionMiddleware(logger, sessions, handler.SessionCookieName).Session(mux)
	hdlr = middleware.NewRecoveryMiddleware(logger, http.HandlerFunc(webHlr.HandleInternalError)).Recover(hdlr)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeperDone := startSweeper(ctx, logger, sessions, sweepInterval)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	err = run(srv)

	cancel()
	<-sweeperDone

	return err
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	if sdErr := server.Shutdown(); sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}
