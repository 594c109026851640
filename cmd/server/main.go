package main

//	@title			Greenspace API
//	@version		1.0
//	@description	Maintenance task tracking for municipal green spaces.
//	@schemes		http https
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	SessionAuth
//	@in							header
//	@name						Authorization
//	@description				Session bearer token (e.g., "Bearer gs-sess-xxxx")

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/marafik-io/greenspace/internal/bootstrap"
	"github.com/marafik-io/greenspace/internal/config"
	"github.com/marafik-io/greenspace/internal/infra/cache"
	dbpkg "github.com/marafik-io/greenspace/internal/infra/db"
	"github.com/marafik-io/greenspace/internal/modules/handler"
	"github.com/marafik-io/greenspace/internal/modules/repo"
	"github.com/marafik-io/greenspace/internal/modules/service"
	"github.com/marafik-io/greenspace/internal/router"
	"github.com/marafik-io/greenspace/internal/telemetry"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	db := do.MustInvoke[*gorm.DB](inj)
	rdb := do.MustInvoke[*redis.Client](inj)

	// Setup OpenTelemetry tracing (using configuration system)
	tp, err := telemetry.SetupTracing(cfg)
	if err != nil {
		log.Sugar().Warnw("failed to setup tracing, continuing without tracing", "err", err)
	} else if tp != nil {
		log.Sugar().Info("OpenTelemetry tracing enabled", "endpoint", cfg.Telemetry.OtlpEndpoint)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := telemetry.Shutdown(ctx); err != nil {
				log.Sugar().Errorw("failed to shutdown tracer", "err", err)
			}
		}()

		// Register GORM OpenTelemetry plugin after tracer provider is set
		if err := dbpkg.RegisterOpenTelemetryPlugin(db); err != nil {
			log.Sugar().Warnw("failed to register GORM OpenTelemetry plugin, continuing without database tracing", "err", err)
		} else {
			log.Sugar().Info("GORM OpenTelemetry plugin registered")
		}

		// Register Redis OpenTelemetry plugin after tracer provider is set
		if err := cache.RegisterOpenTelemetryPlugin(rdb); err != nil {
			log.Sugar().Warnw("failed to register Redis OpenTelemetry plugin, continuing without Redis tracing", "err", err)
		} else {
			log.Sugar().Info("Redis OpenTelemetry plugin registered")
		}
	}

	// init gin
	gin.SetMode(cfg.App.Env)

	engine := router.NewRouter(router.RouterDeps{
		Config:           cfg,
		Log:              log,
		Sessions:         do.MustInvoke[service.SessionService](inj),
		Identities:       do.MustInvoke[repo.IdentityRepo](inj),
		AuthHandler:      do.MustInvoke[*handler.AuthHandler](inj),
		TaskHandler:      do.MustInvoke[*handler.TaskHandler](inj),
		AdminTaskHandler: do.MustInvoke[*handler.AdminTaskHandler](inj),
		HistoryHandler:   do.MustInvoke[*handler.HistoryHandler](inj),
		TaskTypeHandler:  do.MustInvoke[*handler.TaskTypeHandler](inj),
		UserHandler:      do.MustInvoke[*handler.UserHandler](inj),
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	log.Sugar().Info("server exited")
}
