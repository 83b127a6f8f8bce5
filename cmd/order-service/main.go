package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/MikeMC777/storefront-account/docs"
	"github.com/MikeMC777/storefront-account/internal/account"
	"github.com/MikeMC777/storefront-account/internal/config"
	"github.com/MikeMC777/storefront-account/internal/httpx"
	"github.com/MikeMC777/storefront-account/internal/logger"
	"github.com/MikeMC777/storefront-account/internal/remote"
)

// @title        Storefront account API
// @version      1.0
// @description  Order history, cancellation, warranty lookup and notifications.
// @BasePath     /
func main() {
	cfg := config.Load()
	if err := logger.Init(cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Sync()
	cfg.Log()

	collab, closeFn, err := newCollaborator(cfg)
	if err != nil {
		logger.L().Fatal("collaborator", zap.Error(err))
	}
	defer closeFn()

	session := account.NewSession(collab, time.Now)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())
	registerRoutes(r, session)
	docs.SwaggerInfo.BasePath = "/"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	logger.Info("order-service listening", zap.String("addr", cfg.OrderSvcAddr))
	if err := http.ListenAndServe(cfg.OrderSvcAddr, r); err != nil {
		logger.L().Fatal("listen", zap.Error(err))
	}
}

func newCollaborator(cfg config.Config) (account.Collaborator, func(), error) {
	if cfg.Backend != config.BackendPostgres {
		return remote.NewExt(cfg.OrderAPIBaseURL, cfg.OrderAPIToken, cfg.RemoteTimeout), func() {}, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return remote.NewPGRepo(pool, cfg.CustomerID), pool.Close, nil
}
