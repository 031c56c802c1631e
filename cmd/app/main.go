package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"theralert/cmd/fx/account_fx"
	"theralert/cmd/fx/activity_fx"
	"theralert/cmd/fx/controllers_fx"
	"theralert/cmd/fx/db_fx"
	"theralert/cmd/fx/group_fx"
	"theralert/cmd/fx/mail_fx"
	"theralert/cmd/fx/notification_fx"
	"theralert/internal/api/controllers"
	"theralert/internal/config"
	"theralert/internal/models/db_models"
	"theralert/pkg/logger"
	"theralert/pkg/middleware"
)

func main() {
	app := fx.New(
		fx.Provide(config.Load),
		fx.Provide(logger.New),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),

		db_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		group_fx.Module,
		notification_fx.Module,
		activity_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideRouter(
	cfg *config.Config,
	accountController *controllers.AccountController,
	groupController *controllers.GroupController,
	activityController *controllers.ActivityController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, cfg, accountController, groupController, activityController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	cfg *config.Config,
	accountController *controllers.AccountController,
	groupController *controllers.GroupController,
	activityController *controllers.ActivityController) {

	auth := middleware.JWTAuthMiddleware(cfg.JWTSecret)

	r.POST("/register", accountController.Register)
	r.POST("/login", accountController.Login)

	profile := r.Group("/profile", auth)
	profile.PUT("/password", accountController.ChangePassword)
	profile.DELETE("/delete", accountController.DeleteAccount)

	groups := r.Group("/groups", auth)
	groups.POST("", middleware.RoleMiddleware(db_models.RoleStaff), groupController.CreateGroup)
	groups.GET("", groupController.ListGroups)
	groups.DELETE("/delete", middleware.RoleMiddleware(db_models.RoleStaff), groupController.DeleteGroup)

	activities := r.Group("/activities", auth)
	activities.POST("", activityController.LogActivity)
	activities.GET("", activityController.ListActivities)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, log *zap.Logger) {
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("starting HTTP server", zap.String("addr", server.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}
