package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/okarpov/tasktracker/internal/config"
	v1 "github.com/okarpov/tasktracker/internal/delivery/http/v1"
	"github.com/okarpov/tasktracker/internal/repository"
	"github.com/okarpov/tasktracker/internal/services"
)

func MustListenAndServeHTTP() {
	cfg := config.Global()
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := cfg.HTTP

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = httpCfg.AllowedOrigins
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "x-auth-token")
	router.Use(cors.New(corsCfg))

	registerRoutes(router)

	server := &http.Server{
		Addr:    net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler: router,
	}

	go func() {
		globalLogger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			globalLogger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// Wait for the interrupt signal to gracefully
	// shut down the server with a timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	globalLogger.Info().
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	globalLogger.Info().Msg("shut down http server")
}

func registerRoutes(router gin.IRouter) {
	jwtCfg := config.Global().JWT

	userRepo := repository.NewUserRepository(globalLogger, globalPostgresPool)
	categoryRepo := repository.NewCategoryRepository(globalLogger, globalPostgresPool)
	taskRepo := repository.NewTaskRepository(globalLogger, globalPostgresPool)

	tokenManager := services.NewTokenManager(jwtCfg.Issuer, jwtCfg.SigningKey, jwtCfg.TokenTTL)
	v1Handler := v1.New(
		globalLogger,
		services.NewAuthService(globalLogger, userRepo, tokenManager),
		services.NewCategoryService(globalLogger, categoryRepo, taskRepo),
		services.NewTaskService(globalLogger, taskRepo, categoryRepo),
	)

	router = router.Group("/api")

	authRouter := router.Group("/auth")
	authRouter.POST("/register", v1Handler.HandleRegister)
	authRouter.POST("/login", v1Handler.HandleLogin)
	authRouter.GET("", v1Handler.HandleAuthMiddleware, v1Handler.HandleGetUser)

	categoryRouter := router.Group("/categories", v1Handler.HandleAuthMiddleware)
	categoryRouter.POST("", v1Handler.HandleCreateCategory)
	categoryRouter.GET("", v1Handler.HandleGetCategories)
	categoryRouter.GET("/:id", v1Handler.HandleGetCategory)
	categoryRouter.DELETE("/:id", v1Handler.HandleDeleteCategory)

	// The wire format reuses one path parameter slot: POST/GET take a
	// category id, PUT/DELETE take a task id.
	taskRouter := router.Group("/tasks", v1Handler.HandleAuthMiddleware)
	taskRouter.POST("/:id", v1Handler.HandleCreateTask)
	taskRouter.GET("/:id", v1Handler.HandleGetTasks)
	taskRouter.PUT("/:id", v1Handler.HandleToggleTask)
	taskRouter.DELETE("/:id", v1Handler.HandleDeleteTask)
}
