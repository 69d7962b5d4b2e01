package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/webcalc/calc-backend/pkg/apihelpers"
	"github.com/webcalc/calc-backend/pkg/apihelpers/middlewares"
	"github.com/webcalc/calc-backend/pkg/utils"
	"github.com/webcalc/calc-backend/services/calculator-api/apihandlers"
)

const (
	defaultReadTimeout  = 5 * time.Second
	defaultWriteTimeout = 10 * time.Second
	shutdownTimeout     = 30 * time.Second
)

var conf CalculatorApiConfig

func main() {
	// Start webserver
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		// AllowAllOrigins: true,
		AllowOrigins:     conf.GinConfig.AllowOrigins,
		AllowMethods:     []string{"POST", "GET", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Content-Length"},
		ExposeHeaders:    []string{"Authorization", "Content-Type", "Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middlewares.RequestID())

	// Add handlers
	router.GET("/", apihandlers.HealthCheckHandle)
	router.GET("/health", apihandlers.HealthCheckHandle)
	root := router.Group("/")

	apiModule := apihandlers.NewHTTPHandler(
		conf.ApiKeys,
	)
	apiModule.AddRoutes(root)

	if conf.GinConfig.DebugMode {
		apihelpers.WriteRoutesToFile(router, "calculator-api-routes.txt")
	}

	server := &http.Server{
		Addr:         ":" + conf.GinConfig.Port,
		Handler:      router,
		ReadTimeout:  utils.ParseDurationStringWithDefault(conf.GinConfig.ReadTimeout, defaultReadTimeout),
		WriteTimeout: utils.ParseDurationStringWithDefault(conf.GinConfig.WriteTimeout, defaultWriteTimeout),
	}

	if conf.GinConfig.MTLS.Use {
		// Create tls config for mutual TLS
		tlsConfig, err := apihelpers.LoadTLSConfig(conf.GinConfig.MTLS.CertificatePaths)
		if err != nil {
			slog.Error("Error loading TLS config.", slog.String("error", err.Error()))
			return
		}
		server.TLSConfig = tlsConfig
	}

	go func() {
		slog.Info("Starting Calculator API", slog.String("port", conf.GinConfig.Port))

		var err error
		if conf.GinConfig.MTLS.Use {
			err = server.ListenAndServeTLS(conf.GinConfig.MTLS.CertificatePaths.ServerCertPath, conf.GinConfig.MTLS.CertificatePaths.ServerKeyPath)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Exited Calculator API", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				slog.Info("Shutting down Calculator API")
				return server.Shutdown(ctx)
			},
		},
	)

	exitCode := <-wait
	slog.Info("Calculator API stopped", slog.Int("exitCode", exitCode))
	os.Exit(exitCode)
}
