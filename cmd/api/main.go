package main

import (
	"log"
	"net/http"
	"os"

	"go.uber.org/zap"

	"uptimemonitor/internal/config"
	"uptimemonitor/internal/httpapi"
	"uptimemonitor/internal/httpapi/middleware"
	"uptimemonitor/internal/logging"
	"uptimemonitor/internal/monitor"
	"uptimemonitor/internal/probe"
	"uptimemonitor/internal/repo/memory"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.NewLogger(cfg.Log.Dir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	store := memory.New() // all state is process-lifetime on purpose
	svc := monitor.NewService(logger, store, probe.NewHTTPChecker(cfg.Probe.Timeout))
	api := httpapi.NewServer(logger, svc)

	router := api.Router(
		middleware.StaticKey(cfg.Auth.APIKey),
		cfg.CORS.Origins(),
		cfg.RateLimit.RPM,
		cfg.RateLimit.Burst,
	)

	logger.Info("api_listen",
		zap.String("addr", cfg.Server.Addr),
		zap.Bool("auth_enabled", cfg.Auth.APIKey != ""),
	)
	if err := http.ListenAndServe(cfg.Server.Addr, router); err != nil {
		log.Fatal(err)
	}
}
