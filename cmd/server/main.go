package main

import (
	"flag"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/attendify/attendify/internal/app"
	"github.com/attendify/attendify/internal/handlers"
)

func main() {
	var configPath = flag.String("config", "config.toml", "Path to config file")
	flag.Parse()

	service, err := app.NewService(*configPath)
	if err != nil {
		logger.Error.Fatalf("Failed to init service: %v", err)
	}
	defer service.Close()

	h := handlers.NewHandler(service)

	http.HandleFunc("POST /api/v1/signup", h.HandleSignUp)
	http.HandleFunc("POST /api/v1/login", h.HandleLogin)
	http.HandleFunc("POST /api/v1/users/{userID}/classes", h.HandleAddClass)
	http.HandleFunc("GET /api/v1/users/{userID}/classes", h.HandleListClasses)
	http.HandleFunc("DELETE /api/v1/classes/{classID}", h.HandleDeleteClass)
	http.HandleFunc("POST /api/v1/users/{userID}/attendance", h.HandleMarkAttendance)
	http.HandleFunc("GET /api/v1/users/{userID}/attendance", h.HandleAttendanceForDate)
	http.HandleFunc("GET /api/v1/users/{userID}/today", h.HandleToday)
	http.HandleFunc("GET /api/v1/users/{userID}/stats", h.HandleStats)

	http.Handle("/metrics", promhttp.Handler())

	logger.Info.Printf("Starting attendify server on %s", service.Config.Server.Port)
	if err := http.ListenAndServe(service.Config.Server.Port, nil); err != nil {
		logger.Error.Fatalf("Attendify server failed: %v", err)
	}
}
