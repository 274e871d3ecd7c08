package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "interview-prep/docs" // Swagger docs
	"interview-prep/internal/api"
	"interview-prep/internal/config"
	"interview-prep/internal/gemini"
)

// @title Interview Prep API
// @version 1.0
// @description Job-description analysis and mock-interview API backed by a generative model

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	llm := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.RetryPolicy(), cfg.HTTPTimeout)

	apiSrv := api.NewAPI(llm)
	router := api.NewRouter(apiSrv)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute, // generation + worst-case backoff delays
		IdleTimeout:  120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Println("server shutdown:", err)
		}
		close(idleConnsClosed)
	}()

	log.Printf("API server listening on :%s\n", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}

	<-idleConnsClosed
}
