package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "bookingapi/internal/config"
	intdb "bookingapi/internal/db"
	router "bookingapi/internal/http"
	"bookingapi/internal/http/handlers"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	dialect, err := intdb.DialectFor(env.DBDriver)
	if err != nil {
		log.Fatalf("invalid database configuration: %v", err)
	}

	db, err := intconfig.OpenDB(env)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	initCtx, initCancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = intdb.EnsureSchema(initCtx, db, dialect)
	initCancel()
	if err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}

	r := router.NewRouter(env, handlers.New(db, dialect))

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("booking service listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown failed: %v", err)
		return
	}

	log.Println("server stopped")
}
