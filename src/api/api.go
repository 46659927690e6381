package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quantops/mission-control/src/api/agents"
	"github.com/quantops/mission-control/src/api/assets"
	"github.com/quantops/mission-control/src/api/config"
	"github.com/quantops/mission-control/src/api/data"
	"github.com/quantops/mission-control/src/api/types"
	"github.com/quantops/mission-control/src/api/webserver"
)

func main() {
	cfg := config.Load()
	db := data.MustMySQL(cfg.MySQLDSN)

	if err := db.AutoMigrate(
		&types.Agent{}, &types.Mission{}, &types.Activity{},
		&types.Asset{}, &types.Comment{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := agents.NewRegistry(db).Seed(data.DefaultAgents); err != nil {
		log.Printf("Failed to seed agent roster: %v", err)
	}
	if err := assets.NewTracker(db).Seed(data.DefaultAssets); err != nil {
		log.Printf("Failed to seed tracked assets: %v", err)
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb = data.MustRedis(cfg.RedisURL)
	} else {
		log.Printf("REDIS_URL not set, live feed disabled")
	}

	router := webserver.New(cfg, db, rdb)

	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Port)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()

	log.Printf("Mission Control API listening on %s", cfg.Port)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutCtx, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()
	_ = httpSrv.Shutdown(shutCtx)
}
