// Seeds the database with the canonical agent roster, the tracked asset
// universe, and a sample mission board. Safe to run repeatedly.
package main

import (
	"log"

	"github.com/quantops/mission-control/src/api/agents"
	"github.com/quantops/mission-control/src/api/assets"
	"github.com/quantops/mission-control/src/api/config"
	"github.com/quantops/mission-control/src/api/data"
	"github.com/quantops/mission-control/src/api/missions"
	"github.com/quantops/mission-control/src/api/types"
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
		log.Fatalf("seed agents: %v", err)
	}
	log.Printf("Seeded %d agent profiles", len(data.DefaultAgents))

	if err := assets.NewTracker(db).Seed(data.DefaultAssets); err != nil {
		log.Fatalf("seed assets: %v", err)
	}
	log.Printf("Seeded %d tracked assets", len(data.DefaultAssets))

	if err := missions.NewStore(db).SeedSamples(); err != nil {
		log.Fatalf("seed missions: %v", err)
	}
	log.Printf("Done")
}
