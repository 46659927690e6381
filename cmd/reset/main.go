// Bulk reset: wipes the mission board and activity log, then parks every
// agent at "idle". Individual failures are logged and skipped so the reset
// always runs to completion.
package main

import (
	"log"

	"github.com/quantops/mission-control/src/api/activities"
	"github.com/quantops/mission-control/src/api/agents"
	"github.com/quantops/mission-control/src/api/config"
	"github.com/quantops/mission-control/src/api/data"
	"github.com/quantops/mission-control/src/api/missions"
)

func main() {
	cfg := config.Load()
	db := data.MustMySQL(cfg.MySQLDSN)

	store := missions.NewStore(db)
	all, err := store.All()
	if err != nil {
		log.Fatalf("list missions: %v", err)
	}
	log.Printf("Found %d missions", len(all))
	for _, m := range all {
		if err := store.Remove(m.ID); err != nil {
			log.Printf("Failed to delete %s: %v", m.ID, err)
			continue
		}
		log.Printf("Deleted: %s", m.Title)
	}

	erased, err := activities.NewLog(db, nil).ClearAll()
	if err != nil {
		log.Printf("Failed to clear activities: %v", err)
	} else {
		log.Printf("Cleared %d activities", erased)
	}

	registry := agents.NewRegistry(db)
	roster, err := registry.List()
	if err != nil {
		log.Fatalf("list agents: %v", err)
	}
	idle := "idle"
	for _, a := range roster {
		if err := registry.SetStatus(a.AgentID, &idle, nil); err != nil {
			log.Printf("Failed to reset agent %s: %v", a.AgentID, err)
			continue
		}
		log.Printf("Reset agent: %s", a.AgentID)
	}

	log.Printf("Done")
}
