// Assignment repair: walks every "assigned" mission, soft-deletes obvious
// placeholders, and re-routes the rest to the specialist that owns the
// mission's asset. Failures are logged and skipped.
package main

import (
	"log"
	"strings"

	"github.com/quantops/mission-control/src/api/config"
	"github.com/quantops/mission-control/src/api/data"
	"github.com/quantops/mission-control/src/api/missions"
	"github.com/quantops/mission-control/src/api/types"
)

func main() {
	cfg := config.Load()
	db := data.MustMySQL(cfg.MySQLDSN)
	store := missions.NewStore(db)

	assigned, err := store.ByStatus(types.MissionAssigned)
	if err != nil {
		log.Fatalf("list assigned missions: %v", err)
	}
	log.Printf("Checking %d assigned missions...", len(assigned))

	var fixed, deleted int
	for _, m := range assigned {
		title := strings.TrimSpace(m.Title)
		if title == "" || strings.Contains(title, "FREQ: gap X.XX") {
			if err := store.UpdateStatus(m.ID, types.MissionDeleted); err != nil {
				log.Printf("Failed to delete placeholder %s: %v", m.ID, err)
				continue
			}
			log.Printf("Deleted placeholder: %s", m.ID)
			deleted++
			continue
		}

		owner := ownerFor(m)
		if owner == "" {
			continue
		}
		if m.AssignedTo != nil && *m.AssignedTo == owner {
			continue
		}
		if err := store.Assign(m.ID, owner); err != nil {
			log.Printf("Failed to reassign %s: %v", m.ID, err)
			continue
		}
		log.Printf("Reassigned %q to %s", m.Title, owner)
		fixed++
	}

	log.Printf("Done: %d reassigned, %d placeholders removed", fixed, deleted)
}

// ownerFor matches the mission's asset tag, falling back to symbols named in
// the title.
func ownerFor(m types.Mission) string {
	if m.Asset != nil {
		if owner, ok := data.AssetOwners[strings.ToUpper(*m.Asset)]; ok {
			return owner
		}
	}
	titleUpper := strings.ToUpper(m.Title)
	for symbol, owner := range data.AssetOwners {
		if strings.Contains(titleUpper, symbol+" ") {
			return owner
		}
	}
	return ""
}
