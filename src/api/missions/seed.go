package missions

import (
	"errors"

	"github.com/quantops/mission-control/src/api/types"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

// SeedSamples populates a demo board on an empty store. A store with any
// mission at all is left untouched.
func (s Store) SeedSamples() error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var first types.Mission
		err := tx.First(&first).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		samples := []CreateParams{
			{Title: "Optimize BTC sigma for HIGH frequency", Asset: strPtr("BTC"), Frequency: strPtr("high"), Status: strPtr(types.MissionInbox), Priority: strPtr("high")},
			{Title: "Investigate XAU quiet hours performance", Asset: strPtr("XAU"), Frequency: strPtr("high"), Status: strPtr(types.MissionInbox), Priority: strPtr("medium")},
			{Title: "Review SPYX gap ratio trend", Asset: strPtr("SPYX"), Frequency: strPtr("low"), Status: strPtr(types.MissionAssigned), AssignedTo: strPtr("equities"), Priority: strPtr("high")},
			{Title: "Update ETH model parameters", Asset: strPtr("ETH"), Frequency: strPtr("high"), Status: strPtr(types.MissionInProgress), AssignedTo: strPtr("crypto"), Priority: strPtr("medium")},
			{Title: "Analyze SOL weekend behavior", Asset: strPtr("SOL"), Frequency: strPtr("low"), Status: strPtr(types.MissionReview), AssignedTo: strPtr("crypto"), Priority: strPtr("low")},
			{Title: "Deploy optimized XAU params", Asset: strPtr("XAU"), Frequency: strPtr("high"), Status: strPtr(types.MissionDone), AssignedTo: strPtr("gold"), Priority: strPtr("high")},
		}
		seeded := Store{db: tx}
		for _, p := range samples {
			m, err := seeded.Create(p)
			if err != nil {
				return err
			}
			if m.Status == types.MissionDone {
				if err := seeded.UpdateStatus(m.ID, types.MissionDone); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
