package assets

import (
	"errors"

	"github.com/quantops/mission-control/src/api/data"
	"github.com/quantops/mission-control/src/api/types"
	"gorm.io/gorm"
)

// Gap ratio thresholds. Status is always recomputed from the reported ratio;
// callers never set it directly.
const (
	warningThreshold  = 1.10
	criticalThreshold = 1.20
)

// Tracker classifies (symbol, frequency) pairs into health tiers.
type Tracker struct{ db *gorm.DB }

func NewTracker(db *gorm.DB) Tracker { return Tracker{db: db} }

// Classify maps a gap ratio to a health tier. Exactly 1.10 is still healthy,
// exactly 1.20 is still warning.
func Classify(gapRatio float64) string {
	switch {
	case gapRatio > criticalThreshold:
		return types.AssetCritical
	case gapRatio > warningThreshold:
		return types.AssetWarning
	default:
		return types.AssetHealthy
	}
}

type ReportParams struct {
	Rank         *int
	CurrentSigma *float64
}

// Report upserts the pair with a freshly classified status. Rank and
// currentSigma are patched only when supplied; an update with neither leaves
// the stored values alone.
func (t Tracker) Report(symbol, frequency string, gapRatio float64, p ReportParams) (types.Asset, error) {
	var out types.Asset
	err := t.db.Transaction(func(tx *gorm.DB) error {
		status := Classify(gapRatio)
		now := types.NowMillis()

		var existing types.Asset
		err := tx.First(&existing, "symbol = ? AND frequency = ?", symbol, frequency).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			out = types.Asset{
				Symbol:       symbol,
				Frequency:    frequency,
				GapRatio:     gapRatio,
				Rank:         p.Rank,
				Status:       status,
				LastUpdate:   now,
				CurrentSigma: p.CurrentSigma,
			}
			return tx.Create(&out).Error
		}
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"gap_ratio":   gapRatio,
			"status":      status,
			"last_update": now,
		}
		if p.Rank != nil {
			updates["rank"] = *p.Rank
		}
		if p.CurrentSigma != nil {
			updates["current_sigma"] = *p.CurrentSigma
		}
		if err := tx.Model(&existing).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&out, "symbol = ? AND frequency = ?", symbol, frequency).Error
	})
	return out, err
}

// MarkOptimized stamps lastOptimized and the new sigma without touching the
// health classification. Unknown pair is a no-op.
func (t Tracker) MarkOptimized(symbol, frequency string, newSigma float64) error {
	return t.db.Model(&types.Asset{}).
		Where("symbol = ? AND frequency = ?", symbol, frequency).
		Updates(map[string]interface{}{
			"last_optimized": types.NowMillis(),
			"current_sigma":  newSigma,
		}).Error
}

func (t Tracker) All() ([]types.Asset, error) {
	var out []types.Asset
	return out, t.db.Find(&out).Error
}

func (t Tracker) ByStatus(status string) ([]types.Asset, error) {
	var out []types.Asset
	return out, t.db.Where("status = ?", status).Find(&out).Error
}

// Seed creates any missing tracked pairs at a neutral ratio of 1.0. Pairs
// already present are skipped entirely.
func (t Tracker) Seed(pairs []data.AssetKey) error {
	return t.db.Transaction(func(tx *gorm.DB) error {
		for _, k := range pairs {
			var existing types.Asset
			err := tx.First(&existing, "symbol = ? AND frequency = ?", k.Symbol, k.Frequency).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			a := types.Asset{
				Symbol:     k.Symbol,
				Frequency:  k.Frequency,
				GapRatio:   1.0,
				Status:     types.AssetHealthy,
				LastUpdate: types.NowMillis(),
			}
			if err := tx.Create(&a).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
