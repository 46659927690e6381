package activities

import (
	"context"
	"errors"
	"log"

	"github.com/quantops/mission-control/src/api/data"
	"github.com/quantops/mission-control/src/api/types"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Log is the append-only activity record. Recording an activity also patches
// the agent's registry row; the two writes commit as one transaction so no
// reader ever sees the log entry without the matching agent state.
type Log struct {
	db  *gorm.DB
	rdb *redis.Client // optional; nil disables the live feed
}

func NewLog(db *gorm.DB, rdb *redis.Client) Log { return Log{db: db, rdb: rdb} }

type RecordParams struct {
	AgentID   string
	Action    string
	Result    string
	Asset     *string
	Frequency *string
	Details   *string
	MissionID *string
	GapRatio  *float64
	SigmaOld  *float64
	SigmaNew  *float64
}

// Record appends the activity and updates the agent in the same transaction:
// lastRun=now, currentTask=action, status=error on failure else active.
// Unknown agents get the log entry but no registry patch.
func (l Log) Record(p RecordParams) (types.Activity, error) {
	now := types.NowMillis()
	a := types.Activity{
		AgentID:   p.AgentID,
		Action:    p.Action,
		Result:    p.Result,
		Asset:     p.Asset,
		Frequency: p.Frequency,
		Details:   p.Details,
		MissionID: p.MissionID,
		GapRatio:  p.GapRatio,
		SigmaOld:  p.SigmaOld,
		SigmaNew:  p.SigmaNew,
		Timestamp: now,
	}

	err := l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&a).Error; err != nil {
			return err
		}

		var agent types.Agent
		err := tx.First(&agent, "agent_id = ?", p.AgentID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		status := "active"
		if p.Result == types.ResultFailure {
			status = "error"
		}
		return tx.Model(&agent).Updates(map[string]interface{}{
			"last_run":     now,
			"status":       status,
			"current_task": p.Action,
		}).Error
	})
	if err != nil {
		return types.Activity{}, err
	}

	if l.rdb != nil {
		if err := data.PublishActivity(context.Background(), l.rdb, feedPayload(a)); err != nil {
			log.Printf("activities: live feed publish failed: %v", err)
		}
	}
	return a, nil
}

func feedPayload(a types.Activity) map[string]interface{} {
	payload := map[string]interface{}{
		"agentId":   a.AgentID,
		"action":    a.Action,
		"result":    a.Result,
		"timestamp": a.Timestamp,
	}
	if a.Asset != nil {
		payload["asset"] = *a.Asset
	}
	if a.Frequency != nil {
		payload["frequency"] = *a.Frequency
	}
	if a.Details != nil {
		payload["details"] = *a.Details
	}
	if a.MissionID != nil {
		payload["missionId"] = *a.MissionID
	}
	if a.GapRatio != nil {
		payload["gapRatio"] = *a.GapRatio
	}
	return payload
}

// Recent returns the newest activities, capped at limit (default 50).
func (l Log) Recent(limit int) ([]types.Activity, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []types.Activity
	return out, l.db.Order("timestamp desc, id desc").Limit(limit).Find(&out).Error
}

func (l Log) ByAgent(agentID string, limit int) ([]types.Activity, error) {
	if limit <= 0 {
		limit = 20
	}
	var out []types.Activity
	return out, l.db.Where("agent_id = ?", agentID).
		Order("timestamp desc, id desc").Limit(limit).Find(&out).Error
}

func (l Log) ByAsset(asset string, frequency *string, limit int) ([]types.Activity, error) {
	if limit <= 0 {
		limit = 20
	}
	q := l.db.Where("asset = ?", asset)
	if frequency != nil {
		q = q.Where("frequency = ?", *frequency)
	}
	var out []types.Activity
	return out, q.Order("timestamp desc, id desc").Limit(limit).Find(&out).Error
}

// ClearAll erases the whole log and reports how many records went.
func (l Log) ClearAll() (int64, error) {
	res := l.db.Where("1 = 1").Delete(&types.Activity{})
	return res.RowsAffected, res.Error
}
