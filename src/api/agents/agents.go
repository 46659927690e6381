package agents

import (
	"errors"

	"github.com/quantops/mission-control/src/api/data"
	"github.com/quantops/mission-control/src/api/types"
	"gorm.io/gorm"
)

// Registry tracks worker identity and live status. Writes never fail on an
// unknown agent: status updates against an id we have never seen are dropped.
type Registry struct{ db *gorm.DB }

func NewRegistry(db *gorm.DB) Registry { return Registry{db: db} }

func (r Registry) List() ([]types.Agent, error) {
	var out []types.Agent
	return out, r.db.Find(&out).Error
}

// Get returns nil when the agent is unknown.
func (r Registry) Get(agentID string) (*types.Agent, error) {
	var a types.Agent
	err := r.db.First(&a, "agent_id = ?", agentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// SetStatus patches status (nil keeps the prior value) and currentTask
// (always written, so nil clears it), and refreshes lastRun. Unknown agent
// is a silent no-op.
func (r Registry) SetStatus(agentID string, status, currentTask *string) error {
	updates := map[string]interface{}{
		"last_run":     types.NowMillis(),
		"current_task": currentTask,
	}
	if status != nil {
		updates["status"] = *status
	}
	return r.db.Model(&types.Agent{}).Where("agent_id = ?", agentID).Updates(updates).Error
}

type ProfileParams struct {
	Name        *string
	Role        *string
	Emoji       *string
	Status      *string
	CurrentTask *string
}

// UpsertProfile creates the agent on first sight or patches only the
// supplied fields, refreshing lastRun either way.
func (r Registry) UpsertProfile(agentID string, p ProfileParams) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing types.Agent
		err := tx.First(&existing, "agent_id = ?", agentID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			a := types.Agent{
				AgentID:     agentID,
				Status:      "offline",
				LastRun:     types.NowMillis(),
				CurrentTask: p.CurrentTask,
			}
			if p.Name != nil {
				a.Name = *p.Name
			}
			if p.Role != nil {
				a.Role = *p.Role
			}
			if p.Emoji != nil {
				a.Emoji = *p.Emoji
			}
			if p.Status != nil {
				a.Status = *p.Status
			}
			return tx.Create(&a).Error
		}
		if err != nil {
			return err
		}

		updates := map[string]interface{}{"last_run": types.NowMillis()}
		if p.Name != nil {
			updates["name"] = *p.Name
		}
		if p.Role != nil {
			updates["role"] = *p.Role
		}
		if p.Emoji != nil {
			updates["emoji"] = *p.Emoji
		}
		if p.Status != nil {
			updates["status"] = *p.Status
		}
		if p.CurrentTask != nil {
			updates["current_task"] = *p.CurrentTask
		}
		return tx.Model(&types.Agent{}).Where("agent_id = ?", agentID).Updates(updates).Error
	})
}

// Seed ensures the canonical roster exists. Display metadata is refreshed on
// existing rows; live status and currentTask are left alone.
func (r Registry) Seed(roster []data.AgentProfile) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, p := range roster {
			var existing types.Agent
			err := tx.First(&existing, "agent_id = ?", p.AgentID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				a := types.Agent{
					AgentID: p.AgentID,
					Name:    p.Name,
					Role:    p.Role,
					Emoji:   p.Emoji,
					Status:  "offline",
					LastRun: types.NowMillis(),
				}
				if err := tx.Create(&a).Error; err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}
			updates := map[string]interface{}{"name": p.Name, "role": p.Role, "emoji": p.Emoji}
			if err := tx.Model(&types.Agent{}).Where("agent_id = ?", p.AgentID).Updates(updates).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
