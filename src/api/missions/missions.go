package missions

import (
	"github.com/google/uuid"
	"github.com/quantops/mission-control/src/api/types"
	"gorm.io/gorm"
)

// Store is the Kanban state machine. Transitions are not validated: any
// status can be written over any other, and callers own the ordering. The
// store's only derived behavior is the completedAt stamp on entering done.
type Store struct{ db *gorm.DB }

func NewStore(db *gorm.DB) Store { return Store{db: db} }

type CreateParams struct {
	Title        string
	Description  *string
	Priority     *string
	AssignedTo   *string
	Asset        *string
	Frequency    *string
	Tags         []string
	ScheduledFor *int64
	Status       *string
}

// Create resolves the initial status as: explicit argument, else "assigned"
// when an assignee was given, else "inbox". Priority defaults to medium.
func (s Store) Create(p CreateParams) (types.Mission, error) {
	status := types.MissionInbox
	if p.Status != nil {
		status = *p.Status
	} else if p.AssignedTo != nil {
		status = types.MissionAssigned
	}
	priority := "medium"
	if p.Priority != nil {
		priority = *p.Priority
	}
	m := types.Mission{
		ID:           uuid.NewString(),
		Title:        p.Title,
		Description:  p.Description,
		Status:       status,
		Priority:     priority,
		AssignedTo:   p.AssignedTo,
		Asset:        p.Asset,
		Frequency:    p.Frequency,
		Tags:         p.Tags,
		ScheduledFor: p.ScheduledFor,
	}
	return m, s.db.Create(&m).Error
}

func (s Store) Get(id string) (types.Mission, error) {
	var m types.Mission
	return m, s.db.First(&m, "id = ?", id).Error
}

// UpdateStatus moves a mission on the board. The first transition into done
// stamps completedAt; later re-entries leave the original stamp alone.
func (s Store) UpdateStatus(id, status string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var m types.Mission
		if err := tx.First(&m, "id = ?", id).Error; err != nil {
			return err
		}
		updates := map[string]interface{}{"status": status}
		if status == types.MissionDone && m.CompletedAt == nil {
			updates["completed_at"] = types.NowMillis()
		}
		return tx.Model(&m).Updates(updates).Error
	})
}

// Assign sets the assignee and forces status back to "assigned", whatever the
// mission's current stage. Moving a done mission backward is intended.
func (s Store) Assign(id, agentID string) error {
	res := s.db.Model(&types.Mission{}).Where("id = ?", id).Updates(map[string]interface{}{
		"assigned_to": agentID,
		"status":      types.MissionAssigned,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type UpdateParams struct {
	Title        *string
	Description  *string
	Priority     *string
	Tags         []string
	ScheduledFor *int64
}

// Update patches the supplied fields and refreshes updatedAt.
func (s Store) Update(id string, p UpdateParams) error {
	updates := map[string]interface{}{}
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}
	if p.Priority != nil {
		updates["priority"] = *p.Priority
	}
	if p.Tags != nil {
		updates["tags"] = p.Tags
	}
	if p.ScheduledFor != nil {
		updates["scheduled_for"] = *p.ScheduledFor
	}
	updates["updated_at"] = types.NowMillis()
	res := s.db.Model(&types.Mission{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Remove hard-deletes the row. Not the same thing as status "deleted".
func (s Store) Remove(id string) error {
	res := s.db.Delete(&types.Mission{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s Store) ByStatus(status string) ([]types.Mission, error) {
	var out []types.Mission
	return out, s.db.Where("status = ?", status).Find(&out).Error
}

func (s Store) ByAssignee(agentID string) ([]types.Mission, error) {
	var out []types.Mission
	return out, s.db.Where("assigned_to = ?", agentID).Find(&out).Error
}

// All returns every mission, newest first. Soft-deleted rows are included;
// filtering them is a presentation concern.
func (s Store) All() ([]types.Mission, error) {
	var out []types.Mission
	return out, s.db.Order("created_at desc").Find(&out).Error
}

// Counts tallies missions per pipeline stage. Only the five board columns
// appear in the map; "deleted" and unknown statuses are dropped.
func (s Store) Counts() (map[string]int, error) {
	counts := map[string]int{
		types.MissionInbox:      0,
		types.MissionAssigned:   0,
		types.MissionInProgress: 0,
		types.MissionReview:     0,
		types.MissionDone:       0,
	}
	rows := []struct {
		Status string
		N      int
	}{}
	err := s.db.Model(&types.Mission{}).Select("status, count(*) as n").Group("status").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		if _, ok := counts[r.Status]; ok {
			counts[r.Status] = r.N
		}
	}
	return counts, nil
}

// ClearAll wipes the board and reports how many missions were removed.
func (s Store) ClearAll() (int64, error) {
	res := s.db.Where("1 = 1").Delete(&types.Mission{})
	return res.RowsAffected, res.Error
}
