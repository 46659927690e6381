package missions

import (
	"github.com/quantops/mission-control/src/api/types"
)

// AddComment attaches a note to a mission. The mission id is a weak
// reference; commenting on a removed mission is allowed.
func (s Store) AddComment(missionID, agentID, text string) (types.Comment, error) {
	c := types.Comment{
		MissionID: missionID,
		AgentID:   agentID,
		Text:      text,
		Timestamp: types.NowMillis(),
	}
	return c, s.db.Create(&c).Error
}

func (s Store) CommentsByMission(missionID string) ([]types.Comment, error) {
	var out []types.Comment
	return out, s.db.Where("mission_id = ?", missionID).Order("timestamp asc").Find(&out).Error
}
