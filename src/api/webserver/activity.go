package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/quantops/mission-control/src/api/activities"
)

type Activities struct {
	log activities.Log
}

func NewActivities(db *gorm.DB, rdb *redis.Client) Activities {
	return Activities{log: activities.NewLog(db, rdb)}
}

func (h Activities) Create(c *gin.Context) {
	var req struct {
		AgentID   string   `json:"agentId" binding:"required"`
		Action    string   `json:"action" binding:"required"`
		Result    string   `json:"result" binding:"required"`
		Asset     *string  `json:"asset"`
		Frequency *string  `json:"frequency"`
		Details   *string  `json:"details"`
		MissionID *string  `json:"missionId"`
		GapRatio  *float64 `json:"gapRatio"`
		SigmaOld  *float64 `json:"sigmaOld"`
		SigmaNew  *float64 `json:"sigmaNew"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	_, err := h.log.Record(activities.RecordParams{
		AgentID:   req.AgentID,
		Action:    req.Action,
		Result:    req.Result,
		Asset:     req.Asset,
		Frequency: req.Frequency,
		Details:   req.Details,
		MissionID: req.MissionID,
		GapRatio:  req.GapRatio,
		SigmaOld:  req.SigmaOld,
		SigmaNew:  req.SigmaNew,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
