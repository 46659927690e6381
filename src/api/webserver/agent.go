package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/quantops/mission-control/src/api/agents"
)

type Agents struct {
	registry agents.Registry
}

func NewAgents(db *gorm.DB) Agents {
	return Agents{registry: agents.NewRegistry(db)}
}

func (h Agents) Upsert(c *gin.Context) {
	var req struct {
		AgentID     string  `json:"agentId" binding:"required"`
		Name        *string `json:"name"`
		Role        *string `json:"role"`
		Emoji       *string `json:"emoji"`
		Status      *string `json:"status"`
		CurrentTask *string `json:"currentTask"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	err := h.registry.UpsertProfile(req.AgentID, agents.ProfileParams{
		Name:        req.Name,
		Role:        req.Role,
		Emoji:       req.Emoji,
		Status:      req.Status,
		CurrentTask: req.CurrentTask,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
