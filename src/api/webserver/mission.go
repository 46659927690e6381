package webserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/quantops/mission-control/src/api/missions"
)

type Missions struct {
	store missions.Store
}

func NewMissions(db *gorm.DB) Missions {
	return Missions{store: missions.NewStore(db)}
}

func (h Missions) Create(c *gin.Context) {
	var req struct {
		Title        string   `json:"title" binding:"required,max=255"`
		Description  *string  `json:"description"`
		Priority     *string  `json:"priority" binding:"omitempty,oneof=low medium high"`
		AssignedTo   *string  `json:"assignedTo"`
		Asset        *string  `json:"asset"`
		Frequency    *string  `json:"frequency"`
		Tags         []string `json:"tags"`
		ScheduledFor *int64   `json:"scheduledFor"`
		Status       *string  `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	m, err := h.store.Create(missions.CreateParams{
		Title:        req.Title,
		Description:  req.Description,
		Priority:     req.Priority,
		AssignedTo:   req.AssignedTo,
		Asset:        req.Asset,
		Frequency:    req.Frequency,
		Tags:         req.Tags,
		ScheduledFor: req.ScheduledFor,
		Status:       req.Status,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "missionId": m.ID})
}

func (h Missions) UpdateStatus(c *gin.Context) {
	var req struct {
		ID     string `json:"id" binding:"required"`
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	if err := h.store.UpdateStatus(req.ID, req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"err": "mission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// List serves the board. With both filters present agentId wins; status is
// only consulted when no agent filter was given.
func (h Missions) List(c *gin.Context) {
	agentID := c.Query("agentId")
	status := c.Query("status")

	var (
		out interface{}
		err error
	)
	switch {
	case agentID != "":
		out, err = h.store.ByAssignee(agentID)
	case status != "":
		out, err = h.store.ByStatus(status)
	default:
		out, err = h.store.All()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}
