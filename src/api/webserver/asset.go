package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/quantops/mission-control/src/api/assets"
)

type Assets struct {
	tracker assets.Tracker
}

func NewAssets(db *gorm.DB) Assets {
	return Assets{tracker: assets.NewTracker(db)}
}

func (h Assets) Report(c *gin.Context) {
	var req struct {
		Symbol       string   `json:"symbol" binding:"required"`
		Frequency    string   `json:"frequency" binding:"required"`
		GapRatio     *float64 `json:"gapRatio" binding:"required"`
		Rank         *int     `json:"rank"`
		CurrentSigma *float64 `json:"currentSigma"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	_, err := h.tracker.Report(req.Symbol, req.Frequency, *req.GapRatio, assets.ReportParams{
		Rank:         req.Rank,
		CurrentSigma: req.CurrentSigma,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
