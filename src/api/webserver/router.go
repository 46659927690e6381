package webserver

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/quantops/mission-control/src/api/config"
)

func attachRoutes(r *gin.Engine, cfg config.Config, db *gorm.DB, rdb *redis.Client) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"http://localhost:3000", "https://dash.missionctl.io"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	activityH := NewActivities(db, rdb)
	assetH := NewAssets(db)
	agentH := NewAgents(db)
	missionH := NewMissions(db)

	secured := r.Group("/", BearerAuth(cfg.APIToken))
	{
		secured.POST("/log", activityH.Create)
		secured.POST("/asset", assetH.Report)
		secured.POST("/agent", agentH.Upsert)
		secured.POST("/mission", missionH.Create)
		secured.POST("/mission/status", missionH.UpdateStatus)
		secured.GET("/missions", missionH.List)
	}
}
