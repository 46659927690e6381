package types

// Agent is the canonical identity and live status of a worker.
// Status is an open vocabulary: profile writers use online/offline/busy/idle,
// the activity log side effect writes active/error. Both sets are live in the
// data; do not collapse them into one enum.
type Agent struct {
	AgentID     string  `gorm:"primaryKey;size:32" json:"agentId"`
	Name        string  `gorm:"size:64;not null" json:"name"`
	Role        string  `gorm:"size:128" json:"role"`
	Emoji       string  `gorm:"size:16" json:"emoji"`
	Status      string  `gorm:"size:16;not null" json:"status"`
	LastRun     int64   `gorm:"not null" json:"lastRun"`
	CurrentTask *string `gorm:"size:255" json:"currentTask,omitempty"`
}

// Mission pipeline statuses. "deleted" is a soft marker, distinct from a hard
// Remove; rows carrying it stay in the table.
const (
	MissionInbox      = "inbox"
	MissionAssigned   = "assigned"
	MissionInProgress = "in_progress"
	MissionReview     = "review"
	MissionDone       = "done"
	MissionDeleted    = "deleted"
)

// Mission is a unit of work on the Kanban board. AssignedTo is a weak
// reference to Agent.AgentID; nothing enforces it exists.
type Mission struct {
	ID           string   `gorm:"primaryKey;size:36" json:"id"`
	Title        string   `gorm:"size:255;not null" json:"title"`
	Description  *string  `gorm:"type:text" json:"description,omitempty"`
	Status       string   `gorm:"size:16;index;not null" json:"status"`
	Priority     string   `gorm:"size:8" json:"priority"`
	AssignedTo   *string  `gorm:"size:32;index" json:"assignedTo,omitempty"`
	Asset        *string  `gorm:"size:16;index" json:"asset,omitempty"`
	Frequency    *string  `gorm:"size:8" json:"frequency,omitempty"`
	Tags         []string `gorm:"serializer:json" json:"tags,omitempty"`
	ScheduledFor *int64   `json:"scheduledFor,omitempty"`
	CreatedAt    int64    `gorm:"autoCreateTime:milli" json:"createdAt"`
	UpdatedAt    int64    `gorm:"autoUpdateTime:milli" json:"updatedAt"`
	CompletedAt  *int64   `json:"completedAt,omitempty"`
}

// Activity is an immutable audit record. Timestamp is server-assigned.
type Activity struct {
	ID        uint64   `gorm:"primaryKey" json:"id"`
	AgentID   string   `gorm:"size:32;index;not null" json:"agentId"`
	Action    string   `gorm:"size:32;not null" json:"action"`
	Asset     *string  `gorm:"size:16;index:idx_activities_asset" json:"asset,omitempty"`
	Frequency *string  `gorm:"size:8;index:idx_activities_asset" json:"frequency,omitempty"`
	Result    string   `gorm:"size:16;not null" json:"result"`
	Details   *string  `gorm:"type:text" json:"details,omitempty"`
	MissionID *string  `gorm:"size:36;index" json:"missionId,omitempty"`
	GapRatio  *float64 `json:"gapRatio,omitempty"`
	SigmaOld  *float64 `json:"sigmaOld,omitempty"`
	SigmaNew  *float64 `json:"sigmaNew,omitempty"`
	Timestamp int64    `gorm:"index;not null" json:"timestamp"`
}

// Activity results.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultSkipped = "skipped"
	ResultPending = "pending"
)

// Asset health tiers, derived from gap ratio at write time.
const (
	AssetHealthy  = "healthy"
	AssetWarning  = "warning"
	AssetCritical = "critical"
)

// Asset tracks the health of one (symbol, frequency) pair.
type Asset struct {
	Symbol        string   `gorm:"primaryKey;size:16" json:"symbol"`
	Frequency     string   `gorm:"primaryKey;size:8" json:"frequency"`
	GapRatio      float64  `gorm:"not null" json:"gapRatio"`
	Rank          *int     `json:"rank,omitempty"`
	Status        string   `gorm:"size:16;index;not null" json:"status"`
	LastUpdate    int64    `gorm:"not null" json:"lastUpdate"`
	LastOptimized *int64   `json:"lastOptimized,omitempty"`
	CurrentSigma  *float64 `json:"currentSigma,omitempty"`
}

// Comment is a note attached to a mission. Weak reference, no cascade.
type Comment struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	MissionID string `gorm:"size:36;index;not null" json:"missionId"`
	AgentID   string `gorm:"size:32;not null" json:"agentId"`
	Text      string `gorm:"type:text;not null" json:"text"`
	Timestamp int64  `gorm:"not null" json:"timestamp"`
}
