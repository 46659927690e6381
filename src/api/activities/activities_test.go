package activities

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/quantops/mission-control/src/api/agents"
	"github.com/quantops/mission-control/src/api/data"
	"github.com/quantops/mission-control/src/api/types"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&types.Agent{}, &types.Activity{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seededLog(t *testing.T) (Log, agents.Registry) {
	t.Helper()
	db := newTestDB(t)
	r := agents.NewRegistry(db)
	if err := r.Seed(data.DefaultAgents); err != nil {
		t.Fatalf("seed agents: %v", err)
	}
	return NewLog(db, nil), r
}

func strPtr(s string) *string { return &s }

func TestRecordFailureMarksAgentError(t *testing.T) {
	l, r := seededLog(t)

	_, err := l.Record(RecordParams{AgentID: "gold", Action: "check", Result: types.ResultFailure})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	a, err := r.Get("gold")
	if err != nil {
		t.Fatalf("get agent: %v", err)
	}
	if a.Status != "error" {
		t.Errorf("status = %q, want error", a.Status)
	}
	if a.CurrentTask == nil || *a.CurrentTask != "check" {
		t.Errorf("currentTask = %v, want check", a.CurrentTask)
	}
}

func TestRecordSuccessMarksAgentActive(t *testing.T) {
	l, r := seededLog(t)

	_, err := l.Record(RecordParams{AgentID: "crypto", Action: "optimize", Result: types.ResultSuccess})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	a, _ := r.Get("crypto")
	if a.Status != "active" {
		t.Errorf("status = %q, want active", a.Status)
	}
}

func TestRecordUnknownAgentStillAppends(t *testing.T) {
	l, r := seededLog(t)

	got, err := l.Record(RecordParams{AgentID: "ghost", Action: "spawn", Result: types.ResultPending})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if got.ID == 0 {
		t.Error("activity not persisted")
	}
	a, _ := r.Get("ghost")
	if a != nil {
		t.Errorf("registry gained unknown agent: %+v", a)
	}
}

func TestRecentIsNewestFirstAndBounded(t *testing.T) {
	l, _ := seededLog(t)
	actions := []string{"check", "optimize", "deploy", "alert"}
	for _, action := range actions {
		if _, err := l.Record(RecordParams{AgentID: "crypto", Action: action, Result: types.ResultSuccess}); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	got, err := l.Recent(3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d activities, want 3", len(got))
	}
	if got[0].Action != "alert" || got[2].Action != "optimize" {
		t.Errorf("unexpected order: %s .. %s", got[0].Action, got[2].Action)
	}
}

func TestByAgentFilters(t *testing.T) {
	l, _ := seededLog(t)
	if _, err := l.Record(RecordParams{AgentID: "crypto", Action: "check", Result: types.ResultSuccess}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := l.Record(RecordParams{AgentID: "gold", Action: "check", Result: types.ResultSuccess}); err != nil {
		t.Fatalf("record: %v", err)
	}

	got, err := l.ByAgent("gold", 0)
	if err != nil {
		t.Fatalf("byAgent: %v", err)
	}
	if len(got) != 1 || got[0].AgentID != "gold" {
		t.Errorf("byAgent = %v, want one gold record", got)
	}
}

func TestByAssetOptionalFrequency(t *testing.T) {
	l, _ := seededLog(t)
	recs := []RecordParams{
		{AgentID: "crypto", Action: "check", Result: types.ResultSuccess, Asset: strPtr("BTC"), Frequency: strPtr("high")},
		{AgentID: "crypto", Action: "check", Result: types.ResultSuccess, Asset: strPtr("BTC"), Frequency: strPtr("low")},
		{AgentID: "gold", Action: "check", Result: types.ResultSuccess, Asset: strPtr("XAU"), Frequency: strPtr("high")},
	}
	for _, p := range recs {
		if _, err := l.Record(p); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	both, err := l.ByAsset("BTC", nil, 0)
	if err != nil {
		t.Fatalf("byAsset: %v", err)
	}
	if len(both) != 2 {
		t.Errorf("byAsset BTC = %d records, want 2", len(both))
	}

	high, err := l.ByAsset("BTC", strPtr("high"), 0)
	if err != nil {
		t.Fatalf("byAsset: %v", err)
	}
	if len(high) != 1 || *high[0].Frequency != "high" {
		t.Errorf("byAsset BTC/high = %v, want one high record", high)
	}
}

func TestClearAllReportsCountAndEmpties(t *testing.T) {
	l, _ := seededLog(t)
	for i := 0; i < 5; i++ {
		if _, err := l.Record(RecordParams{AgentID: "crypto", Action: "check", Result: types.ResultSuccess}); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	n, err := l.ClearAll()
	if err != nil {
		t.Fatalf("clearAll: %v", err)
	}
	if n != 5 {
		t.Errorf("cleared %d, want 5", n)
	}
	rest, _ := l.Recent(0)
	if len(rest) != 0 {
		t.Errorf("log not empty after clearAll: %d records", len(rest))
	}
}
