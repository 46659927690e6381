package assets

import (
	"testing"

	"github.com/glebarez/sqlite"
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
	if err := db.AutoMigrate(&types.Asset{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }

func TestClassifyThresholds(t *testing.T) {
	cases := []struct {
		gapRatio float64
		want     string
	}{
		{0.95, types.AssetHealthy},
		{1.0, types.AssetHealthy},
		{1.10, types.AssetHealthy}, // boundary: exactly 1.10 stays healthy
		{1.11, types.AssetWarning},
		{1.20, types.AssetWarning}, // boundary: exactly 1.20 stays warning
		{1.21, types.AssetCritical},
		{2.5, types.AssetCritical},
	}
	for _, tc := range cases {
		if got := Classify(tc.gapRatio); got != tc.want {
			t.Errorf("Classify(%v) = %q, want %q", tc.gapRatio, got, tc.want)
		}
	}
}

func TestReportCreatesAndClassifies(t *testing.T) {
	tr := NewTracker(newTestDB(t))
	a, err := tr.Report("BTC", "high", 1.25, ReportParams{Rank: intPtr(3)})
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if a.Status != types.AssetCritical {
		t.Errorf("status = %q, want critical", a.Status)
	}
	if a.Rank == nil || *a.Rank != 3 {
		t.Errorf("rank = %v, want 3", a.Rank)
	}
	if a.LastUpdate == 0 {
		t.Error("lastUpdate not stamped")
	}
}

func TestReportRecomputesStatusOnEveryWrite(t *testing.T) {
	tr := NewTracker(newTestDB(t))
	if _, err := tr.Report("ETH", "high", 1.30, ReportParams{}); err != nil {
		t.Fatalf("report: %v", err)
	}
	a, err := tr.Report("ETH", "high", 1.05, ReportParams{})
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if a.Status != types.AssetHealthy {
		t.Errorf("status = %q, want healthy after recovery", a.Status)
	}
}

func TestReportLeavesUnsuppliedFieldsAlone(t *testing.T) {
	tr := NewTracker(newTestDB(t))
	if _, err := tr.Report("SOL", "low", 1.0, ReportParams{Rank: intPtr(7), CurrentSigma: floatPtr(0.42)}); err != nil {
		t.Fatalf("report: %v", err)
	}

	a, err := tr.Report("SOL", "low", 1.15, ReportParams{})
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if a.Rank == nil || *a.Rank != 7 {
		t.Errorf("rank = %v, want 7 preserved", a.Rank)
	}
	if a.CurrentSigma == nil || *a.CurrentSigma != 0.42 {
		t.Errorf("currentSigma = %v, want 0.42 preserved", a.CurrentSigma)
	}
	if a.Status != types.AssetWarning {
		t.Errorf("status = %q, want warning", a.Status)
	}
}

func TestMarkOptimizedDoesNotTouchHealth(t *testing.T) {
	tr := NewTracker(newTestDB(t))
	if _, err := tr.Report("XAU", "high", 1.5, ReportParams{}); err != nil {
		t.Fatalf("report: %v", err)
	}

	if err := tr.MarkOptimized("XAU", "high", 0.31); err != nil {
		t.Fatalf("markOptimized: %v", err)
	}
	all, _ := tr.All()
	if len(all) != 1 {
		t.Fatalf("got %d assets, want 1", len(all))
	}
	a := all[0]
	if a.Status != types.AssetCritical || a.GapRatio != 1.5 {
		t.Errorf("health changed: status=%q gapRatio=%v", a.Status, a.GapRatio)
	}
	if a.LastOptimized == nil {
		t.Error("lastOptimized not stamped")
	}
	if a.CurrentSigma == nil || *a.CurrentSigma != 0.31 {
		t.Errorf("currentSigma = %v, want 0.31", a.CurrentSigma)
	}
}

func TestSeedSkipsExistingPairs(t *testing.T) {
	tr := NewTracker(newTestDB(t))
	if _, err := tr.Report("BTC", "high", 1.4, ReportParams{}); err != nil {
		t.Fatalf("report: %v", err)
	}

	if err := tr.Seed(data.DefaultAssets); err != nil {
		t.Fatalf("seed: %v", err)
	}
	all, err := tr.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != len(data.DefaultAssets) {
		t.Fatalf("got %d assets, want %d", len(all), len(data.DefaultAssets))
	}
	for _, a := range all {
		if a.Symbol == "BTC" && a.Frequency == "high" {
			if a.GapRatio != 1.4 || a.Status != types.AssetCritical {
				t.Errorf("seed clobbered live pair: %+v", a)
			}
		} else if a.GapRatio != 1.0 || a.Status != types.AssetHealthy {
			t.Errorf("seeded pair %s/%s not neutral: %+v", a.Symbol, a.Frequency, a)
		}
	}

	// Second seed is a no-op.
	if err := tr.Seed(data.DefaultAssets); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	again, _ := tr.All()
	if len(again) != len(all) {
		t.Errorf("reseed changed count: %d -> %d", len(all), len(again))
	}
}

func TestByStatus(t *testing.T) {
	tr := NewTracker(newTestDB(t))
	if _, err := tr.Report("BTC", "high", 1.30, ReportParams{}); err != nil {
		t.Fatalf("report: %v", err)
	}
	if _, err := tr.Report("ETH", "high", 1.0, ReportParams{}); err != nil {
		t.Fatalf("report: %v", err)
	}

	crit, err := tr.ByStatus(types.AssetCritical)
	if err != nil {
		t.Fatalf("byStatus: %v", err)
	}
	if len(crit) != 1 || crit[0].Symbol != "BTC" {
		t.Errorf("critical = %v, want [BTC]", crit)
	}
}
