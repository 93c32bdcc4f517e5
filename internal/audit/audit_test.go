package audit

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"loan-collection-service/internal/domain/party"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestGormRecorder_WritesRow(t *testing.T) {
	db := openTestDB(t)
	rec := NewGormRecorder(db)

	rec.Record(context.Background(), Entry{
		Entity:   "loan",
		EntityID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Op:       "create",
		Actor:    "cccccccccccccccccccccccccccccccc",
		After:    map[string]any{"loan_amount": 300},
	})

	var row logRow
	if err := db.First(&row).Error; err != nil {
		t.Fatalf("load audit row: %v", err)
	}
	if row.Entity != "loan" || row.Op != "create" {
		t.Errorf("unexpected row: %+v", row)
	}
	if row.Before != "" {
		t.Errorf("nil before snapshot should serialize empty, got %q", row.Before)
	}
	if row.After != `{"loan_amount":300}` {
		t.Errorf("after snapshot = %q", row.After)
	}
}

func TestGormAssetLedger_AppendsAdjustment(t *testing.T) {
	db := openTestDB(t)
	l := NewGormAssetLedger(db)
	ctx := context.Background()

	l.Adjust(ctx, "cccccccccccccccccccccccccccccccc", party.Collector, 0, 110)
	l.Adjust(ctx, "cccccccccccccccccccccccccccccccc", party.Collector, 110, 110) // unchanged: skipped
	l.Adjust(ctx, "cccccccccccccccccccccccccccccccc", party.Collector, 110, 60)

	var rows []Adjustment
	if err := db.Order("id ASC").Find(&rows).Error; err != nil {
		t.Fatalf("load adjustments: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2 (no-change adjust skipped)", len(rows))
	}
	if rows[0].Field != "collector_receiving" || rows[0].Delta != 110 {
		t.Errorf("first adjustment: %+v", rows[0])
	}
	if rows[1].Delta != -50 || rows[1].NewValue != 60 {
		t.Errorf("second adjustment: %+v", rows[1])
	}
}
