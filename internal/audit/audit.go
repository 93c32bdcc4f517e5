package audit

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"gorm.io/gorm"
)

// Entry is one audit fact: who did what to which entity, with before/after
// snapshots. Writes are best-effort; a failed audit write never blocks or
// rolls back the financial mutation it describes.
type Entry struct {
	Entity   string
	EntityID string
	Op       string
	Actor    string
	Before   any
	After    any
}

type Recorder interface {
	Record(ctx context.Context, e Entry)
}

type logRow struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	Entity    string    `gorm:"column:entity;type:varchar(32);index"`
	EntityID  string    `gorm:"column:entity_id;type:char(32);index"`
	Op        string    `gorm:"column:op;type:varchar(32)"`
	Actor     string    `gorm:"column:actor;type:char(32)"`
	Before    string    `gorm:"column:before_snapshot;type:text"`
	After     string    `gorm:"column:after_snapshot;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (logRow) TableName() string { return "audit_logs" }

type GormRecorder struct{ db *gorm.DB }

func NewGormRecorder(db *gorm.DB) *GormRecorder { return &GormRecorder{db: db} }

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&logRow{}, &Adjustment{})
}

func (r *GormRecorder) Record(ctx context.Context, e Entry) {
	row := logRow{
		Entity:   e.Entity,
		EntityID: e.EntityID,
		Op:       e.Op,
		Actor:    e.Actor,
		Before:   marshal(e.Before),
		After:    marshal(e.After),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		log.Printf("audit: write failed for %s/%s %s: %v", e.Entity, e.EntityID, e.Op, err)
	}
}

func marshal(v any) string {
	if v == nil {
		return ""
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Noop satisfies Recorder for wiring that does not need auditing (tests).
type Noop struct{}

func (Noop) Record(context.Context, Entry) {}
