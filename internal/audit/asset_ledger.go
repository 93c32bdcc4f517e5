package audit

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"loan-collection-service/internal/domain/party"
	"loan-collection-service/pkg/money"
)

// Adjustment is one append-only row in an actor's running-balance history.
// Rows are never updated or deleted.
type Adjustment struct {
	ID        uint64     `gorm:"column:id;primaryKey;autoIncrement"`
	ActorID   string     `gorm:"column:actor_id;type:char(32);index"`
	Role      party.Role `gorm:"column:role;type:varchar(24)"`
	Field     string     `gorm:"column:field;type:varchar(32)"`
	OldValue  float64    `gorm:"column:old_value;type:decimal(18,2)"`
	NewValue  float64    `gorm:"column:new_value;type:decimal(18,2)"`
	Delta     float64    `gorm:"column:delta;type:decimal(18,2)"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (Adjustment) TableName() string { return "asset_adjustments" }

// AssetLedger records running-balance changes for collection staff whenever
// loan totals move. Like the audit sink it is best-effort only.
type AssetLedger interface {
	Adjust(ctx context.Context, actorID string, role party.Role, oldValue, newValue float64)
}

type GormAssetLedger struct{ db *gorm.DB }

func NewGormAssetLedger(db *gorm.DB) *GormAssetLedger { return &GormAssetLedger{db: db} }

func (l *GormAssetLedger) Adjust(ctx context.Context, actorID string, role party.Role, oldValue, newValue float64) {
	if oldValue == newValue {
		return
	}
	row := Adjustment{
		ActorID:  actorID,
		Role:     role,
		Field:    role.BalanceField(),
		OldValue: money.Round2(oldValue),
		NewValue: money.Round2(newValue),
		Delta:    money.Sub2(newValue, oldValue),
	}
	if err := l.db.WithContext(ctx).Create(&row).Error; err != nil {
		log.Printf("asset ledger: write failed for %s (%s): %v", actorID, row.Field, err)
	}
}

// NoopAssetLedger satisfies AssetLedger for tests.
type NoopAssetLedger struct{}

func (NoopAssetLedger) Adjust(context.Context, string, party.Role, float64, float64) {}
