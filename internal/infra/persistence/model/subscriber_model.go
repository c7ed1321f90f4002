package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"geowatch/internal/domain/entity"
)

// JSONB marshals its value to a PostgreSQL jsonb column.
type JSONB[T any] struct {
	V T
}

// Value implements driver.Valuer.
func (j JSONB[T]) Value() (driver.Value, error) {
	data, err := json.Marshal(j.V)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return string(data), nil
}

// Scan implements sql.Scanner.
func (j *JSONB[T]) Scan(src any) error {
	if src == nil {
		var zero T
		j.V = zero

		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.Errorf("unsupported jsonb source type %T", src)
	}

	return errors.WithStack(json.Unmarshal(raw, &j.V))
}

// SubscriberModel is the GORM-specific struct for the 'subscribers'
// table. Filter entries are stored as jsonb arrays so the shortlist
// queries can use containment operators without join tables.
type SubscriberModel struct {
	GuildID uint64 `gorm:"primaryKey;autoIncrement:false"`
	UserID  uint64 `gorm:"primaryKey;autoIncrement:false"`

	Location  string                             `gorm:"size:64"`
	Locations JSONB[[]entity.NamedLocation]      `gorm:"type:jsonb;not null;default:'[]'"`
	Creatures JSONB[[]entity.CreatureFilter]     `gorm:"type:jsonb;not null;default:'[]'"`
	Battles   JSONB[[]entity.RankedBattleFilter] `gorm:"type:jsonb;not null;default:'[]'"`
	Raids     JSONB[[]entity.RaidFilter]         `gorm:"type:jsonb;not null;default:'[]'"`
	Quests    JSONB[[]entity.QuestFilter]        `gorm:"type:jsonb;not null;default:'[]'"`
	Invasions JSONB[[]entity.InvasionFilter]     `gorm:"type:jsonb;not null;default:'[]'"`
	Lures     JSONB[[]entity.LureFilter]         `gorm:"type:jsonb;not null;default:'[]'"`
	Gyms      JSONB[[]entity.GymFilter]          `gorm:"type:jsonb;not null;default:'[]'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriberModel) TableName() string {
	return "subscribers"
}
