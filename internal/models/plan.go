package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flexvoice/backend/internal/plan"
)

// Plan is a persisted fitness program: one validated workout document and one
// validated diet document for a single user. Plans are created once per
// successful generation and only ever mutated through activation or deletion.
type Plan struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`
	UserID       string           `gorm:"size:64;not null;index" json:"user_id"`
	Name         string           `gorm:"size:255;not null" json:"name"`
	WorkoutPlan  plan.WorkoutPlan `gorm:"type:jsonb;not null;default:'{}'" json:"workoutPlan"`
	DietPlan     plan.DietPlan    `gorm:"type:jsonb;not null;default:'{}'" json:"dietPlan"`
	IsActive     bool             `gorm:"not null;default:true;index" json:"isActive"`
	RecordingURL string           `gorm:"size:512" json:"recording_url,omitempty"`
}

// BeforeCreate assigns the plan ID so sqlite test databases work without a
// server-side uuid default.
func (p *Plan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
