package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flexvoice/backend/internal/models"
)

// PlanService handles plan persistence. At most one plan per user is active:
// creating or activating a plan deactivates the user's other plans inside the
// same transaction.
type PlanService struct {
	db *gorm.DB
}

// NewPlanService creates a new PlanService instance
func NewPlanService(db *gorm.DB) *PlanService {
	return &PlanService{db: db}
}

// Create persists a new plan. When the plan is marked active, previously
// active plans for the same user are deactivated first.
func (s *PlanService) Create(ctx context.Context, p *models.Plan) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if p.IsActive {
			if err := tx.Model(&models.Plan{}).
				Where("user_id = ? AND is_active = ?", p.UserID, true).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(p).Error
	})
}

// ListByUser returns a user's plans, newest first.
func (s *PlanService) ListByUser(ctx context.Context, userID string) ([]*models.Plan, error) {
	var plans []models.Plan
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error; err != nil {
		return nil, err
	}

	result := make([]*models.Plan, len(plans))
	for i := range plans {
		result[i] = &plans[i]
	}
	return result, nil
}

// Get retrieves a plan by ID
func (s *PlanService) Get(ctx context.Context, id uuid.UUID) (*models.Plan, error) {
	var p models.Plan
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes a plan by ID
func (s *PlanService) Delete(ctx context.Context, id uuid.UUID) error {
	var p models.Plan
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&models.Plan{}, "id = ?", id).Error
}

// Activate marks the given plan as the user's active plan and deactivates the
// rest atomically.
func (s *PlanService) Activate(ctx context.Context, id uuid.UUID, userID string) (*models.Plan, error) {
	var p models.Plan
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, "id = ? AND user_id = ?", id, userID).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Plan{}).
			Where("user_id = ? AND is_active = ?", userID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&p).Update("is_active", true).Error
	})
	if err != nil {
		return nil, err
	}
	p.IsActive = true
	return &p, nil
}
