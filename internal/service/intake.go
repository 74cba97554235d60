package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flexvoice/backend/internal/plan"
)

// draftTTL bounds how long an abandoned call's draft lingers in Redis.
const draftTTL = 2 * time.Hour

// IntakeService accumulates intake attributes in Redis while a voice call is
// in progress. Each call gets one draft, merged as extraction events arrive
// and consumed when the call ends.
type IntakeService struct {
	redis *redis.Client
}

// NewIntakeService creates a new IntakeService instance
func NewIntakeService(redisClient *redis.Client) *IntakeService {
	return &IntakeService{redis: redisClient}
}

// SaveDraft stores the draft for a call, replacing any existing one.
func (s *IntakeService) SaveDraft(ctx context.Context, callID string, intake plan.Intake) error {
	data, err := json.Marshal(intake)
	if err != nil {
		return fmt.Errorf("failed to marshal intake draft: %w", err)
	}

	if err := s.redis.Set(ctx, draftKey(callID), data, draftTTL).Err(); err != nil {
		return fmt.Errorf("failed to save intake draft: %w", err)
	}
	return nil
}

// GetDraft retrieves the draft for a call.
func (s *IntakeService) GetDraft(ctx context.Context, callID string) (plan.Intake, error) {
	data, err := s.redis.Get(ctx, draftKey(callID)).Bytes()
	if err != nil {
		return plan.Intake{}, fmt.Errorf("failed to get intake draft: %w", err)
	}

	var intake plan.Intake
	if err := json.Unmarshal(data, &intake); err != nil {
		return plan.Intake{}, fmt.Errorf("failed to unmarshal intake draft: %w", err)
	}
	return intake, nil
}

// MergeDraft overlays update onto the stored draft and saves the result. A
// missing draft starts empty, so out-of-order first events are harmless.
func (s *IntakeService) MergeDraft(ctx context.Context, callID string, update plan.Intake) (plan.Intake, error) {
	current := plan.Intake{}

	data, err := s.redis.Get(ctx, draftKey(callID)).Bytes()
	switch {
	case err == redis.Nil:
		// No draft yet
	case err != nil:
		return plan.Intake{}, fmt.Errorf("failed to get intake draft: %w", err)
	default:
		if err := json.Unmarshal(data, &current); err != nil {
			return plan.Intake{}, fmt.Errorf("failed to unmarshal intake draft: %w", err)
		}
	}

	merged := current.Merge(update)
	if err := s.SaveDraft(ctx, callID, merged); err != nil {
		return plan.Intake{}, err
	}
	return merged, nil
}

// DeleteDraft removes the draft for a call.
func (s *IntakeService) DeleteDraft(ctx context.Context, callID string) error {
	if err := s.redis.Del(ctx, draftKey(callID)).Err(); err != nil {
		return fmt.Errorf("failed to delete intake draft: %w", err)
	}
	return nil
}

func draftKey(callID string) string {
	return fmt.Sprintf("intake:draft:%s", callID)
}
