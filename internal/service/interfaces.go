package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/flexvoice/backend/internal/models"
	"github.com/flexvoice/backend/internal/plan"
)

// TextGenerator is the external generative-text provider boundary. It is sent
// a single prompt and must return text parseable as JSON.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// IPlanService defines the plan persistence operations the rest of the
// application consumes.
type IPlanService interface {
	Create(ctx context.Context, p *models.Plan) error
	ListByUser(ctx context.Context, userID string) ([]*models.Plan, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Plan, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Activate(ctx context.Context, id uuid.UUID, userID string) (*models.Plan, error)
}

// IGeneratorService runs the end-to-end plan generation procedure.
type IGeneratorService interface {
	GeneratePlan(ctx context.Context, intake plan.Intake) (*models.Plan, error)
}

// IIntakeService manages per-call intake drafts while a voice conversation is
// in progress.
type IIntakeService interface {
	SaveDraft(ctx context.Context, callID string, intake plan.Intake) error
	GetDraft(ctx context.Context, callID string) (plan.Intake, error)
	MergeDraft(ctx context.Context, callID string, update plan.Intake) (plan.Intake, error)
	DeleteDraft(ctx context.Context, callID string) error
}

// IRecordingService archives call recordings after a conversation ends.
type IRecordingService interface {
	Enabled() bool
	ArchiveRecording(ctx context.Context, callID, recordingURL string) (string, error)
}
