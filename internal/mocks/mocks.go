package mocks

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/flexvoice/backend/internal/models"
	"github.com/flexvoice/backend/internal/plan"
)

// ErrDraftNotFound mirrors a missing Redis key for the in-memory intake mock.
var ErrDraftNotFound = errors.New("draft not found")

// MockTextGenerator is a mock implementation of service.TextGenerator
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockPlanService is a mock implementation of service.IPlanService
type MockPlanService struct {
	mock.Mock
}

func (m *MockPlanService) Create(ctx context.Context, p *models.Plan) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPlanService) ListByUser(ctx context.Context, userID string) ([]*models.Plan, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Plan), args.Error(1)
}

func (m *MockPlanService) Get(ctx context.Context, id uuid.UUID) (*models.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Plan), args.Error(1)
}

func (m *MockPlanService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlanService) Activate(ctx context.Context, id uuid.UUID, userID string) (*models.Plan, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Plan), args.Error(1)
}

// MockGeneratorService is a mock implementation of service.IGeneratorService
type MockGeneratorService struct {
	mock.Mock
}

func (m *MockGeneratorService) GeneratePlan(ctx context.Context, intake plan.Intake) (*models.Plan, error) {
	args := m.Called(ctx, intake)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Plan), args.Error(1)
}

// MockIntakeService is an in-memory implementation of service.IIntakeService
// so webhook tests run without Redis.
type MockIntakeService struct {
	drafts map[string]plan.Intake
}

func NewMockIntakeService() *MockIntakeService {
	return &MockIntakeService{drafts: make(map[string]plan.Intake)}
}

func (m *MockIntakeService) SaveDraft(ctx context.Context, callID string, intake plan.Intake) error {
	m.drafts[callID] = intake
	return nil
}

func (m *MockIntakeService) GetDraft(ctx context.Context, callID string) (plan.Intake, error) {
	intake, ok := m.drafts[callID]
	if !ok {
		return plan.Intake{}, ErrDraftNotFound
	}
	return intake, nil
}

func (m *MockIntakeService) MergeDraft(ctx context.Context, callID string, update plan.Intake) (plan.Intake, error) {
	merged := m.drafts[callID].Merge(update)
	m.drafts[callID] = merged
	return merged, nil
}

func (m *MockIntakeService) DeleteDraft(ctx context.Context, callID string) error {
	delete(m.drafts, callID)
	return nil
}

// MockRecordingService is a mock implementation of service.IRecordingService
type MockRecordingService struct {
	mock.Mock
}

func (m *MockRecordingService) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockRecordingService) ArchiveRecording(ctx context.Context, callID, recordingURL string) (string, error) {
	args := m.Called(ctx, callID, recordingURL)
	return args.String(0), args.Error(1)
}
