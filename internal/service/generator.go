package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/flexvoice/backend/internal/models"
	"github.com/flexvoice/backend/internal/plan"
)

// Generation failure taxonomy. Handlers map these onto HTTP responses; none
// of them ever leaves a partially persisted plan behind.
var (
	ErrUpstreamGeneration = errors.New("upstream generation failed")
	ErrUpstreamParse      = errors.New("upstream response is not valid JSON")
	ErrPersistence        = errors.New("plan persistence failed")
)

// GeneratorService orchestrates one plan generation: build both prompts, call
// the model for each, parse and repair the output, then persist exactly one
// Plan once both documents validated.
type GeneratorService struct {
	generator TextGenerator
	plans     IPlanService
}

// NewGeneratorService creates a new GeneratorService instance
func NewGeneratorService(generator TextGenerator, plans IPlanService) *GeneratorService {
	return &GeneratorService{
		generator: generator,
		plans:     plans,
	}
}

// GeneratePlan runs the full pipeline for one intake. The two model calls are
// independent and run concurrently; a failure in either aborts the whole
// operation before anything is written.
func (s *GeneratorService) GeneratePlan(ctx context.Context, intake plan.Intake) (*models.Plan, error) {
	workoutPrompt := plan.BuildWorkoutPrompt(intake)
	dietPrompt := plan.BuildDietPrompt(intake)

	var workoutPlan plan.WorkoutPlan
	var dietPlan plan.DietPlan

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		raw, err := s.generateDocument(gctx, workoutPrompt, "workout")
		if err != nil {
			return err
		}
		workoutPlan = plan.ValidateWorkoutPlan(raw)
		return nil
	})
	g.Go(func() error {
		raw, err := s.generateDocument(gctx, dietPrompt, "diet")
		if err != nil {
			return err
		}
		dietPlan = plan.ValidateDietPlan(raw)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	p := &models.Plan{
		UserID:      intake.UserID,
		Name:        planName(intake),
		WorkoutPlan: workoutPlan,
		DietPlan:    dietPlan,
		IsActive:    true,
	}

	if err := s.plans.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	log.Printf("[GeneratorService] Created plan %s for user %s", p.ID, p.UserID)
	return p, nil
}

// generateDocument performs one model call and decodes the returned text.
// A provider error and an unparseable response are distinct failures: the
// first is ErrUpstreamGeneration, the second ErrUpstreamParse. Repairing
// parseable-but-malformed structures is the validator's job, not an error.
func (s *GeneratorService) generateDocument(ctx context.Context, prompt, label string) (interface{}, error) {
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUpstreamGeneration, label, err)
	}

	var decoded interface{}
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUpstreamParse, label, err)
	}

	return decoded, nil
}

func planName(intake plan.Intake) string {
	goal := intake.FitnessGoal
	if goal == "" {
		goal = "Fitness"
	}
	return fmt.Sprintf("%s Plan - %s", goal, time.Now().Format("Jan 2, 2006"))
}
