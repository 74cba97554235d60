package types

import "github.com/flexvoice/backend/internal/plan"

// GeneratePlanRequest is the direct (non-voice) generation payload. The user
// id is taken from the session token, not the body.
type GeneratePlanRequest struct {
	Age                 string `json:"age"`
	Height              string `json:"height"`
	Weight              string `json:"weight"`
	Injuries            string `json:"injuries"`
	WorkoutDays         string `json:"workout_days"`
	FitnessGoal         string `json:"fitness_goal" binding:"required"`
	FitnessLevel        string `json:"fitness_level"`
	DietaryRestrictions string `json:"dietary_restrictions"`
}

// Intake converts the request into a generation intake for the given user.
func (r GeneratePlanRequest) Intake(userID string) plan.Intake {
	return plan.Intake{
		UserID:              userID,
		Age:                 r.Age,
		Height:              r.Height,
		Weight:              r.Weight,
		Injuries:            r.Injuries,
		WorkoutDays:         r.WorkoutDays,
		FitnessGoal:         r.FitnessGoal,
		FitnessLevel:        r.FitnessLevel,
		DietaryRestrictions: r.DietaryRestrictions,
	}
}

// VoiceEvent is one lifecycle event delivered by the voice-conversation
// provider's webhook. Events for a call arrive in order; intake attributes are
// already extracted upstream from the transcript.
type VoiceEvent struct {
	Type         string       `json:"type"`
	Call         VoiceCall    `json:"call"`
	UserID       string       `json:"user_id"`
	RecordingURL string       `json:"recording_url,omitempty"`
	Intake       *plan.Intake `json:"intake,omitempty"`
}

// VoiceCall identifies the call an event belongs to.
type VoiceCall struct {
	ID string `json:"id"`
}

// Voice event types this backend reacts to.
const (
	VoiceEventCallStarted   = "call.started"
	VoiceEventIntakeUpdated = "intake.updated"
	VoiceEventCallEnded     = "call.ended"
)
