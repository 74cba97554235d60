package api

import (
	"crypto/subtle"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flexvoice/backend/internal/plan"
	"github.com/flexvoice/backend/internal/service"
	"github.com/flexvoice/backend/internal/types"
)

// VoiceWebhookHandler receives call lifecycle events from the hosted voice
// provider. The provider has already extracted intake attributes from speech;
// this handler only accumulates them per call and triggers generation when
// the call ends.
type VoiceWebhookHandler struct {
	secret     string
	intakes    service.IIntakeService
	generator  service.IGeneratorService
	recordings service.IRecordingService
}

// NewVoiceWebhookHandler creates a new VoiceWebhookHandler instance
func NewVoiceWebhookHandler(secret string, intakes service.IIntakeService, generator service.IGeneratorService, recordings service.IRecordingService) *VoiceWebhookHandler {
	return &VoiceWebhookHandler{
		secret:     secret,
		intakes:    intakes,
		generator:  generator,
		recordings: recordings,
	}
}

// RegisterRoutes registers the webhook route
func (h *VoiceWebhookHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/webhooks/voice", h.HandleEvent)
}

// HandleEvent dispatches one voice event. Events for a call arrive in order
// on a single webhook stream.
func (h *VoiceWebhookHandler) HandleEvent(c *gin.Context) {
	provided := c.GetHeader("X-Voice-Secret")
	if h.secret == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(h.secret)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid webhook secret"})
		return
	}

	var event types.VoiceEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if event.Call.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing call id"})
		return
	}

	switch event.Type {
	case types.VoiceEventCallStarted:
		h.handleCallStarted(c, event)
	case types.VoiceEventIntakeUpdated:
		h.handleIntakeUpdated(c, event)
	case types.VoiceEventCallEnded:
		h.handleCallEnded(c, event)
	default:
		// Unrecognized events are acknowledged so the provider stops retrying
		c.JSON(http.StatusOK, gin.H{"ignored": event.Type})
	}
}

func (h *VoiceWebhookHandler) handleCallStarted(c *gin.Context, event types.VoiceEvent) {
	draft := plan.Intake{UserID: event.UserID}
	if err := h.intakes.SaveDraft(c.Request.Context(), event.Call.ID, draft); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start intake draft"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"call_id": event.Call.ID})
}

func (h *VoiceWebhookHandler) handleIntakeUpdated(c *gin.Context, event types.VoiceEvent) {
	if event.Intake == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing intake attributes"})
		return
	}

	merged, err := h.intakes.MergeDraft(c.Request.Context(), event.Call.ID, *event.Intake)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update intake draft"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"intake": merged})
}

func (h *VoiceWebhookHandler) handleCallEnded(c *gin.Context, event types.VoiceEvent) {
	intake, err := h.intakes.GetDraft(c.Request.Context(), event.Call.ID)
	if err != nil {
		// The draft may have expired; fall back to attributes on the event
		intake = plan.Intake{UserID: event.UserID}
	}
	if event.Intake != nil {
		intake = intake.Merge(*event.Intake)
	}
	if intake.UserID == "" {
		intake.UserID = event.UserID
	}

	if intake.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user id"})
		return
	}

	p, err := h.generator.GeneratePlan(c.Request.Context(), intake)
	if err != nil {
		log.Printf("[VoiceWebhook] Generation failed for call %s: %v", event.Call.ID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate plan"})
		return
	}

	// Recording archival is best effort; the plan is already persisted
	if event.RecordingURL != "" && h.recordings != nil && h.recordings.Enabled() {
		if _, err := h.recordings.ArchiveRecording(c.Request.Context(), event.Call.ID, event.RecordingURL); err != nil {
			log.Printf("[VoiceWebhook] Failed to archive recording for call %s: %v", event.Call.ID, err)
		}
	}

	if err := h.intakes.DeleteDraft(c.Request.Context(), event.Call.ID); err != nil {
		log.Printf("[VoiceWebhook] Failed to delete intake draft for call %s: %v", event.Call.ID, err)
	}

	c.JSON(http.StatusCreated, gin.H{"plan_id": p.ID})
}
