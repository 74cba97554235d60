package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/flexvoice/backend/internal/api"
	"github.com/flexvoice/backend/internal/mocks"
	"github.com/flexvoice/backend/internal/models"
	"github.com/flexvoice/backend/internal/plan"
	"github.com/flexvoice/backend/internal/router"
	"github.com/flexvoice/backend/internal/service"
	"github.com/flexvoice/backend/internal/types"
)

const (
	testJWTSecret     = "test-jwt-secret"
	testWebhookSecret = "test-webhook-secret"
)

type testEnv struct {
	router     *gin.Engine
	plans      *service.PlanService
	generator  *mocks.MockGeneratorService
	intakes    *mocks.MockIntakeService
	recordings *mocks.MockRecordingService
	auth       *service.AuthService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Plan{}))

	env := &testEnv{
		plans:      service.NewPlanService(db),
		generator:  &mocks.MockGeneratorService{},
		intakes:    mocks.NewMockIntakeService(),
		recordings: &mocks.MockRecordingService{},
		auth:       service.NewAuthService(testJWTSecret),
	}

	env.router = router.SetupRouter(
		api.NewPlanHandler(env.plans),
		api.NewGenerateHandler(env.generator),
		api.NewVoiceWebhookHandler(testWebhookSecret, env.intakes, env.generator, env.recordings),
		env.auth,
		nil,
		[]string{"http://localhost:3000"},
	)
	return env
}

func (e *testEnv) token(t *testing.T, userID string) string {
	t.Helper()
	token, err := e.auth.GenerateToken(&types.TokenClaims{UserID: userID})
	require.NoError(t, err)
	return token
}

// seedPlan inserts a plan for userID directly through the service layer.
func (e *testEnv) seedPlan(t *testing.T, userID string, active bool) *models.Plan {
	t.Helper()
	p := &models.Plan{
		UserID:      userID,
		Name:        "Seeded Plan",
		IsActive:    active,
		WorkoutPlan: plan.WorkoutPlan{Schedule: []string{"Monday"}, Exercises: []plan.ExerciseDay{}},
		DietPlan:    plan.DietPlan{DailyCalories: 2000, Meals: []plan.Meal{}},
	}
	require.NoError(t, e.plans.Create(context.Background(), p))
	return p
}

func performRequest(t *testing.T, r http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func authHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
