package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/flexvoice/backend/internal/models"
	"github.com/flexvoice/backend/internal/plan"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// In-memory sqlite is per-connection; keep the pool at one so every
	// query sees the migrated schema.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Plan{}))
	return db
}

func testPlan(userID string, active bool) *models.Plan {
	return &models.Plan{
		UserID:   userID,
		Name:     "Test Plan",
		IsActive: active,
		WorkoutPlan: plan.WorkoutPlan{
			Schedule: []string{"Monday"},
			Exercises: []plan.ExerciseDay{
				{Day: "Monday", Routines: []plan.Routine{{Name: "Squats", Sets: 3, Reps: 10, Duration: 15, Description: "No description"}}},
			},
		},
		DietPlan: plan.DietPlan{DailyCalories: 2000, Meals: []plan.Meal{}},
	}
}

func TestPlanServiceCreateAndGet(t *testing.T) {
	svc := NewPlanService(setupTestDB(t))
	ctx := context.Background()

	p := testPlan("u1", true)
	require.NoError(t, svc.Create(ctx, p))
	require.NotEqual(t, uuid.Nil, p.ID)

	got, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.True(t, got.IsActive)
	assert.Equal(t, p.WorkoutPlan, got.WorkoutPlan)
	assert.Equal(t, p.DietPlan, got.DietPlan)
}

func TestPlanServiceCreateDeactivatesPrevious(t *testing.T) {
	svc := NewPlanService(setupTestDB(t))
	ctx := context.Background()

	first := testPlan("u1", true)
	require.NoError(t, svc.Create(ctx, first))

	second := testPlan("u1", true)
	require.NoError(t, svc.Create(ctx, second))

	// Another user's active plan is untouched
	other := testPlan("u2", true)
	require.NoError(t, svc.Create(ctx, other))

	got, err := svc.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	got, err = svc.Get(ctx, second.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)

	got, err = svc.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
}

func TestPlanServiceListByUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPlanService(db)
	ctx := context.Background()

	older := testPlan("u1", false)
	require.NoError(t, svc.Create(ctx, older))
	require.NoError(t, db.Model(older).Update("created_at", time.Now().Add(-time.Hour)).Error)

	newer := testPlan("u1", true)
	require.NoError(t, svc.Create(ctx, newer))

	require.NoError(t, svc.Create(ctx, testPlan("u2", true)))

	plans, err := svc.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, newer.ID, plans[0].ID)
	assert.Equal(t, older.ID, plans[1].ID)
}

func TestPlanServiceActivate(t *testing.T) {
	svc := NewPlanService(setupTestDB(t))
	ctx := context.Background()

	first := testPlan("u1", true)
	require.NoError(t, svc.Create(ctx, first))
	second := testPlan("u1", true)
	require.NoError(t, svc.Create(ctx, second))

	activated, err := svc.Activate(ctx, first.ID, "u1")
	require.NoError(t, err)
	assert.True(t, activated.IsActive)

	got, err := svc.Get(ctx, second.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestPlanServiceActivateWrongUser(t *testing.T) {
	svc := NewPlanService(setupTestDB(t))
	ctx := context.Background()

	p := testPlan("u1", true)
	require.NoError(t, svc.Create(ctx, p))

	_, err := svc.Activate(ctx, p.ID, "u2")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPlanServiceDelete(t *testing.T) {
	svc := NewPlanService(setupTestDB(t))
	ctx := context.Background()

	p := testPlan("u1", false)
	require.NoError(t, svc.Create(ctx, p))

	require.NoError(t, svc.Delete(ctx, p.ID))

	_, err := svc.Get(ctx, p.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPlanServiceDeleteMissing(t *testing.T) {
	svc := NewPlanService(setupTestDB(t))

	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
