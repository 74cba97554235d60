package plan

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decode produces the same dynamic value shapes the orchestrator hands the
// validator after parsing model output.
func decode(t *testing.T, raw string) interface{} {
	t.Helper()
	var v interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestValidateWorkoutPlanTotality(t *testing.T) {
	inputs := map[string]interface{}{
		"nil":              nil,
		"string":           "not a plan",
		"number":           42.0,
		"bool":             true,
		"array":            []interface{}{1, 2, 3},
		"empty object":     map[string]interface{}{},
		"wrong types":      decode(t, `{"schedule": 7, "exercises": "gym"}`),
		"nested garbage":   decode(t, `{"exercises": [null, 3, "x", {"day": {}, "routines": {"a": 1}}]}`),
		"routine garbage":  decode(t, `{"exercises": [{"day": "Mon", "routines": [null, "squat", []]}]}`),
		"schedule garbage": decode(t, `{"schedule": [null, {}, [], "Monday", 5]}`),
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			validated := ValidateWorkoutPlan(input)

			assert.NotNil(t, validated.Schedule)
			assert.NotNil(t, validated.Exercises)
			for _, day := range validated.Exercises {
				assert.NotEmpty(t, day.Day)
				assert.NotNil(t, day.Routines)
				for _, r := range day.Routines {
					assert.GreaterOrEqual(t, r.Sets, 1)
					assert.GreaterOrEqual(t, r.Reps, 1)
					assert.GreaterOrEqual(t, r.Duration, 0)
					assert.NotEmpty(t, r.Description)
				}
			}
		})
	}
}

func TestValidateWorkoutPlanDefaults(t *testing.T) {
	raw := decode(t, `{"exercises": [{"day": "Monday", "routines": [{"name": "Squats"}]}]}`)

	validated := ValidateWorkoutPlan(raw)

	require.Len(t, validated.Exercises, 1)
	require.Len(t, validated.Exercises[0].Routines, 1)

	routine := validated.Exercises[0].Routines[0]
	assert.Equal(t, "Squats", routine.Name)
	assert.Equal(t, 1, routine.Sets)
	assert.Equal(t, 10, routine.Reps)
	assert.Equal(t, 15, routine.Duration)
	assert.Equal(t, "No description", routine.Description)

	assert.Equal(t, []string{}, validated.Schedule)
}

func TestValidateWorkoutPlanNumericCoercion(t *testing.T) {
	tests := []struct {
		name     string
		rawSets  string
		expected int
	}{
		{"numeric string", `"10"`, 10},
		{"genuine number", `10`, 10},
		{"fractional number truncates", `10.5`, 10},
		{"null", `null`, 1},
		{"non-numeric string", `"abc"`, 1},
		{"object", `{}`, 1},
		{"bool", `true`, 1},
		{"zero falls back to minimum default", `0`, 1},
		{"negative falls back to minimum default", `-3`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := decode(t, `{"exercises": [{"day": "Mon", "routines": [{"name": "x", "sets": `+tt.rawSets+`}]}]}`)
			validated := ValidateWorkoutPlan(raw)
			require.Len(t, validated.Exercises[0].Routines, 1)
			assert.Equal(t, tt.expected, validated.Exercises[0].Routines[0].Sets)
		})
	}
}

func TestValidateWorkoutPlanMissingDay(t *testing.T) {
	raw := decode(t, `{"exercises": [{"routines": []}, {"day": null, "routines": []}]}`)

	validated := ValidateWorkoutPlan(raw)

	require.Len(t, validated.Exercises, 2)
	assert.Equal(t, "Unknown", validated.Exercises[0].Day)
	assert.Equal(t, "Unknown", validated.Exercises[1].Day)
}

func TestValidateDietPlanTotality(t *testing.T) {
	inputs := map[string]interface{}{
		"nil":            nil,
		"string":         "nope",
		"array":          []interface{}{},
		"wrong types":    decode(t, `{"dailyCalories": "lots", "meals": 9}`),
		"nested garbage": decode(t, `{"meals": [null, 4, {"name": [], "foods": {}, "protein": "p"}]}`),
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			validated := ValidateDietPlan(input)

			assert.Greater(t, validated.DailyCalories, 0)
			assert.NotNil(t, validated.Meals)
			for _, meal := range validated.Meals {
				assert.NotEmpty(t, meal.Name)
				assert.NotNil(t, meal.Foods)
				assert.NotNil(t, meal.Protein)
			}
		})
	}
}

func TestValidateDietPlanEmptyObject(t *testing.T) {
	validated := ValidateDietPlan(decode(t, `{}`))

	assert.Equal(t, DietPlan{DailyCalories: 2000, Meals: []Meal{}}, validated)
}

func TestValidateDietPlanCoercion(t *testing.T) {
	raw := decode(t, `{
		"dailyCalories": "2200",
		"meals": [
			{
				"foods": ["Oats", 42, true, null, {"x": 1}],
				"protein": ["25", 30, "abc", null, 12.5]
			}
		]
	}`)

	validated := ValidateDietPlan(raw)

	assert.Equal(t, 2200, validated.DailyCalories)
	require.Len(t, validated.Meals, 1)

	meal := validated.Meals[0]
	assert.Equal(t, "Unnamed Meal", meal.Name)
	assert.Equal(t, []string{"Oats", "42", "true"}, meal.Foods)
	assert.Equal(t, []float64{25, 30, 12.5}, meal.Protein)
}

func TestValidateDietPlanInvalidCalories(t *testing.T) {
	for _, raw := range []string{`{"dailyCalories": "abc"}`, `{"dailyCalories": null}`, `{"dailyCalories": 0}`, `{"dailyCalories": -100}`} {
		validated := ValidateDietPlan(decode(t, raw))
		assert.Equal(t, 2000, validated.DailyCalories, "input: %s", raw)
	}
}

func TestValidateIdempotence(t *testing.T) {
	messyWorkout := decode(t, `{
		"schedule": ["Monday", 2, null],
		"exercises": [
			{"day": "Monday", "routines": [{"name": "Squats", "sets": "3", "reps": 12.7}]},
			{"routines": "none"}
		]
	}`)
	messyDiet := decode(t, `{
		"dailyCalories": "1800",
		"meals": [{"name": 5, "foods": ["Eggs"], "protein": ["13"]}]
	}`)

	workoutOnce := ValidateWorkoutPlan(messyWorkout)
	dietOnce := ValidateDietPlan(messyDiet)

	// Round-trip through JSON the way a re-validation would see the data
	workoutAgain, err := json.Marshal(workoutOnce)
	require.NoError(t, err)
	dietAgain, err := json.Marshal(dietOnce)
	require.NoError(t, err)

	assert.Equal(t, workoutOnce, ValidateWorkoutPlan(decode(t, string(workoutAgain))))
	assert.Equal(t, dietOnce, ValidateDietPlan(decode(t, string(dietAgain))))
}
