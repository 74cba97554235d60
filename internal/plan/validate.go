package plan

import (
	"math"
	"strconv"
)

// Field defaults applied when the model omits or mangles a value.
const (
	DefaultSets          = 1
	DefaultReps          = 10
	DefaultDuration      = 15
	DefaultDescription   = "No description"
	DefaultDay           = "Unknown"
	DefaultMealName      = "Unnamed Meal"
	DefaultDailyCalories = 2000
)

// ValidateWorkoutPlan repairs an arbitrary decoded JSON value into a
// schema-conformant WorkoutPlan. The generative model is not a trusted schema
// producer: it omits fields, emits numbers as strings and nests structures
// incorrectly. Rather than rejecting the whole generation over a cosmetic
// defect, every field access here has an explicit default path. The function
// is total over its input and never panics.
func ValidateWorkoutPlan(raw interface{}) WorkoutPlan {
	validated := WorkoutPlan{
		Schedule:  []string{},
		Exercises: []ExerciseDay{},
	}

	obj, ok := raw.(map[string]interface{})
	if !ok {
		return validated
	}

	if schedule, ok := obj["schedule"].([]interface{}); ok {
		for _, entry := range schedule {
			if day, ok := toString(entry); ok {
				validated.Schedule = append(validated.Schedule, day)
			}
		}
	}

	exercises, ok := obj["exercises"].([]interface{})
	if !ok {
		return validated
	}

	for _, entry := range exercises {
		dayObj, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}

		day := ExerciseDay{
			Day:      stringOr(dayObj["day"], DefaultDay),
			Routines: []Routine{},
		}

		if routines, ok := dayObj["routines"].([]interface{}); ok {
			for _, r := range routines {
				routineObj, ok := r.(map[string]interface{})
				if !ok {
					continue
				}
				day.Routines = append(day.Routines, Routine{
					Name:        stringOr(routineObj["name"], ""),
					Sets:        intOr(routineObj["sets"], DefaultSets, 1),
					Reps:        intOr(routineObj["reps"], DefaultReps, 1),
					Duration:    intOr(routineObj["duration"], DefaultDuration, 0),
					Description: stringOr(routineObj["description"], DefaultDescription),
				})
			}
		}

		validated.Exercises = append(validated.Exercises, day)
	}

	return validated
}

// ValidateDietPlan applies the same repair discipline to a diet document.
func ValidateDietPlan(raw interface{}) DietPlan {
	validated := DietPlan{
		DailyCalories: DefaultDailyCalories,
		Meals:         []Meal{},
	}

	obj, ok := raw.(map[string]interface{})
	if !ok {
		return validated
	}

	validated.DailyCalories = intOr(obj["dailyCalories"], DefaultDailyCalories, 1)

	meals, ok := obj["meals"].([]interface{})
	if !ok {
		return validated
	}

	for _, entry := range meals {
		mealObj, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}

		meal := Meal{
			Name:    stringOr(mealObj["name"], DefaultMealName),
			Foods:   []string{},
			Protein: []float64{},
		}

		if foods, ok := mealObj["foods"].([]interface{}); ok {
			for _, f := range foods {
				if food, ok := toString(f); ok {
					meal.Foods = append(meal.Foods, food)
				}
			}
		}

		if protein, ok := mealObj["protein"].([]interface{}); ok {
			for _, p := range protein {
				if grams, ok := toNumber(p); ok {
					meal.Protein = append(meal.Protein, grams)
				}
			}
		}

		validated.Meals = append(validated.Meals, meal)
	}

	return validated
}

// toNumber attempts numeric conversion of a decoded JSON value. Numeric
// strings parse; genuine numbers pass through; everything else fails.
func toNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// intOr converts v to an integer, substituting def when conversion fails or
// the result falls below min. Fractional values truncate.
func intOr(v interface{}, def, min int) int {
	n, ok := toNumber(v)
	if !ok {
		return def
	}
	i := int(n)
	if i < min {
		return def
	}
	return i
}

// toString renders a scalar JSON value as a string. Objects, arrays and null
// are not meaningful as labels and are dropped by callers.
func toString(v interface{}) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(s), true
	default:
		return "", false
	}
}

func stringOr(v interface{}, def string) string {
	if s, ok := toString(v); ok {
		return s
	}
	return def
}
