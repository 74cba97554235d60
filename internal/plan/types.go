package plan

import (
	"database/sql/driver"
	"encoding/json"
)

// Routine is a single exercise within a training day.
type Routine struct {
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

// ExerciseDay groups the routines assigned to one day label.
type ExerciseDay struct {
	Day      string    `json:"day"`
	Routines []Routine `json:"routines"`
}

// WorkoutPlan is the validated workout document persisted inside a Plan.
type WorkoutPlan struct {
	Schedule  []string      `json:"schedule"`
	Exercises []ExerciseDay `json:"exercises"`
}

// Meal is a single meal entry in a diet plan.
type Meal struct {
	Name    string    `json:"name"`
	Foods   []string  `json:"foods"`
	Protein []float64 `json:"protein"`
}

// DietPlan is the validated diet document persisted inside a Plan.
type DietPlan struct {
	DailyCalories int    `json:"dailyCalories"`
	Meals         []Meal `json:"meals"`
}

// Value implements the driver.Valuer interface so WorkoutPlan can be stored in JSONB
func (p WorkoutPlan) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements the sql.Scanner interface
func (p *WorkoutPlan) Scan(value interface{}) error {
	if value == nil {
		*p = WorkoutPlan{Schedule: []string{}, Exercises: []ExerciseDay{}}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, p)
}

// Value implements the driver.Valuer interface so DietPlan can be stored in JSONB
func (p DietPlan) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements the sql.Scanner interface
func (p *DietPlan) Scan(value interface{}) error {
	if value == nil {
		*p = DietPlan{Meals: []Meal{}}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, p)
}
