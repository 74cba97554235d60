package plan

// Intake carries the attributes collected from a user before generation begins.
// Attribute extraction happens upstream (the voice collaborator or the client
// form); values arrive as plain strings and are never interpreted here. Empty
// fields are allowed and rendered as "unspecified" by the prompt builder.
type Intake struct {
	UserID              string `json:"user_id"`
	Age                 string `json:"age"`
	Height              string `json:"height"`
	Weight              string `json:"weight"`
	Injuries            string `json:"injuries"`
	WorkoutDays         string `json:"workout_days"`
	FitnessGoal         string `json:"fitness_goal"`
	FitnessLevel        string `json:"fitness_level"`
	DietaryRestrictions string `json:"dietary_restrictions"`
}

// Merge overlays non-empty fields of other onto a copy of i. The user id is
// only taken from other when i has none, so a draft keeps its owner.
func (i Intake) Merge(other Intake) Intake {
	merged := i
	if merged.UserID == "" {
		merged.UserID = other.UserID
	}
	if other.Age != "" {
		merged.Age = other.Age
	}
	if other.Height != "" {
		merged.Height = other.Height
	}
	if other.Weight != "" {
		merged.Weight = other.Weight
	}
	if other.Injuries != "" {
		merged.Injuries = other.Injuries
	}
	if other.WorkoutDays != "" {
		merged.WorkoutDays = other.WorkoutDays
	}
	if other.FitnessGoal != "" {
		merged.FitnessGoal = other.FitnessGoal
	}
	if other.FitnessLevel != "" {
		merged.FitnessLevel = other.FitnessLevel
	}
	if other.DietaryRestrictions != "" {
		merged.DietaryRestrictions = other.DietaryRestrictions
	}
	return merged
}
