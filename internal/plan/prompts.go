package plan

import "fmt"

const workoutPromptTemplate = `You are an experienced fitness coach creating a personalized workout plan based on:
Age: %s
Height: %s
Weight: %s
Injuries or limitations: %s
Available days for workout: %s
Fitness goal: %s
Fitness level: %s

As a professional coach:
- Consider muscle group splits to avoid overtraining the same muscles on consecutive days
- Design exercises that match the fitness level and account for any injuries
- Structure the workouts to specifically target the user's fitness goal

CRITICAL SCHEMA INSTRUCTIONS:
- Your output MUST contain ONLY the fields specified below, NO ADDITIONAL FIELDS
- "sets" and "reps" MUST ALWAYS be NUMBERS, never strings
- For example: "sets": 3, "reps": 10
- DO NOT use text like "reps": "As many as possible" or "reps": "To failure"
- For cardio, use "sets": 1, "reps": 1 and describe the work in "description"
- NEVER include extra fields like warmup, cooldown, progression, or notes

Return a JSON object with this EXACT structure:
{
  "schedule": ["Monday", "Wednesday", "Friday"],
  "exercises": [
    {
      "day": "Monday",
      "routines": [
        {
          "name": "Exercise Name",
          "sets": 3,
          "reps": 10,
          "duration": 15,
          "description": "Brief coaching cue for the exercise"
        }
      ]
    }
  ]
}

DO NOT add any fields that are not in this example. Your response should be a valid JSON object with no additional text.`

const dietPromptTemplate = `You are an experienced nutrition coach creating a personalized diet plan based on:
Age: %s
Height: %s
Weight: %s
Fitness goal: %s
Dietary restrictions: %s

As a professional nutrition coach:
- Calculate appropriate daily calorie intake based on the person's stats and goals
- Create a balanced meal plan with proper macronutrient distribution
- Include a variety of nutrient-dense foods while respecting dietary restrictions
- Consider meal timing around workouts

CRITICAL SCHEMA INSTRUCTIONS:
- Your output MUST contain ONLY the fields specified below, NO ADDITIONAL FIELDS
- "dailyCalories" MUST be a NUMBER, not a string
- "protein" entries MUST be NUMBERS (grams per food item), never strings
- DO NOT add fields like macros, hydration, supplements, or notes

Return a JSON object with this EXACT structure:
{
  "dailyCalories": 2000,
  "meals": [
    {
      "name": "Breakfast",
      "foods": ["Oatmeal with berries", "Greek yogurt"],
      "protein": [6, 17]
    }
  ]
}

DO NOT add any fields that are not in this example. Your response should be a valid JSON object with no additional text.`

// BuildWorkoutPrompt renders the workout instruction string for an intake.
// Pure and deterministic: identical intakes produce byte-identical prompts.
func BuildWorkoutPrompt(intake Intake) string {
	return fmt.Sprintf(workoutPromptTemplate,
		attr(intake.Age),
		attr(intake.Height),
		attr(intake.Weight),
		attr(intake.Injuries),
		attr(intake.WorkoutDays),
		attr(intake.FitnessGoal),
		attr(intake.FitnessLevel),
	)
}

// BuildDietPrompt renders the diet instruction string for an intake.
func BuildDietPrompt(intake Intake) string {
	return fmt.Sprintf(dietPromptTemplate,
		attr(intake.Age),
		attr(intake.Height),
		attr(intake.Weight),
		attr(intake.FitnessGoal),
		attr(intake.DietaryRestrictions),
	)
}

func attr(value string) string {
	if value == "" {
		return "unspecified"
	}
	return value
}
