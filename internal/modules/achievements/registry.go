package achievements

// Metric names the user statistic a definition is checked against.
type Metric string

const (
	MetricHabitStreak    Metric = "habit_streak"
	MetricReflections    Metric = "reflections"
	MetricGoalsCreated   Metric = "goals_created"
	MetricGoalsCompleted Metric = "goals_completed"
	MetricWaterStreak    Metric = "water_streak"
	MetricPerfectDay     Metric = "perfect_day"
)

// Definition is one achievement the app can award. The set is fixed at
// compile time; earned rows reference definitions by Type.
type Definition struct {
	Type        string `json:"achievement_type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Metric      Metric `json:"-"`
	Threshold   int    `json:"threshold"`
}

var definitions = []Definition{
	{Type: "habit_streak_3", Title: "On a Roll", Description: "Kept a habit streak alive for 3 days", Icon: "🔥", Metric: MetricHabitStreak, Threshold: 3},
	{Type: "habit_streak_7", Title: "Week Warrior", Description: "Kept a habit streak alive for a full week", Icon: "⚔️", Metric: MetricHabitStreak, Threshold: 7},
	{Type: "habit_streak_30", Title: "Habit Master", Description: "Kept a habit streak alive for 30 days", Icon: "🏆", Metric: MetricHabitStreak, Threshold: 30},
	{Type: "reflection_5", Title: "Reflective Mind", Description: "Wrote 5 journal entries", Icon: "📓", Metric: MetricReflections, Threshold: 5},
	{Type: "reflection_25", Title: "Deep Thinker", Description: "Wrote 25 journal entries", Icon: "🦉", Metric: MetricReflections, Threshold: 25},
	{Type: "goal_created", Title: "Dreamer", Description: "Set your first yearly goal", Icon: "🌱", Metric: MetricGoalsCreated, Threshold: 1},
	{Type: "goal_completed", Title: "Achiever", Description: "Completed a yearly goal", Icon: "🎯", Metric: MetricGoalsCompleted, Threshold: 1},
	{Type: "water_streak_7", Title: "Hydration Hero", Description: "Hit your water goal 7 days in a row", Icon: "💧", Metric: MetricWaterStreak, Threshold: 7},
	{Type: "perfect_day", Title: "Perfect Day", Description: "Completed every habit, logged your mood and journaled in one day", Icon: "🌟", Metric: MetricPerfectDay, Threshold: 1},
}

// Definitions returns the full achievement catalog.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

func findDefinition(achievementType string) (Definition, bool) {
	for _, def := range definitions {
		if def.Type == achievementType {
			return def, true
		}
	}
	return Definition{}, false
}
