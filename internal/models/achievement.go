package models

import "github.com/fun2learn/fun2learn-web/internal/dto"

// The four fixed achievement categories.
const (
	AchievementLessons     = "lessons_completed"
	AchievementStreaks     = "streak_days"
	AchievementCompletions = "courses_completed"
	AchievementEnrollments = "courses_enrolled"
)

// AchievementCategory carries the display metadata for one category.
type AchievementCategory struct {
	Type  string
	Label string
	Glyph string
}

// AchievementCategories lists the categories in display order.
var AchievementCategories = []AchievementCategory{
	{Type: AchievementLessons, Label: "Lessons", Glyph: "book-open"},
	{Type: AchievementStreaks, Label: "Streaks", Glyph: "flame"},
	{Type: AchievementCompletions, Label: "Course Completions", Glyph: "trophy"},
	{Type: AchievementEnrollments, Label: "Enrollments", Glyph: "graduation-cap"},
}

// GroupAchievements buckets achievements by category, preserving the backend
// order within each bucket. Unknown categories are dropped rather than
// rendered under a bogus heading.
func GroupAchievements(achievements []dto.Achievement) map[string][]dto.Achievement {
	grouped := make(map[string][]dto.Achievement, len(AchievementCategories))
	for _, category := range AchievementCategories {
		grouped[category.Type] = nil
	}
	for _, achievement := range achievements {
		if _, ok := grouped[achievement.AchievementType]; !ok {
			continue
		}
		grouped[achievement.AchievementType] = append(grouped[achievement.AchievementType], achievement)
	}
	return grouped
}

// AchievedCount counts how many of the achievements are earned.
func AchievedCount(achievements []dto.Achievement) int {
	count := 0
	for _, achievement := range achievements {
		if achievement.Achieved {
			count++
		}
	}
	return count
}

// AchievementPercent computes progress toward one goal, clamped so progress
// past the goal still reads 100.
func AchievementPercent(achievement dto.Achievement) int {
	if achievement.Goal <= 0 {
		return 0
	}
	progress := achievement.Progress
	if progress > achievement.Goal {
		progress = achievement.Goal
	}
	return ProgressPercent(progress, achievement.Goal)
}
