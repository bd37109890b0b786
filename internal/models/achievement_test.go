package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fun2learn/fun2learn-web/internal/dto"
	"github.com/fun2learn/fun2learn-web/internal/models"
)

func TestGroupAchievements(t *testing.T) {
	achievements := []dto.Achievement{
		{Name: "First Step", AchievementType: models.AchievementLessons},
		{Name: "Spark", AchievementType: models.AchievementStreaks},
		{Name: "Finisher", AchievementType: models.AchievementCompletions},
		{Name: "Lesson Rookie", AchievementType: models.AchievementLessons},
		{Name: "Mystery", AchievementType: "unknown_type"},
	}

	grouped := models.GroupAchievements(achievements)
	assert.Len(t, grouped[models.AchievementLessons], 2)
	assert.Len(t, grouped[models.AchievementStreaks], 1)
	assert.Len(t, grouped[models.AchievementCompletions], 1)
	assert.Empty(t, grouped[models.AchievementEnrollments])
	assert.NotContains(t, grouped, "unknown_type")
}

func TestAchievedCount(t *testing.T) {
	achievements := []dto.Achievement{
		{Achieved: true},
		{Achieved: false},
		{Achieved: true},
	}
	assert.Equal(t, 2, models.AchievedCount(achievements))
}

func TestAchievementPercent(t *testing.T) {
	assert.Equal(t, 50, models.AchievementPercent(dto.Achievement{Goal: 10, Progress: 5}))
	assert.Equal(t, 100, models.AchievementPercent(dto.Achievement{Goal: 10, Progress: 25}))
	assert.Equal(t, 0, models.AchievementPercent(dto.Achievement{Goal: 0, Progress: 5}))
}
