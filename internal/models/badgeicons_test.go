package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fun2learn/fun2learn-web/internal/models"
)

func TestBadgeIconByName(t *testing.T) {
	icon := models.BadgeIconByName("Trophy")
	assert.Equal(t, "trophy", icon.Glyph)
	assert.Equal(t, "Achievement", icon.Category)
}

func TestBadgeIconByNameFallsBack(t *testing.T) {
	icon := models.BadgeIconByName("NoSuchIcon")
	assert.Equal(t, models.FallbackBadgeIcon, icon)
	assert.False(t, models.KnownBadgeIcon("NoSuchIcon"))
}

func TestBadgeIconCategories(t *testing.T) {
	categories := models.BadgeIconCategories()
	assert.Equal(t, []string{"Achievement", "Energy", "Education", "Emotion", "Tech", "Creative", "Nature", "Fun"}, categories)

	for _, category := range categories {
		assert.NotEmpty(t, models.BadgeIconsInCategory(category))
	}
}
