package views

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"

	"github.com/fun2learn/fun2learn-web/internal/dto"
	"github.com/fun2learn/fun2learn-web/internal/models"
)

//go:embed templates
var templatesFS embed.FS

// NewEngine builds the template engine over the embedded template tree.
// Templates render inside the layouts/main layout unless a handler opts out.
func NewEngine() *html.Engine {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		// The templates directory is embedded at build time.
		panic(err)
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")

	engine.AddFunc("iconGlyph", func(name string) string {
		return models.BadgeIconByName(name).Glyph
	})
	engine.AddFunc("percent", func(v float64) int {
		return models.ClampPercent(v)
	})
	engine.AddFunc("statusClass", func(status string) string {
		switch status {
		case models.LessonCompleted: // models.ChapterCompleted has the same value
			return "is-completed"
		case models.LessonCurrent, models.ChapterInProgress:
			return "is-active"
		default:
			return "is-locked"
		}
	})
	engine.AddFunc("add", func(a, b int) int { return a + b })
	engine.AddFunc("achievementPercent", func(a dto.Achievement) int {
		return models.AchievementPercent(a)
	})
	engine.AddFunc("iconsIn", func(category string) []models.BadgeIcon {
		return models.BadgeIconsInCategory(category)
	})
	engine.AddFunc("seq", func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i + 1
		}
		return out
	})
	engine.AddFunc("fmtCount", func(n int, singular, plural string) string {
		if n == 1 {
			return fmt.Sprintf("%d %s", n, singular)
		}
		return fmt.Sprintf("%d %s", n, plural)
	})

	return engine
}
