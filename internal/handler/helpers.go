package handler

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/fun2learn/fun2learn-web/internal/dto"
	"github.com/fun2learn/fun2learn-web/internal/middleware"
	"github.com/fun2learn/fun2learn-web/internal/models"
)

const (
	flashCookie = "flash"
	themeCookie = "theme"

	flashSuccess = "success"
	flashError   = "error"
)

// Flash is a one-shot notification carried across a redirect in a
// short-lived cookie.
type Flash struct {
	Kind    string
	Message string
}

func setFlash(c *fiber.Ctx, kind, message string) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(kind) + "." + url.QueryEscape(message),
		Path:     "/",
		MaxAge:   30,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func popFlash(c *fiber.Ctx) *Flash {
	raw := c.Cookies(flashCookie)
	if raw == "" {
		return nil
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	kindPart, messagePart, ok := strings.Cut(raw, ".")
	if !ok {
		return nil
	}
	kind, err := url.QueryUnescape(kindPart)
	if err != nil {
		return nil
	}
	message, err := url.QueryUnescape(messagePart)
	if err != nil {
		return nil
	}
	return &Flash{Kind: kind, Message: message}
}

// themeOf reads the theme preference cookie, defaulting to light.
func themeOf(c *fiber.Ctx) string {
	if c.Cookies(themeCookie) == "dark" {
		return "dark"
	}
	return "light"
}

// pageData merges the ambient render context (flash, theme, title) into the
// page's own data.
func pageData(c *fiber.Ctx, title string, data fiber.Map) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}
	data["Title"] = title
	data["Theme"] = themeOf(c)
	if _, ok := data["Flash"]; !ok {
		if flash := popFlash(c); flash != nil {
			data["Flash"] = flash
		}
	}
	return data
}

func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	logger := base
	if c != nil {
		if correlation := middleware.GetCorrelationID(c); correlation != "" {
			logger = base.With().Str("correlation_id", correlation).Logger()
		}
	}
	return &logger
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// sortedCourseTree returns the authoring tree with every level ordered by
// its 1-based index.
func sortedCourseTree(course dto.CourseDetail) []dto.UnitDetail {
	units := models.SortedUnits(course)
	for i := range units {
		units[i].Chapters = models.SortedChapters(units[i])
		for j := range units[i].Chapters {
			units[i].Chapters[j].Lessons = models.SortedLessons(units[i].Chapters[j])
		}
	}
	return units
}

// sortedStudentTree orders the student roadmap and derives each chapter's
// status from its lessons.
func sortedStudentTree(course dto.StudentCourseDetail) []dto.StudentUnit {
	units := models.SortedStudentUnits(course)
	for i := range units {
		units[i].Chapters = models.SortedStudentChapters(units[i])
		for j := range units[i].Chapters {
			chapter := &units[i].Chapters[j]
			chapter.Lessons = models.SortedStudentLessons(*chapter)
			chapter.Status = models.ChapterStatusOf(chapter.Lessons)
		}
	}
	return units
}
