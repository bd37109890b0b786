package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/fun2learn/fun2learn-web/internal/backend"
	"github.com/fun2learn/fun2learn-web/internal/dto"
	"github.com/fun2learn/fun2learn-web/internal/models"
	"github.com/fun2learn/fun2learn-web/internal/session"
)

// PublishHandler serves the pre-publish review screen and the publish
// sequence: save tags, create the badge, then flip the course to published.
type PublishHandler struct {
	courses  backend.CourseAPI
	catalog  backend.CatalogAPI
	sessions session.Store
	logger   zerolog.Logger
}

// NewPublishHandler builds a publish handler instance.
func NewPublishHandler(courses backend.CourseAPI, catalog backend.CatalogAPI, sessions session.Store, logger zerolog.Logger) *PublishHandler {
	return &PublishHandler{
		courses:  courses,
		catalog:  catalog,
		sessions: sessions,
		logger:   logger.With().Str("component", "publish_handler").Logger(),
	}
}

// Register attaches the routes to the provided router group.
func (h *PublishHandler) Register(router fiber.Router) {
	router.Get("/course/:courseID/prepublish", h.prepublish)
	router.Post("/course/:courseID/publish", h.publish)
}

// prepublish loads the course, the tag catalogue, the course's tags and its
// badge in parallel. Any failure sends the tutor back to the dashboard.
func (h *PublishHandler) prepublish(c *fiber.Ctx) error {
	courseID := c.Params("courseID")
	token := h.sessions.Token(c)

	var (
		course     dto.CourseDetail
		tags       []dto.Tag
		courseTags []dto.Tag
		badge      *dto.Badge
	)

	g, ctx := errgroup.WithContext(c.UserContext())
	g.Go(func() error {
		var err error
		course, err = h.courses.CourseDetail(ctx, token, courseID)
		return err
	})
	g.Go(func() error {
		var err error
		tags, err = h.catalog.Tags(ctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		courseTags, err = h.catalog.CourseTags(ctx, token, courseID)
		return err
	})
	g.Go(func() error {
		var err error
		badge, err = h.catalog.CourseBadge(ctx, token, courseID)
		return err
	})

	if err := g.Wait(); err != nil {
		requestLogger(h.logger, c).Error().Err(err).Str("course_id", courseID).Msg("prepublish load failed")
		setFlash(c, flashError, backend.MessageOf(err, "Failed to load publish data"))
		return c.Redirect("/tutor/dashboard", fiber.StatusSeeOther)
	}

	if course.Status == "published" {
		setFlash(c, flashError, "This course is already published")
		return c.Redirect(editorPath(courseID, ""), fiber.StatusSeeOther)
	}

	selected := make(map[string]bool, len(courseTags))
	for _, tag := range courseTags {
		selected[tag.Name] = true
	}

	return c.Render("tutor/prepublish", pageData(c, "Publish "+course.Name, fiber.Map{
		"User":           tutorUser(),
		"Course":         course,
		"Counts":         models.CountCourse(course),
		"Tags":           tags,
		"SelectedTags":   selected,
		"Badge":          badge,
		"IconCategories": models.BadgeIconCategories(),
	}))
}

// publish runs save-tags, create-badge, publish in order and stops at the
// first failure, leaving already-applied steps in place.
func (h *PublishHandler) publish(c *fiber.Ctx) error {
	courseID := c.Params("courseID")
	token := h.sessions.Token(c)
	ctx := c.UserContext()

	badgeName := c.FormValue("badge_name")
	if badgeName == "" {
		setFlash(c, flashError, "Name the completion badge before publishing")
		return c.Redirect("/tutor/course/"+courseID+"/prepublish", fiber.StatusSeeOther)
	}

	tagNames := collectTags(c)
	if _, err := h.catalog.SaveCourseTags(ctx, token, courseID, tagNames); err != nil {
		setFlash(c, flashError, backend.MessageOf(err, "Failed to save tags"))
		return c.Redirect("/tutor/course/"+courseID+"/prepublish", fiber.StatusSeeOther)
	}

	var err error
	switch c.FormValue("badge_source") {
	case "image":
		fileHeader, fileErr := c.FormFile("badge_image")
		if fileErr != nil {
			setFlash(c, flashError, "Choose a badge image or pick an icon")
			return c.Redirect("/tutor/course/"+courseID+"/prepublish", fiber.StatusSeeOther)
		}
		file, openErr := fileHeader.Open()
		if openErr != nil {
			setFlash(c, flashError, "Failed to read badge image")
			return c.Redirect("/tutor/course/"+courseID+"/prepublish", fiber.StatusSeeOther)
		}
		defer file.Close()
		_, err = h.catalog.CreateBadgeImage(ctx, token, courseID, badgeName, fileHeader.Filename, file)
	default:
		iconName := c.FormValue("icon_name")
		if iconName == "" {
			setFlash(c, flashError, "Pick a badge icon or upload an image")
			return c.Redirect("/tutor/course/"+courseID+"/prepublish", fiber.StatusSeeOther)
		}
		_, err = h.catalog.CreateBadgeIcon(ctx, token, courseID, badgeName, iconName)
	}
	if err != nil {
		setFlash(c, flashError, backend.MessageOf(err, "Failed to create badge"))
		return c.Redirect("/tutor/course/"+courseID+"/prepublish", fiber.StatusSeeOther)
	}

	if err := h.courses.PublishCourse(ctx, token, courseID); err != nil {
		setFlash(c, flashError, backend.MessageOf(err, "Failed to publish course"))
		return c.Redirect("/tutor/course/"+courseID+"/prepublish", fiber.StatusSeeOther)
	}

	setFlash(c, flashSuccess, "Course published")
	return c.Redirect("/tutor/dashboard", fiber.StatusSeeOther)
}

// collectTags merges the checked catalogue tags with the comma-separated
// free-text additions, dropping duplicates.
func collectTags(c *fiber.Ctx) []string {
	seen := make(map[string]struct{})
	var names []string

	appendName := func(name string) {
		if _, ok := seen[name]; ok || name == "" {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, name := range form.Value["tags"] {
			appendName(name)
		}
	}
	for _, name := range splitAndTrim(c.FormValue("new_tags")) {
		appendName(name)
	}
	return names
}
