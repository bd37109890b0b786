package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/fun2learn/fun2learn-web/internal/backend"
	"github.com/fun2learn/fun2learn-web/internal/dto"
	"github.com/fun2learn/fun2learn-web/internal/session"
	"github.com/fun2learn/fun2learn-web/internal/views"
)

type stubCatalogAPI struct {
	tags       []dto.Tag
	courseTags []dto.Tag
	badge      *dto.Badge
	tagsErr    error

	savedTags []string
	calls     []string
	iconName  string
}

func (s *stubCatalogAPI) Tags(context.Context, string) ([]dto.Tag, error) {
	s.calls = append(s.calls, "Tags")
	return s.tags, s.tagsErr
}
func (s *stubCatalogAPI) CourseTags(context.Context, string, string) ([]dto.Tag, error) {
	s.calls = append(s.calls, "CourseTags")
	return s.courseTags, nil
}
func (s *stubCatalogAPI) SaveCourseTags(_ context.Context, _ string, _ string, tagNames []string) (int, error) {
	s.calls = append(s.calls, "SaveCourseTags")
	s.savedTags = tagNames
	return len(tagNames), nil
}
func (s *stubCatalogAPI) CreateBadgeIcon(_ context.Context, _ string, _ string, name string, iconName string) (dto.Badge, error) {
	s.calls = append(s.calls, "CreateBadgeIcon")
	s.iconName = iconName
	return dto.Badge{ID: "B1", Name: name, BadgeType: "icon", IconName: iconName}, nil
}
func (s *stubCatalogAPI) CreateBadgeImage(context.Context, string, string, string, string, io.Reader) (dto.Badge, error) {
	s.calls = append(s.calls, "CreateBadgeImage")
	return dto.Badge{ID: "B1", BadgeType: "image"}, nil
}
func (s *stubCatalogAPI) CourseBadge(context.Context, string, string) (*dto.Badge, error) {
	s.calls = append(s.calls, "CourseBadge")
	return s.badge, nil
}

func newPublishApp(t *testing.T, courses *stubCourseAPI, catalog *stubCatalogAPI) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{
		Views:       views.NewEngine(),
		ViewsLayout: "layouts/main",
	})

	sessions := session.NewCookieStore("accessToken", false)
	h := NewPublishHandler(courses, catalog, sessions, zerolog.Nop())
	h.Register(app.Group("/tutor"))
	return app
}

func TestPrepublishRendersTagAndIconChoices(t *testing.T) {
	courses := &stubCourseAPI{detail: dto.CourseDetail{ID: "C1", Name: "Algebra", Status: "draft"}}
	catalog := &stubCatalogAPI{
		tags:       []dto.Tag{{ID: "T1", Name: "math"}, {ID: "T2", Name: "beginner"}},
		courseTags: []dto.Tag{{ID: "T1", Name: "math"}},
	}
	app := newPublishApp(t, courses, catalog)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/tutor/course/C1/prepublish", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	page := string(body)
	require.Contains(t, page, "math")
	require.Contains(t, page, "beginner")
	require.Contains(t, page, "Achievement")
	require.Contains(t, page, `value="math" checked`)
}

func TestPrepublishRedirectsWhenAlreadyPublished(t *testing.T) {
	courses := &stubCourseAPI{detail: dto.CourseDetail{ID: "C1", Name: "Algebra", Status: "published"}}
	catalog := &stubCatalogAPI{}
	app := newPublishApp(t, courses, catalog)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/tutor/course/C1/prepublish", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/tutor/course/C1", resp.Header.Get("Location"))
}

func TestPrepublishRedirectsOnLoadFailure(t *testing.T) {
	courses := &stubCourseAPI{detail: dto.CourseDetail{ID: "C1", Status: "draft"}}
	catalog := &stubCatalogAPI{tagsErr: &backend.Error{StatusCode: 502, Message: "Failed to fetch tags"}}
	app := newPublishApp(t, courses, catalog)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/tutor/course/C1/prepublish", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/tutor/dashboard", resp.Header.Get("Location"))
}

func TestPublishRunsSequenceInOrder(t *testing.T) {
	courses := &stubCourseAPI{}
	catalog := &stubCatalogAPI{}
	app := newPublishApp(t, courses, catalog)

	resp, err := app.Test(postForm("/tutor/course/C1/publish", url.Values{
		"badge_name":   {"Algebra Champion"},
		"badge_source": {"icon"},
		"icon_name":    {"Trophy"},
		"new_tags":     {"math, beginner"},
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/tutor/dashboard", resp.Header.Get("Location"))

	require.Equal(t, []string{"SaveCourseTags", "CreateBadgeIcon"}, catalog.calls)
	require.Equal(t, []string{"PublishCourse"}, courses.calls)
	require.Equal(t, []string{"math", "beginner"}, catalog.savedTags)
	require.Equal(t, "Trophy", catalog.iconName)
}

func TestPublishRequiresBadgeName(t *testing.T) {
	courses := &stubCourseAPI{}
	catalog := &stubCatalogAPI{}
	app := newPublishApp(t, courses, catalog)

	resp, err := app.Test(postForm("/tutor/course/C1/publish", url.Values{
		"badge_source": {"icon"},
		"icon_name":    {"Trophy"},
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/tutor/course/C1/prepublish", resp.Header.Get("Location"))
	require.Empty(t, catalog.calls)
	require.Empty(t, courses.calls)
}

func TestPublishRequiresIconOrImage(t *testing.T) {
	courses := &stubCourseAPI{}
	catalog := &stubCatalogAPI{}
	app := newPublishApp(t, courses, catalog)

	resp, err := app.Test(postForm("/tutor/course/C1/publish", url.Values{
		"badge_name":   {"Algebra Champion"},
		"badge_source": {"icon"},
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/tutor/course/C1/prepublish", resp.Header.Get("Location"))
	// Tags are saved before the badge gate, matching the original sequence.
	require.Equal(t, []string{"SaveCourseTags"}, catalog.calls)
	require.Empty(t, courses.calls)
}
