package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/fun2learn/fun2learn-web/internal/dto"
	"github.com/fun2learn/fun2learn-web/internal/session"
	"github.com/fun2learn/fun2learn-web/internal/views"
)

type stubStudentAPI struct {
	browse       []dto.BrowseCourse
	myCourses    []dto.MyCourse
	streak       dto.StreakResponse
	course       dto.StudentCourseDetail
	courseErr    error
	lesson       dto.StudentLessonResponse
	submitResult dto.SubmitAnswerResponse
	complete     dto.CompleteLessonResponse
	achievements []dto.Achievement

	completedLessonID string
}

func (s *stubStudentAPI) BrowseCourses(context.Context, string) ([]dto.BrowseCourse, error) {
	return s.browse, nil
}
func (s *stubStudentAPI) Enroll(context.Context, string, string) (string, error) {
	return "e1", nil
}
func (s *stubStudentAPI) MyCourses(context.Context, string) ([]dto.MyCourse, error) {
	return s.myCourses, nil
}
func (s *stubStudentAPI) StudentCourse(context.Context, string, string) (dto.StudentCourseDetail, error) {
	return s.course, s.courseErr
}
func (s *stubStudentAPI) StudentLesson(context.Context, string, string, string) (dto.StudentLessonResponse, error) {
	return s.lesson, nil
}
func (s *stubStudentAPI) SubmitAnswer(context.Context, string, string, string) (dto.SubmitAnswerResponse, error) {
	return s.submitResult, nil
}
func (s *stubStudentAPI) CompleteLesson(_ context.Context, _ string, _ string, lessonID string) (dto.CompleteLessonResponse, error) {
	s.completedLessonID = lessonID
	return s.complete, nil
}
func (s *stubStudentAPI) Achievements(context.Context, string) ([]dto.Achievement, error) {
	return s.achievements, nil
}
func (s *stubStudentAPI) Streak(context.Context, string) (dto.StreakResponse, error) {
	return s.streak, nil
}

func newStudentApp(t *testing.T, stub *stubStudentAPI) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{
		Views:       views.NewEngine(),
		ViewsLayout: "layouts/main",
	})

	sessions := session.NewCookieStore("accessToken", false)
	h := NewStudentHandler(stub, sessions, zerolog.Nop())
	h.Register(app.Group("/student"))
	return app
}

func TestCourseRoadmapShowsClampedProgress(t *testing.T) {
	stub := &stubStudentAPI{
		course: dto.StudentCourseDetail{
			ID:               "C1",
			Name:             "Algebra Basics",
			TutorName:        "Ms. Reyes",
			TotalLessons:     5,
			CompletedLessons: 2,
			ProgressPercent:  40,
			Units: []dto.StudentUnit{
				{
					ID: "U1", Name: "Numbers", UnitIndex: 1,
					Chapters: []dto.StudentChapter{
						{
							ID: "CH1", Name: "Counting", ChapterIndex: 1,
							Lessons: []dto.StudentLesson{
								{ID: "L2", Name: "Addition", LessonIndex: 2, Status: "completed"},
								{ID: "L1", Name: "Digits", LessonIndex: 1, Status: "completed"},
								{ID: "L3", Name: "Subtraction", LessonIndex: 3, Status: "current"},
							},
						},
					},
				},
			},
		},
	}
	app := newStudentApp(t, stub)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/student/course/C1", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	page := string(body)

	require.Contains(t, page, "width: 40%")
	require.Contains(t, page, "Algebra Basics")
	// Chapter with a current lesson renders as in progress, not completed.
	require.Contains(t, page, "chapter is-active")
	require.NotContains(t, page, "Course complete")
	// Lessons come out in index order.
	require.Less(t, strings.Index(page, "Digits"), strings.Index(page, "Addition"))
	require.Less(t, strings.Index(page, "Addition"), strings.Index(page, "Subtraction"))
}

func TestCompleteLessonAdvancesWithoutCelebration(t *testing.T) {
	stub := &stubStudentAPI{
		complete: dto.CompleteLessonResponse{
			NextLessonID:    "L4",
			CourseCompleted: false,
			StreakUpdated:   false,
		},
	}
	app := newStudentApp(t, stub)

	req := httptest.NewRequest(fiber.MethodPost, "/student/course/C1/lesson/L3/complete", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/student/course/C1/lesson/L4", resp.Header.Get("Location"))
	require.Equal(t, "L3", stub.completedLessonID)
}

func TestCompleteLessonCelebratesCourseCompletion(t *testing.T) {
	stub := &stubStudentAPI{
		complete: dto.CompleteLessonResponse{
			CourseCompleted: true,
			StreakUpdated:   true,
			DailyStreak:     7,
		},
	}
	app := newStudentApp(t, stub)

	req := httptest.NewRequest(fiber.MethodPost, "/student/course/C1/lesson/L5/complete", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/student/course/C1?celebrate=1", resp.Header.Get("Location"))
}

func TestCompleteLessonCarriesStreakToNextLesson(t *testing.T) {
	stub := &stubStudentAPI{
		complete: dto.CompleteLessonResponse{
			NextLessonID:  "L4",
			StreakUpdated: true,
			DailyStreak:   3,
		},
	}
	app := newStudentApp(t, stub)

	req := httptest.NewRequest(fiber.MethodPost, "/student/course/C1/lesson/L3/complete", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, "/student/course/C1/lesson/L4?streak=3", resp.Header.Get("Location"))
}

func TestAnswerRendersFeedbackInline(t *testing.T) {
	stub := &stubStudentAPI{
		lesson: dto.StudentLessonResponse{
			LessonName: "Subtraction",
			Questions: []dto.StudentQuestion{
				{ID: "Q1", QuestionText: "5 - 2?", QuestionType: "text"},
			},
		},
		submitResult: dto.SubmitAnswerResponse{IsCorrect: false, CorrectAnswer: "3"},
	}
	app := newStudentApp(t, stub)

	form := url.Values{"question_id": {"Q1"}, "answer": {"4"}}
	req := httptest.NewRequest(fiber.MethodPost, "/student/course/C1/lesson/L3/answer", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "Not quite")
	require.Contains(t, string(body), "3")
}

func TestMyCoursesShowsStreak(t *testing.T) {
	stub := &stubStudentAPI{
		myCourses: []dto.MyCourse{
			{ID: "C1", Name: "Algebra Basics", ProgressPercent: 40, CompletedLessons: 2, TotalLessons: 5, Status: "active"},
		},
		streak: dto.StreakResponse{DailyStreak: 4, LongestStreak: 9, StreakActiveToday: true},
	}
	app := newStudentApp(t, stub)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/student/mycourses", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	page := string(body)
	require.Contains(t, page, "🔥 4")
	require.Contains(t, page, "best 9")
	require.Contains(t, page, "width: 40%")
}
