package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/fun2learn/fun2learn-web/internal/backend"
	"github.com/fun2learn/fun2learn-web/internal/dto"
	"github.com/fun2learn/fun2learn-web/internal/models"
	"github.com/fun2learn/fun2learn-web/internal/session"
)

// StudentHandler serves the learner screens: browse, enrolled courses, the
// course roadmap, the lesson loop and the quests page.
type StudentHandler struct {
	student  backend.StudentAPI
	sessions session.Store
	logger   zerolog.Logger
}

// NewStudentHandler builds a student handler instance.
func NewStudentHandler(student backend.StudentAPI, sessions session.Store, logger zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		student:  student,
		sessions: sessions,
		logger:   logger.With().Str("component", "student_handler").Logger(),
	}
}

// Register attaches the routes to the provided router group.
func (h *StudentHandler) Register(router fiber.Router) {
	router.Get("/browse", h.browse)
	router.Post("/enroll", h.enroll)
	router.Get("/mycourses", h.myCourses)
	router.Get("/course/:courseID", h.course)
	router.Get("/course/:courseID/lesson/:lessonID", h.lesson)
	router.Post("/course/:courseID/lesson/:lessonID/answer", h.answer)
	router.Post("/course/:courseID/lesson/:lessonID/complete", h.complete)
	router.Get("/quests", h.quests)
}

func studentUser() dto.User {
	return dto.User{Role: "student"}
}

func (h *StudentHandler) token(c *fiber.Ctx) string {
	return h.sessions.Token(c)
}

func (h *StudentHandler) browse(c *fiber.Ctx) error {
	courses, err := h.student.BrowseCourses(c.UserContext(), h.token(c))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("browse fetch failed")
		setFlash(c, flashError, backend.MessageOf(err, "Failed to fetch courses"))
	}

	return c.Render("student/browse", pageData(c, "Browse", fiber.Map{
		"User":    studentUser(),
		"Courses": courses,
	}))
}

func (h *StudentHandler) enroll(c *fiber.Ctx) error {
	courseID := c.FormValue("course_id")
	if courseID == "" {
		return c.Redirect("/student/browse", fiber.StatusSeeOther)
	}

	if _, err := h.student.Enroll(c.UserContext(), h.token(c), courseID); err != nil {
		setFlash(c, flashError, backend.MessageOf(err, "Failed to enroll"))
		return c.Redirect("/student/browse", fiber.StatusSeeOther)
	}

	setFlash(c, flashSuccess, "Enrolled! Your first lesson awaits.")
	return c.Redirect("/student/course/"+courseID, fiber.StatusSeeOther)
}

// myCourses loads the enrollments and the streak side by side.
func (h *StudentHandler) myCourses(c *fiber.Ctx) error {
	token := h.token(c)

	var (
		courses []dto.MyCourse
		streak  dto.StreakResponse
	)

	g, ctx := errgroup.WithContext(c.UserContext())
	g.Go(func() error {
		var err error
		courses, err = h.student.MyCourses(ctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		streak, err = h.student.Streak(ctx, token)
		return err
	})

	if err := g.Wait(); err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("my courses fetch failed")
		setFlash(c, flashError, backend.MessageOf(err, "Failed to fetch your courses"))
	}

	return c.Render("student/mycourses", pageData(c, "My Courses", fiber.Map{
		"User":    studentUser(),
		"Courses": courses,
		"Streak":  streak,
	}))
}

func (h *StudentHandler) course(c *fiber.Ctx) error {
	courseID := c.Params("courseID")

	course, err := h.student.StudentCourse(c.UserContext(), h.token(c), courseID)
	if err != nil {
		setFlash(c, flashError, backend.MessageOf(err, "Failed to fetch course"))
		return c.Redirect("/student/mycourses", fiber.StatusSeeOther)
	}

	return c.Render("student/course", pageData(c, course.Name, fiber.Map{
		"User":      studentUser(),
		"Course":    course,
		"Units":     sortedStudentTree(course),
		"Celebrate": c.Query("celebrate") == "1",
	}))
}

func (h *StudentHandler) lesson(c *fiber.Ctx) error {
	courseID := c.Params("courseID")
	lessonID := c.Params("lessonID")

	lesson, err := h.student.StudentLesson(c.UserContext(), h.token(c), courseID, lessonID)
	if err != nil {
		setFlash(c, flashError, backend.MessageOf(err, "Failed to fetch lesson"))
		return c.Redirect("/student/course/"+courseID, fiber.StatusSeeOther)
	}

	streak, _ := strconv.Atoi(c.Query("streak"))

	return c.Render("student/lesson", pageData(c, lesson.LessonName, fiber.Map{
		"User":          studentUser(),
		"CourseID":      courseID,
		"LessonID":      lessonID,
		"Lesson":        lesson,
		"StreakUpdated": streak > 0,
		"DailyStreak":   streak,
	}))
}

// answerFeedback is the per-question grading result rendered inline.
type answerFeedback struct {
	QuestionID    string
	IsCorrect     bool
	CorrectAnswer string
}

// answer grades one submission and re-renders the lesson with the verdict
// attached to the answered question.
func (h *StudentHandler) answer(c *fiber.Ctx) error {
	courseID := c.Params("courseID")
	lessonID := c.Params("lessonID")
	token := h.token(c)

	questionID := c.FormValue("question_id")
	result, err := h.student.SubmitAnswer(c.UserContext(), token, questionID, c.FormValue("answer"))
	if err != nil {
		setFlash(c, flashError, backend.MessageOf(err, "Failed to submit answer"))
		return c.Redirect("/student/course/"+courseID+"/lesson/"+lessonID, fiber.StatusSeeOther)
	}

	lesson, err := h.student.StudentLesson(c.UserContext(), token, courseID, lessonID)
	if err != nil {
		setFlash(c, flashError, backend.MessageOf(err, "Failed to fetch lesson"))
		return c.Redirect("/student/course/"+courseID, fiber.StatusSeeOther)
	}

	return c.Render("student/lesson", pageData(c, lesson.LessonName, fiber.Map{
		"User":     studentUser(),
		"CourseID": courseID,
		"LessonID": lessonID,
		"Lesson":   lesson,
		"Feedback": answerFeedback{
			QuestionID:    questionID,
			IsCorrect:     result.IsCorrect,
			CorrectAnswer: result.CorrectAnswer,
		},
	}))
}

// complete marks the lesson done and routes to whatever the backend says
// comes next: the next lesson, the course celebration, or back to the
// roadmap.
func (h *StudentHandler) complete(c *fiber.Ctx) error {
	courseID := c.Params("courseID")
	lessonID := c.Params("lessonID")

	result, err := h.student.CompleteLesson(c.UserContext(), h.token(c), courseID, lessonID)
	if err != nil {
		setFlash(c, flashError, backend.MessageOf(err, "Failed to complete lesson"))
		return c.Redirect("/student/course/"+courseID+"/lesson/"+lessonID, fiber.StatusSeeOther)
	}

	if result.CourseCompleted {
		return c.Redirect("/student/course/"+courseID+"?celebrate=1", fiber.StatusSeeOther)
	}

	if result.NextLessonID != "" {
		next := "/student/course/" + courseID + "/lesson/" + result.NextLessonID
		if result.StreakUpdated {
			next += "?streak=" + strconv.Itoa(result.DailyStreak)
		}
		return c.Redirect(next, fiber.StatusSeeOther)
	}

	return c.Redirect("/student/course/"+courseID, fiber.StatusSeeOther)
}

func (h *StudentHandler) quests(c *fiber.Ctx) error {
	achievements, err := h.student.Achievements(c.UserContext(), h.token(c))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("achievements fetch failed")
		setFlash(c, flashError, backend.MessageOf(err, "Failed to fetch achievements"))
	}

	grouped := models.GroupAchievements(achievements)

	type questGroup struct {
		Category     models.AchievementCategory
		Achievements []dto.Achievement
	}
	groups := make([]questGroup, 0, len(models.AchievementCategories))
	for _, category := range models.AchievementCategories {
		groups = append(groups, questGroup{
			Category:     category,
			Achievements: grouped[category.Type],
		})
	}

	return c.Render("student/quests", pageData(c, "Quests", fiber.Map{
		"User":          studentUser(),
		"Groups":        groups,
		"AchievedCount": models.AchievedCount(achievements),
		"Total":         len(achievements),
	}))
}
