package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/fun2learn/fun2learn-web/internal/backend"
	"github.com/fun2learn/fun2learn-web/internal/dto"
	"github.com/fun2learn/fun2learn-web/internal/forms"
	"github.com/fun2learn/fun2learn-web/internal/models"
	"github.com/fun2learn/fun2learn-web/internal/session"
)

// TutorHandler serves the authoring screens: dashboard, course editor and
// the question and attachment management inside it.
type TutorHandler struct {
	courses     backend.CourseAPI
	attachments backend.AttachmentAPI
	sessions    session.Store
	sanitizer   *bluemonday.Policy
	logger      zerolog.Logger
}

// NewTutorHandler builds a tutor handler instance.
func NewTutorHandler(courses backend.CourseAPI, attachments backend.AttachmentAPI, sessions session.Store, logger zerolog.Logger) *TutorHandler {
	return &TutorHandler{
		courses:     courses,
		attachments: attachments,
		sessions:    sessions,
		sanitizer:   bluemonday.UGCPolicy(),
		logger:      logger.With().Str("component", "tutor_handler").Logger(),
	}
}

// Register attaches the routes to the provided router group.
func (h *TutorHandler) Register(router fiber.Router) {
	router.Get("/dashboard", h.dashboard)
	router.Post("/course", h.createCourse)
	router.Get("/course/:courseID", h.editor)
	router.Post("/course/:courseID/edit", h.editCourse)
	router.Post("/course/:courseID/delete", h.deleteCourse)

	router.Post("/course/:courseID/unit", h.addUnit)
	router.Post("/course/:courseID/unit/:unitID/edit", h.editUnit)
	router.Post("/course/:courseID/unit/:unitID/delete", h.deleteUnit)
	router.Post("/course/:courseID/unit/:unitID/chapter", h.addChapter)
	router.Post("/course/:courseID/chapter/:chapterID/edit", h.editChapter)
	router.Post("/course/:courseID/chapter/:chapterID/delete", h.deleteChapter)
	router.Post("/course/:courseID/chapter/:chapterID/lesson", h.addLesson)
	router.Post("/course/:courseID/lesson/:lessonID/edit", h.editLesson)
	router.Post("/course/:courseID/lesson/:lessonID/delete", h.deleteLesson)

	router.Post("/course/:courseID/lesson/:lessonID/question", h.addQuestion)
	router.Post("/course/:courseID/question/:questionID/edit", h.editQuestion)
	router.Post("/course/:courseID/question/:questionID/delete", h.deleteQuestion)

	router.Post("/course/:courseID/lesson/:lessonID/attachment", h.uploadAttachment)
	router.Post("/course/:courseID/attachment/:attachmentID/delete", h.deleteAttachment)
}

func tutorUser() dto.User {
	return dto.User{Role: "tutor"}
}

func editorPath(courseID, lessonID string) string {
	if lessonID == "" {
		return "/tutor/course/" + courseID
	}
	return "/tutor/course/" + courseID + "?lesson=" + lessonID
}

func (h *TutorHandler) token(c *fiber.Ctx) string {
	return h.sessions.Token(c)
}

func (h *TutorHandler) dashboard(c *fiber.Ctx) error {
	courses, err := h.courses.Courses(c.UserContext(), h.token(c))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("course list fetch failed")
		setFlash(c, flashError, backend.MessageOf(err, "Failed to fetch courses"))
		courses = nil
	}

	var totals models.CourseCounts
	for _, course := range courses {
		totals.Units += course.UnitCount
		totals.Chapters += course.ChapterCount
		totals.Lessons += course.LessonCount
		totals.Questions += course.QuestionCount
	}

	return c.Render("tutor/dashboard", pageData(c, "Dashboard", fiber.Map{
		"User":    tutorUser(),
		"Courses": courses,
		"Totals":  totals,
	}))
}

func (h *TutorHandler) createCourse(c *fiber.Ctx) error {
	name := c.FormValue("name")
	description := c.FormValue("description")

	courseID, err := h.courses.CreateCourse(c.UserContext(), h.token(c), name, description)
	if err != nil {
		setFlash(c, flashError, backend.MessageOf(err, "Failed to create course"))
		return c.Redirect("/tutor/dashboard", fiber.StatusSeeOther)
	}

	setFlash(c, flashSuccess, "Course created")
	return c.Redirect(editorPath(courseID, ""), fiber.StatusSeeOther)
}

func (h *TutorHandler) editor(c *fiber.Ctx) error {
	courseID := c.Params("courseID")
	token := h.token(c)

	course, err := h.courses.CourseDetail(c.UserContext(), token, courseID)
	if err != nil {
		setFlash(c, flashError, backend.MessageOf(err, "Failed to fetch course details"))
		return c.Redirect("/tutor/dashboard", fiber.StatusSeeOther)
	}

	course.Description = h.sanitizer.Sanitize(course.Description)
	units := sortedCourseTree(course)
	for i := range units {
		units[i].Description = h.sanitizer.Sanitize(units[i].Description)
	}

	data := fiber.Map{
		"User":   tutorUser(),
		"Course": course,
		"Units":  units,
		"Counts": models.CountCourse(course),
	}

	if lessonID := c.Query("lesson"); lessonID != "" {
		if lesson := findLesson(units, lessonID); lesson != nil {
			data["SelectedLesson"] = lesson

			questions, err := h.courses.LessonQuestions(c.UserContext(), token, lessonID)
			if err != nil {
				setFlash(c, flashError, backend.MessageOf(err, "Failed to fetch questions"))
			}
			data["Questions"] = questions

			attachments, err := h.attachments.LessonAttachments(c.UserContext(), token, lessonID)
			if err != nil {
				setFlash(c, flashError, backend.MessageOf(err, "Failed to fetch attachments"))
			}
			data["Attachments"] = attachments
		}
	}

	return c.Render("tutor/editor", pageData(c, course.Name, data))
}

func findLesson(units []dto.UnitDetail, lessonID string) *dto.LessonDetail {
	for _, unit := range units {
		for _, chapter := range unit.Chapters {
			for _, lesson := range chapter.Lessons {
				if lesson.ID == lessonID {
					found := lesson
					return &found
				}
			}
		}
	}
	return nil
}

func (h *TutorHandler) editCourse(c *fiber.Ctx) error {
	courseID := c.Params("courseID")
	err := h.courses.EditCourse(c.UserContext(), h.token(c), courseID, c.FormValue("name"), c.FormValue("description"))
	if err != nil {
		setFlash(c, flashError, backend.MessageOf(err, "Failed to edit course"))
	} else {
		setFlash(c, flashSuccess, "Course saved")
	}
	return c.Redirect(editorPath(courseID, ""), fiber.StatusSeeOther)
}

// deleteCourse requires the tutor to retype the course name. Deletion
// cascades through every unit, chapter, lesson and question.
func (h *TutorHandler) deleteCourse(c *fiber.Ctx) error {
	courseID := c.Params("courseID")
	if c.FormValue("confirm") != c.FormValue("name") {
		setFlash(c, flashError, "Type the course name to confirm deletion")
		return c.Redirect("/tutor/dashboard", fiber.StatusSeeOther)
	}

	if err := h.courses.DeleteCourse(c.UserContext(), h.token(c), courseID); err != nil {
		setFlash(c, flashError, backend.MessageOf(err, "Failed to delete course"))
	} else {
		setFlash(c, flashSuccess, "Course deleted")
	}
	return c.Redirect("/tutor/dashboard", fiber.StatusSeeOther)
}

func (h *TutorHandler) addUnit(c *fiber.Ctx) error {
	courseID := c.Params("courseID")
	_, err := h.courses.AddUnit(c.UserContext(), h.token(c), courseID, c.FormValue("name"), c.FormValue("description"))
	if err != nil {
		setFlash(c, flashError, backend.MessageOf(err, "Failed to add unit"))
	}
	return c.Redirect(editorPath(courseID, ""), fiber.StatusSeeOther)
}

func (h *TutorHandler) editUnit(c *fiber.Ctx) error {
	courseID := c.Params("courseID")
	err := h.courses.EditUnit(c.UserContext(), h.token(c), c.Params("unitID"), c.FormValue("name"), c.FormValue("description"))
	if err != nil {
		setFlash(c, flashError, backend.MessageOf(err, "Failed to edit unit"))
	}
	return c.Redirect(editorPath(courseID, ""), fiber.StatusSeeOther)
}

func (h *TutorHandler) deleteUnit(c *fiber.Ctx) error {
	courseID := c.Params("courseID")
	if err := h.courses.DeleteUnit(c.UserContext(), h.token(c), c.Params("unitID")); err != nil {
		setFlash(c, flashError, backend.MessageOf(err, "Failed to delete unit"))
	}
	return c.Redirect(editorPath(courseID, ""), fiber.StatusSeeOther)
}

func (h *TutorHandler) addChapter(c *fiber.Ctx) error {
	courseID := c.Params("courseID")
	_, err := h.courses.AddChapter(c.UserContext(), h.token(c), c.Params("unitID"), c.FormValue("name"))
	if err != nil {
		setFlash(c, flashError, backend.MessageOf(err, "Failed to add chapter"))
	}
	return c.Redirect(editorPath(courseID, ""), fiber.StatusSeeOther)
}

func (h *TutorHandler) editChapter(c *fiber.Ctx) error {
	courseID := c.Params("courseID")
	err := h.courses.EditChapter(c.UserContext(), h.token(c), c.Params("chapterID"), c.FormValue("name"))
	if err != nil {
		setFlash(c, flashError, backend.MessageOf(err, "Failed to edit chapter"))
	}
	return c.Redirect(editorPath(courseID, ""), fiber.StatusSeeOther)
}

func (h *TutorHandler) deleteChapter(c *fiber.Ctx) error {
	courseID := c.Params("courseID")
	if err := h.courses.DeleteChapter(c.UserContext(), h.token(c), c.Params("chapterID")); err != nil {
		setFlash(c, flashError, backend.MessageOf(err, "Failed to delete chapter"))
	}
	return c.Redirect(editorPath(courseID, ""), fiber.StatusSeeOther)
}

func (h *TutorHandler) addLesson(c *fiber.Ctx) error {
	courseID := c.Params("courseID")
	_, err := h.courses.AddLesson(c.UserContext(), h.token(c), c.Params("chapterID"), c.FormValue("name"))
	if err != nil {
		setFlash(c, flashError, backend.MessageOf(err, "Failed to add lesson"))
	}
	return c.Redirect(editorPath(courseID, ""), fiber.StatusSeeOther)
}

func (h *TutorHandler) editLesson(c *fiber.Ctx) error {
	courseID := c.Params("courseID")
	err := h.courses.EditLesson(c.UserContext(), h.token(c), c.Params("lessonID"), c.FormValue("name"))
	if err != nil {
		setFlash(c, flashError, backend.MessageOf(err, "Failed to edit lesson"))
	}
	return c.Redirect(editorPath(courseID, ""), fiber.StatusSeeOther)
}

func (h *TutorHandler) deleteLesson(c *fiber.Ctx) error {
	courseID := c.Params("courseID")
	if err := h.courses.DeleteLesson(c.UserContext(), h.token(c), c.Params("lessonID")); err != nil {
		setFlash(c, flashError, backend.MessageOf(err, "Failed to delete lesson"))
	}
	return c.Redirect(editorPath(courseID, ""), fiber.StatusSeeOther)
}

// addQuestion dispatches on the chosen question kind after the shared
// validation pass.
func (h *TutorHandler) addQuestion(c *fiber.Ctx) error {
	courseID := c.Params("courseID")
	lessonID := c.Params("lessonID")

	form, err := questionFormFromRequest(c).Validate()
	if err != nil {
		setFlash(c, flashError, err.Error())
		return c.Redirect(editorPath(courseID, lessonID), fiber.StatusSeeOther)
	}

	switch form.Kind {
	case forms.QuestionMCQ:
		_, err = h.courses.AddMCQQuestion(c.UserContext(), h.token(c), lessonID, form.QuestionText, form.Options)
	case forms.QuestionText:
		_, err = h.courses.AddTextQuestion(c.UserContext(), h.token(c), lessonID, form.QuestionText, form.CorrectAnswer, form.CasingMatters)
	}
	if err != nil {
		setFlash(c, flashError, backend.MessageOf(err, "Failed to add question"))
	} else {
		setFlash(c, flashSuccess, "Question added")
	}
	return c.Redirect(editorPath(courseID, lessonID), fiber.StatusSeeOther)
}

func questionFormFromRequest(c *fiber.Ctx) forms.QuestionForm {
	form := forms.QuestionForm{
		Kind:          forms.QuestionKind(c.FormValue("kind")),
		QuestionText:  c.FormValue("question_text"),
		CorrectAnswer: c.FormValue("correct_answer"),
		CasingMatters: c.FormValue("casing_matters") == "true",
	}

	correct := c.FormValue("correct_option")
	for i := 1; i <= 5; i++ {
		n := strconv.Itoa(i)
		form.Options = append(form.Options, dto.MCQOptionInput{
			OptionText: c.FormValue("option_text_" + n),
			IsCorrect:  correct == n,
		})
	}
	return form
}

// editQuestion replaces a question's text and answer key. The kind cannot
// change; the form posts the question's existing kind.
func (h *TutorHandler) editQuestion(c *fiber.Ctx) error {
	courseID := c.Params("courseID")
	questionID := c.Params("questionID")
	lessonID := c.Query("lesson")

	form, err := questionFormFromRequest(c).Validate()
	if err != nil {
		setFlash(c, flashError, err.Error())
		return c.Redirect(editorPath(courseID, lessonID), fiber.StatusSeeOther)
	}

	switch form.Kind {
	case forms.QuestionMCQ:
		err = h.courses.EditMCQQuestion(c.UserContext(), h.token(c), questionID, form.QuestionText, form.Options)
	case forms.QuestionText:
		err = h.courses.EditTextQuestion(c.UserContext(), h.token(c), questionID, form.QuestionText, form.CorrectAnswer, form.CasingMatters)
	}
	if err != nil {
		setFlash(c, flashError, backend.MessageOf(err, "Failed to edit question"))
	} else {
		setFlash(c, flashSuccess, "Question saved")
	}
	return c.Redirect(editorPath(courseID, lessonID), fiber.StatusSeeOther)
}

func (h *TutorHandler) deleteQuestion(c *fiber.Ctx) error {
	courseID := c.Params("courseID")
	if err := h.courses.DeleteQuestion(c.UserContext(), h.token(c), c.Params("questionID")); err != nil {
		setFlash(c, flashError, backend.MessageOf(err, "Failed to delete question"))
	}
	return c.Redirect(editorPath(courseID, c.Query("lesson")), fiber.StatusSeeOther)
}

func (h *TutorHandler) uploadAttachment(c *fiber.Ctx) error {
	courseID := c.Params("courseID")
	lessonID := c.Params("lessonID")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		setFlash(c, flashError, "Choose a file to upload")
		return c.Redirect(editorPath(courseID, lessonID), fiber.StatusSeeOther)
	}

	file, err := fileHeader.Open()
	if err != nil {
		setFlash(c, flashError, "Failed to read uploaded file")
		return c.Redirect(editorPath(courseID, lessonID), fiber.StatusSeeOther)
	}
	defer file.Close()

	_, err = h.attachments.UploadLessonAttachment(c.UserContext(), h.token(c), lessonID, fileHeader.Filename, file)
	if err != nil {
		setFlash(c, flashError, backend.MessageOf(err, "Failed to upload attachment"))
	} else {
		setFlash(c, flashSuccess, "Attachment uploaded")
	}
	return c.Redirect(editorPath(courseID, lessonID), fiber.StatusSeeOther)
}

func (h *TutorHandler) deleteAttachment(c *fiber.Ctx) error {
	courseID := c.Params("courseID")
	if err := h.attachments.DeleteLessonAttachment(c.UserContext(), h.token(c), c.Params("attachmentID")); err != nil {
		setFlash(c, flashError, backend.MessageOf(err, "Failed to delete attachment"))
	}
	return c.Redirect(editorPath(courseID, c.Query("lesson")), fiber.StatusSeeOther)
}
