package backend

import (
	"context"
	"fmt"

	"github.com/fun2learn/fun2learn-web/internal/dto"
)

// CourseAPI covers the tutor-side authoring operations. Every mutation is
// followed by a full re-fetch of the owning course aggregate on the caller's
// side; nothing here patches local state.
type CourseAPI interface {
	Courses(ctx context.Context, token string) ([]dto.CourseSummary, error)
	CreateCourse(ctx context.Context, token, name, description string) (string, error)
	CourseDetail(ctx context.Context, token, courseID string) (dto.CourseDetail, error)
	EditCourse(ctx context.Context, token, courseID, name, description string) error
	DeleteCourse(ctx context.Context, token, courseID string) error
	PublishCourse(ctx context.Context, token, courseID string) error

	AddUnit(ctx context.Context, token, courseID, name, description string) (string, error)
	EditUnit(ctx context.Context, token, unitID, name, description string) error
	DeleteUnit(ctx context.Context, token, unitID string) error

	AddChapter(ctx context.Context, token, unitID, name string) (string, error)
	EditChapter(ctx context.Context, token, chapterID, name string) error
	DeleteChapter(ctx context.Context, token, chapterID string) error

	AddLesson(ctx context.Context, token, chapterID, name string) (string, error)
	EditLesson(ctx context.Context, token, lessonID, name string) error
	DeleteLesson(ctx context.Context, token, lessonID string) error

	AddMCQQuestion(ctx context.Context, token, lessonID, questionText string, options []dto.MCQOptionInput) (string, error)
	AddTextQuestion(ctx context.Context, token, lessonID, questionText, correctAnswer string, casingMatters bool) (string, error)
	EditMCQQuestion(ctx context.Context, token, questionID, questionText string, options []dto.MCQOptionInput) error
	EditTextQuestion(ctx context.Context, token, questionID, questionText, correctAnswer string, casingMatters bool) error
	DeleteQuestion(ctx context.Context, token, questionID string) error
	LessonQuestions(ctx context.Context, token, lessonID string) ([]dto.Question, error)
}

// Courses lists the tutor's own courses with aggregate counts.
func (c *Client) Courses(ctx context.Context, token string) ([]dto.CourseSummary, error) {
	var resp dto.CoursesResponse
	if err := c.get(ctx, "course.list", "/course/courses", token, &resp, "Failed to fetch courses"); err != nil {
		return nil, err
	}
	return resp.Courses, nil
}

// CreateCourse creates a draft course and returns its id.
func (c *Client) CreateCourse(ctx context.Context, token, name, description string) (string, error) {
	var resp dto.CreateCourseResponse
	body := map[string]string{"name": name, "description": description}
	if err := c.postJSON(ctx, "course.create", "/course/create_course", token, body, &resp, "Failed to create course"); err != nil {
		return "", err
	}
	return resp.CourseID, nil
}

// CourseDetail fetches the full authoring aggregate for one course.
func (c *Client) CourseDetail(ctx context.Context, token, courseID string) (dto.CourseDetail, error) {
	var resp dto.CourseDetailResponse
	path := fmt.Sprintf("/course/course/%s", courseID)
	if err := c.get(ctx, "course.detail", path, token, &resp, "Failed to fetch course details"); err != nil {
		return dto.CourseDetail{}, err
	}
	return resp.Course, nil
}

// EditCourse renames a course and updates its description.
func (c *Client) EditCourse(ctx context.Context, token, courseID, name, description string) error {
	var resp dto.CreateCourseResponse
	body := map[string]string{"course_id": courseID, "name": name, "description": description}
	return c.putJSON(ctx, "course.edit", "/course/edit_course", token, body, &resp, "Failed to edit course")
}

// DeleteCourse removes a course and, cascading on the backend, everything in it.
func (c *Client) DeleteCourse(ctx context.Context, token, courseID string) error {
	var resp dto.Envelope
	body := map[string]string{"course_id": courseID}
	return c.deleteJSON(ctx, "course.delete", "/course/delete_course", token, body, &resp, "Failed to delete course")
}

// PublishCourse flips a draft course to published. One-way.
func (c *Client) PublishCourse(ctx context.Context, token, courseID string) error {
	var resp dto.CreateCourseResponse
	body := map[string]string{"course_id": courseID}
	return c.postJSON(ctx, "course.publish", "/course/publish_course", token, body, &resp, "Failed to publish course")
}

// AddUnit appends a unit; the backend assigns the next unit_index.
func (c *Client) AddUnit(ctx context.Context, token, courseID, name, description string) (string, error) {
	var resp dto.AddUnitResponse
	body := map[string]string{"course_id": courseID, "name": name, "description": description}
	if err := c.postJSON(ctx, "unit.add", "/course/add_unit", token, body, &resp, "Failed to add unit"); err != nil {
		return "", err
	}
	return resp.UnitID, nil
}

// EditUnit updates a unit's name and description.
func (c *Client) EditUnit(ctx context.Context, token, unitID, name, description string) error {
	var resp dto.Envelope
	body := map[string]string{"unit_id": unitID, "name": name, "description": description}
	return c.putJSON(ctx, "unit.edit", "/course/edit_unit", token, body, &resp, "Failed to edit unit")
}

// DeleteUnit removes a unit and its chapters, lessons and questions.
func (c *Client) DeleteUnit(ctx context.Context, token, unitID string) error {
	var resp dto.Envelope
	body := map[string]string{"unit_id": unitID}
	return c.deleteJSON(ctx, "unit.delete", "/course/delete_unit", token, body, &resp, "Failed to delete unit")
}

// AddChapter appends a chapter to a unit.
func (c *Client) AddChapter(ctx context.Context, token, unitID, name string) (string, error) {
	var resp dto.AddChapterResponse
	body := map[string]string{"unit_id": unitID, "name": name}
	if err := c.postJSON(ctx, "chapter.add", "/course/add_chapter", token, body, &resp, "Failed to add chapter"); err != nil {
		return "", err
	}
	return resp.ChapterID, nil
}

// EditChapter renames a chapter.
func (c *Client) EditChapter(ctx context.Context, token, chapterID, name string) error {
	var resp dto.Envelope
	body := map[string]string{"chapter_id": chapterID, "name": name}
	return c.putJSON(ctx, "chapter.edit", "/course/edit_chapter", token, body, &resp, "Failed to edit chapter")
}

// DeleteChapter removes a chapter and its lessons.
func (c *Client) DeleteChapter(ctx context.Context, token, chapterID string) error {
	var resp dto.Envelope
	body := map[string]string{"chapter_id": chapterID}
	return c.deleteJSON(ctx, "chapter.delete", "/course/delete_chapter", token, body, &resp, "Failed to delete chapter")
}

// AddLesson appends a lesson to a chapter.
func (c *Client) AddLesson(ctx context.Context, token, chapterID, name string) (string, error) {
	var resp dto.AddLessonResponse
	body := map[string]string{"chapter_id": chapterID, "name": name}
	if err := c.postJSON(ctx, "lesson.add", "/course/add_lesson", token, body, &resp, "Failed to add lesson"); err != nil {
		return "", err
	}
	return resp.LessonID, nil
}

// EditLesson renames a lesson.
func (c *Client) EditLesson(ctx context.Context, token, lessonID, name string) error {
	var resp dto.Envelope
	body := map[string]string{"lesson_id": lessonID, "name": name}
	return c.putJSON(ctx, "lesson.edit", "/course/edit_lesson", token, body, &resp, "Failed to edit lesson")
}

// DeleteLesson removes a lesson and its questions.
func (c *Client) DeleteLesson(ctx context.Context, token, lessonID string) error {
	var resp dto.Envelope
	body := map[string]string{"lesson_id": lessonID}
	return c.deleteJSON(ctx, "lesson.delete", "/course/delete_lesson", token, body, &resp, "Failed to delete lesson")
}

// AddMCQQuestion creates a multiple-choice question.
func (c *Client) AddMCQQuestion(ctx context.Context, token, lessonID, questionText string, options []dto.MCQOptionInput) (string, error) {
	var resp dto.AddQuestionResponse
	body := map[string]any{"lesson_id": lessonID, "question_text": questionText, "options": options}
	if err := c.postJSON(ctx, "question.add_mcq", "/course/add_mcq_question", token, body, &resp, "Failed to add MCQ question"); err != nil {
		return "", err
	}
	return resp.QuestionID, nil
}

// AddTextQuestion creates a free-text question.
func (c *Client) AddTextQuestion(ctx context.Context, token, lessonID, questionText, correctAnswer string, casingMatters bool) (string, error) {
	var resp dto.AddQuestionResponse
	body := map[string]any{
		"lesson_id":      lessonID,
		"question_text":  questionText,
		"correct_answer": correctAnswer,
		"casing_matters": casingMatters,
	}
	if err := c.postJSON(ctx, "question.add_text", "/course/add_text_question", token, body, &resp, "Failed to add text question"); err != nil {
		return "", err
	}
	return resp.QuestionID, nil
}

// EditMCQQuestion replaces an MCQ question's text and options.
func (c *Client) EditMCQQuestion(ctx context.Context, token, questionID, questionText string, options []dto.MCQOptionInput) error {
	var resp dto.Envelope
	body := map[string]any{"question_id": questionID, "question_text": questionText, "options": options}
	return c.putJSON(ctx, "question.edit_mcq", "/course/edit_mcq_question", token, body, &resp, "Failed to edit MCQ question")
}

// EditTextQuestion replaces a text question's text and answer key.
func (c *Client) EditTextQuestion(ctx context.Context, token, questionID, questionText, correctAnswer string, casingMatters bool) error {
	var resp dto.Envelope
	body := map[string]any{
		"question_id":    questionID,
		"question_text":  questionText,
		"correct_answer": correctAnswer,
		"casing_matters": casingMatters,
	}
	return c.putJSON(ctx, "question.edit_text", "/course/edit_text_question", token, body, &resp, "Failed to edit text question")
}

// DeleteQuestion removes a question of either variant.
func (c *Client) DeleteQuestion(ctx context.Context, token, questionID string) error {
	var resp dto.Envelope
	body := map[string]string{"question_id": questionID}
	return c.deleteJSON(ctx, "question.delete", "/course/delete_question", token, body, &resp, "Failed to delete question")
}

// LessonQuestions lists a lesson's questions with their answer keys (tutor view).
func (c *Client) LessonQuestions(ctx context.Context, token, lessonID string) ([]dto.Question, error) {
	var resp dto.LessonQuestionsResponse
	path := fmt.Sprintf("/course/lesson/%s/questions", lessonID)
	if err := c.get(ctx, "question.list", path, token, &resp, "Failed to fetch questions"); err != nil {
		return nil, err
	}
	return resp.Questions, nil
}
