package dto

import "time"

// CourseSummary is one row of the tutor's course list.
type CourseSummary struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Status        string    `json:"status"` // "draft" or "published"
	CreatedAt     time.Time `json:"created_at"`
	UnitCount     int       `json:"unit_count"`
	ChapterCount  int       `json:"chapter_count"`
	LessonCount   int       `json:"lesson_count"`
	QuestionCount int       `json:"question_count"`
}

// CoursesResponse wraps GET /course/courses.
type CoursesResponse struct {
	Envelope
	Courses []CourseSummary `json:"courses"`
}

// CourseDetail is the authoring-side course aggregate. Units arrive in no
// guaranteed order; callers sort by index before rendering.
type CourseDetail struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Status      string       `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	Units       []UnitDetail `json:"units"`
}

// UnitDetail is one unit of the authoring tree.
type UnitDetail struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitIndex   int             `json:"unit_index"`
	Chapters    []ChapterDetail `json:"chapters"`
}

// ChapterDetail is one chapter of the authoring tree.
type ChapterDetail struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	ChapterIndex int            `json:"chapter_index"`
	Lessons      []LessonDetail `json:"lessons"`
}

// LessonDetail is one lesson of the authoring tree.
type LessonDetail struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	LessonIndex   int    `json:"lesson_index"`
	QuestionCount int    `json:"question_count"`
}

// CourseDetailResponse wraps GET /course/course/{id}.
type CourseDetailResponse struct {
	Envelope
	Course CourseDetail `json:"course"`
}

// CreateCourseResponse wraps POST /course/create_course.
type CreateCourseResponse struct {
	Envelope
	CourseID string `json:"course_id"`
}

// AddUnitResponse wraps POST /course/add_unit.
type AddUnitResponse struct {
	Envelope
	UnitID    string `json:"unit_id"`
	UnitIndex int    `json:"unit_index"`
}

// AddChapterResponse wraps POST /course/add_chapter.
type AddChapterResponse struct {
	Envelope
	ChapterID    string `json:"chapter_id"`
	ChapterIndex int    `json:"chapter_index"`
}

// AddLessonResponse wraps POST /course/add_lesson.
type AddLessonResponse struct {
	Envelope
	LessonID    string `json:"lesson_id"`
	LessonIndex int    `json:"lesson_index"`
}

// AddQuestionResponse wraps the add_mcq_question/add_text_question endpoints.
type AddQuestionResponse struct {
	Envelope
	QuestionID string `json:"question_id"`
}

// MCQOptionInput is one authored MCQ option.
type MCQOptionInput struct {
	OptionText string `json:"option_text"`
	IsCorrect  bool   `json:"is_correct"`
}

// Question is an authored question returned by GET /course/lesson/{id}/questions.
type Question struct {
	ID           string      `json:"id"`
	QuestionText string      `json:"question_text"`
	QuestionType string      `json:"question_type"` // "mcq" or "text"
	MCQOptions   []MCQOption `json:"mcq_options,omitempty"`
	TextAnswer   *TextAnswer `json:"text_answer,omitempty"`
}

// MCQOption is one option of an authored MCQ question.
type MCQOption struct {
	ID         string `json:"id"`
	OptionText string `json:"option_text"`
	IsCorrect  bool   `json:"is_correct"`
}

// TextAnswer is the answer key of an authored text question.
type TextAnswer struct {
	CorrectAnswer string `json:"correct_answer"`
	CasingMatters bool   `json:"casing_matters"`
}

// LessonQuestionsResponse wraps GET /course/lesson/{id}/questions.
type LessonQuestionsResponse struct {
	Envelope
	Questions []Question `json:"questions"`
}
