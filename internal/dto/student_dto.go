package dto

// BrowseCourse is one published course on the browse screen.
type BrowseCourse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	TutorName    string `json:"tutor_name"`
	Tags         []Tag  `json:"tags"`
	ChapterCount int    `json:"chapter_count"`
	LessonCount  int    `json:"lesson_count"`
	Enrolled     bool   `json:"enrolled"`
}

// BrowseCoursesResponse wraps GET /student/browse.
type BrowseCoursesResponse struct {
	Envelope
	Courses []BrowseCourse `json:"courses"`
}

// EnrollResponse wraps POST /student/enroll.
type EnrollResponse struct {
	Envelope
	EnrollmentID string `json:"enrollment_id"`
}

// MyCourse is one enrolled course with its progress summary.
type MyCourse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	TutorName         string  `json:"tutor_name"`
	TotalLessons      int     `json:"total_lessons"`
	CompletedLessons  int     `json:"completed_lessons"`
	ProgressPercent   float64 `json:"progress_percent"`
	CurrentLessonName string  `json:"current_lesson_name"`
	Status            string  `json:"status"` // enrollment status: "active" or "completed"
}

// MyCoursesResponse wraps GET /student/my-courses.
type MyCoursesResponse struct {
	Envelope
	Courses []MyCourse `json:"courses"`
}

// StudentLesson is a lesson already tagged by the backend with the student's
// progress status: "completed", "current" or "locked".
type StudentLesson struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	LessonIndex   int    `json:"lesson_index"`
	QuestionCount int    `json:"question_count"`
	Status        string `json:"status"`
}

// StudentChapter is a chapter of the student roadmap. Status is derived from
// the lessons and is one of "completed", "in_progress" or "locked".
type StudentChapter struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	ChapterIndex int             `json:"chapter_index"`
	Lessons      []StudentLesson `json:"lessons"`
	Status       string          `json:"status"`
}

// StudentUnit is a unit of the student roadmap.
type StudentUnit struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	UnitIndex        int              `json:"unit_index"`
	Chapters         []StudentChapter `json:"chapters"`
	CompletedLessons int              `json:"completed_lessons"`
	TotalLessons     int              `json:"total_lessons"`
}

// StudentCourseDetail is the per-student course aggregate.
type StudentCourseDetail struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Description      string        `json:"description"`
	TutorName        string        `json:"tutor_name"`
	TotalLessons     int           `json:"total_lessons"`
	CompletedLessons int           `json:"completed_lessons"`
	ProgressPercent  float64       `json:"progress_percent"`
	Units            []StudentUnit `json:"units"`
	Badge            *Badge        `json:"badge"`
}

// StudentCourseDetailResponse wraps GET /student/course/{id}.
type StudentCourseDetailResponse struct {
	Envelope
	Course StudentCourseDetail `json:"course"`
}

// StudentQuestion is a question stripped of its answer key.
type StudentQuestion struct {
	ID           string             `json:"id"`
	QuestionText string             `json:"question_text"`
	QuestionType string             `json:"question_type"`
	MCQOptions   []StudentMCQOption `json:"mcq_options,omitempty"`
}

// StudentMCQOption is an MCQ option without the correctness flag.
type StudentMCQOption struct {
	ID         string `json:"id"`
	OptionText string `json:"option_text"`
}

// StudentLessonResponse wraps GET /student/course/{id}/lesson/{id}.
type StudentLessonResponse struct {
	Envelope
	LessonName  string            `json:"lesson_name"`
	Questions   []StudentQuestion `json:"questions"`
	Attachments []Attachment      `json:"attachments"`
}

// SubmitAnswerResponse wraps POST /student/submit-answer. CorrectAnswer is
// populated only when the submission was wrong.
type SubmitAnswerResponse struct {
	Envelope
	IsCorrect     bool   `json:"is_correct"`
	CorrectAnswer string `json:"correct_answer"`
}

// CompleteLessonResponse wraps POST /student/complete-lesson. The backend
// decides progress advancement; the client only reacts to the flags.
type CompleteLessonResponse struct {
	Envelope
	NextLessonID    string `json:"next_lesson_id"`
	CourseCompleted bool   `json:"course_completed"`
	StreakUpdated   bool   `json:"streak_updated"`
	DailyStreak     int    `json:"daily_streak"`
}

// Achievement is a named goal with the student's progress toward it.
type Achievement struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	AchievementType string `json:"achievement_type"`
	Goal            int    `json:"goal"`
	Progress        int    `json:"progress"`
	Achieved        bool   `json:"achieved"`
}

// AchievementsResponse wraps GET /student/achievements.
type AchievementsResponse struct {
	Envelope
	Achievements []Achievement `json:"achievements"`
}

// StreakResponse wraps GET /student/streak.
type StreakResponse struct {
	Envelope
	DailyStreak       int  `json:"daily_streak"`
	LongestStreak     int  `json:"longest_streak"`
	StreakActiveToday bool `json:"streak_active_today"`
}
