package backend

import (
	"context"
	"fmt"

	"github.com/fun2learn/fun2learn-web/internal/dto"
)

// StudentAPI covers the learner-side operations: catalogue browsing,
// enrollment, the lesson loop and the gamification reads.
type StudentAPI interface {
	BrowseCourses(ctx context.Context, token string) ([]dto.BrowseCourse, error)
	Enroll(ctx context.Context, token, courseID string) (string, error)
	MyCourses(ctx context.Context, token string) ([]dto.MyCourse, error)
	StudentCourse(ctx context.Context, token, courseID string) (dto.StudentCourseDetail, error)
	StudentLesson(ctx context.Context, token, courseID, lessonID string) (dto.StudentLessonResponse, error)
	SubmitAnswer(ctx context.Context, token, questionID, answer string) (dto.SubmitAnswerResponse, error)
	CompleteLesson(ctx context.Context, token, courseID, lessonID string) (dto.CompleteLessonResponse, error)
	Achievements(ctx context.Context, token string) ([]dto.Achievement, error)
	Streak(ctx context.Context, token string) (dto.StreakResponse, error)
}

// BrowseCourses lists published courses, each flagged with whether the
// student is already enrolled.
func (c *Client) BrowseCourses(ctx context.Context, token string) ([]dto.BrowseCourse, error) {
	var resp dto.BrowseCoursesResponse
	if err := c.get(ctx, "student.browse", "/student/browse", token, &resp, "Failed to fetch courses"); err != nil {
		return nil, err
	}
	return resp.Courses, nil
}

// Enroll registers the student on a published course.
func (c *Client) Enroll(ctx context.Context, token, courseID string) (string, error) {
	var resp dto.EnrollResponse
	body := map[string]string{"course_id": courseID}
	if err := c.postJSON(ctx, "student.enroll", "/student/enroll", token, body, &resp, "Failed to enroll"); err != nil {
		return "", err
	}
	return resp.EnrollmentID, nil
}

// MyCourses lists the student's enrollments with progress summaries.
func (c *Client) MyCourses(ctx context.Context, token string) ([]dto.MyCourse, error) {
	var resp dto.MyCoursesResponse
	if err := c.get(ctx, "student.my_courses", "/student/my-courses", token, &resp, "Failed to fetch your courses"); err != nil {
		return nil, err
	}
	return resp.Courses, nil
}

// StudentCourse fetches the per-student roadmap for one enrolled course.
func (c *Client) StudentCourse(ctx context.Context, token, courseID string) (dto.StudentCourseDetail, error) {
	var resp dto.StudentCourseDetailResponse
	path := fmt.Sprintf("/student/course/%s", courseID)
	if err := c.get(ctx, "student.course", path, token, &resp, "Failed to fetch course"); err != nil {
		return dto.StudentCourseDetail{}, err
	}
	return resp.Course, nil
}

// StudentLesson fetches one lesson's questions and attachments, with answer
// keys already stripped by the backend.
func (c *Client) StudentLesson(ctx context.Context, token, courseID, lessonID string) (dto.StudentLessonResponse, error) {
	var resp dto.StudentLessonResponse
	path := fmt.Sprintf("/student/course/%s/lesson/%s", courseID, lessonID)
	if err := c.get(ctx, "student.lesson", path, token, &resp, "Failed to fetch lesson"); err != nil {
		return dto.StudentLessonResponse{}, err
	}
	return resp, nil
}

// SubmitAnswer grades one answer server-side. For MCQ questions the answer is
// the chosen option id, for text questions the typed string.
func (c *Client) SubmitAnswer(ctx context.Context, token, questionID, answer string) (dto.SubmitAnswerResponse, error) {
	var resp dto.SubmitAnswerResponse
	body := map[string]string{"question_id": questionID, "answer": answer}
	if err := c.postJSON(ctx, "student.submit_answer", "/student/submit-answer", token, body, &resp, "Failed to submit answer"); err != nil {
		return dto.SubmitAnswerResponse{}, err
	}
	return resp, nil
}

// CompleteLesson marks a lesson finished. The backend advances progress,
// updates the streak and reports what the client should show next.
func (c *Client) CompleteLesson(ctx context.Context, token, courseID, lessonID string) (dto.CompleteLessonResponse, error) {
	var resp dto.CompleteLessonResponse
	body := map[string]string{"course_id": courseID, "lesson_id": lessonID}
	if err := c.postJSON(ctx, "student.complete_lesson", "/student/complete-lesson", token, body, &resp, "Failed to complete lesson"); err != nil {
		return dto.CompleteLessonResponse{}, err
	}
	return resp, nil
}

// Achievements lists the student's achievements with progress toward each.
func (c *Client) Achievements(ctx context.Context, token string) ([]dto.Achievement, error) {
	var resp dto.AchievementsResponse
	if err := c.get(ctx, "student.achievements", "/student/achievements", token, &resp, "Failed to fetch achievements"); err != nil {
		return nil, err
	}
	return resp.Achievements, nil
}

// Streak fetches the student's streak counters.
func (c *Client) Streak(ctx context.Context, token string) (dto.StreakResponse, error) {
	var resp dto.StreakResponse
	if err := c.get(ctx, "student.streak", "/student/streak", token, &resp, "Failed to fetch streak"); err != nil {
		return dto.StreakResponse{}, err
	}
	return resp, nil
}
