package models

import (
	"math"
	"sort"

	"github.com/fun2learn/fun2learn-web/internal/dto"
)

// Lesson statuses assigned by the backend. Exactly one lesson per enrolled
// course is "current" at any time; the client only renders the assignment.
const (
	LessonCompleted = "completed"
	LessonCurrent   = "current"
	LessonLocked    = "locked"
)

// Chapter statuses derived client-side from the lesson statuses.
const (
	ChapterCompleted  = "completed"
	ChapterInProgress = "in_progress"
	ChapterLocked     = "locked"
)

// ChapterStatusOf derives a chapter's display status from its lessons.
// A chapter with no lessons is locked. All lessons completed means the
// chapter is completed. A chapter that holds the current lesson, or any
// completed lesson, is in progress; anything else has not been reached.
func ChapterStatusOf(lessons []dto.StudentLesson) string {
	if len(lessons) == 0 {
		return ChapterLocked
	}

	allCompleted := true
	reached := false
	for _, lesson := range lessons {
		switch lesson.Status {
		case LessonCompleted:
			reached = true
		case LessonCurrent:
			reached = true
			allCompleted = false
		default:
			allCompleted = false
		}
	}

	if allCompleted {
		return ChapterCompleted
	}
	if reached {
		return ChapterInProgress
	}
	return ChapterLocked
}

// SortedStudentUnits orders the student roadmap units by unit_index.
func SortedStudentUnits(course dto.StudentCourseDetail) []dto.StudentUnit {
	units := make([]dto.StudentUnit, len(course.Units))
	copy(units, course.Units)
	sort.SliceStable(units, func(i, j int) bool {
		return units[i].UnitIndex < units[j].UnitIndex
	})
	return units
}

// SortedStudentChapters orders a unit's chapters by chapter_index.
func SortedStudentChapters(unit dto.StudentUnit) []dto.StudentChapter {
	chapters := make([]dto.StudentChapter, len(unit.Chapters))
	copy(chapters, unit.Chapters)
	sort.SliceStable(chapters, func(i, j int) bool {
		return chapters[i].ChapterIndex < chapters[j].ChapterIndex
	})
	return chapters
}

// SortedStudentLessons orders a chapter's lessons by lesson_index.
func SortedStudentLessons(chapter dto.StudentChapter) []dto.StudentLesson {
	lessons := make([]dto.StudentLesson, len(chapter.Lessons))
	copy(lessons, chapter.Lessons)
	sort.SliceStable(lessons, func(i, j int) bool {
		return lessons[i].LessonIndex < lessons[j].LessonIndex
	})
	return lessons
}

// CompletedLessonCount counts the completed lessons of a chapter, used for
// the in-progress chapter's inner progress bar.
func CompletedLessonCount(lessons []dto.StudentLesson) int {
	count := 0
	for _, lesson := range lessons {
		if lesson.Status == LessonCompleted {
			count++
		}
	}
	return count
}

// ProgressPercent computes completed/total as a percentage rounded to the
// nearest integer. Zero total yields zero.
func ProgressPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return ClampPercent(math.Round(float64(completed) / float64(total) * 100))
}

// ClampPercent bounds a percentage to [0, 100]. The backend is expected to
// supply valid percentages already; this guards rendering against malformed
// input (e.g. completed > total).
func ClampPercent(percent float64) int {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return int(math.Round(percent))
}
