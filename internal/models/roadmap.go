package models

import (
	"sort"

	"github.com/fun2learn/fun2learn-web/internal/dto"
)

// The backend does not guarantee that units, chapters or lessons arrive
// sorted, only that the 1-based indices are unique within their parent.
// Every render goes through these helpers rather than trusting array order.

// SortedUnits returns the course units ordered by unit_index ascending.
// The sort is stable so a duplicate index (a data-integrity bug upstream)
// stays visible instead of flickering between renders.
func SortedUnits(course dto.CourseDetail) []dto.UnitDetail {
	units := make([]dto.UnitDetail, len(course.Units))
	copy(units, course.Units)
	sort.SliceStable(units, func(i, j int) bool {
		return units[i].UnitIndex < units[j].UnitIndex
	})
	return units
}

// SortedChapters returns the unit chapters ordered by chapter_index ascending.
func SortedChapters(unit dto.UnitDetail) []dto.ChapterDetail {
	chapters := make([]dto.ChapterDetail, len(unit.Chapters))
	copy(chapters, unit.Chapters)
	sort.SliceStable(chapters, func(i, j int) bool {
		return chapters[i].ChapterIndex < chapters[j].ChapterIndex
	})
	return chapters
}

// SortedLessons returns the chapter lessons ordered by lesson_index ascending.
func SortedLessons(chapter dto.ChapterDetail) []dto.LessonDetail {
	lessons := make([]dto.LessonDetail, len(chapter.Lessons))
	copy(lessons, chapter.Lessons)
	sort.SliceStable(lessons, func(i, j int) bool {
		return lessons[i].LessonIndex < lessons[j].LessonIndex
	})
	return lessons
}

// CourseCounts aggregates the tree sizes shown on the editor header. The
// counts are recomputed from the latest fetched snapshot on every render,
// never cached, so they always agree with the last successful fetch.
type CourseCounts struct {
	Units     int
	Chapters  int
	Lessons   int
	Questions int
}

// CountCourse walks the full course aggregate.
func CountCourse(course dto.CourseDetail) CourseCounts {
	counts := CourseCounts{Units: len(course.Units)}
	for _, unit := range course.Units {
		unitCounts := CountUnit(unit)
		counts.Chapters += unitCounts.Chapters
		counts.Lessons += unitCounts.Lessons
		counts.Questions += unitCounts.Questions
	}
	return counts
}

// CountUnit sums chapters, lessons and questions below a single unit.
func CountUnit(unit dto.UnitDetail) CourseCounts {
	counts := CourseCounts{Units: 1, Chapters: len(unit.Chapters)}
	for _, chapter := range unit.Chapters {
		counts.Lessons += len(chapter.Lessons)
		for _, lesson := range chapter.Lessons {
			counts.Questions += lesson.QuestionCount
		}
	}
	return counts
}
