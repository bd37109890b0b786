package forms

import (
	"errors"
	"strings"

	"github.com/fun2learn/fun2learn-web/internal/dto"
)

// QuestionKind is the authoring form's mode. The form starts unselected and
// commits to one variant before any validation runs.
type QuestionKind string

const (
	QuestionUnselected QuestionKind = ""
	QuestionMCQ        QuestionKind = "mcq"
	QuestionText       QuestionKind = "text"
)

// QuestionForm is the raw question authoring submission. MCQ fields and text
// fields coexist here; Kind decides which set is read.
type QuestionForm struct {
	Kind          QuestionKind
	QuestionText  string
	Options       []dto.MCQOptionInput
	CorrectAnswer string
	CasingMatters bool
}

var (
	errNoKind         = errors.New("Choose a question type first")
	errNoQuestionText = errors.New("Question text is required")
	errTooFewOptions  = errors.New("An MCQ question needs at least two answer options")
	errNoCorrect      = errors.New("Mark exactly one option as correct")
	errNoTextAnswer   = errors.New("A text question needs a correct answer")
)

// CleanOptions drops options whose text is blank, preserving the order of
// the rest. Tutors routinely leave trailing option rows empty.
func CleanOptions(options []dto.MCQOptionInput) []dto.MCQOptionInput {
	cleaned := make([]dto.MCQOptionInput, 0, len(options))
	for _, opt := range options {
		text := strings.TrimSpace(opt.OptionText)
		if text == "" {
			continue
		}
		cleaned = append(cleaned, dto.MCQOptionInput{OptionText: text, IsCorrect: opt.IsCorrect})
	}
	return cleaned
}

// Validate checks the form against its kind and returns the normalised
// payload: trimmed question text and, for MCQ, the cleaned option list.
// Error text is shown to the tutor verbatim.
func (f QuestionForm) Validate() (QuestionForm, error) {
	out := f
	out.QuestionText = strings.TrimSpace(f.QuestionText)

	if f.Kind != QuestionMCQ && f.Kind != QuestionText {
		return out, errNoKind
	}
	if out.QuestionText == "" {
		return out, errNoQuestionText
	}

	switch f.Kind {
	case QuestionMCQ:
		out.Options = CleanOptions(f.Options)
		if len(out.Options) < 2 {
			return out, errTooFewOptions
		}
		correct := 0
		for _, opt := range out.Options {
			if opt.IsCorrect {
				correct++
			}
		}
		if correct != 1 {
			return out, errNoCorrect
		}
	case QuestionText:
		out.CorrectAnswer = strings.TrimSpace(f.CorrectAnswer)
		if out.CorrectAnswer == "" {
			return out, errNoTextAnswer
		}
	}

	return out, nil
}
