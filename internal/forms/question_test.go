package forms

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fun2learn/fun2learn-web/internal/dto"
)

func opt(text string, correct bool) dto.MCQOptionInput {
	return dto.MCQOptionInput{OptionText: text, IsCorrect: correct}
}

func TestCleanOptionsDropsBlanks(t *testing.T) {
	cleaned := CleanOptions([]dto.MCQOptionInput{
		opt("Paris", true),
		opt("   ", false),
		opt("London", false),
		opt("", false),
	})
	require.Len(t, cleaned, 2)
	require.Equal(t, "Paris", cleaned[0].OptionText)
	require.Equal(t, "London", cleaned[1].OptionText)
}

func TestValidateMCQ(t *testing.T) {
	cases := []struct {
		name    string
		form    QuestionForm
		wantErr string
	}{
		{
			name: "valid with trailing blanks",
			form: QuestionForm{
				Kind:         QuestionMCQ,
				QuestionText: "Capital of France?",
				Options:      []dto.MCQOptionInput{opt("Paris", true), opt("London", false), opt("", false)},
			},
		},
		{
			name: "one non-empty option",
			form: QuestionForm{
				Kind:         QuestionMCQ,
				QuestionText: "Capital of France?",
				Options:      []dto.MCQOptionInput{opt("Paris", true), opt("  ", false)},
			},
			wantErr: "An MCQ question needs at least two answer options",
		},
		{
			name: "no correct option",
			form: QuestionForm{
				Kind:         QuestionMCQ,
				QuestionText: "Capital of France?",
				Options:      []dto.MCQOptionInput{opt("Paris", false), opt("London", false)},
			},
			wantErr: "Mark exactly one option as correct",
		},
		{
			name: "two correct options",
			form: QuestionForm{
				Kind:         QuestionMCQ,
				QuestionText: "Capital of France?",
				Options:      []dto.MCQOptionInput{opt("Paris", true), opt("London", true)},
			},
			wantErr: "Mark exactly one option as correct",
		},
		{
			name: "blank correct option does not count",
			form: QuestionForm{
				Kind:         QuestionMCQ,
				QuestionText: "Capital of France?",
				Options:      []dto.MCQOptionInput{opt("Paris", false), opt("London", false), opt(" ", true)},
			},
			wantErr: "Mark exactly one option as correct",
		},
		{
			name: "missing question text",
			form: QuestionForm{
				Kind:    QuestionMCQ,
				Options: []dto.MCQOptionInput{opt("Paris", true), opt("London", false)},
			},
			wantErr: "Question text is required",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := tc.form.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				for _, o := range out.Options {
					require.NotEmpty(t, o.OptionText)
				}
				return
			}
			require.EqualError(t, err, tc.wantErr)
		})
	}
}

func TestValidateText(t *testing.T) {
	form := QuestionForm{
		Kind:          QuestionText,
		QuestionText:  "Spell the capital of France",
		CorrectAnswer: "  Paris  ",
		CasingMatters: true,
	}
	out, err := form.Validate()
	require.NoError(t, err)
	require.Equal(t, "Paris", out.CorrectAnswer)
	require.True(t, out.CasingMatters)

	form.CorrectAnswer = "   "
	_, err = form.Validate()
	require.EqualError(t, err, "A text question needs a correct answer")
}

func TestValidateRequiresKind(t *testing.T) {
	_, err := QuestionForm{QuestionText: "anything"}.Validate()
	require.EqualError(t, err, "Choose a question type first")
}
