// Package feedback renders grader feedback into terminal output. The
// rendering is a pure projection of the feedback object: the live
// submission screen and the history detail screen both call it, and they
// must never diverge for structurally identical data.
package feedback

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsnap/internal/api"
	"github.com/abhisek/mathsnap/internal/ui/theme"
)

// Badge renders the correctness verdict. Quality rejections carry no
// verdict and must never show one.
func Badge(isCorrect bool) string {
	if isCorrect {
		return theme.BadgeCorrect.Render("✔ Correct!")
	}
	return theme.BadgeIncorrect.Render("✘ Not quite right")
}

// Render projects a feedback object into lines: summary, optional
// step-by-step analysis, optional suggestions, optional encouragement.
func Render(f api.Feedback, width int) string {
	var b strings.Builder

	b.WriteString(theme.Body.Width(width).Render(f.Summary))
	b.WriteString("\n")

	if len(f.StepsAnalysis) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Align(lipgloss.Left).Render("Step-by-step analysis:"))
		b.WriteString("\n")
		for _, step := range f.StepsAnalysis {
			b.WriteString(renderStep(step, width))
		}
	}

	if len(f.Suggestions) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Align(lipgloss.Left).Render("Suggestions:"))
		b.WriteString("\n")
		for _, s := range f.Suggestions {
			b.WriteString(theme.Body.Width(width - 4).Render("  • " + s))
			b.WriteString("\n")
		}
	}

	if f.Encouragement != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Italic(true).
			Width(width).
			Render(f.Encouragement))
		b.WriteString("\n")
	}

	return b.String()
}

func renderStep(step api.StepAnalysis, width int) string {
	var b strings.Builder

	b.WriteString("  ")
	b.WriteString(evaluationStyle(step.Evaluation).Render(evaluationMark(step.Evaluation) + " " + step.Step))
	b.WriteString("\n")
	if step.Comment != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(width - 4).
			Render("    " + step.Comment))
		b.WriteString("\n")
	}

	return b.String()
}

func evaluationStyle(evaluation string) lipgloss.Style {
	switch evaluation {
	case "correct":
		return theme.BadgeCorrect
	case "incorrect":
		return theme.BadgeIncorrect
	default: // "unclear"
		return theme.BadgeWarning
	}
}

func evaluationMark(evaluation string) string {
	switch evaluation {
	case "correct":
		return "✔"
	case "incorrect":
		return "✘"
	default:
		return "?"
	}
}
