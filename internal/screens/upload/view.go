package upload

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsnap/internal/feedback"
	"github.com/abhisek/mathsnap/internal/ui/theme"
)

func (s *UploadScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(s.renderProblemCard(width))
	b.WriteString("\n")

	switch s.phase {
	case phaseAwaiting:
		b.WriteString(s.renderLoading(width))
	case phaseGraded:
		b.WriteString(s.renderGraded(width))
	case phaseQuality:
		b.WriteString(s.renderQualityRejection(width))
	case phaseFailed:
		b.WriteString(s.renderFailure(width))
	default:
		b.WriteString(s.renderUploadControls(width))
	}

	return b.String()
}

func (s *UploadScreen) renderProblemCard(width int) string {
	question := "(no problem selected)"
	if s.state.Problem != nil {
		question = s.state.Problem.Question
	}

	card := theme.Card.Width(min(width-4, 76)).Render(
		theme.Subtitle.Align(lipgloss.Left).Render("Problem") + "\n" +
			theme.Body.Bold(true).Render(question))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func (s *UploadScreen) renderUploadControls(width int) string {
	var b strings.Builder
	contentWidth := min(width-8, 72)

	if s.state.Pending == nil {
		b.WriteString("\n")
		b.WriteString(theme.Body.Width(width).Align(lipgloss.Center).
			Render("Photograph your handwritten work and enter the file path:"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
		b.WriteString("\n")
	} else {
		img := s.state.Pending
		info := fmt.Sprintf("%s  ·  %s  ·  %s", img.Name(), img.HumanSize(), img.MIME)
		panel := theme.Card.BorderForeground(theme.Secondary).Width(contentWidth).Render(
			theme.Subtitle.Align(lipgloss.Left).Render("Attached image") + "\n" +
				theme.Body.Render(info))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, panel))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render("Press Enter to submit, or X to pick a different image."))
		b.WriteString("\n")
	}

	if s.alert != "" {
		b.WriteString("\n")
		b.WriteString(theme.ErrorBlock.Width(width).Align(lipgloss.Center).Render(s.alert))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *UploadScreen) renderLoading(width int) string {
	return "\n" + theme.Loading.Width(width).Align(lipgloss.Center).
		Render("Checking your work...\n\nThis usually takes a few seconds.")
}

func (s *UploadScreen) renderGraded(width int) string {
	res := s.outcome.Graded
	contentWidth := min(width-8, 72)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, feedback.Badge(res.IsCorrect)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		feedback.Render(res.Feedback, contentWidth)))

	if res.ExtractedWork != "" {
		b.WriteString("\n")
		transcript := theme.Card.Width(contentWidth).Render(
			theme.Subtitle.Align(lipgloss.Left).Render("What we read from your work") + "\n" +
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(res.ExtractedWork))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, transcript))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
		Render("Press Enter to submit another photo."))
	return b.String()
}

func (s *UploadScreen) renderQualityRejection(width int) string {
	rej := s.outcome.Quality
	contentWidth := min(width-8, 72)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.BadgeWarning.Render("⚠ Image Quality Issue")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		feedback.Render(rej.Feedback, contentWidth)))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
		Render("Press Enter to retake the photo."))
	return b.String()
}

func (s *UploadScreen) renderFailure(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.ErrorBlock.Width(width).Align(lipgloss.Center).Render(s.failMsg))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
		Render("Press Enter to try again."))
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
