package notify

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/h13-0/AppLauncher/internal/ports"
)

type Theme struct {
	Title lipgloss.Style
	Box   lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title: lipgloss.NewStyle().Bold(true),
		Box: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")),
	}
}

// Console writes errors as a bordered box to a terminal stream.
type Console struct {
	w     io.Writer
	theme Theme
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w, theme: DefaultTheme()}
}

var _ ports.ErrorReporter = (*Console)(nil)

func (c *Console) Report(title, message string) error {
	body := lipgloss.JoinVertical(lipgloss.Left, c.theme.Title.Render(title), "", message)
	_, err := fmt.Fprintln(c.w, c.theme.Box.Render(body))
	return err
}
