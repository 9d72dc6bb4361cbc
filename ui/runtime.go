package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

// Start blocks until the user quits the pager. When the dumped bytes came
// from standard input, keys are read from the controlling terminal instead.
func Start(title string, lines []string, inputFromTTY bool) error {
	options := []tea.ProgramOption{tea.WithAltScreen()}
	if inputFromTTY {
		options = append(options, tea.WithInputTTY())
	}
	pager := CreatePager(title, lines)
	if err := tea.NewProgram(pager, options...).Start(); err != nil {
		return errors.Wrap(err, "Start error running pager")
	}
	return nil
}
