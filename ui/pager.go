package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

const defaultHeight = 20

// Pager scrolls through already formatted dump lines. The last terminal row
// is kept for the status bar.
type Pager struct {
	title  string
	lines  []string
	top    int
	height int
}

func CreatePager(title string, lines []string) Pager {
	return Pager{
		title:  title,
		lines:  lines,
		top:    0,
		height: defaultHeight,
	}
}

func (p Pager) maxTop() int {
	return lo.Max([]int{0, len(p.lines) - p.height})
}

func (p Pager) scroll(delta int) Pager {
	p.top = lo.Max([]int{0, lo.Min([]int{p.top + delta, p.maxTop()})})
	return p
}

func (p Pager) Init() tea.Cmd {
	return nil
}

func (p Pager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.height = lo.Max([]int{1, msg.Height - 1})
		return p.scroll(0), nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		case "up", "k":
			return p.scroll(-1), nil
		case "down", "j", "enter":
			return p.scroll(1), nil
		case "pgup", "b":
			return p.scroll(-p.height), nil
		case "pgdown", " ", "f":
			return p.scroll(p.height), nil
		case "home", "g":
			return p.scroll(-len(p.lines)), nil
		case "end", "G":
			return p.scroll(len(p.lines)), nil
		}
	}
	return p, nil
}

func (p Pager) View() string {
	end := lo.Min([]int{p.top + p.height, len(p.lines)})
	visible := p.lines[p.top:end]

	output := strings.Join(visible, "\n")
	output += strings.Repeat("\n", p.height-len(visible)+1)
	output += fmt.Sprintf("%s  lines %d-%d of %d  (q to quit)", p.title, p.top+1, end, len(p.lines))
	return output
}
