package tui

import (
	"fmt"

	"invmerge/internal/inventory"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// model is the category selection menu. Pressing the category number picks it
// directly, matching the old numeric prompt; arrows plus enter also work.
type model struct {
	choices  []inventory.Category
	cursor   int
	selected inventory.Category
	done     bool

	titleStyle    lipgloss.Style
	promptStyle   lipgloss.Style
	selectedStyle lipgloss.Style
	normalStyle   lipgloss.Style
	helpStyle     lipgloss.Style
}

func initialModel() model {
	return model{
		choices: inventory.Categories,

		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")),
		promptStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		selectedStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 1),
		normalStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1),
		helpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}

		case "enter", " ":
			m.selected = m.choices[m.cursor]
			m.done = true
			return m, tea.Quit

		default:
			if category, ok := inventory.ParseChoice(msg.String()); ok {
				m.selected = category
				m.done = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	s := m.titleStyle.Render("=== Inventory Processing System ===") + "\n\n"
	s += m.promptStyle.Render("Presione el numero del producto del cual desea extraer el inventario:") + "\n\n"

	labels := map[inventory.Category]string{
		inventory.CategoryLata:     "Lata",
		inventory.CategoryPreforma: "Preforma",
		inventory.CategoryPT:       "PT",
	}

	for i, choice := range m.choices {
		line := fmt.Sprintf("%s (%d)", labels[choice], i+1)
		if i == m.cursor {
			s += m.selectedStyle.Render("> "+line) + "\n"
		} else {
			s += m.normalStyle.Render("  "+line) + "\n"
		}
	}

	s += "\n" + m.helpStyle.Render("1-3: select • ↑/↓: move • enter: confirm • q: quit")
	return s
}

// SelectCategory runs the interactive menu and returns the chosen category.
// The second result is false when the user backed out without choosing.
func SelectCategory() (inventory.Category, bool, error) {
	p := tea.NewProgram(initialModel())
	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("failed to run selection menu: %v", err)
	}

	m, ok := final.(model)
	if !ok || !m.done {
		return "", false, nil
	}
	return m.selected, true, nil
}
