package tui

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nicholsonbt/orange3-spectroscopy-plus/chip"
	"github.com/nicholsonbt/orange3-spectroscopy-plus/chip/boundary"
)

const (
	// rowOffset is the screen line of the first boundary row in View.
	rowOffset = 4
	// step is the sensitivity increment for the +/- and [/] keys.
	step = 0.5
)

// selection tracks whether the included set differs from what was last
// written. Registries report into it through their listener.
type selection struct {
	selected []int
	dirty    bool
}

func (s *selection) listen(selected []int) error {
	if !slices.Equal(s.selected, selected) {
		s.dirty = true
	}
	s.selected = selected

	return nil
}

type model struct {
	theme Theme
	deps  Deps

	alpha float64
	beta  float64
	det   *chip.Detection
	sel   *selection

	cursor  int
	pressed int

	confirmQuit bool
	detecting   bool
	status      string
	err         error
}

// Run starts the editor and blocks until the user quits.
func Run(deps Deps) error {
	m := wrapSafe(newModel(deps), deps.Log)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	return model{
		theme:   DefaultTheme(),
		deps:    deps,
		alpha:   deps.Alpha,
		beta:    deps.Beta,
		sel:     &selection{},
		pressed: -1,
	}
}

func (m model) Init() tea.Cmd {
	return cmdDetect(m.deps, m.sel, m.alpha, m.beta)
}

func (m model) registry() *boundary.Registry {
	if m.det == nil {
		return nil
	}
	return m.det.Registry
}

func (m model) slots() int {
	if reg := m.registry(); reg != nil {
		return reg.Len()
	}
	return 0
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case detectedMsg:
		// A later request superseded this one.
		if msg.alpha != m.alpha || msg.beta != m.beta {
			return m, nil
		}
		m.detecting = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		if m.det != nil {
			m.sel.dirty = true
		}
		m.det = msg.det
		m.sel.selected = msg.det.Registry.Selected()
		m.cursor = min(m.cursor, max(m.slots()-1, 0))
		m.pressed = -1
		m.err = nil
		m.status = fmt.Sprintf("%d boundaries found", m.slots())
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		// Edits made while writing stay pending.
		m.sel.dirty = !slices.Equal(m.sel.selected, msg.selected)
		m.err = nil
		m.status = "wrote " + m.deps.Target
		return m, nil

	case tea.MouseMsg:
		return m.mouse(msg), nil

	case tea.KeyMsg:
		return m.key(msg)
	}

	return m, nil
}

func (m model) mouse(msg tea.MouseMsg) model {
	reg := m.registry()
	if reg == nil {
		return m
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		reg.DeactivateAll()
		m.pressed = -1

		slot := msg.Y - rowOffset
		if slot < 0 || slot >= reg.Len() {
			return m
		}
		m.cursor = slot
		if err := reg.DelayedActivate(slot); err != nil {
			m.err = err
			return m
		}
		m.pressed = slot

	case tea.MouseActionRelease:
		if m.pressed < 0 {
			return m
		}
		if err := reg.Deactivate(m.pressed); err != nil {
			m.err = err
		}
		m.pressed = -1
	}

	return m
}

func (m model) key(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	if k != "q" {
		m.confirmQuit = false
	}

	switch k {
	case "ctrl+c":
		return m, tea.Quit

	case "q":
		if m.sel.dirty && !m.confirmQuit {
			m.confirmQuit = true
			m.status = "unsaved changes; press q again to discard"
			return m, nil
		}
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < m.slots()-1 {
			m.cursor++
		}

	case " ", "space", "x":
		if reg := m.registry(); reg != nil && reg.Len() > 0 {
			m.err = reg.Toggle(m.cursor)
		}

	case "enter":
		if reg := m.registry(); reg != nil && reg.Len() > 0 {
			reg.DeactivateAll()
			m.err = reg.Activate(m.cursor)
			if errors.Is(m.err, boundary.ErrInvalidTransition) {
				m.status = "excluded boundaries cannot be highlighted"
			}
		}

	case "esc":
		if reg := m.registry(); reg != nil {
			reg.DeactivateAll()
		}

	case "+", "=":
		return m.retune(m.alpha+step, m.beta)

	case "-":
		return m.retune(m.alpha-step, m.beta)

	case "]":
		return m.retune(m.alpha, m.beta+step)

	case "[":
		return m.retune(m.alpha, m.beta-step)

	case "w":
		reg := m.registry()
		if reg == nil {
			return m, nil
		}
		m.status = "writing..."
		return m, cmdSave(m.deps, reg.Selected())
	}

	return m, nil
}

// retune re-runs detection with new sensitivities, clamped at zero.
func (m model) retune(alpha, beta float64) (tea.Model, tea.Cmd) {
	alpha = math.Max(alpha, 0)
	beta = math.Max(beta, 0)
	if alpha == m.alpha && beta == m.beta {
		return m, nil
	}

	m.alpha, m.beta = alpha, beta
	m.detecting = true
	m.status = "detecting..."

	return m, cmdDetect(m.deps, m.sel, alpha, beta)
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("chipstitch") + "\n")

	params := fmt.Sprintf("alpha %.2f  beta %.2f", m.alpha, m.beta)
	if m.deps.Target != "" {
		params += "  -> " + m.deps.Target
	}
	if m.sel.dirty {
		params += "  (modified)"
	}
	b.WriteString(m.theme.Subtitle.Render(params) + "\n\n")

	b.WriteString(fmt.Sprintf("  %-4s  %-5s  %-12s  %s\n", "Slot", "Index", "Wavenumber", "State"))

	if reg := m.registry(); reg != nil {
		for i, bd := range reg.Boundaries() {
			prefix := "  "
			if i == m.cursor {
				prefix = m.theme.Cursor.Render("> ")
			}
			line := fmt.Sprintf("%-4d  %-5d  %-12.4f  %s", i, bd.Index, bd.Wavenumber, bd.State)
			b.WriteString(prefix + m.stateStyle(bd.State).Render(line) + "\n")
		}
		if reg.Len() == 0 {
			b.WriteString(m.theme.Subtitle.Render("  no chip transitions found") + "\n")
		}
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.theme.Error.Render("error: "+m.err.Error()) + "\n")
	} else if m.status != "" {
		b.WriteString(m.status + "\n")
	}

	b.WriteString(m.theme.Help.Render("↑/↓ move • space toggle • enter highlight • +/- alpha • [/] beta • w write • q quit"))

	return b.String()
}

func (m model) stateStyle(s boundary.State) lipgloss.Style {
	switch s {
	case boundary.Excluded:
		return m.theme.Excluded
	case boundary.Active, boundary.DelayedActive:
		return m.theme.Active
	default:
		return m.theme.Included
	}
}
