package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nicholsonbt/orange3-spectroscopy-plus/chip"
)

func cmdDetect(deps Deps, sel *selection, alpha, beta float64) tea.Cmd {
	return func() tea.Msg {
		if deps.Detect == nil {
			return detectedMsg{alpha: alpha, beta: beta, err: errors.New("Detect is nil")}
		}

		det, err := deps.Detect(alpha, beta, chip.WithListener(sel.listen))
		return detectedMsg{det: det, alpha: alpha, beta: beta, err: err}
	}
}

func cmdSave(deps Deps, selected []int) tea.Cmd {
	return func() tea.Msg {
		if deps.Save == nil {
			return savedMsg{selected: selected, err: errors.New("Save is nil")}
		}

		return savedMsg{selected: selected, err: deps.Save(selected)}
	}
}
