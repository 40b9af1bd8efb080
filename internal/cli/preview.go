package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/panplot/panplot/pkg/scale"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// previewSamples is how many sample points the detail pane shows.
const previewSamples = 9

// newPreviewCmd creates the preview command, an interactive browser
// over the scale registry.
func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Browse the registered scales interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := NewScaleListModel()
			_, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

// =============================================================================
// ScaleListModel - Interactive scale browsing
// =============================================================================

// ScaleListModel is the bubbletea model for browsing scales. The left
// pane lists registry and preset names; the right pane shows a live
// forward/inverse sample with formatted tick labels for the scale
// under the cursor.
type ScaleListModel struct {
	Names  []string
	Cursor int
	Height int
	Offset int
}

// NewScaleListModel creates a scale list model over the registered
// scales and presets.
func NewScaleListModel() ScaleListModel {
	names := scale.Names()
	names = append(names, scale.Presets()...)
	return ScaleListModel{
		Names:  names,
		Height: 15,
	}
}

func (m ScaleListModel) Init() tea.Cmd {
	return nil
}

func (m ScaleListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Names)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ScaleListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Scales"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Names) {
		end = len(m.Names)
	}

	var list strings.Builder
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := cursor + m.Names[i]
		if i == m.Cursor {
			list.WriteString(listSelectedStyle.Render(line))
		} else {
			list.WriteString(listNormalStyle.Render(line))
		}
		list.WriteString("\n")
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().MarginRight(3).Render(list.String()),
		m.detailView()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Names))))

	return b.String()
}

// detailView renders the sample table for the scale under the cursor.
func (m ScaleListModel) detailView() string {
	if len(m.Names) == 0 {
		return ""
	}
	name := m.Names[m.Cursor]
	s, err := scale.New(name)
	if err != nil {
		return StyleWarning.Render(err.Error())
	}

	min, max := s.LimitRange(0, 10)
	points, err := samplePoints(min, max, previewSamples)
	if err != nil {
		return StyleWarning.Render(err.Error())
	}

	tr := s.Transform()
	formatter := s.Formatter()
	rows := make([][]string, 0, len(points))
	for _, x := range points {
		fwd := tr.Forward(x)
		rows = append(rows, []string{
			formatFloat(x),
			formatFloat(fwd),
			formatFloat(tr.Inverse(fwd)),
			formatter.Format(x),
		})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("x", "forward", "inverse", "label").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			return StyleValue
		}).
		Render()
}
