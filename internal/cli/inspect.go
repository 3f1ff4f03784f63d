package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/helioviz/sunburst/pkg/interaction"
	"github.com/helioviz/sunburst/pkg/sunburst"
	"github.com/helioviz/sunburst/pkg/tree"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// newInspectCmd creates the inspect command: an interactive terminal browser
// over a computed layout. Moving the cursor hovers the arc under it, which
// drives the same center label the SVG output shows; enter selects a node.
func newInspectCmd() *cobra.Command {
	var levels int
	var radius float64

	cmd := &cobra.Command{
		Use:   "inspect <tree.json>",
		Short: "Browse a sunburst layout interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], levels, radius)
		},
	}

	cmd.Flags().IntVar(&levels, "levels", 0, "ring count (default: tree depth)")
	cmd.Flags().Float64Var(&radius, "radius", 280, "chart radius")

	return cmd
}

func runInspect(cmd *cobra.Command, input string, levels int, radius float64) error {
	root, err := readTree(input)
	if err != nil {
		return err
	}

	norm := tree.Normalize(root)
	if levels == 0 {
		levels = tree.Depth(norm)
		if levels == 0 {
			levels = 1
		}
	}
	arcs := sunburst.Layout(norm, levels, radius)
	if len(arcs) == 0 {
		return fmt.Errorf("layout produced no arcs (empty or zero-weight tree)")
	}

	layer := interaction.NewLayer(norm.Name, arcs, 0, 0)
	var clicked *tree.Node
	layer.OnClick(func(n *tree.Node) {
		clicked = n
	})

	model := newArcListModel(arcs, layer)
	prog := tea.NewProgram(model, tea.WithOutput(cmd.OutOrStdout()))
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run inspector: %w", err)
	}

	if clicked != nil {
		printSuccess("Selected %s", clicked.Name)
		printKeyValue("name", clicked.Name)
		printKeyValue("value", fmt.Sprintf("%g", clicked.Weight()))
		printKeyValue("color", clicked.Color)
		printKeyValue("children", fmt.Sprintf("%d", len(clicked.Children)))
	}
	return nil
}

// arcListModel is the bubbletea model for browsing the layout's arcs.
// The cursor doubles as the hover selection on the interaction layer.
type arcListModel struct {
	arcs   []sunburst.Arc
	layer  *interaction.Layer
	cursor int
	height int
	offset int
}

func newArcListModel(arcs []sunburst.Arc, layer *interaction.Layer) arcListModel {
	m := arcListModel{
		arcs:   arcs,
		layer:  layer,
		height: 15,
	}
	m.layer.PointerEnter(arcs[0])
	return m
}

func (m arcListModel) Init() tea.Cmd {
	return nil
}

func (m arcListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.layer.PointerLeave()
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
				m.layer.PointerEnter(m.arcs[m.cursor])
			}
		case "down", "j":
			if m.cursor < len(m.arcs)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
				m.layer.PointerEnter(m.arcs[m.cursor])
			}
		case "enter":
			m.layer.Click(m.arcs[m.cursor])
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m arcListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Sunburst Layout"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ hover  ⏎ select  esc/q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.arcs) {
		end = len(m.arcs)
	}

	rows := [][]string{}
	for i := m.offset; i < end; i++ {
		a := m.arcs[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		span := fmt.Sprintf("%.1f°", a.Span())
		if !a.Visible() {
			span = "—"
		}
		angles := fmt.Sprintf("%.1f–%.1f", a.StartAngle, a.EndAngle)
		ring := fmt.Sprintf("%d", a.Level())

		rows = append(rows, []string{cursor, a.Node.Name, ring, span, angles, a.Color})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Node", "Ring", "Span", "Angles", "Color").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			actualIdx := m.offset + row
			if actualIdx >= len(m.arcs) {
				return lipgloss.NewStyle()
			}
			if actualIdx == m.cursor {
				return listSelectedStyle
			}
			if !m.arcs[actualIdx].Visible() {
				return listDimStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString("  " + StyleValue.Render(m.layer.Label()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.arcs))))

	return b.String()
}
