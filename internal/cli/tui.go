package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mapmaths/plax/pkg/savedir"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// SaveListModel - Interactive save selection
// =============================================================================

// SaveListModel is the bubbletea model for picking a save.
type SaveListModel struct {
	Saves    []savedir.Entry
	Cursor   int
	Selected *savedir.Entry
	Height   int
	Offset   int
	now      func() time.Time
}

// NewSaveListModel creates a picker over saves.
func NewSaveListModel(saves []savedir.Entry) SaveListModel {
	return SaveListModel{Saves: saves, Height: 15, now: time.Now}
}

func (m SaveListModel) Init() tea.Cmd {
	return nil
}

func (m SaveListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Saves)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Saves) == 0 || m.Saves[m.Cursor].Err != nil {
				return m, nil
			}
			s := m.Saves[m.Cursor]
			m.Selected = &s
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m SaveListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Save"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Saves))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, append([]string{cursor}, saveRow(m.Saves[i], m.now())...))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(append([]string{""}, saveHeaders...)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			idx := m.Offset + row
			if idx >= len(m.Saves) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if m.Saves[idx].Err != nil {
				base = base.Foreground(colorRed)
			} else if col >= 3 {
				base = base.Foreground(colorDim)
			}
			if idx == m.Cursor {
				return base.Foreground(colorCyan).Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Saves))))

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

var saveHeaders = []string{"Name", "Subject", "Modified", "Size"}

func saveRow(e savedir.Entry, now time.Time) []string {
	subject := e.Subject
	if e.Err != nil {
		subject = "unreadable"
	} else if subject == "" {
		subject = "—"
	}
	return []string{e.Name, subject, formatRelativeTime(e.ModTime, now), formatSize(e.Size)}
}

func formatRelativeTime(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}

func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
