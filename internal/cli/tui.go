package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/chainscope/chainscope/pkg/trace"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// TxListModel - Interactive transaction browser
// =============================================================================

// TxListModel is the bubbletea model for browsing traced transactions.
type TxListModel struct {
	Address      string
	Transactions []trace.Transaction
	Cursor       int
	Height       int
	Offset       int
}

// NewTxListModel creates a transaction browser for a trace result.
func NewTxListModel(result *trace.Result) TxListModel {
	return TxListModel{
		Address:      result.Address,
		Transactions: result.Transactions,
		Height:       15,
	}
}

func (m TxListModel) Init() tea.Cmd {
	return nil
}

func (m TxListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Transactions)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "g":
			m.Cursor = 0
			m.Offset = 0
		case "G":
			m.Cursor = len(m.Transactions) - 1
			if m.Cursor >= m.Height {
				m.Offset = m.Cursor - m.Height + 1
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

func (m TxListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Transactions " + trace.ElideAddress(m.Address)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	if len(m.Transactions) == 0 {
		b.WriteString(listDimStyle.Render("  no transactions"))
		b.WriteString("\n")
		return b.String()
	}

	end := m.Offset + m.Height
	if end > len(m.Transactions) {
		end = len(m.Transactions)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		tx := m.Transactions[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		flagged := ""
		if len(tx.Flags) > 0 {
			flagged = strings.Join(tx.Flags, ", ")
		}

		rows = append(rows, []string{
			cursor,
			trace.ElideTxID(tx.TxID),
			trace.ElideAddress(tx.From),
			trace.ElideAddress(tx.To),
			fmt.Sprintf("%.4f %s", tx.Amount, tx.Symbol),
			formatTxTime(tx.Timestamp),
			flagged,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "TxID", "From", "To", "Amount", "When", "Flags").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Transactions) {
				return lipgloss.NewStyle()
			}
			tx := m.Transactions[actualIdx]
			isCurrent := actualIdx == m.Cursor

			base := lipgloss.NewStyle()
			if len(tx.Flags) > 0 {
				base = base.Foreground(colorYellow)
			} else if col == 5 {
				base = base.Foreground(colorDim)
			}
			if isCurrent {
				return base.Bold(true).Foreground(colorCyan)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Transactions))))

	return b.String()
}

// browseTransactions runs the interactive transaction browser.
func browseTransactions(result *trace.Result) error {
	model := NewTxListModel(result)
	_, err := tea.NewProgram(model).Run()
	return err
}

// formatTxTime renders a transaction timestamp relative to now.
func formatTxTime(t time.Time) string {
	if t.IsZero() {
		return "—"
	}

	diff := time.Since(t)
	switch {
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
