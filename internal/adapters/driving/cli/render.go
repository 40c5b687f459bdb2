package cli

import (
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/custodia-labs/taskmgr/internal/core/domain"
)

// Status symbols.
const (
	symbolDone    = "✔"
	symbolPending = "✘"
	noDueDate     = "-"
)

var tableHeaders = []string{"#", "Description", "Status", "Due", "Priority"}

// listRow is one rendered task with its list position.
type listRow struct {
	Position int
	Task     domain.ListedTask
}

// newRenderer returns a lipgloss renderer for w honouring the colour mode.
func newRenderer(w io.Writer, mode domain.ColorMode) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case domain.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case domain.ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	}
	return r
}

// dueLabel formats the due column: "-", or the raw date with its status.
func dueLabel(t domain.ListedTask) string {
	value, ok := t.Due.Get()
	if !ok {
		return noDueDate
	}
	switch t.DueStatus {
	case domain.DueOverdue:
		return value + " (overdue)"
	case domain.DueToday:
		return value + " (today)"
	case domain.DueUpcoming:
		return value + " (upcoming)"
	default:
		return value
	}
}

func statusLabel(done bool) string {
	if done {
		return symbolDone
	}
	return symbolPending
}

// renderTaskTable renders rows as a bordered table. A positive maxWidth caps
// the table width.
func renderTaskTable(w io.Writer, rows []listRow, mode domain.ColorMode, maxWidth int) string {
	r := newRenderer(w, mode)

	var (
		header   = r.NewStyle().Bold(true).Padding(0, 1)
		cell     = r.NewStyle().Padding(0, 1)
		border   = r.NewStyle().Foreground(lipgloss.Color("8"))
		done     = cell.Foreground(lipgloss.Color("2"))
		pending  = cell.Foreground(lipgloss.Color("1"))
		overdue  = cell.Foreground(lipgloss.Color("1")).Bold(true)
		today    = cell.Foreground(lipgloss.Color("3"))
		muted    = cell.Foreground(lipgloss.Color("8"))
		high     = cell.Foreground(lipgloss.Color("1"))
		medium   = cell.Foreground(lipgloss.Color("3"))
		finished = cell.Faint(true)
	)

	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		data = append(data, []string{
			strconv.Itoa(row.Position),
			row.Task.Description,
			statusLabel(row.Task.Done),
			dueLabel(row.Task),
			row.Task.Priority.String(),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(border).
		Headers(tableHeaders...).
		Rows(data...).
		StyleFunc(func(rowIdx, col int) lipgloss.Style {
			if rowIdx == table.HeaderRow {
				return header
			}
			task := rows[rowIdx].Task
			switch col {
			case 1:
				if task.Done {
					return finished
				}
			case 2:
				if task.Done {
					return done
				}
				return pending
			case 3:
				switch task.DueStatus {
				case domain.DueOverdue:
					return overdue
				case domain.DueToday:
					return today
				}
				if !task.Due.IsSet() {
					return muted
				}
			case 4:
				switch task.Priority {
				case domain.PriorityHigh:
					return high
				case domain.PriorityMedium:
					return medium
				default:
					return muted
				}
			}
			return cell
		})

	out := t.Render()
	if maxWidth > 0 && lipgloss.Width(out) > maxWidth {
		out = t.Width(maxWidth).Render()
	}
	return out
}

// terminalWidth returns the width of w when it is a terminal, else 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
