package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/taskmgr/internal/core/domain"
)

func TestDueLabel(t *testing.T) {
	tests := []struct {
		name string
		task domain.ListedTask
		want string
	}{
		{name: "none", task: domain.ListedTask{}, want: "-"},
		{name: "overdue", task: listed("2024-01-01", domain.DueOverdue), want: "2024-01-01 (overdue)"},
		{name: "today", task: listed("2024-06-15", domain.DueToday), want: "2024-06-15 (today)"},
		{name: "upcoming", task: listed("2099-01-01", domain.DueUpcoming), want: "2099-01-01 (upcoming)"},
		{name: "unparseable", task: listed("2024-13-45", domain.DueNone), want: "2024-13-45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dueLabel(tt.task))
		})
	}
}

func listed(due string, status domain.DueStatus) domain.ListedTask {
	return domain.ListedTask{
		Task:      domain.Task{Description: "x", Due: domain.DueOn(due), Priority: domain.PriorityLow},
		DueStatus: status,
	}
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "✔", statusLabel(true))
	assert.Equal(t, "✘", statusLabel(false))
}

func TestNewRenderer_ColorModes(t *testing.T) {
	var buf bytes.Buffer

	assert.Equal(t, termenv.Ascii, newRenderer(&buf, domain.ColorNever).ColorProfile())
	assert.Equal(t, termenv.ANSI256, newRenderer(&buf, domain.ColorAlways).ColorProfile())
}

func TestRenderTaskTable_ColorAlways(t *testing.T) {
	var buf bytes.Buffer
	rows := []listRow{{Position: 1, Task: listed("2024-01-01", domain.DueOverdue)}}

	out := renderTaskTable(&buf, rows, domain.ColorAlways, 0)

	assert.Contains(t, out, "\x1b[")
}

func TestRenderTaskTable_ColorNever(t *testing.T) {
	var buf bytes.Buffer
	rows := []listRow{{Position: 1, Task: listed("2024-01-01", domain.DueOverdue)}}

	out := renderTaskTable(&buf, rows, domain.ColorNever, 0)

	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "2024-01-01 (overdue)")
}

func TestRenderTaskTable_MaxWidth(t *testing.T) {
	var buf bytes.Buffer
	rows := []listRow{{Position: 1, Task: domain.ListedTask{Task: domain.Task{
		Description: strings.Repeat("long description ", 10),
		Priority:    domain.PriorityHigh,
	}}}}

	wide := renderTaskTable(&buf, rows, domain.ColorNever, 0)
	narrow := renderTaskTable(&buf, rows, domain.ColorNever, 60)

	assert.Greater(t, lipgloss.Width(wide), 60)
	assert.LessOrEqual(t, lipgloss.Width(narrow), 60)
}

func TestTerminalWidth_NotATerminal(t *testing.T) {
	assert.Zero(t, terminalWidth(&bytes.Buffer{}))
}
