package repl

import "github.com/charmbracelet/lipgloss"

// Theme 终端输出样式
type Theme struct {
	Banner   lipgloss.Style
	Hint     lipgloss.Style
	Farewell lipgloss.Style
}

// DefaultTheme 返回默认主题
func DefaultTheme() *Theme {
	return &Theme{
		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")). // Cyan
			Bold(true),

		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")). // Gray
			Italic(true),

		Farewell: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")). // Yellow
			Bold(true),
	}
}

// PlainTheme renders text unchanged.
func PlainTheme() *Theme {
	return &Theme{
		Banner:   lipgloss.NewStyle(),
		Hint:     lipgloss.NewStyle(),
		Farewell: lipgloss.NewStyle(),
	}
}
