package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mechkit/fourbar/internal/domain"
)

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Focused  lipgloss.Style
	Status   lipgloss.Style

	// Role colors shared by the canvas, the sliders, and the legend.
	Roles map[domain.Role]lipgloss.Style

	// Banner styles keyed by mechanism category.
	Banners map[domain.Category]lipgloss.Style
}

func DefaultTheme() Theme {
	banner := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color(color))
	}

	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Focused: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Status:  lipgloss.NewStyle().Faint(true).Italic(true),

		Roles: map[domain.Role]lipgloss.Style{
			domain.RoleFrame:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			domain.RoleInput:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			domain.RoleCoupler: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			domain.RoleOutput:  lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		},

		Banners: map[domain.Category]lipgloss.Style{
			domain.CategoryInvalid:        banner("203"),
			domain.CategoryChangePoint:    banner("214"),
			domain.CategoryDoubleCrank:    banner("42"),
			domain.CategoryCrankRocker:    banner("69"),
			domain.CategoryDoubleRockerI:  banner("135"),
			domain.CategoryDoubleRockerII: banner("245"),
		},
	}
}
