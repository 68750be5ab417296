package browse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"advocates/internal/model"
)

const defaultWidth = 120

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1D4D3C")).MarginBottom(1)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	emptyStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Padding(1, 2)
	detailStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#347866")).Padding(0, 1)
	pagerStyle   = lipgloss.NewStyle().Bold(true)
	disabledStep = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("#347866")).
		Bold(false)
	return s
}

// tableHeight leaves room for the header row above limit data rows.
func tableHeight(limit int) int {
	return limit + 2
}

func columns(width int) []table.Column {
	const fixed = 12 + 12 + 14 + 7 + 6 + 12
	specialties := width - fixed - 14
	if specialties < 20 {
		specialties = 20
	}
	return []table.Column{
		{Title: "First Name", Width: 12},
		{Title: "Last Name", Width: 12},
		{Title: "City", Width: 14},
		{Title: "Degree", Width: 7},
		{Title: "Specialties", Width: specialties},
		{Title: "Years", Width: 6},
		{Title: "Phone", Width: 12},
	}
}

func tableRows(advocates []model.Advocate) []table.Row {
	rows := make([]table.Row, 0, len(advocates))
	for _, a := range advocates {
		rows = append(rows, table.Row{
			a.FirstName,
			a.LastName,
			a.City,
			a.Degree,
			specialtiesSummary(a.Specialties),
			strconv.Itoa(a.YearsOfExperience),
			a.PhoneNumber,
		})
	}
	return rows
}

// specialtiesSummary shows the first two specialties and how many more there are.
func specialtiesSummary(specialties []string) string {
	const shown = 2
	if len(specialties) <= shown {
		return strings.Join(specialties, ", ")
	}
	return fmt.Sprintf("%s (+%d more)", strings.Join(specialties[:shown], ", "), len(specialties)-shown)
}

// RangeLabel renders "Showing X to Y of Z results" for n rows on the page p describes.
func RangeLabel(p model.Pagination, n int) string {
	if n == 0 {
		return fmt.Sprintf("Showing 0 to 0 of %d results", p.Total)
	}
	from := (p.Page-1)*p.Limit + 1
	return fmt.Sprintf("Showing %d to %d of %d results", from, from+n-1, p.Total)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Solace Advocates"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.search != "" {
		b.WriteString(mutedStyle.Render("Searching for: " + m.search))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	status := RangeLabel(m.pagination, len(m.rows))
	status += mutedStyle.Render(fmt.Sprintf("  ·  %d per page", m.limit))
	if m.loading {
		status += mutedStyle.Render("  ·  loading...")
	}
	b.WriteString(status)
	b.WriteString("\n")

	if len(m.rows) == 0 {
		b.WriteString(emptyStyle.Render("No advocates found"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	if d := m.detailView(); d != "" {
		b.WriteString(d)
		b.WriteString("\n")
	}

	if m.pagination.TotalPages > 1 {
		b.WriteString(m.pagerView())
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) detailView() string {
	if m.expanded == "" {
		return ""
	}
	for _, a := range m.rows {
		if a.ID != m.expanded {
			continue
		}
		lines := []string{pagerStyle.Render(fmt.Sprintf("Specialties of %s %s", a.FirstName, a.LastName))}
		for _, s := range a.Specialties {
			lines = append(lines, "• "+s)
		}
		return detailStyle.Render(strings.Join(lines, "\n"))
	}
	return ""
}

func (m Model) pagerView() string {
	prev := "‹ Previous"
	if !m.pagination.HasPreviousPage {
		prev = disabledStep.Render(prev)
	}
	next := "Next ›"
	if !m.pagination.HasNextPage {
		next = disabledStep.Render(next)
	}
	label := pagerStyle.Render(fmt.Sprintf("Page %d of %d", m.pagination.Page, m.pagination.TotalPages))
	return lipgloss.JoinHorizontal(lipgloss.Center, prev, "   ", label, "   ", next)
}
