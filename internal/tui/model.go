// Package tui implements the interactive report viewer.
package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/table"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bhoomigoyal/cloud-cost-optimizer/internal/cost"
	"github.com/bhoomigoyal/cloud-cost-optimizer/internal/store"
	"github.com/bhoomigoyal/cloud-cost-optimizer/internal/tui/theme"
	"github.com/bhoomigoyal/cloud-cost-optimizer/internal/utils"
)

// Messages
type reportMsg struct{ report *cost.Report }
type errMsg struct{ err error }

// Model holds the report viewer state.
type Model struct {
	store  *store.Store
	report *cost.Report

	err     error
	loading bool
	spinner spinner.Model
	table   table.Model
	width   int
	height  int

	// Recommendation drill-down
	selected int // -1 = showing the list
}

// NewModel creates a new report viewer model.
func NewModel(st *store.Store) Model {
	columns := []table.Column{
		{Title: "Recommendation", Width: 35},
		{Title: "Service", Width: 14},
		{Title: "Savings", Width: 14},
		{Title: "Type", Width: 22},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(10),
		table.WithWidth(90),
	)
	t.SetStyles(theme.DefaultTableStyles())

	return Model{
		store:    st,
		loading:  true,
		spinner:  theme.NewSpinner(),
		table:    t,
		width:    90,
		height:   24,
		selected: -1,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadReport())
}

func (m Model) loadReport() tea.Cmd {
	return func() tea.Msg {
		report := &cost.Report{}
		if err := m.store.ReadJSON(store.Report, report); err != nil {
			return errMsg{err: err}
		}
		return reportMsg{report: report}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.err = nil
			m.selected = -1
			return m, tea.Batch(m.spinner.Tick, m.loadReport())
		case "esc":
			if m.selected >= 0 {
				m.selected = -1
				return m, nil
			}
		case "enter":
			if m.report != nil && m.selected < 0 {
				idx := m.table.Cursor()
				if idx >= 0 && idx < len(m.report.Recommendations) {
					m.selected = idx
					return m, nil
				}
			}
		}

	case reportMsg:
		m.report = msg.report
		m.loading = false
		m.table.SetRows(m.buildRows())
		return m, nil

	case errMsg:
		m.err = msg.err
		m.loading = false
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m = m.resizeTable()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) buildRows() []table.Row {
	if m.report == nil {
		return nil
	}
	rows := make([]table.Row, 0, len(m.report.Recommendations))
	for _, rec := range m.report.Recommendations {
		rows = append(rows, table.Row{
			rec.Title,
			rec.Service,
			utils.Currency(rec.PotentialSavings),
			rec.RecommendationType,
		})
	}
	return rows
}

func (m Model) renderHeader() string {
	parts := []string{titleStyle.Render("Cost Optimization Report")}
	if m.report != nil {
		parts = append(parts, "   ",
			metricLabelStyle.Render("project: ")+projectStyle.Render(m.report.ProjectName))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderMetrics() string {
	a := m.report.Analysis
	s := m.report.Summary

	budgetState := metricValueStyle.Render("within budget")
	if a.IsOverBudget {
		budgetState = overBudgetStyle.Render("OVER BUDGET")
	}

	costs := lipgloss.JoinHorizontal(
		lipgloss.Top,
		metricLabelStyle.Render("Total: ")+metricValueStyle.Render(utils.Currency(a.TotalMonthlyCost)),
		"        ",
		metricLabelStyle.Render("Budget: ")+metricValueStyle.Render(utils.Currency(a.Budget)),
		"        ",
		metricLabelStyle.Render("Variance: ")+metricValueStyle.Render(utils.Currency(a.BudgetVariance)),
		"   ",
		budgetState,
	)

	savings := metricLabelStyle.Render("Potential Savings: ") +
		savingsStyle.Render(fmt.Sprintf("%s (%.2f%%)", utils.Currency(s.TotalPotentialSavings), s.SavingsPercentage)) +
		metricLabelStyle.Render(fmt.Sprintf("    %d recommendations, %d high impact",
			s.RecommendationsCount, s.HighImpactRecommendations))

	return costs + "\n" + savings
}

func (m Model) renderDetail() string {
	rec := m.report.Recommendations[m.selected]

	var b strings.Builder
	b.WriteString(titleStyle.Render(rec.Title) + "\n\n")
	b.WriteString(metricLabelStyle.Render("Service: ") + rec.Service + "\n")
	b.WriteString(metricLabelStyle.Render("Current Cost: ") + utils.Currency(rec.CurrentCost) + "\n")
	b.WriteString(metricLabelStyle.Render("Potential Savings: ") + savingsStyle.Render(utils.Currency(rec.PotentialSavings)) + "\n")
	b.WriteString(metricLabelStyle.Render("Type: ") + rec.RecommendationType + "\n")
	b.WriteString(metricLabelStyle.Render("Effort: ") + rec.ImplementationEffort +
		metricLabelStyle.Render("  Risk: ") + rec.RiskLevel + "\n\n")
	b.WriteString(rec.Description + "\n\n")
	b.WriteString(metricLabelStyle.Render("Steps:") + "\n")
	for _, step := range rec.Steps {
		b.WriteString("  - " + step + "\n")
	}
	b.WriteString("\n" + metricLabelStyle.Render("Providers: ") + strings.Join(rec.CloudProviders, ", ") + "\n")
	return b.String()
}

func (m Model) View() tea.View {
	header := m.renderHeader()

	var content string
	if m.loading {
		content = dashboardStyle.Render(
			header + "\n\n" + m.spinner.View() + " Loading report...\n",
		)
	} else if m.err != nil {
		content = dashboardStyle.Render(
			header + "\n\n" + errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) +
				"\n\n" + helpStyle.Render("Run the analyze command first • r retry • q quit"),
		)
	} else if m.report == nil {
		content = dashboardStyle.Render(header + "\n\nNo report available.\n")
	} else if m.selected >= 0 {
		content = dashboardStyle.Render(
			headerStyle.Render(header) + "\n\n" +
				m.renderDetail() +
				helpStyle.Render("Esc back • q quit"),
		)
	} else {
		content = dashboardStyle.Render(
			headerStyle.Render(header) + "\n\n" +
				m.renderMetrics() + "\n\n" +
				metricLabelStyle.Render("Recommendations") + "\n" + m.table.View() + "\n" +
				helpStyle.Render("Enter details • r reload • q quit"),
		)
	}

	v := tea.NewView(content)
	v.AltScreen = true
	return v
}

func (m Model) resizeTable() Model {
	contentWidth := m.width - 4 // dashboardStyle Padding(1,2)
	fixed := 14 + 14 + 22
	borderWidth := 6
	titleColWidth := contentWidth - fixed - borderWidth
	if titleColWidth < 20 {
		titleColWidth = 20
	}

	m.table.SetColumns([]table.Column{
		{Title: "Recommendation", Width: titleColWidth},
		{Title: "Service", Width: 14},
		{Title: "Savings", Width: 14},
		{Title: "Type", Width: 22},
	})
	m.table.SetWidth(contentWidth)

	tableHeight := m.height - 12 // header+metrics+help
	if tableHeight < 3 {
		tableHeight = 3
	}
	if tableHeight > 15 {
		tableHeight = 15
	}
	m.table.SetHeight(tableHeight)
	return m
}
