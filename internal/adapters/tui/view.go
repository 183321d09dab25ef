package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agregator/conference-board/internal/domain"
)

const (
	welcomeText = "Добро пожаловать в информационный ресурс: Агрегатор научных конференций!"
	boardTitle  = "Предстоящие конференции"
	loadingText = "Загрузка..."
	detailsText = "Узнать подробности"
	firstLabel  = "Первая"
	lastLabel   = "Последняя"

	// lines used by everything except the entry cards
	chromeLines = 12
	// a card with every field, its border and the gap below it
	cardLines = 9
)

// View implements tea.Model.
func (a *App) View() string {
	page := a.render()

	var b strings.Builder
	b.WriteString(a.styles.Logo.Render("Agregator"))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Welcome.Render(welcomeText))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Title.Render(boardTitle))
	b.WriteString("\n\n")

	switch {
	case page.Loading:
		b.WriteString(a.spinner.View() + " " + a.styles.Muted.Render(loadingText))
		b.WriteString("\n\n")
	case len(page.Entries) == 0:
		b.WriteString(a.styles.Muted.Render("Нет предстоящих конференций."))
		b.WriteString("\n\n")
	default:
		b.WriteString(a.renderEntries(page.Entries))
	}

	b.WriteString(a.renderPagination(page))
	b.WriteString("\n")
	b.WriteString(a.renderStatus(page))
	b.WriteString("\n")
	b.WriteString(a.help.View(a.keys))

	return b.String()
}

func (a *App) renderEntries(entries []domain.Entry) string {
	start, end := visibleRange(len(entries), a.selected, a.cardsThatFit())

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(a.renderEntry(entries[i], i == a.selected))
		b.WriteString("\n")
	}
	if start > 0 || end < len(entries) {
		b.WriteString(a.styles.Muted.Render(fmt.Sprintf("%d–%d из %d", start+1, end, len(entries))))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (a *App) renderEntry(e domain.Entry, selected bool) string {
	lines := []string{
		a.styles.EntryTitle.Render(e.Title),
		a.field("Дата:", e.DisplayDate),
		a.field("Место:", e.Location),
		a.field("Организаторы:", e.Organizers),
		a.field("Источник:", string(e.Source)),
	}
	if e.HasDetails() {
		lines = append(lines, a.styles.Link.Render(detailsText)+" "+a.styles.Muted.Render(e.DetailsURL))
	}

	card := a.styles.Card
	if selected {
		card = a.styles.SelectedCard
	}
	if a.width > 4 {
		card = card.Width(a.width - 4)
	}
	return card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (a *App) field(label, value string) string {
	return a.styles.Label.Render(label) + " " + a.styles.Normal.Render(value)
}

func (a *App) renderPagination(page domain.BoardPage) string {
	parts := make([]string, 0, len(page.Buttons)+2)
	parts = append(parts, a.navButton(firstLabel, page.First))
	for _, btn := range page.Buttons {
		label := fmt.Sprintf("%d", btn.Number)
		if btn.Active {
			parts = append(parts, a.styles.ActivePage.Render(label))
		} else {
			parts = append(parts, a.styles.PageButton.Render(label))
		}
	}
	parts = append(parts, a.navButton(lastLabel, page.Last))
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (a *App) navButton(label string, btn domain.NavButton) string {
	if btn.Disabled {
		return a.styles.DisabledButton.Render(label)
	}
	return a.styles.PageButton.Render(label)
}

func (a *App) renderStatus(page domain.BoardPage) string {
	parts := []string{fmt.Sprintf("стр. %d/%d", page.Page, page.TotalPages)}
	if page.TotalCount > 0 {
		parts = append(parts, fmt.Sprintf("%d конф.", page.TotalCount))
	}
	if page.Origin != domain.SnapshotOriginNone {
		parts = append(parts, fmt.Sprintf("%s #%d", page.Origin, page.Generation))
	}
	if a.refreshing {
		parts = append(parts, a.spinner.View()+" обновление")
	}
	if a.status != "" {
		parts = append(parts, a.status)
	}

	line := a.styles.StatusBar.Render(strings.Join(parts, " · "))
	if a.err != nil {
		line += "  " + a.styles.Error.Render(a.err.Error())
	}
	return line
}

func (a *App) cardsThatFit() int {
	if a.height <= 0 {
		return 0
	}
	return max((a.height-chromeLines)/cardLines, 1)
}

// visibleRange returns the window of n entries to draw, keeping selected in view.
// fit <= 0 draws everything.
func visibleRange(n, selected, fit int) (int, int) {
	if fit <= 0 || fit >= n {
		return 0, n
	}
	start := max(selected-fit/2, 0)
	end := start + fit
	if end > n {
		end = n
		start = n - fit
	}
	return start, end
}
