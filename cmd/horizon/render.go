package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/ersonp/vgame-horizon/internal/application/handlers"
	"github.com/ersonp/vgame-horizon/internal/domain/entities"
)

const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiDim    = "\x1b[2m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
)

const noData = "-"

// printer writes listings, colouring only when out is a terminal.
type printer struct {
	out      io.Writer
	colorize bool
}

func newPrinter(out io.Writer) *printer {
	return &printer{out: out, colorize: shouldColorize(out)}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (p *printer) paint(color, s string) string {
	if !p.colorize || s == "" {
		return s
	}
	return color + s + ansiReset
}

func (p *printer) println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p *printer) printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// renderGames prints a month listing in the chosen format.
func (p *printer) renderGames(view *handlers.GamesView, platform, format string) {
	if len(view.Games) == 0 {
		p.println(p.paint(ansiYellow, fmt.Sprintf("No %s releases found for %d-%02d.", platform, view.Year, view.Month)))
		return
	}

	title := fmt.Sprintf("%s releases, %d-%02d", platform, view.Year, view.Month)
	switch format {
	case formatTable:
		p.renderTable(title, view.Games)
	case formatCompact:
		p.renderCompact(title, view.Games, false)
	default:
		p.renderTimeline(title, view.Games)
	}
}

func (p *printer) renderTimeline(title string, games []handlers.GameView) {
	p.printHeader(title)

	byDate := make(map[string][]handlers.GameView)
	for _, g := range games {
		date := valueOr(g.ReleaseDate, "TBA")
		byDate[date] = append(byDate[date], g)
	}
	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for _, date := range dates {
		p.println(p.paint(ansiGreen, date))
		p.println(strings.Repeat("─", ruleWidth))
		for _, g := range byDate[date] {
			name := p.paint(ansiBold, displayName(g))
			if g.IsNotable {
				name += " " + p.paint(ansiYellow, "★")
			}
			p.printf("  %s\n", name)
			p.printf("     %s %s\n", p.paint(ansiDim, "Developer:"), valueOr(g.Developer, noData))
			p.printf("     %s %s\n", p.paint(ansiDim, "Publisher:"), valueOr(g.Publisher, noData))
			p.printf("     %s %s\n", p.paint(ansiDim, "Genres:"), joinOr(g.Genres, noData))
			if summary := truncate(valueOr(g.Summary, ""), summaryWidth); summary != "" {
				p.printf("     %s %s\n", p.paint(ansiDim, "Summary:"), summary)
			}
			p.println()
		}
	}
}

func (p *printer) renderTable(title string, games []handlers.GameView) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(title)
	tw.AppendHeader(table.Row{"Date", "Name", "Developer", "Genres", "Summary"})
	for _, g := range games {
		tw.AppendRow(table.Row{
			shortDate(g.ReleaseDate),
			displayName(g),
			valueOr(g.Developer, noData),
			joinOr(g.Genres, noData),
			truncate(valueOr(g.Summary, noData), tableSummaryWidth),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 40},
		{Number: 3, WidthMax: 24},
		{Number: 4, WidthMax: 20},
		{Number: 5, WidthMax: 40},
	})
	tw.Style().Title.Align = text.AlignCenter

	p.println(tw.Render())
	p.printf("\n%d games\n", len(games))
}

func (p *printer) renderCompact(title string, games []handlers.GameView, numbered bool) {
	p.printHeader(fmt.Sprintf("%s (%d)", title, len(games)))
	for i, g := range games {
		line := fmt.Sprintf("%s | %s %s",
			p.paint(ansiGreen, shortDate(g.ReleaseDate)),
			p.paint(ansiBold, displayName(g)),
			p.paint(ansiDim, "- "+valueOr(g.Developer, noData)))
		if numbered {
			line = p.paint(ansiCyan, fmt.Sprintf("%2d.", i+1)) + " " + line
		}
		p.println(line)
	}
	p.println()
}

// renderDetail prints the creative staff of a game.
func (p *printer) renderDetail(view *handlers.DetailView) {
	p.printHeader(view.Name)

	if view.IsEmpty() {
		p.println(p.paint(ansiYellow, "No production details found for this game."))
		p.println()
		return
	}

	sections := []struct {
		title   string
		credits []handlers.CreditView
	}{
		{"Directors", view.Directors},
		{"Writers", view.Writers},
		{"Composers", view.Composers},
		{"Producers", view.Producers},
	}
	for _, s := range sections {
		if len(s.credits) == 0 {
			continue
		}
		p.println(p.paint(ansiCyan, s.title))
		for _, c := range s.credits {
			p.printf("   • %s\n", c.Name)
			if len(c.KnownFor) > 0 {
				p.printf("     %s\n", p.paint(ansiDim, "Known for: "+strings.Join(c.KnownFor, ", ")))
			}
		}
		p.println()
	}

	if view.Series != nil {
		p.println(p.paint(ansiCyan, "Series"))
		p.printf("   %s\n\n", *view.Series)
	}
	p.printList("Related games", view.RelatedGames)
	p.printList("Highlights", view.Highlights)
}

func (p *printer) renderHistory(view *handlers.HistoryView) {
	if len(view.Lookups) == 0 {
		p.println("No lookups recorded.")
		return
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Time", "Query", "Fallback", "Resolved", "Status", "Credits", "ms"})
	for _, l := range view.Lookups {
		tw.AppendRow(table.Row{
			l.CreatedAt.Local().Format("2006-01-02 15:04"),
			l.Query,
			orDash(l.Fallback),
			orDash(l.ResolvedName),
			l.Status,
			l.Credits,
			l.DurationMs,
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})
	p.println(tw.Render())
}

func (p *printer) printList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	p.println(p.paint(ansiCyan, title))
	for _, item := range items {
		p.printf("   • %s\n", item)
	}
	p.println()
}

func (p *printer) printHeader(title string) {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	p.println(p.paint(ansiCyan, line))
	p.println()
}

// displayName shows "localized (English)" when a localized name exists.
func displayName(g handlers.GameView) string {
	if g.LocalizedName != nil {
		return fmt.Sprintf("%s (%s)", *g.LocalizedName, g.Name)
	}
	return g.Name
}

func shortDate(date *string) string {
	if date == nil {
		return "TBA"
	}
	// "2025-07-17" -> "07-17"
	if len(*date) == len(entities.ReleaseDateLayout) {
		return (*date)[5:]
	}
	return *date
}

func valueOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func orDash(s string) string {
	if s == "" {
		return noData
	}
	return s
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}

// truncate shortens s to at most width runes, marking the cut with "...".
func truncate(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}
