package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/brogergvhs/shadowres/internal/resist"

	"github.com/charmbracelet/lipgloss"
)

var categoryColors = map[resist.Category]lipgloss.Color{
	resist.Weak:    lipgloss.Color("1"),
	resist.Strong:  lipgloss.Color("4"),
	resist.Null:    lipgloss.Color("2"),
	resist.Repel:   lipgloss.Color("5"),
	resist.Drain:   lipgloss.Color("10"),
	resist.Neutral: lipgloss.Color("3"),
}

// Printer renders records as colored text.
type Printer struct {
	w       io.Writer
	noColor bool
	title   lipgloss.Style
}

func NewPrinter(w io.Writer, noColor bool) *Printer {
	return &Printer{
		w:       w,
		noColor: noColor,
		title:   lipgloss.NewStyle().Bold(true).Underline(true),
	}
}

func (p *Printer) label(c resist.Category) string {
	text := strings.ToUpper(c.String()) + ":"
	if p.noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(categoryColors[c]).Render(text)
}

func (p *Printer) heading(s string) string {
	if p.noColor {
		return s
	}
	return p.title.Render(s)
}

func (p *Printer) PrintRecord(r resist.Record) error {
	if _, err := fmt.Fprintf(p.w, "%s\n\n", p.heading(r.Name)); err != nil {
		return err
	}

	for _, e := range r.Entries {
		head := e.Game
		if e.Edition != "" && e.Edition != e.Game {
			head += " / " + e.Edition
		}
		if _, err := fmt.Fprintf(p.w, "%s - %s\n", head, e.Variant); err != nil {
			return err
		}

		for _, g := range e.Ordered() {
			if _, err := fmt.Fprintf(p.w, "  %s %s\n", p.label(g.Category), strings.Join(g.Labels, " ")); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(p.w); err != nil {
			return err
		}
	}

	return nil
}
