package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"jlview/internal/nav"
	"jlview/internal/render"
)

func (m *Model) viewMain() string {
	s := &m.nav
	page := s.PageLen()
	total := s.Store.Len()
	m.mainOffset = ensureVisible(s.MainSelection, m.mainOffset, page, total)

	rows := make([]string, 0, page)
	for i := m.mainOffset; i < total && i < m.mainOffset+page; i++ {
		rows = append(rows, m.lineRow(i))
	}

	title := fmt.Sprintf("jlview — %d lines", total)
	left := s.Store.Locator(s.MainSelection)
	return m.frame(title, rows, left)
}

// lineRow renders one line of the main list: the visible fields per
// the rendering policy, or the raw text when the line is not a JSON
// object. Feeds the per-line field total into the high-water mark
// bounding horizontal scroll.
func (m *Model) lineRow(i int) string {
	s := &m.nav
	var text string
	if fields, ok := s.Store.Fields(i); ok {
		visible, totalFields := render.LineFields(fields, s.Settings.FieldOrder, s.Settings.SuppressedFields, s.FieldOffset)
		s.ObserveFieldCount(totalFields)
		parts := make([]string, 0, len(visible))
		for _, p := range visible {
			parts = append(parts,
				m.styles.Key.Render(p.Key)+
					m.styles.Punct.Render(":")+
					m.styles.Value.Render(p.Value))
		}
		text = strings.Join(parts, m.styles.Punct.Render(", "))
	} else {
		text = s.Store.Raw(i)
	}

	prefix := "  "
	if i == s.MainSelection {
		prefix = m.styles.Cursor
		text = m.styles.Selected.Render(text)
	}
	return truncate(prefix+text, s.Width)
}

func (m *Model) viewDetails() string {
	s := &m.nav
	page := s.PageLen()
	entries := s.DetailEntries()

	// Selection can exceed the entry count when settings changed the
	// rendered list; the render pass corrects it.
	if s.DetailSelection >= len(entries) {
		s.DetailSelection = len(entries) - 1
	}
	if s.DetailSelection >= 0 && s.DetailSelection < len(entries) {
		s.SetSelectedField(entries[s.DetailSelection].Key)
	}

	m.detailOffset = ensureVisible(s.DetailSelection, m.detailOffset, page, len(entries))

	rows := make([]string, 0, page)
	for i := m.detailOffset; i < len(entries) && i < m.detailOffset+page; i++ {
		e := entries[i]
		text := m.styles.Key.Render(e.Key) +
			m.styles.Punct.Render(" : ") +
			m.styles.Value.Render(e.Value)
		prefix := "  "
		if i == s.DetailSelection {
			prefix = m.styles.Cursor
			text = m.styles.Selected.Render(text)
		}
		rows = append(rows, truncate(prefix+text, s.Width))
	}

	title := fmt.Sprintf("fields — %s", s.Store.Locator(s.MainSelection))
	return m.frame(title, rows, s.Store.Locator(s.MainSelection))
}

func (m *Model) viewValue() string {
	s := &m.nav
	page := s.PageLen()
	width := s.Width
	if width < 1 {
		width = 1
	}

	wrapped := lipgloss.NewStyle().Width(width).Render(s.SelectedValue())
	s.ClampValueScroll(strings.Count(wrapped, "\n") + 1)

	vp := viewport.New(width, page)
	vp.SetContent(wrapped)
	vp.SetYOffset(s.ValueScroll)

	title := fmt.Sprintf("value — %s", s.SelectedField)
	return m.frame(title, strings.Split(vp.View(), "\n"), s.Store.Locator(s.MainSelection))
}

// frame stacks the title row, exactly PageLen content rows and the
// status row into one screen-high view.
func (m *Model) frame(title string, rows []string, statusLeft string) string {
	s := &m.nav
	page := s.PageLen()
	for len(rows) < page {
		rows = append(rows, "")
	}
	if len(rows) > page {
		rows = rows[:page]
	}

	lines := make([]string, 0, page+2)
	lines = append(lines, truncate(m.styles.Title.Render(title), s.Width))
	lines = append(lines, rows...)
	lines = append(lines, m.statusRow(statusLeft))
	return strings.Join(lines, "\n")
}

// statusRow lays out the source locator on the left and either the
// live find prompt or the last action result on the right.
func (m *Model) statusRow(left string) string {
	s := &m.nav

	var right string
	switch {
	case s.Find != nil:
		prompt := m.styles.FindPrompt.Render("/" + s.Find.Query)
		if s.Find.Match == nav.MatchNotFound {
			prompt += " " + m.styles.FindMiss.Render("[not found]")
		}
		right = prompt
	case strings.HasPrefix(s.LastAction, "Error"):
		right = m.styles.StatusErr.Render(s.LastAction)
	default:
		right = m.styles.Status.Render(s.LastAction)
	}

	left = m.styles.Status.Render(left)
	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return truncate(left+strings.Repeat(" ", gap)+right, s.Width)
}

// ensureVisible slides a list window so the selection stays on
// screen.
func ensureVisible(sel, offset, page, total int) int {
	if total <= 0 || sel < 0 {
		return 0
	}
	if sel < offset {
		offset = sel
	}
	if sel >= offset+page {
		offset = sel - page + 1
	}
	if offset < 0 {
		offset = 0
	}
	if max := total - page; max >= 0 && offset > max {
		offset = max
	}
	return offset
}

func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
