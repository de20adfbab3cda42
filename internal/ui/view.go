package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/AssassinTK/readlog-ai-tracker/internal/format/table"
	"github.com/AssassinTK/readlog-ai-tracker/internal/library"
	"github.com/AssassinTK/readlog-ai-tracker/internal/shelf"
	"github.com/AssassinTK/readlog-ai-tracker/internal/theme"
)

const (
	panelWidth      = 34
	panelMinScreen  = 70 // below this many cols the detail panel never opens
	layerCardMargin = 2
)

// View implements tea.Model.
func (m *Model) View() string {
	switch m.mode {
	case ModeForm:
		if m.form != nil {
			return m.form.View()
		}
	case ModeConfirm:
		if m.confirm != nil {
			return m.viewConfirm()
		}
	case ModeQuiz:
		if m.session != nil {
			return m.viewQuiz()
		}
	}
	return m.viewBrowse()
}

func (m *Model) viewConfirm() string {
	lines := []string{
		fmt.Sprintf("Delete %q?", m.confirm.record.Title),
		"",
		"y delete  n cancel",
	}
	return strings.Join(lines, "\n")
}

// viewBrowse composes the full frame: tab row, particle canvas with the
// layer stack drawn over it, then the two-row bottom bar.
func (m *Model) viewBrowse() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	m.layerHits = m.layerHits[:0]

	rows := make([]string, 0, 4)
	rows = append(rows, m.renderTabs())

	c := newCanvas(m.width, m.fieldHeight())
	c.DrawField(m.field)
	m.drawLayers(c)
	if m.prox.Visible() && m.width >= panelMinScreen {
		m.drawPanel(c)
	}
	rows = append(rows, c.Render())

	rows = append(rows, m.renderStatus())
	rows = append(rows, m.renderPrompt())
	return strings.Join(rows, "\n")
}

// renderTabs draws one clickable segment per shelf layer and records its
// hit box.
func (m *Model) renderTabs() string {
	if len(m.buckets) == 0 {
		return truncateText("readlog  (a to add your first book)", m.width)
	}
	var b strings.Builder
	x := 0
	for i, bucket := range m.buckets {
		label := fmt.Sprintf(" %s (%d) ", bucket.Name, len(bucket.Items))
		width := len([]rune(label))
		if x+width > m.width {
			break
		}
		m.layerHits = append(m.layerHits, layerHit{index: i, y: 0, x0: x, x1: x + width})
		if i == m.nav.Active() {
			b.WriteString(styles.ShelfTitle.Render(label))
		} else {
			b.WriteString(styles.ShelfDim.Render(label))
		}
		x += width
	}
	return b.String()
}

// drawLayers paints the layer stack onto the canvas. Layers behind the
// active one are invisible; layers ahead recede with a depth offset and a
// fade that deepens per step. Only the active layer lists its items.
func (m *Model) drawLayers(c *canvas) {
	active := m.nav.Active()
	spacing := m.opts.LayerSpacing
	if spacing <= 0 {
		spacing = 2
	}
	for idx := len(m.buckets) - 1; idx > active; idx-- {
		distance := idx - active
		offset := distance * spacing
		bucket := m.buckets[idx]
		title := fmt.Sprintf("%s (%d)", bucket.Name, len(bucket.Items))
		color := theme.Depth(layerColor(bucket), distance)
		style := lipgloss.NewStyle().Foreground(color)
		x := layerCardMargin + offset
		y := offset
		c.WriteString(x, y, title, &style)
		canvasTop := 1 // rows below the tab line
		m.layerHits = append(m.layerHits, layerHit{
			index: idx,
			y:     canvasTop + y,
			x0:    x,
			x1:    x + len([]rune(title)),
		})
	}
	if active >= 0 && active < len(m.buckets) {
		m.drawActiveLayer(c, m.buckets[active])
	}
}

func layerColor(bucket shelf.Bucket) string {
	if len(bucket.Items) > 0 && bucket.Items[0].CoverColor != "" {
		return bucket.Items[0].CoverColor
	}
	return "#8888aa"
}

func (m *Model) drawActiveLayer(c *canvas, bucket shelf.Bucket) {
	l := m.activeList()
	if l == nil {
		return
	}
	title := fmt.Sprintf("%s (%d)", bucket.Name, len(bucket.Items))
	c.WriteString(layerCardMargin, 0, title, styles.ShelfTitle)

	maxItems := m.maxVisibleItems()
	l.EnsureCursorVisible(maxItems)
	start := l.ViewportOffset
	items := l.Items
	if maxItems > 0 && len(items) > maxItems {
		end := start + maxItems
		if end > len(items) {
			end = len(items)
		}
		items = items[start:end]
	} else {
		start = 0
	}
	width := m.itemColumnWidth()
	if len(l.Items) == 0 {
		msg := "(empty shelf)"
		if l.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", l.Filter)
		}
		c.WriteString(layerCardMargin, 2, msg, styles.Info)
		return
	}
	for i, item := range items {
		idx := start + i
		indicator := " "
		style := styles.Item
		if idx == l.Cursor {
			indicator = "▌"
			style = styles.SelectedItem
		}
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(item.CoverColor))
		c.WriteString(layerCardMargin, 2+i, indicator, style)
		c.WriteString(layerCardMargin+1, 2+i, "▪", &swatch)
		c.WriteString(layerCardMargin+3, 2+i, truncateText(item.Title, width), style)
	}
}

// itemColumnWidth keeps item titles clear of the detail panel.
func (m *Model) itemColumnWidth() int {
	width := m.width - layerCardMargin - 4
	if m.prox.Visible() && m.width >= panelMinScreen {
		width -= panelWidth + 1
	}
	if width < 8 {
		width = 8
	}
	return width
}

func (m *Model) maxVisibleItems() int {
	rows := m.fieldHeight() - 2
	if rows < 1 {
		return 1
	}
	return rows
}

// drawPanel renders the detail panel for the cursor item over the right
// edge of the canvas, with the shelf census underneath.
func (m *Model) drawPanel(c *canvas) {
	x0 := m.width - panelWidth
	innerW := panelWidth - 4
	record, ok := m.currentRecord()

	lines := make([]string, 0, 16)
	if !ok {
		lines = append(lines, "(no book selected)")
	} else {
		lines = append(lines, record.Title)
		if record.Author != "" {
			lines = append(lines, "by "+record.Author)
		}
		lines = append(lines, "")
		status := string(record.Status)
		if record.Status == library.StatusFinished && record.Rating > 0 {
			status = fmt.Sprintf("%s %s", status, strings.Repeat("★", record.Rating))
		}
		lines = append(lines, "Status: "+status)
		if record.Category != "" {
			lines = append(lines, "Shelf:  "+record.Category)
		}
		if record.Notes != "" {
			lines = append(lines, "")
			lines = append(lines, wrapText(record.Notes, innerW)...)
		}
	}
	if stats := m.statsLines(); len(stats) > 0 {
		lines = append(lines, "")
		lines = append(lines, "Shelves")
		lines = append(lines, stats...)
	}

	maxRows := c.height - 2
	if len(lines) > maxRows {
		lines = lines[:maxRows]
	}
	border := styles.PanelBorder
	c.WriteString(x0, 0, "┌"+strings.Repeat("─", panelWidth-2)+"┐", border)
	y := 1
	for ; y <= len(lines); y++ {
		text := lines[y-1]
		if len([]rune(text)) > innerW {
			text = truncateText(text, innerW)
		}
		pad := innerW - len([]rune(text))
		row := "│ " + text + strings.Repeat(" ", pad) + " │"
		c.WriteString(x0, y, row, styles.PanelBody)
	}
	for ; y < c.height-1; y++ {
		c.WriteString(x0, y, "│ "+strings.Repeat(" ", innerW)+" │", styles.PanelBody)
	}
	c.WriteString(x0, c.height-1, "└"+strings.Repeat("─", panelWidth-2)+"┘", border)
}

// statsLines formats the per-category census as an aligned table.
func (m *Model) statsLines() []string {
	if len(m.buckets) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(m.buckets)+1)
	for _, bucket := range m.buckets {
		rows = append(rows, []string{bucket.Name, fmt.Sprintf("%d", len(bucket.Items))})
	}
	total := 0
	for _, n := range m.records.Counts() {
		total += n
	}
	rows = append(rows, []string{"total", fmt.Sprintf("%d", total)})
	return table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight})
}

func (m *Model) renderStatus() string {
	if m.errMsg != "" {
		return styles.Error.Render(truncateText("Error: "+m.errMsg, m.width))
	}
	if info := m.currentInfo(); info != "" {
		return styles.Info.Render(truncateText(info, m.width))
	}
	return ""
}

// renderPrompt shows the filter line while filtering, key help otherwise.
func (m *Model) renderPrompt() string {
	if m.mode == ModeFilter {
		l := m.activeList()
		text := ""
		if l != nil {
			text = l.Filter
		}
		return styles.FilterPrompt.Render("/ ") + styles.Filter.Render(text+"█")
	}
	if l := m.activeList(); l != nil && l.Filter != "" {
		return styles.FilterPrompt.Render("/ ") + styles.Filter.Render(l.Filter) + styles.Footer.Render("  (esc clears)")
	}
	help := "←/→ shelf  ↑/↓ move  enter details  / filter  a add  e edit  d delete  f finish  q quiz  p pin  ctrl+c quit"
	return styles.Footer.Render(truncateText(help, m.width))
}

func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	words := strings.Fields(text)
	lines := make([]string, 0, 4)
	var current string
	for _, word := range words {
		switch {
		case current == "":
			current = word
		case len([]rune(current))+1+len([]rune(word)) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width-1), "…")
}
