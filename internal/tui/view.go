package tui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/san-kum/springlist/internal/engine"
)

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(cyan.Render("springlist"))
	b.WriteString(dim.Render(fmt.Sprintf("  %d items · %s axis · %s", len(m.items), m.axis, m.cfg.Integrator)))
	b.WriteString("\n\n")

	b.WriteString(m.renderList())

	status := m.status
	if status == "" {
		status = "drag a row with the mouse, or grab one with space"
	}
	cursor := engine.CursorGrab
	if out := m.eng.Output(); len(out) > 0 {
		for _, v := range out {
			if v.Dragged {
				cursor = v.Cursor
			}
		}
	}
	b.WriteString("\n")
	b.WriteString(green.Render(status))
	b.WriteString(dim.Render(fmt.Sprintf("  [%s]", cursor)))
	b.WriteString("\n")
	b.WriteString(dimmer.Render(m.keys.help()))
	return b.String()
}

func (m *Model) renderList() string {
	h := m.height - headerLines - footerLines
	if h < 4 {
		h = 4
	}
	c := newCanvas(m.width, h)

	out := m.eng.Output()
	snap := m.eng.Snapshot()
	ext := itemExtent(m.axis)

	// Paint in ascending z so the dragged row lands on top.
	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return out[idx[a]].ZIndex < out[idx[b]].ZIndex })

	for _, i := range idx {
		v := out[i]
		x := listLeft + int(math.Round(v.Position.X))
		y := int(math.Round(v.Position.Y - m.scroll.pos))

		class := classRow
		if i < len(snap.Order) && m.cursor < len(snap.Order) && snap.Order[m.cursor] == i {
			class = classCursor
		}
		if v.Dragged {
			class = classDragged
			// shadow behind the lifted row
			if v.Shadow > 0 {
				c.drawShadow(x+1, y+1, int(ext.Width), int(ext.Height))
			}
			x += int(math.Round(v.Lift / 4))
		}

		label := ""
		if i < len(m.items) {
			label = m.items[i]
		}
		c.drawBox(x, y, int(ext.Width), int(ext.Height), label, class)
	}

	return c.render()
}

type canvas struct {
	w, h int
	ch   [][]rune
	cl   [][]int
}

func newCanvas(w, h int) *canvas {
	ch := make([][]rune, h)
	cl := make([][]int, h)
	for y := range ch {
		ch[y] = make([]rune, w)
		cl[y] = make([]int, w)
		for x := range ch[y] {
			ch[y][x] = ' '
		}
	}
	return &canvas{w: w, h: h, ch: ch, cl: cl}
}

func (c *canvas) set(x, y int, r rune, class int) {
	if x >= 0 && x < c.w && y >= 0 && y < c.h {
		c.ch[y][x] = r
		c.cl[y][x] = class
	}
}

func (c *canvas) drawBox(x, y, w, h int, label string, class int) {
	if w < 2 || h < 2 {
		return
	}
	for i := 1; i < w-1; i++ {
		c.set(x+i, y, '─', class)
		c.set(x+i, y+h-1, '─', class)
	}
	for i := 1; i < h-1; i++ {
		c.set(x, y+i, '│', class)
		c.set(x+w-1, y+i, '│', class)
	}
	c.set(x, y, '╭', class)
	c.set(x+w-1, y, '╮', class)
	c.set(x, y+h-1, '╰', class)
	c.set(x+w-1, y+h-1, '╯', class)

	mid := y + h/2
	runes := []rune(label)
	if len(runes) > w-4 {
		runes = runes[:w-4]
	}
	start := x + (w-len(runes))/2
	for i, r := range runes {
		c.set(start+i, mid, r, class)
	}
}

func (c *canvas) drawShadow(x, y, w, h int) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			c.set(x+dx, y+dy, '░', classShadow)
		}
	}
}

// render groups runs of equal style per line so lipgloss is invoked
// once per run instead of once per cell.
func (c *canvas) render() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		x := 0
		for x < c.w {
			class := c.cl[y][x]
			start := x
			for x < c.w && c.cl[y][x] == class {
				x++
			}
			seg := string(c.ch[y][start:x])
			if class == classBlank {
				b.WriteString(seg)
			} else {
				b.WriteString(classStyles[class].Render(seg))
			}
		}
		if y < c.h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
