package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/springlist/internal/config"
	"github.com/san-kum/springlist/internal/engine"
	"github.com/san-kum/springlist/internal/phys"
)

// The demo works in terminal cell units: a row is a small bordered
// box and spacing is one cell.
const (
	vRowWidth  = 28.0
	vRowHeight = 3.0
	hRowWidth  = 14.0
	hRowHeight = 3.0
	listGap    = 1.0

	listLeft    = 2
	headerLines = 2
	footerLines = 2
)

type tickMsg time.Time

type Model struct {
	eng   *engine.Engine
	world *phys.World
	cfg   *config.Config
	axis  engine.Axis
	keys  keyMap

	items  []string
	cursor int // slot under keyboard focus

	status  string
	ticking bool
	pressed bool

	scroll scrollSpring
	fps    int

	width  int
	height int
}

func NewModel(cfg *config.Config, items []string, fps int) *Model {
	if fps <= 0 {
		fps = 60
	}
	axis, _ := cfg.ParseAxis()

	world := phys.NewWorld()
	if cfg.Integrator == "verlet" {
		world.SetIntegrator(phys.NewVelocityVerlet())
	}

	opts := cfg.EngineOptions()
	opts.Spacing = listGap
	opts.FallbackExtent = itemExtent(axis)

	m := &Model{
		world:  world,
		cfg:    cfg,
		axis:   axis,
		keys:   defaultKeyMap(),
		items:  items,
		fps:    fps,
		scroll: newScrollSpring(fps),
		width:  80,
		height: 24,
	}

	m.eng = engine.New(world, opts)
	m.eng.OnReorder(func(order []int) {
		m.status = fmt.Sprintf("committed %v", order)
	})
	m.eng.SetItems(m.measures())
	return m
}

func itemExtent(axis engine.Axis) engine.Extent {
	if axis == engine.AxisHorizontal {
		return engine.Extent{Width: hRowWidth, Height: hRowHeight}
	}
	return engine.Extent{Width: vRowWidth, Height: vRowHeight}
}

func (m *Model) measures() []engine.Measure {
	ext := itemExtent(m.axis)
	ms := make([]engine.Measure, len(m.items))
	for i := range ms {
		ms[i] = func() (engine.Extent, bool) { return ext, true }
	}
	return ms
}

// Run starts the demo program.
func Run(cfg *config.Config, items []string, fps int) error {
	p := tea.NewProgram(NewModel(cfg, items, fps), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	m.ticking = true
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return tickMsg(t) })
}

// arm restarts the frame loop after input woke the engine up.
func (m *Model) arm() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return m.tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		active := m.eng.Tick(1.0 / float64(m.fps))
		m.followDrag()
		m.scroll.step()
		if active || !m.scroll.settled() {
			return m, m.tick()
		}
		m.ticking = false
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.eng.Snapshot()
	keyboardDrag := snap.Drag == engine.DragKeyboard

	switch {
	case keyFor(m.keys.Quit, msg):
		return m, tea.Quit

	case keyFor(m.keys.Cancel, msg):
		if m.eng.KeyCancel() {
			m.status = "cancelled"
			m.syncCursor()
			return m, m.arm()
		}
		return m, nil

	case keyFor(m.keys.Toggle, msg):
		if m.cursor >= 0 && m.cursor < len(snap.Order) {
			item := snap.Order[m.cursor]
			if keyboardDrag {
				item = snap.DraggedItem
			}
			if keyboardDrag {
				// The commit callback may overwrite this with the
				// committed order.
				m.status = "dropped"
			}
			if m.eng.KeyToggle(item) {
				if keyboardDrag {
					m.syncCursor()
				} else {
					m.status = fmt.Sprintf("grabbed item %d", item)
				}
				return m, m.arm()
			}
		}
		return m, nil

	case m.prevKey(msg):
		return m.moveCursor(-1, keyboardDrag)
	case m.nextKey(msg):
		return m.moveCursor(+1, keyboardDrag)
	}
	return m, nil
}

func (m *Model) prevKey(msg tea.KeyMsg) bool {
	if m.axis == engine.AxisHorizontal {
		return keyFor(m.keys.Left, msg)
	}
	return keyFor(m.keys.Up, msg)
}

func (m *Model) nextKey(msg tea.KeyMsg) bool {
	if m.axis == engine.AxisHorizontal {
		return keyFor(m.keys.Right, msg)
	}
	return keyFor(m.keys.Down, msg)
}

func (m *Model) moveCursor(delta int, dragging bool) (tea.Model, tea.Cmd) {
	if dragging {
		if m.eng.KeyMove(delta) {
			m.cursor += delta
			return m, m.arm()
		}
		return m, nil
	}
	next := m.cursor + delta
	if next >= 0 && next < m.eng.Len() {
		m.cursor = next
	}
	return m, nil
}

// syncCursor re-points the keyboard cursor at whatever slot the
// last-dragged item ended up in.
func (m *Model) syncCursor() {
	order := m.eng.Order()
	if m.cursor >= len(order) {
		m.cursor = len(order) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	at := m.worldPos(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		item := m.itemAt(at)
		if item >= 0 && m.eng.PointerDown(item, at) {
			m.pressed = true
			return m, m.arm()
		}
	case tea.MouseActionMotion:
		if m.pressed {
			m.eng.PointerMove(at)
			return m, m.arm()
		}
	case tea.MouseActionRelease:
		if m.pressed {
			m.pressed = false
			m.eng.PointerUp()
			return m, m.arm()
		}
	}
	return m, nil
}

// worldPos converts terminal cell coordinates into engine units.
func (m *Model) worldPos(x, y int) phys.Vec {
	return phys.Vec{
		X: float64(x - listLeft),
		Y: float64(y-headerLines) + m.scroll.pos,
	}
}

// itemAt hit-tests the published output for the item under the point.
// The dragged item (highest z) wins ties.
func (m *Model) itemAt(at phys.Vec) int {
	out := m.eng.Output()
	ext := itemExtent(m.axis)
	hit := -1
	for i, v := range out {
		if at.X >= v.Position.X && at.X <= v.Position.X+ext.Width &&
			at.Y >= v.Position.Y && at.Y <= v.Position.Y+ext.Height {
			if hit < 0 || v.ZIndex > out[hit].ZIndex {
				hit = i
			}
		}
	}
	return hit
}

// followDrag keeps the dragged (or cursor) row inside the viewport by
// retargeting the scroll spring.
func (m *Model) followDrag() {
	if m.axis == engine.AxisHorizontal {
		return
	}
	visible := float64(m.height - headerLines - footerLines)
	if visible <= 0 {
		return
	}
	focus := m.focusY()
	if focus-m.scroll.target < 0 {
		m.scroll.setTarget(focus)
	} else if focus+vRowHeight-m.scroll.target > visible {
		m.scroll.setTarget(focus + vRowHeight - visible)
	}
}

func (m *Model) focusY() float64 {
	out := m.eng.Output()
	snap := m.eng.Snapshot()
	if snap.DraggedItem >= 0 && snap.DraggedItem < len(out) {
		return out[snap.DraggedItem].Position.Y
	}
	if m.cursor >= 0 && m.cursor < len(snap.Order) {
		item := snap.Order[m.cursor]
		if item < len(out) {
			return out[item].Position.Y
		}
	}
	return 0
}
