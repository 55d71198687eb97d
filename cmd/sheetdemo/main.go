// Command sheetdemo is an interactive terminal playground for the sheet
// engine. It renders a draggable bottom sheet over a dotted backdrop:
// drag the sheet with the mouse, scroll its content with the wheel, and
// watch gesture arbitration hand the drag between sheet and content.
//
// Keys: 1-3 snap to collapsed/half/expanded, d dismiss, q or Esc quit.
// An optional sheet.yaml in the working directory tunes positions and
// thresholds.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/sheet/pkg/dispatch"
	"github.com/go-drift/sheet/pkg/gestures"
	"github.com/go-drift/sheet/pkg/scroll"
	"github.com/go-drift/sheet/pkg/sheet"
)

// cellPixels converts terminal rows into the pseudo-pixel space the
// engine's velocity thresholds are tuned for.
const cellPixels = 16.0

const contentLines = 120

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sheetdemo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := sheet.LoadOptional(".")
	if err != nil {
		return err
	}

	ctrl, err := sheet.NewController(cfg)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	app := newApp(screen, ctrl)
	return app.loop()
}

// app holds the demo's runtime state.
type app struct {
	screen tcell.Screen
	ctrl   *sheet.Controller
	sc     *scroll.Controller
	driver *sheet.GestureDriver

	width  int
	height int

	// dragOffsetRows is the live drag feedback in rows, nonzero only
	// mid-gesture.
	dragOffsetRows float64

	pressed bool

	// uiQueue holds callbacks deferred to the next loop iteration via
	// the dispatch package.
	uiQueue chan func()
}

func newApp(screen tcell.Screen, ctrl *sheet.Controller) *app {
	a := &app{
		screen:  screen,
		ctrl:    ctrl,
		sc:      &scroll.Controller{},
		uiQueue: make(chan func(), 64),
	}

	ctrl.AttachScrollable(a.sc)
	a.driver = sheet.NewGestureDriver(ctrl, a.sc.Offset)

	dispatch.Register(func(cb func()) { a.uiQueue <- cb })

	ctrl.AddDragOffsetListener(func(offset float64) {
		a.dragOffsetRows = offset / cellPixels
		a.render()
	})
	ctrl.AddPositionListener(func(p sheet.Position, animated bool) {
		a.updateExtents()
		a.render()
	})

	a.width, a.height = screen.Size()
	ctrl.SetContainerHeight(float64(a.height) * cellPixels)
	a.updateExtents()
	return a
}

func (a *app) loop() error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- a.screen.PollEvent()
		}
	}()

	a.render()
	for {
		select {
		case cb := <-a.uiQueue:
			cb()
		case ev := <-events:
			if quit := a.handleEvent(ev); quit {
				return nil
			}
		}
	}
}

func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.width, a.height = a.screen.Size()
		a.ctrl.SetContainerHeight(float64(a.height) * cellPixels)
		a.updateExtents()
		a.screen.Sync()
		a.render()
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
	return false
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape {
		return true
	}
	switch ev.Rune() {
	case 'q':
		return true
	case '1':
		a.ctrl.SetPosition(sheet.Collapsed, true)
	case '2':
		a.ctrl.SetPosition(sheet.Half, true)
	case '3':
		a.ctrl.SetPosition(sheet.Expanded, true)
	case 'd':
		a.ctrl.SetPosition(sheet.Dismissed, true)
	}
	a.render()
	return false
}

func (a *app) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	px := float64(x) * cellPixels
	py := float64(y) * cellPixels

	switch {
	case ev.Buttons()&tcell.Button1 != 0:
		phase := gestures.PointerPhaseMove
		if !a.pressed {
			phase = gestures.PointerPhaseDown
			a.pressed = true
		}
		a.driver.HandlePointer(gestures.PointerEvent{
			PointerID: 1, X: px, Y: py, Phase: phase, Time: ev.When(),
		})
	case a.pressed:
		a.pressed = false
		a.driver.HandlePointer(gestures.PointerEvent{
			PointerID: 1, X: px, Y: py, Phase: gestures.PointerPhaseUp, Time: ev.When(),
		})
	case ev.Buttons()&tcell.WheelUp != 0:
		a.wheel(-cellPixels)
	case ev.Buttons()&tcell.WheelDown != 0:
		a.wheel(cellPixels)
	}
	a.render()
}

// wheel stands in for the host's native scroll view: it only moves
// content when the current position allows scrolling.
func (a *app) wheel(delta float64) {
	if !a.ctrl.ScrollEnabled() {
		return
	}
	a.sc.JumpTo(a.sc.Offset() + delta)
}

func (a *app) updateExtents() {
	visible := a.sheetRows() - 2
	if visible < 0 {
		visible = 0
	}
	max := float64(contentLines-visible) * cellPixels
	if max < 0 {
		max = 0
	}
	a.sc.SetExtents(0, max)
}

// sheetRows returns the sheet height in rows for the current position
// and live drag offset.
func (a *app) sheetRows() int {
	rows := a.ctrl.Position().HeightRatio()*float64(a.height) - a.dragOffsetRows
	if rows < 0 {
		return 0
	}
	if rows > float64(a.height) {
		return a.height
	}
	return int(rows)
}

func (a *app) render() {
	s := a.screen
	s.Clear()

	backdrop := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for y := 0; y < a.height; y++ {
		for x := 0; x < a.width; x += 4 {
			s.SetContent(x, y, '·', nil, backdrop)
		}
	}

	status := fmt.Sprintf(" position=%s scroll=%v offset=%.0f  [1-3] snap  [d] dismiss  [q] quit ",
		a.ctrl.Position(), a.ctrl.ScrollEnabled(), a.sc.Offset())
	drawText(s, 0, 0, status, tcell.StyleDefault.Reverse(true))

	rows := a.sheetRows()
	if rows > 0 {
		a.renderSheet(rows)
	}
	s.Show()
}

func (a *app) renderSheet(rows int) {
	s := a.screen
	top := a.height - rows
	sheetStyle := tcell.StyleDefault.Background(tcell.ColorDarkBlue).Foreground(tcell.ColorWhite)

	for y := top; y < a.height; y++ {
		for x := 0; x < a.width; x++ {
			s.SetContent(x, y, ' ', nil, sheetStyle)
		}
	}

	// Drag handle
	handle := "────"
	drawText(s, (a.width-len([]rune(handle)))/2, top, handle, sheetStyle.Bold(true))

	// Content lines shifted by the scroll offset
	firstLine := int(a.sc.Offset() / cellPixels)
	for i := 0; i < rows-2; i++ {
		line := firstLine + i
		if line < 0 || line >= contentLines {
			continue
		}
		text := fmt.Sprintf("  result %3d · nearby place %d", line+1, line+1)
		drawText(s, 0, top+2+i, text, sheetStyle)
	}
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		s.SetContent(col, y, r, nil, style)
		col++
	}
}
