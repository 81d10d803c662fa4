package ui

import (
	"context"
	"time"

	"classic-snake/game"

	"github.com/gdamore/tcell/v2"
)

// Each grid cell is two terminal columns wide so squares look square.
const cellColumns = 2

var (
	boardStyle  = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	snakeStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(209, 51, 139))
	foodStyle   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(224, 112, 0))
	statusStyle = tcell.StyleDefault
)

var terminalKeys = map[tcell.Key]game.Key{
	tcell.KeyUp:    game.KeyUp,
	tcell.KeyDown:  game.KeyDown,
	tcell.KeyLeft:  game.KeyLeft,
	tcell.KeyRight: game.KeyRight,
}

// TerminalFrontend runs the game in a terminal. Screen must already be
// initialised; Run finalises it on return. Esc, q and Ctrl-C quit.
type TerminalFrontend struct {
	Screen           tcell.Screen
	UpdatesPerSecond int
}

func (tf *TerminalFrontend) Run(ctx context.Context, g *game.Game) error {
	s := tf.Screen
	defer s.Fini()
	s.HideCursor()

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go s.ChannelEvents(events, quit)

	ticker := time.NewTicker(time.Second / time.Duration(tf.UpdatesPerSecond))
	defer ticker.Stop()

	renderer := &TerminalRenderer{Screen: s}
	g.Handle(game.Event{Kind: game.RenderEvent}, renderer)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
				g.Handle(game.Event{Kind: game.PressEvent, Key: terminalKeys[ev.Key()]}, renderer)
			case *tcell.EventResize:
				s.Sync()
			}
		case <-ticker.C:
			g.Handle(game.Event{Kind: game.UpdateEvent}, renderer)
		}
		g.Handle(game.Event{Kind: game.RenderEvent}, renderer)
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// TerminalRenderer draws the board inside a box with a status line below.
type TerminalRenderer struct {
	Screen tcell.Screen
}

func (r *TerminalRenderer) Draw(g *game.Game) {
	s := r.Screen
	s.Clear()

	// Reuse the pixel layout with one unit per cell.
	frame := BuildFrame(g, 1)

	width := int(g.Grid.Cols) * cellColumns
	height := int(g.Grid.Rows)
	drawBox(s, width+2, height+2)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			s.SetContent(x+1, y+1, ' ', nil, boardStyle)
		}
	}

	for _, rect := range frame.Rects {
		style := snakeStyle
		if rect.Color == FoodColor {
			style = foodStyle
		}
		style = style.Background(tcell.ColorWhite)
		for i := 0; i < cellColumns; i++ {
			s.SetContent(int(rect.X)*cellColumns+i+1, int(rect.Y)+1, '█', nil, style)
		}
	}

	status := frame.Status
	if frame.Over {
		status += " - press q to quit"
	}
	for i, c := range []rune(status) {
		s.SetContent(i, height+2, c, nil, statusStyle)
	}

	s.Show()
}

func drawBox(s tcell.Screen, width, height int) {
	for x := 1; x < width-1; x++ {
		s.SetContent(x, 0, tcell.RuneHLine, nil, statusStyle)
		s.SetContent(x, height-1, tcell.RuneHLine, nil, statusStyle)
	}
	for y := 1; y < height-1; y++ {
		s.SetContent(0, y, tcell.RuneVLine, nil, statusStyle)
		s.SetContent(width-1, y, tcell.RuneVLine, nil, statusStyle)
	}
	s.SetContent(0, 0, tcell.RuneULCorner, nil, statusStyle)
	s.SetContent(width-1, 0, tcell.RuneURCorner, nil, statusStyle)
	s.SetContent(0, height-1, tcell.RuneLLCorner, nil, statusStyle)
	s.SetContent(width-1, height-1, tcell.RuneLRCorner, nil, statusStyle)
}
