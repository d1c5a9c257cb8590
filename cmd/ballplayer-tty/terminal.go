package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/ballplayer/ecs"
	"github.com/plus3/ballplayer/game"
)

const (
	frameInterval = 16 * time.Millisecond
	maxFrameDelta = 0.1
)

var (
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	enemyStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Terminal drives a game.World from a tcell screen.
type Terminal struct {
	screen  tcell.Screen
	world   *game.World
	keys    *KeyHold
	blipper *Blipper
}

func NewTerminal(world *game.World) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	return &Terminal{
		screen:  screen,
		world:   world,
		keys:    NewKeyHold(keyHoldWindow),
		blipper: &Blipper{},
	}, nil
}

func (t *Terminal) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !t.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > maxFrameDelta {
				dt = maxFrameDelta
			}
			t.frame(now, dt)
		}
	}
}

func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q') {
			return false
		}
		if key, ok := keyFor(ev); ok {
			t.keys.Press(key, time.Now())
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *Terminal) frame(now time.Time, dt float64) {
	t.keys.Apply(t.world.Input(), now)

	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		t.world.ClearWindow()
	} else {
		w, h := worldSize(cols, rows)
		t.world.SetWindow(w, h)
	}

	t.world.Step(dt)

	if t.world.Bounces().Count > 0 {
		t.blipper.Blip(now)
	}

	t.draw(cols, rows)
}

func (t *Terminal) draw(cols, rows int) {
	t.screen.Clear()

	for _, entity := range t.world.Storage.Iter() {
		style := enemyStyle
		if entity.Player != nil {
			style = playerStyle
		}
		t.drawEntity(entity, cols, rows, style)
	}

	drawText(t.screen, 0, 0, statusStyle, "WASD/arrows move  q quits")
	t.screen.Show()
}

func (t *Terminal) drawEntity(entity *ecs.Entity, cols, rows int, style tcell.Style) {
	r := cellRect(entity.Transform.Translation, entity.Sprite.HalfSize(), cols, rows)
	for y := r.top; y < r.bottom; y++ {
		for x := r.left; x < r.right; x++ {
			if x < 0 || y < 0 || x >= cols || y >= rows {
				continue
			}
			t.screen.SetContent(x, y, '█', nil, style)
		}
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (t *Terminal) Close() {
	t.blipper.Close()
	t.screen.Fini()
}
