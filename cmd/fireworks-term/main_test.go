package main

import (
	"math/rand"
	"testing"

	"github.com/decker502/fireworks/pkg/config"
	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
)

func newTestTerminalApp(t *testing.T) *terminalApp {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 20)

	return newTerminalApp(screen, config.DefaultFireworksConfig(), rand.New(rand.NewSource(5)), nil)
}

func TestTerminalAppQuitKeys(t *testing.T) {
	app := newTestTerminalApp(t)

	tests := []struct {
		name string
		ev   tcell.Event
		want bool
	}{
		{name: "escape", ev: tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), want: false},
		{name: "ctrl-c", ev: tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), want: false},
		{name: "q", ev: tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), want: false},
		{name: "other rune", ev: tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := app.handleEvent(tt.ev); got != tt.want {
				t.Errorf("handleEvent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTerminalAppMouse(t *testing.T) {
	app := newTestTerminalApp(t)

	app.handleEvent(tcell.NewEventMouse(10, 4, tcell.Button1, tcell.ModNone))
	if !app.pointer.Down {
		t.Fatal("pointer should be down after a Button1 event")
	}
	if app.pointer.X != 84 || app.pointer.Y != 72 {
		t.Errorf("pointer = (%v, %v), want (84, 72)", app.pointer.X, app.pointer.Y)
	}

	app.handleEvent(tcell.NewEventMouse(10, 4, tcell.ButtonNone, tcell.ModNone))
	if app.pointer.Down {
		t.Error("pointer should be up after release")
	}
}

func TestTerminalAppTicks(t *testing.T) {
	app := newTestTerminalApp(t)

	if w, h := app.surface.Size(); w != 320 || h != 320 {
		t.Fatalf("surface size = %dx%d, want 320x320", w, h)
	}

	for i := 0; i < 80; i++ {
		app.tick()
	}
	if got := app.driver.State().Launched; got != 1 {
		t.Errorf("Launched = %d, want 1 after 80 ticks", got)
	}

	// 按住鼠标：每 5 帧一发
	app.handleEvent(tcell.NewEventMouse(20, 5, tcell.Button1, tcell.ModNone))
	for i := 0; i < 50; i++ {
		app.tick()
	}
	if got := app.driver.State().Launched; got < 10 {
		t.Errorf("Launched = %d, want at least 10 with the button held", got)
	}
}

func TestPopStreamerDecays(t *testing.T) {
	sr := beep.SampleRate(48000)
	streamer, err := newPopStreamer(sr, 1)
	if err != nil {
		t.Fatalf("newPopStreamer() error: %v", err)
	}

	total := 0
	var head, tail float64
	buf := make([][2]float64, 512)
	for {
		n, ok := streamer.Stream(buf)
		for i := 0; i < n; i++ {
			v := buf[i][0] * buf[i][0]
			if total+i < 2048 {
				head += v
			}
			if total+i >= sr.N(popLength)-2048 {
				tail += v
			}
			if buf[i][0] != buf[i][1] {
				t.Fatalf("sample %d: channels differ", total+i)
			}
		}
		total += n
		if !ok {
			break
		}
	}

	if total != sr.N(popLength) {
		t.Errorf("pop length = %d samples, want %d", total, sr.N(popLength))
	}
	if tail >= head {
		t.Errorf("tail energy %v should be below head energy %v", tail, head)
	}
}

func TestPopPlayerUninitialized(t *testing.T) {
	p := NewPopPlayer(1)
	// 未初始化时 Play 和 Close 都是空操作
	p.Play()
	p.Close()
}
