// cmd/fireworks-term/main.go
// 终端版烟花
//
// 用法：
//
//	go run ./cmd/fireworks-term -seed 42 -verbose -log fireworks.log
//
// 按住鼠标左键在指针处连发，Esc / Ctrl-C / q 退出。
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/decker502/fireworks/pkg/config"
	"github.com/decker502/fireworks/pkg/game"
	"github.com/decker502/fireworks/pkg/render"
	"github.com/decker502/fireworks/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "详细日志（写入 -log 指定的文件）")
	configPath = flag.String("config", "", "参数覆盖文件路径（为空使用默认值）")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	mute       = flag.Bool("mute", false, "关闭爆炸音效")
	logPath    = flag.String("log", "fireworks-term.log", "日志文件路径")
)

const frameInterval = time.Second / 60

func main() {
	flag.Parse()

	// 终端被画面占用，日志只能写文件
	closeLog, err := setupLogging(*verbose, *logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "日志初始化失败: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("[Term] %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(enabled bool, path string) (func(), error) {
	if !enabled || path == "" {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return func() { f.Close() }, nil
}

func loadConfig(path string) (*config.FireworksConfig, error) {
	if path == "" {
		return config.DefaultFireworksConfig(), nil
	}
	return config.LoadFireworksConfigFile(path)
}

func run(ctx context.Context) error {
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("参数加载失败: %w", err)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("创建终端失败: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("初始化终端失败: %w", err)
	}
	defer screen.Fini()

	var pops *PopPlayer
	if cfg.SoundEnabled && !*mute {
		pops = NewPopPlayer(s)
		if err := pops.Initialize(); err != nil {
			// 没有声卡时静音运行
			log.Printf("[Term] Audio unavailable, running muted: %v", err)
			pops = nil
		} else {
			defer pops.Close()
		}
	}

	t := newTerminalApp(screen, cfg, rand.New(rand.NewSource(s)), pops)
	log.Printf("[Term] Started %dx%d cells, seed %d", t.cols, t.rows, s)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			// Fini 之后 PollEvent 返回 nil
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			state := t.driver.State()
			log.Printf("[Term] Exit after %d ticks, %d launched, %d bursts", state.Ticks, state.Launched, state.Bursts)
			return nil
		case ev := <-eventChan:
			if !t.handleEvent(ev) {
				cancel()
			}
		case <-ticker.C:
			t.tick()
		}
	}
}

// terminalApp 终端前端：把 tcell 事件转换成指针状态，并按帧推进模拟
type terminalApp struct {
	screen     tcell.Screen
	surface    *render.TerminalSurface
	driver     *game.FrameDriver
	cols, rows int
	pointer    systems.PointerState
}

func newTerminalApp(screen tcell.Screen, cfg *config.FireworksConfig, rng *rand.Rand, pops *PopPlayer) *terminalApp {
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	// 画布尺寸在启动时确定一次
	cols, rows := screen.Size()
	t := &terminalApp{
		screen:  screen,
		surface: render.NewTerminalSurface(cols, rows),
		driver:  game.NewFrameDriver(cfg, rng),
		cols:    cols,
		rows:    rows,
	}
	if pops != nil {
		t.driver.OnBurst = func(x, y float64) { pops.Play() }
	}
	t.driver.Start()
	return t
}

// handleEvent 处理输入，返回 false 表示退出
func (t *terminalApp) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		t.pointer.X, t.pointer.Y = render.CellToPixel(col, row)
		t.pointer.Down = ev.Buttons()&tcell.Button1 != 0
	case *tcell.EventResize:
		// 模拟坐标系不随终端尺寸变化，只同步物理屏幕
		t.screen.Sync()
	}
	return true
}

func (t *terminalApp) tick() {
	t.driver.Tick(t.surface, t.pointer)
	t.surface.Flush(t.screen)
}
