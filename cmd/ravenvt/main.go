// Command ravenvt is a minimal GUI frontend proving the engine is wired
// to something real: it opens a GLFW/OpenGL window, spawns a shell over
// a PTY, feeds its output through the screen engine, and renders the
// resulting frame as colored glyph quads. This is "good enough to drive
// the engine", not a full-featured terminal UI (no tabs, panels, or
// search).
package main

import (
	"log"
	"os"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/javanhut/ravenvt/config"
	"github.com/javanhut/ravenvt/keys"
	"github.com/javanhut/ravenvt/pty"
	"github.com/javanhut/ravenvt/render"
	"github.com/javanhut/ravenvt/screen"
)

const (
	initialCols = 100
	initialRows = 30
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("ravenvt: load config: %v", err)
	}
	theme := config.Resolve(cfg.Theme.Name)

	atlas := buildAtlas(cfg)

	win, err := newAppWindow(initialCols*atlas.CellWidth, initialRows*atlas.CellHeight, "Raven VT")
	if err != nil {
		log.Fatalf("ravenvt: %v", err)
	}
	defer win.destroy()

	glRen, err := newGLRenderer(atlas)
	if err != nil {
		log.Fatalf("ravenvt: init renderer: %v", err)
	}

	engine := screen.New(initialCols, initialRows)

	session, err := pty.Start(pty.Options{
		ShellPath: cfg.Shell.Path,
		SourceRC:  cfg.Shell.SourceRC,
		Env:       cfg.Shell.Env,
		Cols:      uint16(initialCols),
		Rows:      uint16(initialRows),
	})
	if err != nil {
		log.Fatalf("ravenvt: start shell: %v", err)
	}
	defer session.Close()

	writeCh := make(chan pty.Message, 64)
	go session.WritePump(writeCh)
	engine.SetResponseWriter(func(b []byte) { writeCh <- pty.InputMessage(b) })

	// The read pump only hands bytes over; the engine is fed on this (UI)
	// goroutine, which drains ptyOut before drawing each frame.
	ptyOut := make(chan []byte, 256)
	go session.ReadPump(func(data []byte) {
		cp := make([]byte, len(data))
		copy(cp, data)
		ptyOut <- cp
	}, func(err error) {
		os.Exit(0)
	})

	win.win.SetCharCallback(func(_ *glfw.Window, r rune) {
		writeCh <- pty.InputMessage(keys.EncodeRune(r, 0))
	})
	win.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press && action != glfw.Repeat {
			return
		}
		k, ok := translateKey(key)
		if !ok {
			return
		}
		m := translateMods(mods)
		if b := keys.Encode(k, m, engine.AppKeypad()); b != nil {
			writeCh <- pty.InputMessage(b)
		}
	})
	win.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		cols := max1(width / atlas.CellWidth)
		rows := max1(height / atlas.CellHeight)
		engine.Resize(cols, rows)
		writeCh <- pty.ResizeMessage(uint16(cols), uint16(rows))
	})

	bgDefault := toColor4(theme.Bg)
	fgCursor := toColor4(theme.Fg)

	for !win.shouldClose() {
		glfw.PollEvents()
	drain:
		for {
			select {
			case data := <-ptyOut:
				engine.Feed(data)
			default:
				break drain
			}
		}

		fbw, fbh := win.framebufferSize()
		frame := render.Snapshot(engine, engine.CursorVisible())
		glRen.draw(fbw, fbh, frame, bgDefault, fgCursor)
		win.swap()
	}
}

func buildAtlas(cfg *config.Config) *render.Atlas {
	if cfg.Theme.FontPath != "" {
		if data, err := os.ReadFile(cfg.Theme.FontPath); err == nil {
			if atlas, err := render.BuildAtlas(data, cfg.Theme.FontSize); err == nil {
				return atlas
			}
		}
	}
	return render.BuildBasicAtlas()
}

func max1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
