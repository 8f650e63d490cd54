// Package main is a standalone host window for exercising the selection
// engine and gizmo without the full sculpting application.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Maurichilean3d/Gizmoplug/internal/config"
	"github.com/Maurichilean3d/Gizmoplug/internal/engine/gizmo"
	"github.com/Maurichilean3d/Gizmoplug/internal/engine/selection"
	"github.com/Maurichilean3d/Gizmoplug/internal/logger"
	"github.com/Maurichilean3d/Gizmoplug/pkg/math"
)

func init() {
	// SDL calls must be made from the main thread
	runtime.LockOSThread()
}

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Gizmoplug Demo ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("demo error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("demo closed normally")
}

func run(cfg *config.Config) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("SDL_Init failed: %w", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(
		"Gizmoplug Demo",
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Demo.Width),
		int32(cfg.Demo.Height),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}
	defer window.Destroy()

	rendererFlags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.Demo.VSync {
		rendererFlags |= sdl.RENDERER_PRESENTVSYNC
	}
	renderer, err := sdl.CreateRenderer(window, -1, rendererFlags)
	if err != nil {
		return fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}
	defer renderer.Destroy()

	host := newDemoHost(buildDemoMesh(), cfg.Demo.Width, cfg.Demo.Height, logger.Named("host"))
	eng := selection.New(host, logger.Named("selection"))

	if mode, err := selection.ParseMode(cfg.Selection.DefaultMode); err == nil {
		eng.SetMode(mode)
	} else {
		logger.Warn("unknown default mode, using face",
			zap.String("mode", cfg.Selection.DefaultMode))
	}
	gizmoCfg := gizmo.Config{Space: gizmo.ParseSpace(cfg.Gizmo.Orientation)}

	eng.Activate()
	defer eng.Deactivate()

	logger.Info("controls",
		zap.String("select", "left click / drag box, shift=add ctrl=subtract, click with both=toggle"),
		zap.String("camera", "right drag orbit, wheel zoom"),
		zap.String("keys", "1/2/3 mode, g grow, h shrink, l linked, i invert, c clear, o gizmo space, esc quit"))

	var dragStart math.Vec2
	dragging := false

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil

			case *sdl.MouseButtonEvent:
				p := math.Vec2{X: float32(e.X), Y: float32(e.Y)}
				if e.Button == sdl.BUTTON_LEFT {
					if e.Type == sdl.MOUSEBUTTONDOWN {
						dragStart = p
						dragging = true
						eng.BeginBoxSelect(p, dragOp(sdl.GetModState()))
					} else if e.Type == sdl.MOUSEBUTTONUP && dragging {
						dragging = false
						if p.Distance(dragStart) < 3 {
							// Treat a motionless drag as a click pick.
							op := clickOp(sdl.GetModState())
							eng.CancelBoxSelect()
							eng.Pick(p, op)
						} else {
							eng.FinishBoxSelect()
						}
					}
				}

			case *sdl.MouseMotionEvent:
				if dragging {
					eng.UpdateBoxSelect(math.Vec2{X: float32(e.X), Y: float32(e.Y)})
					host.RequestRender()
				}
				if e.State&sdl.ButtonRMask() != 0 {
					host.orbit(float32(e.XRel), float32(e.YRel))
				}

			case *sdl.MouseWheelEvent:
				host.zoom(float32(e.Y))

			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN {
					break
				}
				switch e.Keysym.Sym {
				case sdl.K_ESCAPE:
					return nil
				case sdl.K_1:
					eng.SetMode(selection.ModeVertex)
				case sdl.K_2:
					eng.SetMode(selection.ModeEdge)
				case sdl.K_3:
					eng.SetMode(selection.ModeFace)
				case sdl.K_g:
					eng.Grow()
				case sdl.K_h:
					eng.Shrink()
				case sdl.K_l:
					eng.SelectLinked()
				case sdl.K_i:
					eng.Invert()
				case sdl.K_c:
					eng.Clear()
				case sdl.K_o:
					gizmoCfg.Space = nextSpace(gizmoCfg.Space)
					logger.Info("gizmo space", zap.Stringer("space", gizmoCfg.Space))
					host.RequestRender()
				}
			}
		}

		if host.needsRender {
			host.needsRender = false
			host.channelDirty = false
			drawFrame(renderer, host, eng, gizmoCfg)
		} else {
			sdl.Delay(10)
		}
	}
}

// clickOp maps keyboard modifiers to a click-pick operation.
func clickOp(mod sdl.Keymod) selection.Op {
	shift := mod&sdl.KMOD_SHIFT != 0
	ctrl := mod&sdl.KMOD_CTRL != 0
	switch {
	case shift && ctrl:
		return selection.OpToggle
	case shift:
		return selection.OpAdd
	case ctrl:
		return selection.OpSubtract
	default:
		return selection.OpReplace
	}
}

// dragOp maps keyboard modifiers to a marquee operation. Marquee drags
// only add, subtract or replace; toggle over a whole rectangle is not
// meaningful, so ctrl wins when both modifiers are held.
func dragOp(mod sdl.Keymod) selection.Op {
	if mod&sdl.KMOD_CTRL != 0 {
		return selection.OpSubtract
	}
	if mod&sdl.KMOD_SHIFT != 0 {
		return selection.OpAdd
	}
	return selection.OpReplace
}

func nextSpace(s gizmo.Space) gizmo.Space {
	switch s {
	case gizmo.SpaceGlobal:
		return gizmo.SpaceLocal
	case gizmo.SpaceLocal:
		return gizmo.SpaceNormal
	default:
		return gizmo.SpaceGlobal
	}
}
