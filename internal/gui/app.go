package gui

import (
	"fmt"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/gravbox/internal/config"
	"github.com/san-kum/gravbox/internal/render"
	"github.com/san-kum/gravbox/internal/sandbox"
)

var ColBg = rl.NewColor(0, 0, 0, 255)

type App struct {
	Cfg    *config.Config
	State  *sandbox.State
	Log    *log.Logger
	Font   rl.Font
	Shapes *Surface

	ownsFont bool
}

// initWindow opens the fixed-size window and sets frame pacing. Esc is left
// unbound; only closing the window quits.
func initWindow(cfg *config.Config) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	rl.SetTargetFPS(int32(cfg.Window.FPS))
	rl.SetExitKey(0)
}

// loadFont loads the configured TTF once for the whole session, falling
// back to raylib's built-in font. The second result reports whether the
// font must be unloaded.
func loadFont(path string, size int) (rl.Font, bool) {
	if path == "" {
		return rl.GetFontDefault(), false
	}
	font := rl.LoadFontEx(path, int32(size), nil, 0)
	if font.Texture.ID == 0 {
		return rl.GetFontDefault(), false
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font, true
}

// NewApp must be called after the window exists.
func NewApp(cfg *config.Config, st *sandbox.State, logger *log.Logger) *App {
	font, owned := loadFont(cfg.Window.Font, cfg.Window.FontSize)
	if cfg.Window.Font != "" && !owned {
		logger.Warn("font not loaded, using default", "path", cfg.Window.Font)
	}
	return &App{
		Cfg:      cfg,
		State:    st,
		Log:      logger,
		Font:     font,
		Shapes:   NewSurface(font, float32(cfg.Window.FontSize)),
		ownsFont: owned,
	}
}

// Run opens the window, drives the session until quit and releases the
// font and window before returning.
func Run(cfg *config.Config, st *sandbox.State, logger *log.Logger) {
	initWindow(cfg)
	defer rl.CloseWindow()

	app := NewApp(cfg, st, logger)
	defer app.Close()

	logger.Info("window open", "width", cfg.Window.Width, "height", cfg.Window.Height, "fps", cfg.Window.FPS)
	app.RunLoop()
	logger.Info("session ended", "ticks", st.Ticks, "bodies", st.World.Len())
}

func (a *App) RunLoop() {
	for {
		if a.State.Frame(PollEvents()) {
			return
		}
		a.Draw()
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(ColBg)
	a.State.Draw(a.Shapes)
	if a.Cfg.Window.ShowStats {
		a.drawStats()
	}
}

func (a *App) drawStats() {
	rl.DrawFPS(10, 10)
	line := fmt.Sprintf("bodies %d  tick %d  E %.3g", a.State.World.Len(), a.State.Ticks, a.State.Energy())
	a.Shapes.Text(line, vec(10, 34), colorful.Color{R: 0.55, G: 0.55, B: 0.55})
}

func (a *App) Close() {
	if a.ownsFont {
		rl.UnloadFont(a.Font)
		a.ownsFont = false
	}
}

var _ render.Surface = (*Surface)(nil)
