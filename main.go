package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	_ "github.com/silbinarywolf/preferdiscretegpu"

	"github.com/iburimskiy/lavafield/internal/config"
	"github.com/iburimskiy/lavafield/internal/field"
	"github.com/iburimskiy/lavafield/internal/game"
	"github.com/iburimskiy/lavafield/internal/logs"
	"github.com/iburimskiy/lavafield/internal/render"
	"github.com/iburimskiy/lavafield/internal/soundtrack"
)

var (
	FlagConfig string
	FlagShader string
	FlagAurora string
	FlagStats  bool
	FlagQuiet  bool

	FlagStill string
	FlagAt    float64
	FlagSize  string
	FlagCopy  bool
)

func init() {
	flag.StringVar(&FlagConfig, "config", "", "YAML config file, merged over the built-in defaults")
	flag.StringVar(&FlagShader, "shader", "", "Kage program to use instead of the built-in one")
	flag.StringVar(&FlagAurora, "aurora", "", "aurora compositing: off or additive (overrides config)")
	flag.BoolVar(&FlagStats, "stats", false, "show elapsed time and FPS in the window title")
	flag.BoolVar(&FlagQuiet, "quiet", false, "only log warnings and failures")

	flag.StringVar(&FlagStill, "still", "", "render one frame on the CPU to this PNG file and exit")
	flag.Float64Var(&FlagAt, "at", 0, "time in seconds of the still frame")
	flag.StringVar(&FlagSize, "size", "1280x720", "size of the still frame")
	flag.BoolVar(&FlagCopy, "copy", false, "also put the still frame on the clipboard")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(FlagConfig)
	if err != nil {
		return nil, err
	}

	if FlagShader != "" {
		cfg.Render.ShaderPath = FlagShader
	}
	if FlagAurora != "" {
		mode, err := field.ParseAuroraMode(FlagAurora)
		if err != nil {
			return nil, err
		}
		cfg.Render.Aurora = mode
	}

	return cfg, nil
}

func startSoundtrack(cfg config.SoundtrackConfig) *soundtrack.Soundtrack {
	if cfg.Path == "" {
		return nil
	}

	track, err := soundtrack.Open(cfg.Path)
	if err != nil {
		logs.WarnLogger.Printf("soundtrack disabled: %v", err)
		return nil
	}
	if err := track.Play(cfg.Loop); err != nil {
		logs.WarnLogger.Printf("soundtrack disabled: %v", err)
		_ = track.Close()
		return nil
	}

	logs.InfoLogger.Printf("playing %s (%v)", cfg.Path, track.Duration())
	return track
}

func run(cfg *config.Config) error {
	clearColor, err := cfg.ClearColor()
	if err != nil {
		return err
	}

	pipeline, err := render.NewPipeline(render.Options{
		ShaderPath: cfg.Render.ShaderPath,
		ClearColor: clearColor,
		Aurora:     cfg.Render.Aurora,
	})
	if err != nil {
		return err
	}
	defer pipeline.Release()

	if track := startSoundtrack(cfg.Soundtrack); track != nil {
		defer track.Close()
	}

	ebiten.SetVsyncEnabled(cfg.Window.Vsync)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := game.NewGame(pipeline, game.NewWallClock(), cfg.Window.Title)
	g.TitleStats = FlagStats

	logs.InfoLogger.Printf("rendering %dx%d, aurora %v", cfg.Window.Width, cfg.Window.Height, cfg.Render.Aurora)

	return hostError(ebiten.RunGame(g))
}

// hostError classifies what RunGame returned. Game.Update and Game.Draw
// never fail, so any error other than Termination comes from the host
// failing to bring up its graphics context.
func hostError(err error) error {
	if err == nil || errors.Is(err, ebiten.Termination) {
		return nil
	}
	return fmt.Errorf("%w: %w", render.ErrContextUnavailable, err)
}

func alert(err error) {
	msg := fmt.Sprintf("Failed to initialize the GPU.\n\n%v", err)
	if zerr := zenity.Error(msg, zenity.Title("lavafield"), zenity.ErrorIcon); zerr != nil {
		logs.WarnLogger.Printf("could not show alert: %v", zerr)
	}
}

func main() {
	flag.Parse()

	if FlagQuiet {
		logs.Quiet()
	}

	cfg, err := loadConfig()
	if err != nil {
		logs.ErrLogger.Fatalf("loading config: %v", err)
	}

	if FlagStill != "" {
		if err := exportStill(cfg, FlagStill); err != nil {
			logs.ErrLogger.Fatalf("exporting still: %v", err)
		}
		return
	}

	if err := run(cfg); err != nil {
		if errors.Is(err, render.ErrContextUnavailable) {
			alert(err)
		}
		logs.ErrLogger.Fatal(err)
	}
}
