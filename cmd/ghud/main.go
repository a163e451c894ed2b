package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/goforj/godump"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/DMFirmy/GHud/internal/config"
	"github.com/DMFirmy/GHud/internal/device"
	"github.com/DMFirmy/GHud/internal/host"
	"github.com/DMFirmy/GHud/internal/hud"
	"github.com/DMFirmy/GHud/internal/logging"
	"github.com/DMFirmy/GHud/internal/metrics"
	"github.com/DMFirmy/GHud/internal/render"
	"github.com/DMFirmy/GHud/internal/screen"
)

const title = "GHud"

// Game is the Ebitengine game struct. It owns the window and the host
// keys; the LCDs live in hud.
type Game struct {
	screen *screen.Screen
	sim    *host.Sim
	hud    *hud.HUD
}

func NewGame(cfg *config.Config, log *slog.Logger, m *metrics.Collector) (*Game, error) {
	scenario, err := loadScenario(cfg.Scenario)
	if err != nil {
		return nil, err
	}
	sim, err := host.NewSim(scenario, log)
	if err != nil {
		return nil, err
	}
	fonts, err := render.NewFonts()
	if err != nil {
		return nil, err
	}

	scr := screen.New(cfg.Scale)
	var devices []*device.Device
	for _, p := range device.Profiles {
		if (p == device.Mono && !cfg.Mono) || (p == device.QVGA && !cfg.QVGA) {
			continue
		}
		lcd := scr.Add(p.Name, p.Width, p.Height)
		d := device.New(p, render.NewCanvas(p.Width, p.Height, fonts), lcd, scr.Buttons(scr.Len()-1))
		if err := d.Setup(); err != nil {
			return nil, fmt.Errorf("set up %s: %w", p.Name, err)
		}
		log.Info("device ready", "profile", p.Name, "modules", d.Modules.Len())
		devices = append(devices, d)
	}

	return &Game{
		screen: scr,
		sim:    sim,
		hud:    hud.New(sim, devices, cfg.Interval, m, log),
	}, nil
}

func loadScenario(path string) (*host.Scenario, error) {
	if path == "" {
		return host.DefaultScenario()
	}
	return host.LoadScenarioFile(path)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// Host keys
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.sim.CycleTarget()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.sim.ToggleFlight()
	}
	g.screen.UpdateFocus()

	g.sim.Tick()
	g.hud.Update(time.Now())
	return nil
}

func (g *Game) Draw(dst *ebiten.Image) {
	g.screen.Draw(dst)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screen.Size()
}

func main() {
	configPath := flag.String("config", "", "config file (default ./ghud.yaml if present)")
	dumpScenario := flag.Bool("dump-scenario", false, "print the demo scenario and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *dumpScenario {
		sc, err := loadScenario(cfg.Scenario)
		if err != nil {
			log.Fatal(err)
		}
		godump.Dump(sc)
		return
	}
	lg, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.File != "" {
		lg.Info("config loaded", "file", cfg.File)
	}

	m, err := metrics.New(prometheus.NewRegistry())
	if err != nil {
		lg.Error("metrics", "error", err)
		exit(lg, 1)
	}

	game, err := NewGame(cfg, lg.Logger, m)
	if err != nil {
		lg.Error("startup failed", "error", err)
		exit(lg, 1)
	}

	w, h := game.screen.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	code := 0
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		lg.Error("run", "error", err)
		code = 1
	}

	if s, err := m.Summary(); err != nil {
		lg.Warn("metrics summary", "error", err)
	} else {
		attrs := make([]any, 0, 2*len(s))
		for _, k := range metrics.SummaryKeys(s) {
			attrs = append(attrs, k, s[k])
		}
		lg.Info("metrics", attrs...)
	}
	exit(lg, code)
}

func exit(lg *logging.Logger, code int) {
	_ = lg.Close()
	if code != 0 {
		log.Fatalf("%s exited with errors, see log", title)
	}
}
