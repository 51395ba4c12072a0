package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"tile-snake/audio"
	"tile-snake/game"
	"tile-snake/game/types"
	"tile-snake/logging"
	"tile-snake/metrics"
	"tile-snake/timer"
	"tile-snake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/prometheus/client_golang/prometheus"
)

type options struct {
	cfg          game.Config
	windowWidth  int
	windowHeight int
	logLevel     string
	logFormat    string
	mute         bool
	volume       float64
}

func parseFlags(args []string) (options, error) {
	def := game.DefaultConfig()
	fs := flag.NewFlagSet("tile-snake", flag.ContinueOnError)

	width := fs.Int("width", def.Grid.Width, "Grid width in tiles")
	height := fs.Int("height", def.Grid.Height, "Grid height in tiles")
	tile := fs.Float64("tile", def.TileSize.X, "Tile size in logical pixels")
	margin := fs.Float64("margin", def.TileMargin.X, "Inset of each drawn tile in logical pixels")
	period := fs.Duration("period", def.Period, "Time between ticks (lower = faster)")
	restart := fs.Duration("restart-delay", def.RestartDelay, "Pause before a new round after losing")
	autoRestart := fs.Bool("autorestart", def.AutoRestart, "Resume play automatically after the restart delay")
	seed := fs.Uint64("seed", uint64(time.Now().UnixNano()), "Food placement seed")
	bg := fs.String("bg", def.Colors.Background.String(), "Background color")
	body := fs.String("body", def.Colors.Body.String(), "Body color")
	head := fs.String("head", def.Colors.Head.String(), "Head color")
	food := fs.String("food", def.Colors.Food.String(), "Food color")

	var o options
	fs.IntVar(&o.windowWidth, "window-width", 810, "Initial window width")
	fs.IntVar(&o.windowHeight, "window-height", 600, "Initial window height")
	fs.StringVar(&o.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.StringVar(&o.logFormat, "log-format", "text", "Log format: text or json")
	fs.BoolVar(&o.mute, "mute", false, "Disable sound effects")
	fs.Float64Var(&o.volume, "volume", 0.6, "Sound effect volume, 0 to 1")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	cfg := def
	cfg.Grid = types.Grid{Width: *width, Height: *height}
	cfg.TileSize = types.Size{X: *tile, Y: *tile}
	cfg.TileMargin = types.Size{X: *margin, Y: *margin}
	cfg.Period = *period
	cfg.RestartDelay = *restart
	cfg.AutoRestart = *autoRestart
	cfg.Seed = *seed

	colors := []struct {
		dst *types.Color
		src string
	}{
		{&cfg.Colors.Background, *bg},
		{&cfg.Colors.Body, *body},
		{&cfg.Colors.Head, *head},
		{&cfg.Colors.Food, *food},
	}
	for _, c := range colors {
		parsed, err := types.ParseHexColor(c.src)
		if err != nil {
			return options{}, err
		}
		*c.dst = parsed
	}

	if err := cfg.Validate(); err != nil {
		return options{}, err
	}
	o.cfg = cfg
	return o, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := logging.New(logging.Config{Level: opts.logLevel, Format: opts.logFormat})

	if err := run(opts, log); err != nil {
		log.Error("exit", logging.Any("error", err))
		os.Exit(1)
	}
}

func run(opts options, log logging.Logger) error {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(opts.windowWidth), int32(opts.windowHeight), "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	// Arrow keys only; Escape would otherwise close the window.
	rl.SetExitKey(rl.KeyNull)

	bus := game.NewEventBus()
	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	if err != nil {
		return err
	}
	collector.Observe(bus)

	if !opts.mute {
		player, err := audio.NewPlayer(opts.volume, log)
		if err != nil {
			log.Warn("audio init failed, continuing without sound", logging.Any("error", err))
		} else {
			player.Observe(bus)
		}
	}

	canvas := ui.NewCanvas(rl.GetScreenWidth(), rl.GetScreenHeight())
	keyboard := ui.NewKeyboard()
	loop := timer.NewLoop(time.Now())
	renderer := ui.NewRenderer()

	engine, err := game.NewEngine(opts.cfg, canvas, keyboard, loop,
		game.WithLogger(log.With(logging.String("component", "engine"))),
		game.WithEventBus(bus))
	if err != nil {
		return err
	}
	log.Info("starting",
		logging.Any("grid", opts.cfg.Grid),
		logging.Any("period", opts.cfg.Period),
		logging.Any("seed", opts.cfg.Seed))

	engine.Initialize()
	engine.Start()
	defer engine.Shutdown()

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			canvas.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
			engine.Resize()
		}
		keyboard.Poll()
		loop.Advance(time.Now())
		renderer.Draw(canvas, engine)
	}

	logSummary(log, reg, engine)
	return nil
}

// logSummary writes the session counters gathered from reg.
func logSummary(log logging.Logger, reg prometheus.Gatherer, engine *game.Engine) {
	st := engine.Stats()
	fields := []logging.Field{
		logging.Int("high_score", engine.HighScore()),
		logging.Int("rounds", st.Rounds),
		logging.Int("wins", st.Wins),
		logging.Any("avg_score", st.AverageScore),
		logging.Any("median_score", st.MedianScore),
		logging.Any("avg_round", st.AverageDuration),
		logging.Any("longest_round", st.MaxDuration),
	}
	families, err := reg.Gather()
	if err != nil {
		log.Warn("gather metrics", logging.Any("error", err))
	}
	for _, mf := range families {
		total := 0.0
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				total += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				total += m.GetGauge().GetValue()
			}
		}
		fields = append(fields, logging.Any(mf.GetName(), total))
	}
	log.Info("session summary", fields...)
}
