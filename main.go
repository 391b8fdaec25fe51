package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"darkdepths/pkg/engine/config"
	"darkdepths/pkg/engine/feature"
	engineinput "darkdepths/pkg/engine/input"
	"darkdepths/pkg/engine/terminal"
	"darkdepths/pkg/game/devtools"
	"darkdepths/pkg/game/gameplay"
	"darkdepths/pkg/game/renderer"
	"darkdepths/pkg/game/renderer/tui"
	"darkdepths/pkg/game/state"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	configPath := flag.String("config", "config/darkdepths.toml", "path to the TOML config file")
	seed := flag.Int64("seed", 0, "level seed (0 picks one from the clock)")
	startDepth := flag.Int("depth", 1, "starting dungeon level (for developer testing)")
	script := flag.String("script", "", "run these commands instead of reading the keyboard, e.g. \"666 o 2 g\"")
	dump := flag.Bool("dump", false, "after a script, write the full level dump to stdout")
	devMap := flag.Bool("devmap", false, "start on the developer test map")
	screenshot := flag.Bool("screenshot", false, "save an HTML screenshot before exiting")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	gotext.Configure(cfg.Data.LocaleDir, cfg.Data.Language, cfg.Data.Domain)

	reg, err := feature.LoadOrDefault(cfg.Data.TerrainPath)
	if err != nil {
		return err
	}
	log.Info("terrain loaded", zap.Int("features", reg.Max()))

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	g, err := gameplay.BuildGame(cfg, reg, *seed, *startDepth, log)
	if err != nil {
		return err
	}
	defer g.LeaveLevel()
	log.Info("game started", zap.Int64("seed", *seed), zap.Int("depth", g.Depth))

	if *devMap {
		if err := devtools.SwitchToDevMap(g); err != nil {
			return err
		}
	}

	if *script != "" {
		err = runScript(g, *script, *dump)
	} else {
		err = runInteractive(g)
	}

	if *screenshot {
		path, serr := devtools.SaveScreenshotHTML(g)
		if serr == nil {
			log.Info("screenshot saved", zap.String("path", path))
		}
		err = multierr.Append(err, serr)
	}

	return multierr.Append(err, g.CheckIntegrity())
}

// loadConfig reads the config file, falling back to the defaults when the
// file does not exist
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return config.Defaults(), nil
	}
	return config.Load(path)
}

// runScript plays a command script without a renderer, printing the
// remembered map and the message log once it has run
func runScript(g *state.Game, script string, dump bool) error {
	for _, intent := range engineinput.ParseScript(script) {
		if !gameplay.ProcessIntent(g, intent, devtools.DumpRevealedMapToFile) {
			break
		}
	}

	devtools.WriteMapGrid(os.Stdout, g, true, terminal.GetWidth())
	fmt.Println()
	for _, msg := range g.Messages {
		fmt.Println(msg)
	}
	if dump {
		return devtools.WriteDump(os.Stdout, g)
	}
	return nil
}

// runInteractive reads keys from the terminal until the player quits or
// input runs out
func runInteractive(g *state.Game) error {
	renderer.SetRenderer(tui.New())
	renderer.Init()

	rd := engineinput.NewTerminalReader()
	for {
		renderer.Clear()
		renderer.RenderFrame(g)

		code, err := rd.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		intent := engineinput.MapToIntent(code)
		if intent.Action == engineinput.ActionHelp {
			renderer.Clear()
			gameplay.ProcessIntent(g, intent, nil)
			if _, err := rd.Next(); err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			continue
		}

		if !gameplay.ProcessIntent(g, intent, devtools.DumpRevealedMapToFile) {
			return nil
		}
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
