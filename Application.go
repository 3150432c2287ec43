package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"PowerPong/config"
	"PowerPong/core"
	"PowerPong/logger"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(finish(run(os.Args[1:])))
}

// finish reports err and closes the log file last, so nothing is written after it closes.
func finish(err error) int {
	code := 0
	if err != nil {
		logger.Log.Error(err.Error())
		fmt.Fprintln(os.Stderr, err)
		code = 1
	}
	logger.Log.Close()
	return code
}

// consoleFor picks where log messages are echoed. The terminal frontend owns
// stdout, so it gets none.
func consoleFor(frontend string) io.Writer {
	if frontend == config.FrontendWindow {
		return os.Stdout
	}
	return nil
}

func run(args []string) error {
	flags := config.Flags("pong")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	dir, _ := flags.GetString("config-dir")
	env, _ := flags.GetString("env")

	fs := afero.NewOsFs()

	logProps, err := logger.ReadProperties(fs, dir)
	if err != nil {
		return err
	}
	logger.Log.Init(logProps)

	props, v, err := config.ReadProperties(fs, dir, env, flags)
	if err != nil {
		return err
	}

	seed := props.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Log.Info(fmt.Sprintf(logger.SessionStartMsg,
		props.Frontend, props.Width, props.Height, props.TickRate, seed))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	state := core.NewGameState(props.Width, props.Height)
	state.ThemeKey = props.ThemeKey

	sim := core.NewSimulation(core.SystemClock{}, rand.New(rand.NewSource(seed)))
	sim.Listener = core.LogEvents(state)

	driver := &core.Driver{
		State:    state,
		Sim:      sim,
		Renderer: core.NewRenderer(props.Palette),
		Interval: core.TickInterval(props.TickRate),
	}

	events := make(chan core.InputEvent, 64)
	if props.Watch {
		config.Watch(v, func(file string, p core.Palette, err error) {
			if err != nil {
				logger.Log.Warn(fmt.Sprintf(logger.PaletteReloadFailMsg, file, err))
				return
			}
			logger.Log.Info(fmt.Sprintf(logger.PaletteReloadMsg, file))
			select {
			case events <- core.PaletteChangeEvent{Palette: p}:
			default:
			}
		})
	}

	logger.Log.SetConsole(consoleFor(props.Frontend))
	switch props.Frontend {
	case config.FrontendWindow:
		err = startWindow(ctx, driver, events, props.TickRate)
	default:
		err = startLocal(ctx, driver, events)
	}

	logger.Log.Info(logger.SessionEndMsg)
	return err
}
