package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/nightfall"
	"github.com/oomph-ac/nightfall/player"
	"github.com/oomph-ac/nightfall/sequence"
	"github.com/oomph-ac/nightfall/session"
	"github.com/oomph-ac/nightfall/settings"
	"github.com/sirupsen/logrus"
)

const configFile = "config.toml"

var spawn = mgl32.Vec3{2, 0, 0}

// The following program walks a scripted player through the default level, optionally recording the run.
// Run with "replay <file>" to check that a recording still replays deterministically.
func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:     false,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	if os.Getenv("NIGHTFALL_DEBUG") != "" {
		logger.SetLevel(logrus.DebugLevel)
	}

	opts, err := readConfig()
	if err != nil {
		logger.Fatalf("unable to load %s: %v", configFile, err)
	}

	if opts.Runner.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: opts.Runner.SentryDSN}); err != nil {
			logger.Errorf("unable to initialize sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	if os.Getenv("STATSVIEW_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	if len(os.Args) >= 3 && os.Args[1] == "replay" {
		if err := replay(logger, os.Args[2]); err != nil {
			logger.Fatal(err)
		}
		return
	}
	if err := run(logger, opts); err != nil {
		logger.Fatal(err)
	}
}

func readConfig() (settings.Settings, error) {
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := settings.SaveDefault(configFile); err != nil {
			return settings.Settings{}, err
		}
	}
	return settings.Load(configFile)
}

func run(logger *logrus.Logger, opts settings.Settings) error {
	r := nightfall.New(logger, opts, nil)
	defer r.Close()
	r.Reset(spawn, 0)
	r.Handle(logHandler{log: logger})

	if opts.Runner.RecordingFile != "" {
		rec, err := session.CreateRecorder(opts.Runner.RecordingFile, session.Header{Settings: opts, Spawn: spawn})
		if err != nil {
			return err
		}
		r.Record(rec)
		logger.Infof("recording run to %s", opts.Runner.RecordingFile)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := r.Start(ctx, newWalk()); err != nil && err != context.Canceled {
		return err
	}
	state := r.Player().State()
	logger.Infof("run finished after %d ticks at %v (sanity %.1f, stamina %.1f, ended=%v)",
		r.Player().CurrentTick(), state.Position, state.Sanity.Current, state.Stamina.Current, r.Ended())
	return nil
}

func replay(logger *logrus.Logger, file string) error {
	rec, err := session.DecodeRecordingFile(file)
	if err != nil {
		return err
	}

	// Real-time waits do not affect the replayed state, so a clock that never moves is enough.
	r := nightfall.New(logger, rec.Header.Settings, sequence.NewManualClock(time.Now()))
	defer r.Close()
	r.Reset(rec.Header.Spawn, rec.Header.Yaw)

	mismatches := session.Replay(rec, r)
	for _, m := range mismatches {
		logger.Warnf("tick %d diverged: recorded %x, replayed %x", m.Tick, m.Want, m.Got)
	}
	if len(mismatches) != 0 {
		return fmt.Errorf("%d of %d ticks diverged", len(mismatches), len(rec.Frames))
	}
	logger.Infof("all %d ticks of %s replayed identically", len(rec.Frames), file)
	return nil
}

type logHandler struct {
	player.NopHandler
	log *logrus.Logger
}

func (h logHandler) HandleSanityChange(old, current float32) {
	if int(old/10) != int(current/10) {
		h.log.Infof("sanity %.1f -> %.1f", old, current)
	}
}

func (h logHandler) HandleAmbientStop() {
	h.log.Info("ambient audio stopped")
}

func (h logHandler) HandleTerminalScreen() {
	h.log.Warn("terminal screen shown")
}

func (h logHandler) HandleSceneTransition() {
	h.log.Info("transitioning to the next scene")
}
