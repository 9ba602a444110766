package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/agenticsorg/tvbrain/pkg/config"
	"github.com/agenticsorg/tvbrain/pkg/learner"
	"github.com/agenticsorg/tvbrain/pkg/repository"
	"github.com/agenticsorg/tvbrain/pkg/scheduler"
	"github.com/agenticsorg/tvbrain/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" description:"config file (yaml)"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug)

	log.Printf("[INFO] starting tvbrain version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, &opts); err != nil {
		log.Printf("[ERROR] tvbrain failed: %v", err)
		cancel()
		os.Exit(1)
	}
	cancel()

	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, opts *Opts) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("init repositories: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	lrn, err := learner.New(cfg.GetLearningConfig())
	if err != nil {
		return fmt.Errorf("create learner: %w", err)
	}

	// restore learned state, a missing or corrupt snapshot starts fresh
	if snap, err := repos.Model.Load(ctx); err != nil {
		return fmt.Errorf("load model: %w", err)
	} else if snap != nil {
		if err := lrn.ImportModel(snap); err != nil {
			log.Printf("[WARN] saved model rejected, starting fresh: %v", err)
		}
	}

	// rebuild the content library from the stored catalog
	items, err := repos.Content.All(ctx)
	if err != nil {
		return fmt.Errorf("load content catalog: %w", err)
	}
	if len(items) > 0 {
		if _, err := lrn.AddContents(items); err != nil {
			log.Printf("[WARN] failed to restore some catalog items: %v", err)
		}
		log.Printf("[INFO] restored %d catalog items", lrn.ContentCount())
	}

	// stable device id, generated on first boot
	deviceID, err := repos.Setting.GetSetting(ctx, repository.SettingDeviceID)
	if err != nil {
		return fmt.Errorf("read device id: %w", err)
	}
	if deviceID == "" {
		deviceID = uuid.New().String()
		if err := repos.Setting.SetSetting(ctx, repository.SettingDeviceID, deviceID); err != nil {
			return fmt.Errorf("store device id: %w", err)
		}
	}
	log.Printf("[INFO] device id %s", deviceID)

	sched := scheduler.NewScheduler(lrn, repos.Model, repos.Setting, scheduler.Config{
		Interval:       cfg.Snapshot.Interval,
		ReplayInterval: cfg.Snapshot.ReplayInterval,
	})

	srv := server.New(cfg, lrn, repos.Content, sched, revision, opts.Debug)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return sched.Run(ctx) })
	g.Go(func() error { return srv.Run(ctx) })
	return g.Wait()
}

func loadConfig(opts *Opts) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		loaded, err := config.Load(opts.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	return cfg, nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
