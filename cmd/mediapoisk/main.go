package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/alvarorichard/mediapoisk/internal/appflow"
	"github.com/alvarorichard/mediapoisk/internal/config"
	"github.com/alvarorichard/mediapoisk/internal/util"
	"github.com/alvarorichard/mediapoisk/internal/version"
)

func main() {
	startAll := time.Now()

	versionFlag := flag.Bool("version", false, "show version information")
	debugFlag := flag.Bool("debug", false, "enable debug mode")
	helpFlag := flag.Bool("help", false, "show help message")
	altHelpFlag := flag.Bool("h", false, "show help message")
	configFlag := flag.String("config", "", "config file or directory")

	flag.Parse()

	if *versionFlag || version.HasVersionArg() {
		version.ShowVersion(os.Stdout)
		return
	}
	if *helpFlag || *altHelpFlag || flag.NArg() == 0 {
		util.ShowBeautifulHelp()
		return
	}

	util.SetDebugMode(*debugFlag)

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, util.ErrorHandler(err))
		os.Exit(1)
	}
	if cfg.Log.Debug {
		util.SetDebugMode(true)
	}
	logger := util.InitLogger(util.LogOptions{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app, err := appflow.NewApp(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, util.ErrorHandler(err))
		os.Exit(1)
	}
	logger.Debug("boot finished", "version", version.Version, "took", time.Since(startAll))

	err = run(ctx, app, os.Stdout, flag.Args())
	if cerr := app.Close(); cerr != nil {
		logger.Warn("closing storage", "error", cerr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, util.ErrorHandler(err))
		os.Exit(1)
	}
}
