// Package main provides the entry point for the DataWindow application.
// DataWindow is a GTK4 demo that renders a data-browsing window: a side
// list of windows, a notebook of data tabs with list and detail views, and
// a database connection dialog.
//
// Usage:
//
//	datawindow [options]
//
// Without options the GUI starts. The --list, --show and --tui modes render
// the same model in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/yllada/datawindow/cli"
	"github.com/yllada/datawindow/common"
	"github.com/yllada/datawindow/config"
	"github.com/yllada/datawindow/tui"
	"github.com/yllada/datawindow/ui"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

var (
	// General flags
	showVersion = flag.Bool("version", false, "Show version and exit")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	showHelp    = flag.Bool("help", false, "Show help message")
	configPath  = flag.String("config", "", "Path to the configuration file")
	initConfig  = flag.Bool("init-config", false, "Write the default configuration file and exit")

	// Terminal modes
	listWindows = flag.Bool("list", false, "List the side-list windows")
	showWindow  = flag.String("show", "", "Print a tab's rows and detail form (title or index)")
	runTUI      = flag.Bool("tui", false, "Run the terminal preview")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

// run executes the selected mode and returns the process exit code.
func run() int {
	if *showHelp {
		cli.PrintHelp(os.Stdout)
		return 0
	}

	if *showVersion {
		fmt.Printf("%s v%s\n", common.AppName, appVersion)
		if buildTime != "unknown" {
			fmt.Printf("  Build:  %s\n", buildTime)
			fmt.Printf("  Commit: %s\n", commitSHA)
		}
		return 0
	}

	path := *configPath
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		path = defaultPath
	}

	if *initConfig {
		if err := config.DefaultConfig().SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Printf("Wrote default configuration to %s\n", path)
		return 0
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; using defaults\n", err)
		cfg = config.DefaultConfig()
		cfg.SetPath(path)
	}

	// Initialize logger with optional file output
	logLevel := cfg.Level()
	if *verbose {
		logLevel = common.LevelDebug
	}

	if err := common.InitLogger(common.LogConfig{
		Level:          logLevel,
		EnableFile:     cfg.LogToFile,
		DisableConsole: *runTUI,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize file logging: %v\n", err)
	}
	defer common.CloseLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *listWindows || *showWindow != "" || *runTUI {
		return runTerminal(ctx)
	}
	return runGUI(ctx, cfg)
}

// runTerminal handles the modes that never touch the display.
func runTerminal(ctx context.Context) int {
	var err error

	switch {
	case *listWindows:
		err = cli.New(os.Stdout).ListWindows()
	case *showWindow != "":
		err = cli.New(os.Stdout).ShowTab(*showWindow)
	case *runTUI:
		err = tui.Run(ctx, common.GetLogger())
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runGUI starts the GTK application and blocks until it quits.
func runGUI(ctx context.Context, cfg *config.Config) int {
	app, err := ui.Initialize(cfg, appVersion)
	if err != nil {
		common.LogError("%v", err)
		fmt.Fprintln(os.Stderr, "Failed to initialize GTK")
		return 1
	}

	// SIGINT/SIGTERM stop the main loop from the GTK thread.
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			common.LogInfo("Received shutdown signal, quitting")
			app.QuitAsync()
		case <-done:
		}
	}()

	common.LogInfo("Starting %s v%s", common.AppName, appVersion)
	exitCode := app.Run(os.Args[:1])
	close(done)

	if exitCode != 0 {
		common.LogWarn("Application exited with code %d", exitCode)
	}
	return exitCode
}
