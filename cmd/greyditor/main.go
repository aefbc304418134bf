package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/greyditor/internal/config"
	"github.com/ironsheep/greyditor/internal/editor"
	"github.com/ironsheep/greyditor/internal/presets"
	"github.com/ironsheep/greyditor/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("greyditor %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "greyditor: %v\n", err)
		os.Exit(1)
	}

	logger := initLogger(cfg.Log)
	logger.WithFields(logrus.Fields{
		"version": Version,
		"built":   BuildTime,
		"commit":  GitCommit,
	}).Debug("Greyditor starting")

	ed := editor.New(editor.Options{
		Title:   cfg.Editor.Title,
		Padding: cfg.View.Padding,
		MaxZoom: cfg.View.MaxZoom,
		MaxSide: cfg.Image.MaxSide,
		Log:     logger,
	})
	if err := registerOperations(ed, cfg.Image.MaxSide); err != nil {
		logger.WithError(err).Fatal("Registration failed")
	}

	srv := server.New(ed, server.Options{
		Version:     Version,
		BlankWidth:  cfg.Image.BlankWidth,
		BlankHeight: cfg.Image.BlankHeight,
		Log:         logger,
	})
	if cfg.Editor.ExitOnLastClose {
		ed.OnLastClosed(srv.Stop)
	}

	if err := srv.Run(os.Stdin, os.Stdout); err != nil {
		logger.WithError(err).Fatal("Server error")
	}
	logger.Debug("Greyditor stopped")
}

func registerOperations(ed *editor.Editor, maxSide int) error {
	if err := presets.RegisterAll(ed, maxSide); err != nil {
		return err
	}
	if err := ed.AddLoadOperation("Load"); err != nil {
		return err
	}
	return ed.AddSaveOperation("Save")
}

// initLogger writes to stderr; stdout carries the MCP protocol.
func initLogger(c config.LogConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if level >= logrus.DebugLevel || c.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
	return logger
}

func printHelp() {
	fmt.Println("greyditor - grayscale image editor served over MCP")
	fmt.Println()
	fmt.Println("Usage: greyditor [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Configuration is read from $HOME/.config/greyditor/config.toml,")
	fmt.Println("or the file named by GREYDITOR_CONFIG. Any key can be overridden")
	fmt.Println("from the environment:")
	fmt.Println("  GREYDITOR_LOG_LEVEL=debug             Enable debug logging")
	fmt.Println("  GREYDITOR_VIEW_MAX_ZOOM=8             Largest zoom factor")
	fmt.Println("  GREYDITOR_EDITOR_EXIT_ON_LAST_CLOSE=1 Exit when the last session closes")
	fmt.Println()
	fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}
