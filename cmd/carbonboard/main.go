package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/clarktrimble/sabot"
	_ "github.com/marcboeker/go-duckdb"

	"carbonboard"
	"carbonboard/api"
	"carbonboard/store/duck"
)

func main() {

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "carbonboard.yaml", "path to config file")
	flag.Parse()

	cfg, err := carbonboard.LoadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// the TUI owns stdout, so logs go to a file
	logFile := openLog(cfg.LogPath)
	defer closeLog(logFile)

	lgr := &sabot.Sabot{Writer: logFile}
	ctx := context.Background()

	archive, err := duck.New(cfg.ArchivePath, lgr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer archive.Close()

	apiCfg := &api.Config{Endpoint: cfg.Endpoint, Timeout: cfg.Timeout()}
	registry := apiCfg.New(lgr)

	model, err := carbonboard.NewModel(ctx, cfg, registry, archive, lgr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	lgr.Info(ctx, "starting carbonboard", "endpoint", cfg.Endpoint, "poll_seconds", cfg.PollSeconds)

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func openLog(path string) (file io.Writer) {

	if path == "" {
		return io.Discard
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Printf("warning: %s\n", err.Error())
		file = io.Discard
	}
	return
}

func closeLog(file io.Writer) {

	actually, ok := file.(*os.File)
	if ok {
		actually.Close()
	}
}
