// File: main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/lguibr/bombgrid/campaign"
	"github.com/lguibr/bombgrid/levels"
	"github.com/lguibr/bombgrid/render"
	"github.com/lguibr/bombgrid/terminal"
	"github.com/lguibr/bombgrid/utils"
)

func main() {
	configPath := flag.String("config", ".env", "dotenv file with BOMBGRID_* settings")
	levelDir := flag.String("levels", "", "directory of *.txt level plans (default: bundled levels)")
	logPath := flag.String("log", "bombgrid.log", "log file, the terminal is owned by the game")
	dumpPath := flag.String("dump", "", "record every frame as msgpack to this file")
	flag.Parse()

	if err := run(*configPath, *levelDir, *logPath, *dumpPath); err != nil {
		fmt.Fprintf(os.Stderr, "bombgrid: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, levelDir, logPath, dumpPath string) error {
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Wrap(err, "open log")
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	cfg, err := utils.LoadConfig(configPath)
	if err != nil {
		return err
	}

	plans := levels.Default()
	if levelDir != "" {
		if plans, err = levels.Dir(levelDir); err != nil {
			return err
		}
	}
	log.Printf("starting campaign of %d levels, seed %d", len(plans), cfg.Seed)

	term, err := terminal.Open(terminal.DefaultHold)
	if err != nil {
		return err
	}
	defer term.Close()

	var display campaign.Display = term
	if dumpPath != "" {
		dump, err := os.Create(dumpPath)
		if err != nil {
			return errors.Wrap(err, "create dump")
		}
		defer dump.Close()
		display = campaign.Tee(term, campaign.Recording{Recorder: render.NewRecorder(dump)})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-term.Quit():
			cancel()
		case <-ctx.Done():
		}
	}()

	err = campaign.NewRunner(cfg, plans, display, term).Run(ctx)
	if errors.Is(err, context.Canceled) {
		log.Printf("quit by player")
		return nil
	}
	return err
}
