// Command lvlmaze trains a Q-learning agent on a growing maze curriculum.
//
// Settings come from a .env file (see package config) and LVLMAZE_*
// environment variables:
//
//	lvlmaze -env ./run.env
//	LVLMAZE_LEVELS=10 LVLMAZE_POLICY=softmax:temperature=0.5 lvlmaze
//	lvlmaze -list
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/katalvlaran/lvlmaze/config"
	"github.com/katalvlaran/lvlmaze/criterion"
	"github.com/katalvlaran/lvlmaze/operator"
	"github.com/katalvlaran/lvlmaze/policy"
	"github.com/katalvlaran/lvlmaze/report"
	"github.com/katalvlaran/lvlmaze/training"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("lvlmaze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	envPath := fs.String("env", ".env", "path of the .env file")
	list := fs.Bool("list", false, "list policies, criteria, operators and settings, then exit")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *list {
		printRegistries(stdout)
		return nil
	}

	s, err := config.Load(*envPath)
	if err != nil {
		return err
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: s.LogLevel}))
	for _, w := range s.Warnings {
		log.Warn(w)
	}

	console := report.NewConsole(stdout, s.Color)
	console.Verbose = s.Verbose
	sinks := training.MultiSink{training.NewSlogSink(log), console}
	var collector *report.Collector
	if s.Report != "" {
		collector = report.NewCollector()
		sinks = append(sinks, collector)
	}

	tr, err := training.New(s.Training, training.WithSink(sinks))
	if err != nil {
		return err
	}
	if err = tr.InitSimulation(); err != nil {
		return err
	}

	runErr := loop(ctx, tr, s.MaxSteps)
	switch {
	case errors.Is(runErr, errStepLimit):
		log.Warn("step limit reached", "run", tr.RunID(), "steps", s.MaxSteps, "level", tr.Level(), "episode", tr.Episode())
		runErr = nil
	case errors.Is(runErr, context.Canceled):
		log.Warn("interrupted", "run", tr.RunID(), "level", tr.Level(), "episode", tr.Episode())
		runErr = nil
	}

	if collector != nil {
		if err = collector.WriteFile(s.Report); err != nil {
			return errors.Join(runErr, err)
		}
		log.Info("report written", "path", s.Report, "episodes", len(collector.Episodes()))
	}
	return runErr
}

var errStepLimit = errors.New("step limit reached")

// loop is training.Run with an optional cap on the number of steps.
func loop(ctx context.Context, tr *training.Training, maxSteps int) error {
	if maxSteps == 0 {
		return tr.Run(ctx)
	}
	for i := 0; i < maxSteps; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		ok, err := tr.DoStep()
		if err != nil || !ok {
			return err
		}
	}
	return errStepLimit
}

func printRegistries(w io.Writer) {
	fmt.Fprintln(w, "policies: ", strings.Join(policy.Names(), ", "))
	fmt.Fprintln(w, "criteria: ", strings.Join(criterion.Names(), ", "))
	fmt.Fprintln(w, "operators:", strings.Join(operator.Names(), ", "))
	fmt.Fprintln(w, "settings:")
	keys := make([]string, 0, len(config.Keys))
	for k := range config.Keys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s%s=%s\n", config.Prefix, k, config.Keys[k])
	}
}
