// Command woundguard emulates the WoundGuard wound-monitoring sensor
// device. By default it runs a full-screen terminal display of the
// simulated readings; with -headless it prints the line format the
// WoundGuard consumer parses, exactly as the real device does over
// serial.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/luki/woundguard/internal/emit"
	"github.com/luki/woundguard/internal/monitor"
	"github.com/luki/woundguard/internal/record"
	"github.com/luki/woundguard/internal/sensor"
	"github.com/luki/woundguard/internal/simulator"
)

func main() {
	headless := flag.Bool("headless", false, "print readings to stdout instead of the display")
	seed := flag.Int64("seed", 0, "random seed for a reproducible run (0 = time-based)")
	recordPath := flag.String("record", "", "append readings to a CSV file")
	flag.Parse()

	// stdout carries the reading wire format; diagnostics go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	serial := sensor.NewSerial()
	gen := sensor.NewSeeded(*seed)
	log.Info("simulator starting", "serial", serial, "seed", *seed, "headless", *headless)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var recorder *record.Recorder
	if *recordPath != "" {
		var err error
		recorder, err = record.Open(*recordPath)
		if err != nil {
			log.Error("cannot open recording", "path", *recordPath, "err", err)
			os.Exit(1)
		}
		log.Info("recording readings", "path", *recordPath)
	}

	var err error
	if *headless {
		err = runHeadless(ctx, gen, recorder)
	} else {
		err = runDisplay(ctx, gen, recorder, serial)
	}
	if err != nil {
		log.Error("simulation failed", "err", err)
		os.Exit(1)
	}
	log.Info("simulator stopped", "serial", serial)
}

func runHeadless(ctx context.Context, gen *sensor.Generator, recorder *record.Recorder) error {
	console := emit.NewConsole(os.Stdout)
	console.Banner()

	sink := emit.Sink(console)
	if recorder != nil {
		sink = emit.NewMulti(console, recorder)
	}

	return simulator.Run(ctx, gen, sink)
}

func runDisplay(ctx context.Context, gen *sensor.Generator, recorder *record.Recorder, serial string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(monitor.New(serial), tea.WithAltScreen(), tea.WithContext(ctx))

	display := monitor.NewSink(p)
	sink := emit.Sink(display)
	if recorder != nil {
		sink = emit.NewMulti(display, recorder)
	}

	g := new(errgroup.Group)
	g.Go(func() error {
		// Quitting the display ends the run.
		defer cancel()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			// Killed by the interrupt context; the run itself is clean.
			return nil
		}
		return err
	})
	g.Go(func() error {
		return simulator.Run(ctx, gen, sink)
	})
	return g.Wait()
}
