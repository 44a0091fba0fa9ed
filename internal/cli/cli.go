// Package cli wires configuration, packet input and report output into
// the ftracker command.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/caarlos0/env/v11"

	"ftracker/internal/packet"
	"ftracker/internal/report"
	"ftracker/internal/workout"
)

// Exit codes returned by Run.
const (
	ExitSuccess        = 0
	ExitPacketsSkipped = 1
	ExitError          = 2
)

// Config controls a single run. Environment variables fill the defaults;
// command-line flags override them.
type Config struct {
	PacketsFile string `env:"FTRACKER_PACKETS_FILE"`
	Output      string `env:"FTRACKER_OUTPUT" envDefault:"text"`
	Verbose     bool   `env:"FTRACKER_VERBOSE"`
}

// ParseConfig parses the environment and then the command line into a
// Config. Flag defaults come from the environment, so flags win.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.PacketsFile, "packets", cfg.PacketsFile,
		"packets file (.yaml, .json or .csv); empty runs the built-in demo packets")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "output format: text, json")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug output")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// demoPackets returns the fixed packet set processed when no file is
// given, one packet per supported workout type.
func demoPackets() []packet.Packet {
	return []packet.Packet{
		{WorkoutType: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{WorkoutType: "RUN", Data: []float64{15000, 1, 75}},
		{WorkoutType: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
}

// Run executes one pass over the configured packets and writes reports
// to stdout in input order, one line per packet in text mode or a single
// document in JSON mode. Diagnostics go to stderr only.
//
// A packet that fails to dispatch or compute is logged and skipped, and
// the remaining packets are still processed; the exit code reports
// whether any were skipped. Unusable configuration or an unreadable
// packets file is fatal.
func Run(cfg Config, stdout, stderr io.Writer) int {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if cfg.Output != "text" && cfg.Output != "json" {
		logger.Error("output must be 'text' or 'json'", "output", cfg.Output)
		return ExitError
	}

	packets := demoPackets()
	if cfg.PacketsFile != "" {
		var err error
		if packets, err = packet.LoadFile(cfg.PacketsFile); err != nil {
			logger.Error("loading packets", "error", err)
			return ExitError
		}
	}
	logger.Debug("processing packets", "count", len(packets), "output", cfg.Output)

	reports := make([]workout.Report, 0, len(packets))
	skipped := 0
	for i, p := range packets {
		rec, err := p.Record()
		if err != nil {
			logger.Error("skipping packet", "packet", i, "workout_type", p.WorkoutType, "error", err)
			skipped++
			continue
		}

		rep, err := workout.Compute(rec)
		if err != nil {
			logger.Error("skipping packet", "packet", i, "workout_type", p.WorkoutType, "error", err)
			skipped++
			continue
		}

		logger.Debug("packet computed",
			"packet", i, "workout_type", p.WorkoutType,
			"distance_km", rep.Distance, "calories_kcal", rep.Calories)
		reports = append(reports, rep)
	}

	var err error
	if cfg.Output == "json" {
		err = report.WriteJSON(stdout, reports)
	} else {
		err = report.WriteText(stdout, reports)
	}
	if err != nil {
		logger.Error("writing reports", "error", err)
		return ExitError
	}

	if skipped > 0 {
		logger.Warn("run finished with skipped packets", "skipped", skipped, "reported", len(reports))
		return ExitPacketsSkipped
	}
	return ExitSuccess
}
