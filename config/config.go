package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/lvlmaze/agent"
	"github.com/katalvlaran/lvlmaze/builder"
	"github.com/katalvlaran/lvlmaze/criterion"
	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/operator"
	"github.com/katalvlaran/lvlmaze/params"
	"github.com/katalvlaran/lvlmaze/policy"
	"github.com/katalvlaran/lvlmaze/training"
)

// Prefix marks the variables read by this package.
const Prefix = "LVLMAZE_"

// ErrInvalid indicates a value that cannot be turned into a run setting.
var ErrInvalid = errors.New("config: invalid setting")

// Keys and their defaults, without Prefix.
var Keys = map[string]string{
	"ACTION_REWARD":        "-1",
	"END_REWARD":           "10",
	"WAY_COLORS":           "4",
	"WALL_COLORS":          "4",
	"BRIGHTNESS_THRESHOLD": "127.5",
	"BRIGHTNESS_GAP":       "40",
	"GENERATION_SEED":      "1",
	"USAGE_SEED":           "1",
	"CORRIDOR_LENGTH":      "5",
	"ORIENTATION":          "horizontal",
	"LEARNING_RATE":        "0.1",
	"DISCOUNT":             "0.9",
	"INITIAL_Q":            "0",
	"POLICY":               "epsilon-greedy:epsilon=0.1",
	"EPISODE_STOP":         "end-reached;max-actions:500",
	"LEVEL_CHANGE":         "consecutive-optimal:3;episodes:300",
	"OPERATORS":            "resize;new-path;dead-end;change-optimal-path",
	"DELTA":                "6",
	"LEVELS":               "5",
	"RESET_QTABLE":         "false",
	"LEVEL_SEED":           "1",
	"LOG_LEVEL":            "info",
	"MAX_STEPS":            "0",
	"REPORT":               "",
	"VERBOSE":              "false",
	"COLOR":                "true",
}

// Settings is a loaded run.
type Settings struct {
	// Training is validated and ready for training.New.
	Training training.Config
	// LogLevel of the slog handler.
	LogLevel slog.Level
	// MaxSteps caps the run; 0 means no cap.
	MaxSteps int
	// Report is the HTML report path; empty disables it.
	Report string
	// Verbose prints every episode on the console.
	Verbose bool
	// Color enables ANSI colors on the console.
	Color bool
	// Warnings are non-fatal loading problems, such as a missing file.
	Warnings []string
}

// Load reads path (if present) and the environment.
func Load(path string) (*Settings, error) {
	vars := map[string]string{}
	var warnings []string
	if path != "" {
		file, err := godotenv.Read(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			warnings = append(warnings, fmt.Sprintf("%s not found, using environment and defaults", path))
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		for k, v := range file {
			if strings.HasPrefix(k, Prefix) {
				vars[k] = v
			}
		}
	}
	for _, kv := range os.Environ() {
		k, v, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(k, Prefix) {
			vars[k] = v
		}
	}

	s, err := FromMap(vars)
	if err != nil {
		return nil, err
	}
	s.Warnings = append(warnings, s.Warnings...)
	return s, nil
}

// FromMap builds Settings from prefixed variables.
func FromMap(vars map[string]string) (*Settings, error) {
	p := make(params.Params, len(Keys)+len(vars))
	for k, v := range Keys {
		p[k] = v
	}
	for k, v := range vars {
		p[strings.TrimPrefix(k, Prefix)] = v
	}
	r := params.NewReader(p)
	num := func(k string) float64 { return r.Float(k, 0) }
	integer := func(k string) int { return r.Int(k, 0) }
	seed := func(k string) int64 { return r.Int64(k, 0) }
	flag := func(k string) bool { return r.Bool(k, false) }
	str := func(k string) string { return r.Str(k, "") }

	s := &Settings{}
	cfg := training.Config{
		Factory: maze.FactoryConfig{
			ActionReward:        num("ACTION_REWARD"),
			EndReward:           num("END_REWARD"),
			WayColors:           integer("WAY_COLORS"),
			WallColors:          integer("WALL_COLORS"),
			BrightnessThreshold: num("BRIGHTNESS_THRESHOLD"),
			BrightnessGap:       num("BRIGHTNESS_GAP"),
			GenerationSeed:      seed("GENERATION_SEED"),
			UsageSeed:           seed("USAGE_SEED"),
		},
		CorridorLength: integer("CORRIDOR_LENGTH"),
		Agent: agent.Config{
			LearningRate: num("LEARNING_RATE"),
			Discount:     num("DISCOUNT"),
		},
		InitialQ:    num("INITIAL_Q"),
		Delta:       integer("DELTA"),
		Levels:      integer("LEVELS"),
		ResetQTable: flag("RESET_QTABLE"),
		LevelSeed:   seed("LEVEL_SEED"),
	}
	s.MaxSteps = integer("MAX_STEPS")
	s.Report = str("REPORT")
	s.Verbose = flag("VERBOSE")
	s.Color = flag("COLOR")

	known := make([]string, 0, len(Keys))
	for k := range Keys {
		known = append(known, k)
	}
	if err := r.Done(known...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	var err error
	if cfg.Orientation, err = builder.ParseOrientation(str("ORIENTATION")); err != nil {
		return nil, fmt.Errorf("%w: ORIENTATION: %w", ErrInvalid, err)
	}
	if err = s.LogLevel.UnmarshalText([]byte(str("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("%w: LOG_LEVEL: %v", ErrInvalid, err)
	}
	if cfg.Policy, err = policy.Parse(str("POLICY")); err != nil {
		return nil, fmt.Errorf("%w: POLICY: %w", ErrInvalid, err)
	}
	if cfg.EpisodeStop, err = criterion.ParseList(list(str("EPISODE_STOP"))); err != nil {
		return nil, fmt.Errorf("%w: EPISODE_STOP: %w", ErrInvalid, err)
	}
	if cfg.LevelChange, err = criterion.ParseList(list(str("LEVEL_CHANGE"))); err != nil {
		return nil, fmt.Errorf("%w: LEVEL_CHANGE: %w", ErrInvalid, err)
	}
	for _, spec := range list(str("OPERATORS")) {
		op, err := operator.Parse(spec)
		if err != nil {
			return nil, fmt.Errorf("%w: OPERATORS: %w", ErrInvalid, err)
		}
		cfg.Operators = append(cfg.Operators, op)
	}
	if s.MaxSteps < 0 {
		return nil, fmt.Errorf("%w: MAX_STEPS=%d", ErrInvalid, s.MaxSteps)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	s.Training = cfg
	return s, nil
}

// list splits a ';'-separated value, dropping empty items.
func list(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ";") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
