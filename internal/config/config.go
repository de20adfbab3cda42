package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/AssassinTK/readlog-ai-tracker/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envDataPath     = "READLOG_DATA"
	envCategories   = "READLOG_CATEGORIES"
	envParticles    = "READLOG_PARTICLES"
	envFocal        = "READLOG_FOCAL"
	envMaxDepth     = "READLOG_MAX_DEPTH"
	envTransitionMS = "READLOG_TRANSITION_MS"
	envWarp         = "READLOG_WARP"
	envSpacing      = "READLOG_SPACING"
	envNear         = "READLOG_NEAR"
	envFar          = "READLOG_FAR"
	envFPS          = "READLOG_FPS"
	envOpenAIKey    = "OPENAI_API_KEY"
	envOpenAIModel  = "READLOG_OPENAI_MODEL"
	envTrace        = "READLOG_TRACE"
	envLogFile      = "READLOG_LOG_FILE"
)

const defaultCategories = "Fiction,Non-Fiction,Sci-Fi,Fantasy,History"

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("readlog", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	data := fs.String("data", envOrDefault(env, envDataPath, "readlog.db"), "path to the reading-log database")
	categories := fs.String("categories", envOrDefault(env, envCategories, defaultCategories), "comma-separated default shelf categories")
	particles := fs.Int("particles", envOrInt(env, envParticles, 150), "number of background particles")
	focal := fs.Float64("focal", envOrFloat(env, envFocal, 300), "projection focal length")
	maxDepth := fs.Float64("max-depth", envOrFloat(env, envMaxDepth, 2000), "particle far plane depth")
	transitionMS := fs.Int("transition-ms", envOrInt(env, envTransitionMS, 900), "warp transition duration in milliseconds")
	warp := fs.Float64("warp", envOrFloat(env, envWarp, 12), "particle speed multiplier during warp")
	spacing := fs.Int("spacing", envOrInt(env, envSpacing, 2), "vertical rows between stacked shelves")
	near := fs.Int("near", envOrInt(env, envNear, 4), "panel reveal threshold in columns")
	far := fs.Int("far", envOrInt(env, envFar, 12), "panel hide threshold in columns")
	fps := fs.Int("fps", envOrInt(env, envFPS, 30), "particle field frame rate")
	openAIModel := fs.String("openai-model", envOrDefault(env, envOpenAIModel, "gpt-4o-mini"), "OpenAI model used for quiz generation")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			DataPath:       *data,
			Categories:     splitCategories(*categories),
			ParticleCount:  *particles,
			Focal:          *focal,
			MaxDepth:       *maxDepth,
			TransitionMS:   *transitionMS,
			WarpMultiplier: *warp,
			LayerSpacing:   *spacing,
			ProximityNear:  *near,
			ProximityFar:   *far,
			FPS:            *fps,
			OpenAIKey:      envOrDefault(env, envOpenAIKey, ""),
			OpenAIModel:    *openAIModel,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"data":         *data,
			"categories":   *categories,
			"particles":    strconv.Itoa(*particles),
			"focal":        strconv.FormatFloat(*focal, 'f', -1, 64),
			"maxDepth":     strconv.FormatFloat(*maxDepth, 'f', -1, 64),
			"transitionMs": strconv.Itoa(*transitionMS),
			"warp":         strconv.FormatFloat(*warp, 'f', -1, 64),
			"spacing":      strconv.Itoa(*spacing),
			"near":         strconv.Itoa(*near),
			"far":          strconv.Itoa(*far),
			"fps":          strconv.Itoa(*fps),
			"trace":        strconv.FormatBool(*trace),
			"logFile":      *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func splitCategories(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrFloat(env map[string]string, key string, fallback float64) float64 {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.DataPath) == "" {
		return fmt.Errorf("data path must not be empty")
	}
	if cfg.App.ParticleCount < 0 {
		return fmt.Errorf("particles must be >= 0 (got %d)", cfg.App.ParticleCount)
	}
	if cfg.App.TransitionMS < 0 {
		return fmt.Errorf("transition-ms must be >= 0 (got %d)", cfg.App.TransitionMS)
	}
	if cfg.App.FPS <= 0 {
		return fmt.Errorf("fps must be > 0 (got %d)", cfg.App.FPS)
	}
	return nil
}
