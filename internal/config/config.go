package config

import (
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"evoview/internal/adapter/simulation/demo"
	"evoview/internal/app/render"
)

type Config struct {
	Width          int
	Height         int
	PixelRatio     float64 // 0 means ask the host
	RereadViewport bool
	FailurePolicy  render.FailurePolicy
	FPS            int
	Addr           string

	SimulationURL     string
	SimulationTimeout time.Duration
	Demo              demo.Config

	DBDSN         string
	DBAutoMigrate bool
}

func Default() Config {
	return Config{
		Width:             800,
		Height:            800,
		FailurePolicy:     render.FailureHalt,
		FPS:               60,
		SimulationTimeout: 2 * time.Second,
		Demo:              demo.DefaultConfig(),
		DBAutoMigrate:     true,
	}
}

// FromEnv overlays environment variables on Default. Malformed values fall
// back to the default.
func FromEnv() Config {
	cfg := Default()
	cfg.Width = intEnv("VIEWER_WIDTH", cfg.Width)
	cfg.Height = intEnv("VIEWER_HEIGHT", cfg.Height)
	cfg.PixelRatio = floatEnv("VIEWER_PIXEL_RATIO", cfg.PixelRatio)
	cfg.RereadViewport = boolEnv("VIEWER_REREAD_VIEWPORT", cfg.RereadViewport)
	if p, ok := render.ParseFailurePolicy(strings.ToLower(strings.TrimSpace(os.Getenv("VIEWER_FAILURE_POLICY")))); ok {
		cfg.FailurePolicy = p
	}
	cfg.FPS = intEnv("VIEWER_FPS", cfg.FPS)
	cfg.Addr = strings.TrimSpace(os.Getenv("VIEWER_ADDR"))

	cfg.SimulationURL = strings.TrimSpace(os.Getenv("SIMULATION_URL"))
	cfg.SimulationTimeout = time.Duration(intEnv("SIMULATION_TIMEOUT_MS", int(cfg.SimulationTimeout/time.Millisecond))) * time.Millisecond
	cfg.Demo.Seed = int64(intEnv("DEMO_SEED", int(cfg.Demo.Seed)))
	cfg.Demo.Foods = intEnv("DEMO_FOODS", cfg.Demo.Foods)
	cfg.Demo.Animals = intEnv("DEMO_ANIMALS", cfg.Demo.Animals)

	cfg.DBDSN = strings.TrimSpace(os.Getenv("EVOVIEW_DB_DSN"))
	cfg.DBAutoMigrate = boolEnv("EVOVIEW_DB_AUTOMIGRATE", cfg.DBAutoMigrate)
	return cfg
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func floatEnv(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return fallback
	}
	return f
}

func boolEnv(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
