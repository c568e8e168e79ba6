package config

import (
	"testing"
	"time"

	"evoview/internal/app/render"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"VIEWER_WIDTH", "VIEWER_HEIGHT", "VIEWER_PIXEL_RATIO", "VIEWER_REREAD_VIEWPORT",
		"VIEWER_FAILURE_POLICY", "VIEWER_FPS", "VIEWER_ADDR", "SIMULATION_URL", "SIMULATION_TIMEOUT_MS",
		"DEMO_SEED", "DEMO_FOODS", "DEMO_ANIMALS", "EVOVIEW_DB_DSN", "EVOVIEW_DB_AUTOMIGRATE"} {
		t.Setenv(k, "")
	}
	cfg := FromEnv()
	if cfg.Width != 800 || cfg.Height != 800 || cfg.FPS != 60 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.FailurePolicy != render.FailureHalt || cfg.RereadViewport {
		t.Fatalf("unexpected loop defaults: %+v", cfg)
	}
	if !cfg.DBAutoMigrate {
		t.Fatalf("expected automigrate on by default")
	}
	if cfg.PixelRatio != 0 || cfg.SimulationTimeout != 2*time.Second {
		t.Fatalf("unexpected ratio/timeout: %v %v", cfg.PixelRatio, cfg.SimulationTimeout)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("VIEWER_WIDTH", "1024")
	t.Setenv("VIEWER_HEIGHT", "768")
	t.Setenv("VIEWER_PIXEL_RATIO", "1.5")
	t.Setenv("VIEWER_REREAD_VIEWPORT", "true")
	t.Setenv("VIEWER_FAILURE_POLICY", " Skip ")
	t.Setenv("SIMULATION_URL", " http://sim:9000 ")
	t.Setenv("SIMULATION_TIMEOUT_MS", "250")
	t.Setenv("DEMO_SEED", "99")

	cfg := FromEnv()
	if cfg.Width != 1024 || cfg.Height != 768 || cfg.PixelRatio != 1.5 {
		t.Fatalf("unexpected viewport config: %+v", cfg)
	}
	if !cfg.RereadViewport || cfg.FailurePolicy != render.FailureSkip {
		t.Fatalf("unexpected loop config: %+v", cfg)
	}
	if cfg.SimulationURL != "http://sim:9000" || cfg.SimulationTimeout != 250*time.Millisecond {
		t.Fatalf("unexpected simulation config: %q %v", cfg.SimulationURL, cfg.SimulationTimeout)
	}
	if cfg.Demo.Seed != 99 {
		t.Fatalf("unexpected demo seed %d", cfg.Demo.Seed)
	}
}

func TestFromEnv_MalformedFallsBack(t *testing.T) {
	t.Setenv("VIEWER_WIDTH", "wide")
	t.Setenv("VIEWER_PIXEL_RATIO", "-2")
	t.Setenv("VIEWER_REREAD_VIEWPORT", "maybe")
	t.Setenv("VIEWER_FAILURE_POLICY", "retry")

	cfg := FromEnv()
	if cfg.Width != 800 || cfg.PixelRatio != 0 || cfg.RereadViewport || cfg.FailurePolicy != render.FailureHalt {
		t.Fatalf("expected defaults for malformed input, got %+v", cfg)
	}
}

func TestFromEnv_NonFinitePixelRatioFallsBack(t *testing.T) {
	for _, v := range []string{"Inf", "+Inf", "-Inf", "NaN", "1e400"} {
		t.Setenv("VIEWER_PIXEL_RATIO", v)
		if got := FromEnv().PixelRatio; got != 0 {
			t.Fatalf("VIEWER_PIXEL_RATIO=%s: PixelRatio=%v want 0", v, got)
		}
	}
}

func TestFromEnv_AutoMigrateOff(t *testing.T) {
	t.Setenv("EVOVIEW_DB_AUTOMIGRATE", "false")
	if FromEnv().DBAutoMigrate {
		t.Fatalf("expected automigrate disabled")
	}
}
