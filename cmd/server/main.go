package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	httpadapter "evoview/internal/adapter/http"
	metricsinmem "evoview/internal/adapter/metrics/inmemory"
	"evoview/internal/adapter/scheduler/ticker"
	"evoview/internal/adapter/surface/recording"
	"evoview/internal/app/history"
	"evoview/internal/app/render"
	"evoview/internal/app/train"
	"evoview/internal/bootstrap"
	"evoview/internal/config"
	"evoview/internal/domain/scene"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const defaultAddr = ":8080"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.FromEnv()
	provider, err := bootstrap.BuildProvider(cfg)
	if err != nil {
		log.Fatalf("build provider: %v", err)
	}
	journal, err := bootstrap.BuildJournal(ctx, cfg)
	if err != nil {
		log.Fatalf("build journal: %v (is EVOVIEW_DB_DSN reachable?)", err)
	}
	kpiRecorder := metricsinmem.NewRecorder()

	controls, err := bootstrap.BuildControls(train.UseCase{
		Provider: provider,
		Journal:  journal,
		Metrics:  kpiRecorder,
		Now:      time.Now,
	})
	if err != nil {
		log.Fatalf("bind controls: %v", err)
	}

	surface := recording.NewSurface(float64(cfg.Width), float64(cfg.Height), headlessRatio(cfg))
	scheduler := ticker.New(cfg.FPS)
	loop := render.NewLoop(render.Deps{
		Provider:  provider,
		Surface:   surface,
		Scheduler: scheduler,
		Metrics:   kpiRecorder,
		OnFrame:   func(scene.Frame) { surface.Present() },
	}, bootstrap.RenderConfig(cfg))

	h := httpadapter.Handler{
		Controls:  controls,
		HistoryUC: history.UseCase{Journal: journal},
		Loop:      loop,
		Frames:    surface,
		KPI:       kpiRecorder,
	}

	addr := listenAddr(cfg)
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	go scheduler.Run(ctx)
	if err := loop.Run(ctx); err != nil {
		hlog.Errorf("first frame: %v", err)
	}

	log.Printf("evoview server listening on %s (%dx%d @%.1f, policy=%s)", addr, cfg.Width, cfg.Height, surface.PixelRatio(), cfg.FailurePolicy)
	// Spin returns on SIGINT/SIGTERM, which also stops the ticker via ctx.
	s.Spin()
}

func listenAddr(cfg config.Config) string {
	if cfg.Addr == "" {
		return defaultAddr
	}
	return cfg.Addr
}

// headlessRatio defaults to 1 since there is no display to ask.
func headlessRatio(cfg config.Config) float64 {
	if cfg.PixelRatio <= 0 {
		return 1
	}
	return cfg.PixelRatio
}
