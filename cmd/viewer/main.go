package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"evoview/internal/adapter/host/desktop"
	httpadapter "evoview/internal/adapter/http"
	metricsinmem "evoview/internal/adapter/metrics/inmemory"
	"evoview/internal/adapter/surface/ebitensurface"
	"evoview/internal/app/history"
	"evoview/internal/app/render"
	"evoview/internal/app/train"
	"evoview/internal/bootstrap"
	"evoview/internal/config"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hajimehoshi/ebiten/v2"
)

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

	ratio := pixelRatio(cfg.PixelRatio, ebiten.Monitor().DeviceScaleFactor())
	surface := ebitensurface.New(float64(cfg.Width), float64(cfg.Height), ratio)
	game := desktop.NewGame(ctx, surface, controls)
	loop := render.NewLoop(render.Deps{
		Provider:  provider,
		Surface:   surface,
		Scheduler: game,
		Metrics:   kpiRecorder,
	}, bootstrap.RenderConfig(cfg))
	game.Attach(loop)

	if cfg.Addr != "" {
		s := server.Default(server.WithHostPorts(cfg.Addr))
		httpadapter.Handler{
			Controls:  controls,
			HistoryUC: history.UseCase{Journal: journal},
			Loop:      loop,
			KPI:       kpiRecorder,
		}.RegisterRoutes(s)
		go func() {
			if err := s.Run(); err != nil {
				hlog.Errorf("control api: %v", err)
			}
		}()
		hlog.Infof("control api listening on %s", cfg.Addr)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("evoview")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("run viewer: %v", err)
	}
}

// pixelRatio prefers a configured ratio over the monitor's scale factor.
func pixelRatio(configured, monitor float64) float64 {
	switch {
	case configured > 0:
		return configured
	case monitor > 0:
		return monitor
	default:
		return 1
	}
}
