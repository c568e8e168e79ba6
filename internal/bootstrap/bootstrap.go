// Package bootstrap assembles the components shared by the desktop viewer and
// the headless server from a config.Config.
package bootstrap

import (
	"context"
	"fmt"

	gormrepo "evoview/internal/adapter/repo/gorm"
	"evoview/internal/adapter/repo/memory"
	"evoview/internal/adapter/simulation/demo"
	"evoview/internal/adapter/simulation/remote"
	"evoview/internal/adapter/simulation/serial"
	"evoview/internal/app/input"
	"evoview/internal/app/ports"
	"evoview/internal/app/render"
	"evoview/internal/app/train"
	"evoview/internal/config"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// BuildProvider returns the remote simulation when SimulationURL is set and
// the demo provider otherwise. Either way calls are serialized.
func BuildProvider(cfg config.Config) (ports.SimulationProvider, error) {
	if cfg.SimulationURL == "" {
		hlog.Infof("no simulation url configured, using demo provider (seed=%d)", cfg.Demo.Seed)
		return serial.NewProvider(demo.NewProvider(cfg.Demo)), nil
	}
	p, err := remote.NewProvider(remote.Config{BaseURL: cfg.SimulationURL, Timeout: cfg.SimulationTimeout})
	if err != nil {
		return nil, fmt.Errorf("remote provider: %w", err)
	}
	hlog.Infof("using simulation at %s", cfg.SimulationURL)
	return serial.NewProvider(p), nil
}

// BuildJournal opens the postgres journal when DBDSN is set, migrating its
// schema unless DBAutoMigrate is off, and falls back to memory.
func BuildJournal(ctx context.Context, cfg config.Config) (ports.TrainingJournal, error) {
	if cfg.DBDSN == "" {
		return memory.NewJournalRepo(memory.NewStore()), nil
	}
	db, err := gormrepo.OpenPostgres(ctx, cfg.DBDSN)
	if err != nil {
		return nil, err
	}
	if cfg.DBAutoMigrate {
		if err := gormrepo.Migrate(ctx, db); err != nil {
			return nil, err
		}
	}
	return gormrepo.NewJournalRepo(db), nil
}

// BuildControls binds the train control to uc.
func BuildControls(uc train.UseCase) (*input.Controller, error) {
	controls := input.NewController()
	if err := controls.Bind(train.DefaultControl, uc.Action); err != nil {
		return nil, err
	}
	return controls, nil
}

func RenderConfig(cfg config.Config) render.Config {
	rc := render.DefaultConfig()
	rc.FailurePolicy = cfg.FailurePolicy
	rc.RereadViewport = cfg.RereadViewport
	return rc
}
