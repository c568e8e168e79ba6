package gormrepo

import (
	"context"
	"fmt"

	"evoview/internal/adapter/repo/gorm/model"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gorm.io/gorm"
)

// journalModels are the tables owned by the training journal.
var journalModels = []any{&model.TrainingRun{}}

// Migrate creates or updates the journal tables, indexes included, from the
// generated models.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(journalModels...); err != nil {
		return fmt.Errorf("migrate journal: %w", err)
	}
	hlog.CtxInfof(ctx, "journal schema up to date (%s)", model.TableNameTrainingRun)
	return nil
}
