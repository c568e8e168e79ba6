package gormrepo

import (
	"context"

	"evoview/internal/adapter/repo/gorm/model"
	"evoview/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JournalRepo struct {
	db *gorm.DB
}

func NewJournalRepo(db *gorm.DB) JournalRepo {
	return JournalRepo{db: db}
}

func (r JournalRepo) Append(ctx context.Context, run ports.TrainingRun) error {
	row := model.TrainingRun{
		RunID:      run.RunID,
		Control:    run.Control,
		Summary:    run.Summary,
		RecordedAt: run.RecordedAt,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r JournalRepo) List(ctx context.Context, limit int) ([]ports.TrainingRun, error) {
	rows := []model.TrainingRun{}
	query := r.db.WithContext(ctx).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{
				{Column: clause.Column{Name: "recorded_at"}, Desc: true},
				{Column: clause.Column{Name: "id"}, Desc: true},
			},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}

	out := make([]ports.TrainingRun, 0, len(rows))
	for _, row := range rows {
		out = append(out, ports.TrainingRun{
			RunID:      row.RunID,
			Control:    row.Control,
			Summary:    row.Summary,
			RecordedAt: row.RecordedAt,
		})
	}
	return out, nil
}
