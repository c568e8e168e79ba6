package history

import (
	"context"
	"errors"

	"evoview/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid history request")

const maxLimit = 500

type UseCase struct {
	Journal ports.TrainingJournal
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if req.Limit < 0 || req.Limit > maxLimit {
		return Response{}, ErrInvalidRequest
	}
	if u.Journal == nil {
		return Response{}, ports.ErrNotFound
	}
	limit := req.Limit
	if limit == 0 {
		limit = 50
	}
	runs, err := u.Journal.List(ctx, limit)
	if err != nil {
		return Response{}, err
	}
	return Response{Runs: runs}, nil
}
