package train

import (
	"context"
	"time"

	"evoview/internal/app/ports"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

const DefaultControl = "train"

// UseCase runs one training generation and surfaces its summary unchanged.
type UseCase struct {
	Provider ports.SimulationProvider
	Journal  ports.TrainingJournal
	Metrics  ports.TrainingMetrics
	Now      func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	control := req.Control
	if control == "" {
		control = DefaultControl
	}

	summary, err := u.Provider.Train(ctx)
	if err != nil {
		err = ports.SimulationError("train", err)
		hlog.CtxErrorf(ctx, "control %s: %v", control, err)
		if u.Metrics != nil {
			u.Metrics.RecordTrainFailure()
		}
		return Response{}, err
	}

	hlog.CtxInfof(ctx, "%s", summary)
	if u.Metrics != nil {
		u.Metrics.RecordTrainSuccess()
	}

	out := Response{
		RunID:      uuid.NewString(),
		Control:    control,
		Summary:    summary,
		RecordedAt: u.now(),
	}
	if u.Journal != nil {
		run := ports.TrainingRun{
			RunID:      out.RunID,
			Summary:    out.Summary,
			Control:    out.Control,
			RecordedAt: out.RecordedAt,
		}
		if err := u.Journal.Append(ctx, run); err != nil {
			hlog.CtxWarnf(ctx, "journal training run %s: %v", out.RunID, err)
		}
	}
	return out, nil
}

// Action adapts Execute to an input binding.
func (u UseCase) Action(ctx context.Context, control string) (string, error) {
	out, err := u.Execute(ctx, Request{Control: control})
	if err != nil {
		return "", err
	}
	return out.Summary, nil
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}
