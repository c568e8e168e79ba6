package httpadapter

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"evoview/internal/adapter/surface/recording"
	"evoview/internal/app/history"
	"evoview/internal/app/input"
	"evoview/internal/app/ports"
	"evoview/internal/app/render"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	Controls  *input.Controller
	HistoryUC history.UseCase
	Loop      loopStatusProvider
	Frames    frameProvider
	KPI       kpiSnapshotProvider
}

type loopStatusProvider interface {
	Status() render.Status
}

type frameProvider interface {
	Frame() recording.Frame
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api")
	api.GET("/controls", h.listControls)
	api.POST("/controls/:id", h.triggerControl)
	api.GET("/training/history", h.trainingHistory)
	api.GET("/render/status", h.renderStatus)
	api.GET("/render/frame", h.renderFrame)
	api.GET("/render/frame.svg", h.renderFrameSVG)

	s.GET("/ops/kpi", h.kpi)
}

type controlResponse struct {
	Control string `json:"control"`
	Output  string `json:"output"`
}

type trainingRunResponse struct {
	RunID      string `json:"run_id"`
	Control    string `json:"control"`
	Summary    string `json:"summary"`
	RecordedAt int64  `json:"recorded_at"`
}

func (h Handler) listControls(_ context.Context, ctx *app.RequestContext) {
	if h.Controls == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "controls not configured")
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"controls": h.Controls.Controls()})
}

func (h Handler) triggerControl(c context.Context, ctx *app.RequestContext) {
	if h.Controls == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "controls not configured")
		return
	}
	id := strings.TrimSpace(ctx.Param("id"))
	if id == "" {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_control", "invalid control id")
		return
	}
	out, err := h.Controls.Trigger(c, id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, controlResponse{Control: id, Output: out})
}

func (h Handler) trainingHistory(c context.Context, ctx *app.RequestContext) {
	limit := 0
	if raw := strings.TrimSpace(string(ctx.Query("limit"))); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "limit must be an integer")
			return
		}
		limit = n
	}
	resp, err := h.HistoryUC.Execute(c, history.Request{Limit: limit})
	if err != nil {
		writeError(ctx, err)
		return
	}
	runs := make([]trainingRunResponse, 0, len(resp.Runs))
	for _, r := range resp.Runs {
		runs = append(runs, trainingRunResponse{
			RunID:      r.RunID,
			Control:    r.Control,
			Summary:    r.Summary,
			RecordedAt: r.RecordedAt.Unix(),
		})
	}
	ctx.JSON(consts.StatusOK, map[string]any{"runs": runs})
}

func (h Handler) renderStatus(_ context.Context, ctx *app.RequestContext) {
	if h.Loop == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "render loop not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.Loop.Status())
}

func (h Handler) renderFrame(_ context.Context, ctx *app.RequestContext) {
	if h.Frames == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "frame source not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.Frames.Frame())
}

func (h Handler) renderFrameSVG(_ context.Context, ctx *app.RequestContext) {
	if h.Frames == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "frame source not configured")
		return
	}
	ctx.Data(http.StatusOK, "image/svg+xml", h.Frames.Frame().SVG())
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, input.ErrUnknownControl):
		writeErrorBody(ctx, consts.StatusNotFound, "unknown_control", err.Error())
	case errors.Is(err, history.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrSimulation):
		writeErrorBody(ctx, consts.StatusBadGateway, "simulation_error", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
