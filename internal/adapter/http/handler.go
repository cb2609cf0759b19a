package httpadapter

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/app/dose"
	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/app/ports"
	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/app/status"
	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/app/tick"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	TickUC   tick.UseCase
	StatusUC status.UseCase
	DoseUC   dose.UseCase
	KPI      kpiSnapshotProvider

	AllowOrigin string
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware(h.AllowOrigin))

	api := s.Group("/api")
	api.GET("/environment", h.environment)
	api.POST("/tick", h.tick)
	api.POST("/dose", h.dose)

	s.GET("/ops/kpi", h.kpi)
	s.GET("/healthz", h.health)
}

type tickRequest struct {
	Count int `json:"count"`
}

type doseRequest struct {
	Actions map[string]float64 `json:"actions"`
}

func (h Handler) environment(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StatusUC.Execute(c, status.Request{})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) tick(c context.Context, ctx *app.RequestContext) {
	var body tickRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.TickUC.Execute(c, tick.Request{Count: body.Count})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) dose(c context.Context, ctx *app.RequestContext) {
	var body doseRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.DoseUC.Execute(c, dose.Request{Actions: body.Actions})
	if err != nil {
		writeError(ctx, err)
		return
	}
	if len(resp.Ignored) > 0 {
		hlog.CtxWarnf(c, "dose ignored unknown actions: %v", resp.Ignored)
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func (h Handler) health(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]string{"status": "ok"})
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, tick.ErrInvalidRequest),
		errors.Is(err, dose.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		hlog.Errorf("unhandled error: %v", err)
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
