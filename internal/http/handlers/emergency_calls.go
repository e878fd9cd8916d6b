package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medixpro/medixpro/internal/config"
	"github.com/medixpro/medixpro/internal/domain/emergency"
	"github.com/medixpro/medixpro/internal/jobs"
	"github.com/medixpro/medixpro/internal/listing"
)

type EmergencyCallsRepository interface {
	List(ctx context.Context, p listing.Params) ([]emergency.Call, int, error)
	Create(ctx context.Context, req emergency.CreateCallRequest) (emergency.Call, error)
	GetByID(ctx context.Context, id string) (emergency.Call, error)
	Update(ctx context.Context, id string, req emergency.UpdateCallRequest) (emergency.Call, error)
	UpdateStatus(ctx context.Context, id string, req emergency.UpdateStatusRequest) (emergency.Call, error)
	Delete(ctx context.Context, id string) error
}

type EmergencyCallsHandler struct {
	repo         EmergencyCallsRepository
	queue        JobEnqueuer
	defaultLimit int
}

func NewEmergencyCallsHandler(repo EmergencyCallsRepository, queue JobEnqueuer, defaultLimit int) *EmergencyCallsHandler {
	return &EmergencyCallsHandler{repo: repo, queue: queue, defaultLimit: defaultLimit}
}

func (h *EmergencyCallsHandler) List(ctx *gin.Context) {
	p := listing.Normalize(ctx.Query("page"), ctx.Query("limit"), ctx.Query("search"), h.defaultLimit)

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	items, total, err := h.repo.List(cctx, p)

	if err != nil {
		RespondInternal(ctx, "Could not list emergency calls")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"emergencyCalls": items,
		"total":          total,
		"page":           p.Page,
		"limit":          p.Limit,
	})
}

func (h *EmergencyCallsHandler) Create(ctx *gin.Context) {
	var req emergency.CreateCallRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	c, err := h.repo.Create(cctx, req)

	if err != nil {
		RespondInternal(ctx, "Could not create emergency call")
		return
	}

	h.enqueueDispatch(ctx, c)

	ctx.JSON(http.StatusCreated, c)
}

func (h *EmergencyCallsHandler) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	c, err := h.repo.GetByID(cctx, id)

	if err != nil {
		if errors.Is(err, emergency.ErrNotFound) {
			RespondNotFound(ctx, "Emergency call not found")
			return
		}
		RespondInternal(ctx, "Could not fetch emergency call")
		return
	}

	ctx.JSON(http.StatusOK, c)
}

func (h *EmergencyCallsHandler) Update(ctx *gin.Context) {
	var req emergency.UpdateCallRequest

	if !BindJSON(ctx, &req) {
		return
	}

	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	c, err := h.repo.Update(cctx, id, req)

	if err != nil {
		if errors.Is(err, emergency.ErrNotFound) {
			RespondNotFound(ctx, "Emergency call not found")
			return
		}
		RespondInternal(ctx, "Could not update emergency call")
		return
	}

	ctx.JSON(http.StatusOK, c)
}

// UpdateStatus handles the dispatch-desk PATCH: status transition plus
// optional ambulance assignment.
func (h *EmergencyCallsHandler) UpdateStatus(ctx *gin.Context) {
	var req emergency.UpdateStatusRequest

	if !BindJSON(ctx, &req) {
		return
	}

	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	c, err := h.repo.UpdateStatus(cctx, id, req)

	if err != nil {
		if errors.Is(err, emergency.ErrNotFound) {
			RespondNotFound(ctx, "Emergency call not found")
			return
		}
		RespondInternal(ctx, "Could not update emergency call status")
		return
	}

	ctx.JSON(http.StatusOK, c)
}

func (h *EmergencyCallsHandler) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	err := h.repo.Delete(cctx, id)

	if err != nil {
		if errors.Is(err, emergency.ErrNotFound) {
			RespondNotFound(ctx, "Emergency call not found")
			return
		}
		RespondInternal(ctx, "Could not delete emergency call")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Emergency call deleted"})
}

// enqueueDispatch alerts the dispatch desk asynchronously. The call row is
// already committed, so enqueue failures only log.
func (h *EmergencyCallsHandler) enqueueDispatch(ctx *gin.Context, c emergency.Call) {
	if h.queue == nil {
		return
	}

	payload, err := jobs.EncodePayload(jobs.JobDispatchEmergencyCall, jobs.DispatchEmergencyCallPayload{
		CallID:        c.ID,
		PatientName:   c.PatientName,
		Location:      c.Location,
		EmergencyType: c.EmergencyType,
		Priority:      c.Priority,
		RequestID:     ctx.GetString("request_id"),
	})

	if err != nil {
		slog.Default().Error("encode dispatch payload", "error", err)
		return
	}

	j, err := jobs.NewJob(jobs.JobDispatchEmergencyCall, payload)

	if err != nil {
		slog.Default().Error("build dispatch job", "error", err)
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	if err := h.queue.Enqueue(cctx, j); err != nil {
		slog.Default().Error("enqueue dispatch job", "call_id", c.ID, "error", err)
	}
}
