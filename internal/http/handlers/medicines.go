package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medixpro/medixpro/internal/config"
	"github.com/medixpro/medixpro/internal/domain/medicine"
	"github.com/medixpro/medixpro/internal/jobs"
	"github.com/medixpro/medixpro/internal/listing"
)

type MedicinesRepository interface {
	List(ctx context.Context, p listing.Params) ([]medicine.Medicine, int, error)
	Create(ctx context.Context, req medicine.CreateMedicineRequest) (medicine.Medicine, error)
	GetByID(ctx context.Context, id string) (medicine.Medicine, error)
	Update(ctx context.Context, id string, req medicine.UpdateMedicineRequest) (medicine.Medicine, error)
	Delete(ctx context.Context, id string) error
}

type MedicinesHandler struct {
	repo         MedicinesRepository
	queue        JobEnqueuer
	defaultLimit int
}

func NewMedicinesHandler(repo MedicinesRepository, queue JobEnqueuer, defaultLimit int) *MedicinesHandler {
	return &MedicinesHandler{repo: repo, queue: queue, defaultLimit: defaultLimit}
}

func (h *MedicinesHandler) List(ctx *gin.Context) {
	p := listing.Normalize(ctx.Query("page"), ctx.Query("limit"), ctx.Query("search"), h.defaultLimit)

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	items, total, err := h.repo.List(cctx, p)

	if err != nil {
		RespondInternal(ctx, "Could not list medicines")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"medicines": items,
		"total":     total,
		"page":      p.Page,
		"limit":     p.Limit,
	})
}

func (h *MedicinesHandler) Create(ctx *gin.Context) {
	var req medicine.CreateMedicineRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	m, err := h.repo.Create(cctx, req)

	if err != nil {
		RespondInternal(ctx, "Could not create medicine")
		return
	}

	h.maybeAlertLowStock(ctx, m)

	ctx.JSON(http.StatusCreated, m)
}

func (h *MedicinesHandler) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	m, err := h.repo.GetByID(cctx, id)

	if err != nil {
		if errors.Is(err, medicine.ErrNotFound) {
			RespondNotFound(ctx, "Medicine not found")
			return
		}
		RespondInternal(ctx, "Could not fetch medicine")
		return
	}

	ctx.JSON(http.StatusOK, m)
}

func (h *MedicinesHandler) Update(ctx *gin.Context) {
	var req medicine.UpdateMedicineRequest

	if !BindJSON(ctx, &req) {
		return
	}

	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	m, err := h.repo.Update(cctx, id, req)

	if err != nil {
		if errors.Is(err, medicine.ErrNotFound) {
			RespondNotFound(ctx, "Medicine not found")
			return
		}
		RespondInternal(ctx, "Could not update medicine")
		return
	}

	h.maybeAlertLowStock(ctx, m)

	ctx.JSON(http.StatusOK, m)
}

func (h *MedicinesHandler) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	err := h.repo.Delete(cctx, id)

	if err != nil {
		if errors.Is(err, medicine.ErrNotFound) {
			RespondNotFound(ctx, "Medicine not found")
			return
		}
		RespondInternal(ctx, "Could not delete medicine")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Medicine deleted"})
}

// maybeAlertLowStock enqueues a pharmacy alert when stock sits at or below
// the reorder level. Best effort: the write already succeeded.
func (h *MedicinesHandler) maybeAlertLowStock(ctx *gin.Context, m medicine.Medicine) {
	if h.queue == nil || m.Stock > medicine.ReorderLevel {
		return
	}

	payload, err := jobs.EncodePayload(jobs.JobMedicineLowStock, jobs.MedicineLowStockPayload{
		MedicineID: m.ID,
		Name:       m.Name,
		Stock:      m.Stock,
		RequestID:  ctx.GetString("request_id"),
	})

	if err != nil {
		slog.Default().Error("encode low stock payload", "error", err)
		return
	}

	j, err := jobs.NewJob(jobs.JobMedicineLowStock, payload)

	if err != nil {
		slog.Default().Error("build low stock job", "error", err)
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	if err := h.queue.Enqueue(cctx, j); err != nil {
		slog.Default().Error("enqueue low stock job", "medicine_id", m.ID, "error", err)
	}
}
