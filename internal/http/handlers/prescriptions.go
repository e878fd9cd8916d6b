package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medixpro/medixpro/internal/config"
	"github.com/medixpro/medixpro/internal/domain/prescription"
	"github.com/medixpro/medixpro/internal/listing"
)

type PrescriptionsRepository interface {
	List(ctx context.Context, p listing.Params) ([]prescription.Prescription, int, error)
	Create(ctx context.Context, req prescription.CreatePrescriptionRequest) (prescription.Prescription, error)
	GetByID(ctx context.Context, id string) (prescription.Prescription, error)
	Update(ctx context.Context, id string, req prescription.UpdatePrescriptionRequest) (prescription.Prescription, error)
	Delete(ctx context.Context, id string) error
}

type PrescriptionsHandler struct {
	repo         PrescriptionsRepository
	defaultLimit int
}

func NewPrescriptionsHandler(repo PrescriptionsRepository, defaultLimit int) *PrescriptionsHandler {
	return &PrescriptionsHandler{repo: repo, defaultLimit: defaultLimit}
}

func (h *PrescriptionsHandler) List(ctx *gin.Context) {
	p := listing.Normalize(ctx.Query("page"), ctx.Query("limit"), ctx.Query("search"), h.defaultLimit)

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	items, total, err := h.repo.List(cctx, p)

	if err != nil {
		RespondInternal(ctx, "Could not list prescriptions")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"prescriptions": items,
		"total":         total,
		"page":          p.Page,
		"limit":         p.Limit,
	})
}

func (h *PrescriptionsHandler) Create(ctx *gin.Context) {
	var req prescription.CreatePrescriptionRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	p, err := h.repo.Create(cctx, req)

	if err != nil {
		RespondInternal(ctx, "Could not create prescription")
		return
	}

	ctx.JSON(http.StatusCreated, p)
}

func (h *PrescriptionsHandler) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	p, err := h.repo.GetByID(cctx, id)

	if err != nil {
		if errors.Is(err, prescription.ErrNotFound) {
			RespondNotFound(ctx, "Prescription not found")
			return
		}
		RespondInternal(ctx, "Could not fetch prescription")
		return
	}

	ctx.JSON(http.StatusOK, p)
}

func (h *PrescriptionsHandler) Update(ctx *gin.Context) {
	var req prescription.UpdatePrescriptionRequest

	if !BindJSON(ctx, &req) {
		return
	}

	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	p, err := h.repo.Update(cctx, id, req)

	if err != nil {
		if errors.Is(err, prescription.ErrNotFound) {
			RespondNotFound(ctx, "Prescription not found")
			return
		}
		RespondInternal(ctx, "Could not update prescription")
		return
	}

	ctx.JSON(http.StatusOK, p)
}

func (h *PrescriptionsHandler) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	err := h.repo.Delete(cctx, id)

	if err != nil {
		if errors.Is(err, prescription.ErrNotFound) {
			RespondNotFound(ctx, "Prescription not found")
			return
		}
		RespondInternal(ctx, "Could not delete prescription")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Prescription deleted"})
}
