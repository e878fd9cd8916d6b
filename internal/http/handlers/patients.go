package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medixpro/medixpro/internal/config"
	"github.com/medixpro/medixpro/internal/domain/patient"
	"github.com/medixpro/medixpro/internal/listing"
)

type PatientsRepository interface {
	List(ctx context.Context, p listing.Params) ([]patient.Patient, int, error)
	Create(ctx context.Context, req patient.CreatePatientRequest) (patient.Patient, error)
	GetByID(ctx context.Context, id string) (patient.Patient, error)
	Update(ctx context.Context, id string, req patient.UpdatePatientRequest) (patient.Patient, error)
	Delete(ctx context.Context, id string) error
}

type PatientsHandler struct {
	repo         PatientsRepository
	defaultLimit int
}

func NewPatientsHandler(repo PatientsRepository, defaultLimit int) *PatientsHandler {
	return &PatientsHandler{repo: repo, defaultLimit: defaultLimit}
}

func (h *PatientsHandler) List(ctx *gin.Context) {
	p := listing.Normalize(ctx.Query("page"), ctx.Query("limit"), ctx.Query("search"), h.defaultLimit)

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	items, total, err := h.repo.List(cctx, p)

	if err != nil {
		RespondInternal(ctx, "Could not list patients")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"patients": items,
		"total":    total,
		"page":     p.Page,
		"limit":    p.Limit,
	})
}

func (h *PatientsHandler) Create(ctx *gin.Context) {
	var req patient.CreatePatientRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	p, err := h.repo.Create(cctx, req)

	if err != nil {
		RespondInternal(ctx, "Could not create patient")
		return
	}

	ctx.JSON(http.StatusCreated, p)
}

func (h *PatientsHandler) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	p, err := h.repo.GetByID(cctx, id)

	if err != nil {
		if errors.Is(err, patient.ErrNotFound) {
			RespondNotFound(ctx, "Patient not found")
			return
		}
		RespondInternal(ctx, "Could not fetch patient")
		return
	}

	ctx.JSON(http.StatusOK, p)
}

func (h *PatientsHandler) Update(ctx *gin.Context) {
	var req patient.UpdatePatientRequest

	if !BindJSON(ctx, &req) {
		return
	}

	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	p, err := h.repo.Update(cctx, id, req)

	if err != nil {
		if errors.Is(err, patient.ErrNotFound) {
			RespondNotFound(ctx, "Patient not found")
			return
		}
		RespondInternal(ctx, "Could not update patient")
		return
	}

	ctx.JSON(http.StatusOK, p)
}

func (h *PatientsHandler) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	err := h.repo.Delete(cctx, id)

	if err != nil {
		if errors.Is(err, patient.ErrNotFound) {
			RespondNotFound(ctx, "Patient not found")
			return
		}
		RespondInternal(ctx, "Could not delete patient")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Patient deleted"})
}
