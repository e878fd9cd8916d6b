package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medixpro/medixpro/internal/config"
	"github.com/medixpro/medixpro/internal/domain/ambulance"
	"github.com/medixpro/medixpro/internal/listing"
)

type AmbulancesRepository interface {
	List(ctx context.Context, p listing.Params) ([]ambulance.Ambulance, int, error)
	Create(ctx context.Context, req ambulance.CreateAmbulanceRequest) (ambulance.Ambulance, error)
	GetByID(ctx context.Context, id string) (ambulance.Ambulance, error)
	Update(ctx context.Context, id string, req ambulance.UpdateAmbulanceRequest) (ambulance.Ambulance, error)
	Delete(ctx context.Context, id string) error
}

type AmbulancesHandler struct {
	repo         AmbulancesRepository
	defaultLimit int
}

func NewAmbulancesHandler(repo AmbulancesRepository, defaultLimit int) *AmbulancesHandler {
	return &AmbulancesHandler{repo: repo, defaultLimit: defaultLimit}
}

func (h *AmbulancesHandler) List(ctx *gin.Context) {
	p := listing.Normalize(ctx.Query("page"), ctx.Query("limit"), ctx.Query("search"), h.defaultLimit)

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	items, total, err := h.repo.List(cctx, p)

	if err != nil {
		RespondInternal(ctx, "Could not list ambulances")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"ambulances": items,
		"total":      total,
		"page":       p.Page,
		"limit":      p.Limit,
	})
}

func (h *AmbulancesHandler) Create(ctx *gin.Context) {
	var req ambulance.CreateAmbulanceRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	a, err := h.repo.Create(cctx, req)

	if err != nil {
		if errors.Is(err, ambulance.ErrRegistrationInUse) {
			RespondConflict(ctx, "Registration number already in use")
			return
		}
		RespondInternal(ctx, "Could not create ambulance")
		return
	}

	ctx.JSON(http.StatusCreated, a)
}

func (h *AmbulancesHandler) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	a, err := h.repo.GetByID(cctx, id)

	if err != nil {
		if errors.Is(err, ambulance.ErrNotFound) {
			RespondNotFound(ctx, "Ambulance not found")
			return
		}
		RespondInternal(ctx, "Could not fetch ambulance")
		return
	}

	ctx.JSON(http.StatusOK, a)
}

func (h *AmbulancesHandler) Update(ctx *gin.Context) {
	var req ambulance.UpdateAmbulanceRequest

	if !BindJSON(ctx, &req) {
		return
	}

	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	a, err := h.repo.Update(cctx, id, req)

	if err != nil {
		if errors.Is(err, ambulance.ErrNotFound) {
			RespondNotFound(ctx, "Ambulance not found")
			return
		}
		if errors.Is(err, ambulance.ErrRegistrationInUse) {
			RespondConflict(ctx, "Registration number already in use")
			return
		}
		RespondInternal(ctx, "Could not update ambulance")
		return
	}

	ctx.JSON(http.StatusOK, a)
}

func (h *AmbulancesHandler) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	err := h.repo.Delete(cctx, id)

	if err != nil {
		if errors.Is(err, ambulance.ErrNotFound) {
			RespondNotFound(ctx, "Ambulance not found")
			return
		}
		RespondInternal(ctx, "Could not delete ambulance")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Ambulance deleted"})
}
