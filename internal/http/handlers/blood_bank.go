package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medixpro/medixpro/internal/config"
	"github.com/medixpro/medixpro/internal/domain/blood"
	"github.com/medixpro/medixpro/internal/listing"
)

type BloodUnitsRepository interface {
	List(ctx context.Context, p listing.Params) ([]blood.Unit, int, error)
	Create(ctx context.Context, req blood.CreateUnitRequest) (blood.Unit, error)
	GetByID(ctx context.Context, id string) (blood.Unit, error)
	Update(ctx context.Context, id string, req blood.UpdateUnitRequest) (blood.Unit, error)
	Delete(ctx context.Context, id string) error
}

type BloodBankHandler struct {
	repo         BloodUnitsRepository
	defaultLimit int
}

func NewBloodBankHandler(repo BloodUnitsRepository, defaultLimit int) *BloodBankHandler {
	return &BloodBankHandler{repo: repo, defaultLimit: defaultLimit}
}

func (h *BloodBankHandler) List(ctx *gin.Context) {
	p := listing.Normalize(ctx.Query("page"), ctx.Query("limit"), ctx.Query("search"), h.defaultLimit)

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	items, total, err := h.repo.List(cctx, p)

	if err != nil {
		RespondInternal(ctx, "Could not list blood inventory")
		return
	}

	// the blood bank list is keyed "inventory" rather than "bloodUnits"
	ctx.JSON(http.StatusOK, gin.H{
		"inventory": items,
		"total":     total,
		"page":      p.Page,
		"limit":     p.Limit,
	})
}

func (h *BloodBankHandler) Create(ctx *gin.Context) {
	var req blood.CreateUnitRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	u, err := h.repo.Create(cctx, req)

	if err != nil {
		RespondInternal(ctx, "Could not add blood unit")
		return
	}

	ctx.JSON(http.StatusCreated, u)
}

func (h *BloodBankHandler) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	u, err := h.repo.GetByID(cctx, id)

	if err != nil {
		if errors.Is(err, blood.ErrNotFound) {
			RespondNotFound(ctx, "Blood unit not found")
			return
		}
		RespondInternal(ctx, "Could not fetch blood unit")
		return
	}

	ctx.JSON(http.StatusOK, u)
}

func (h *BloodBankHandler) Update(ctx *gin.Context) {
	var req blood.UpdateUnitRequest

	if !BindJSON(ctx, &req) {
		return
	}

	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	u, err := h.repo.Update(cctx, id, req)

	if err != nil {
		if errors.Is(err, blood.ErrNotFound) {
			RespondNotFound(ctx, "Blood unit not found")
			return
		}
		RespondInternal(ctx, "Could not update blood unit")
		return
	}

	ctx.JSON(http.StatusOK, u)
}

func (h *BloodBankHandler) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	err := h.repo.Delete(cctx, id)

	if err != nil {
		if errors.Is(err, blood.ErrNotFound) {
			RespondNotFound(ctx, "Blood unit not found")
			return
		}
		RespondInternal(ctx, "Could not delete blood unit")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Blood unit deleted"})
}
