package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medixpro/medixpro/internal/config"
	"github.com/medixpro/medixpro/internal/domain/staff"
	"github.com/medixpro/medixpro/internal/listing"
)

type StaffRepository interface {
	List(ctx context.Context, p listing.Params) ([]staff.Staff, int, error)
	Create(ctx context.Context, req staff.CreateStaffRequest) (staff.Staff, error)
	GetByID(ctx context.Context, id string) (staff.Staff, error)
	Update(ctx context.Context, id string, req staff.UpdateStaffRequest) (staff.Staff, error)
	Delete(ctx context.Context, id string) error
}

type StaffHandler struct {
	repo         StaffRepository
	defaultLimit int
}

func NewStaffHandler(repo StaffRepository, defaultLimit int) *StaffHandler {
	return &StaffHandler{repo: repo, defaultLimit: defaultLimit}
}

func (h *StaffHandler) List(ctx *gin.Context) {
	p := listing.Normalize(ctx.Query("page"), ctx.Query("limit"), ctx.Query("search"), h.defaultLimit)

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	items, total, err := h.repo.List(cctx, p)

	if err != nil {
		RespondInternal(ctx, "Could not list staff")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"staff": items,
		"total": total,
		"page":  p.Page,
		"limit": p.Limit,
	})
}

func (h *StaffHandler) Create(ctx *gin.Context) {
	var req staff.CreateStaffRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	s, err := h.repo.Create(cctx, req)

	if err != nil {
		if errors.Is(err, staff.ErrEmailInUse) {
			RespondConflict(ctx, "Staff email already in use")
			return
		}
		RespondInternal(ctx, "Could not create staff member")
		return
	}

	ctx.JSON(http.StatusCreated, s)
}

func (h *StaffHandler) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	s, err := h.repo.GetByID(cctx, id)

	if err != nil {
		if errors.Is(err, staff.ErrNotFound) {
			RespondNotFound(ctx, "Staff member not found")
			return
		}
		RespondInternal(ctx, "Could not fetch staff member")
		return
	}

	ctx.JSON(http.StatusOK, s)
}

func (h *StaffHandler) Update(ctx *gin.Context) {
	var req staff.UpdateStaffRequest

	if !BindJSON(ctx, &req) {
		return
	}

	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	s, err := h.repo.Update(cctx, id, req)

	if err != nil {
		if errors.Is(err, staff.ErrNotFound) {
			RespondNotFound(ctx, "Staff member not found")
			return
		}
		if errors.Is(err, staff.ErrEmailInUse) {
			RespondConflict(ctx, "Staff email already in use")
			return
		}
		RespondInternal(ctx, "Could not update staff member")
		return
	}

	ctx.JSON(http.StatusOK, s)
}

func (h *StaffHandler) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	err := h.repo.Delete(cctx, id)

	if err != nil {
		if errors.Is(err, staff.ErrNotFound) {
			RespondNotFound(ctx, "Staff member not found")
			return
		}
		RespondInternal(ctx, "Could not delete staff member")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Staff member deleted"})
}
