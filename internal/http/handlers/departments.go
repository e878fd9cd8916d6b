package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medixpro/medixpro/internal/config"
	"github.com/medixpro/medixpro/internal/domain/department"
	"github.com/medixpro/medixpro/internal/listing"
)

type DepartmentsRepository interface {
	List(ctx context.Context, p listing.Params) ([]department.Department, int, error)
	Create(ctx context.Context, req department.CreateDepartmentRequest) (department.Department, error)
	GetByID(ctx context.Context, id string) (department.Department, error)
	Update(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.Department, error)
	Delete(ctx context.Context, id string) error
}

type DepartmentsHandler struct {
	repo         DepartmentsRepository
	defaultLimit int
}

func NewDepartmentsHandler(repo DepartmentsRepository, defaultLimit int) *DepartmentsHandler {
	return &DepartmentsHandler{repo: repo, defaultLimit: defaultLimit}
}

func (h *DepartmentsHandler) List(ctx *gin.Context) {
	p := listing.Normalize(ctx.Query("page"), ctx.Query("limit"), ctx.Query("search"), h.defaultLimit)

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	items, total, err := h.repo.List(cctx, p)

	if err != nil {
		RespondInternal(ctx, "Could not list departments")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"departments": items,
		"total":       total,
		"page":        p.Page,
		"limit":       p.Limit,
	})
}

func (h *DepartmentsHandler) Create(ctx *gin.Context) {
	var req department.CreateDepartmentRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	d, err := h.repo.Create(cctx, req)

	if err != nil {
		RespondInternal(ctx, "Could not create department")
		return
	}

	ctx.JSON(http.StatusCreated, d)
}

func (h *DepartmentsHandler) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	d, err := h.repo.GetByID(cctx, id)

	if err != nil {
		if errors.Is(err, department.ErrNotFound) {
			RespondNotFound(ctx, "Department not found")
			return
		}
		RespondInternal(ctx, "Could not fetch department")
		return
	}

	ctx.JSON(http.StatusOK, d)
}

func (h *DepartmentsHandler) Update(ctx *gin.Context) {
	var req department.UpdateDepartmentRequest

	if !BindJSON(ctx, &req) {
		return
	}

	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	d, err := h.repo.Update(cctx, id, req)

	if err != nil {
		if errors.Is(err, department.ErrNotFound) {
			RespondNotFound(ctx, "Department not found")
			return
		}
		RespondInternal(ctx, "Could not update department")
		return
	}

	ctx.JSON(http.StatusOK, d)
}

func (h *DepartmentsHandler) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	err := h.repo.Delete(cctx, id)

	if err != nil {
		if errors.Is(err, department.ErrNotFound) {
			RespondNotFound(ctx, "Department not found")
			return
		}
		RespondInternal(ctx, "Could not delete department")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Department deleted"})
}
