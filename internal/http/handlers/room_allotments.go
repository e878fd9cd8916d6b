package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medixpro/medixpro/internal/config"
	"github.com/medixpro/medixpro/internal/domain/room"
	"github.com/medixpro/medixpro/internal/listing"
)

// AllotmentsDefaultLimit is larger than the usual page size: ward views
// load the whole active roster in one request.
const AllotmentsDefaultLimit = 100

type RoomAllotmentsRepository interface {
	List(ctx context.Context, p listing.Params) ([]room.Allotment, int, error)
	Create(ctx context.Context, req room.CreateAllotmentRequest) (room.Allotment, error)
	GetByID(ctx context.Context, id string) (room.Allotment, error)
	Update(ctx context.Context, id string, req room.UpdateAllotmentRequest) (room.Allotment, error)
	Delete(ctx context.Context, id string) error
}

type RoomAllotmentsHandler struct {
	repo RoomAllotmentsRepository
}

func NewRoomAllotmentsHandler(repo RoomAllotmentsRepository) *RoomAllotmentsHandler {
	return &RoomAllotmentsHandler{repo: repo}
}

func (h *RoomAllotmentsHandler) List(ctx *gin.Context) {
	p := listing.Normalize(ctx.Query("page"), ctx.Query("limit"), ctx.Query("search"), AllotmentsDefaultLimit)

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	items, total, err := h.repo.List(cctx, p)

	if err != nil {
		RespondInternal(ctx, "Could not list allotments")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"allotments": items,
		"total":      total,
		"page":       p.Page,
		"limit":      p.Limit,
	})
}

func (h *RoomAllotmentsHandler) Create(ctx *gin.Context) {
	var req room.CreateAllotmentRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	a, err := h.repo.Create(cctx, req)

	if err != nil {
		if errors.Is(err, room.ErrNotFound) {
			RespondNotFound(ctx, "Room not found")
			return
		}
		if errors.Is(err, room.ErrRoomOccupied) {
			RespondConflict(ctx, "Room is already occupied")
			return
		}
		RespondInternal(ctx, "Could not create allotment")
		return
	}

	ctx.JSON(http.StatusCreated, a)
}

func (h *RoomAllotmentsHandler) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	a, err := h.repo.GetByID(cctx, id)

	if err != nil {
		if errors.Is(err, room.ErrAllotmentNotFound) {
			RespondNotFound(ctx, "Allotment not found")
			return
		}
		RespondInternal(ctx, "Could not fetch allotment")
		return
	}

	ctx.JSON(http.StatusOK, a)
}

func (h *RoomAllotmentsHandler) Update(ctx *gin.Context) {
	var req room.UpdateAllotmentRequest

	if !BindJSON(ctx, &req) {
		return
	}

	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	a, err := h.repo.Update(cctx, id, req)

	if err != nil {
		if errors.Is(err, room.ErrAllotmentNotFound) {
			RespondNotFound(ctx, "Allotment not found")
			return
		}
		RespondInternal(ctx, "Could not update allotment")
		return
	}

	ctx.JSON(http.StatusOK, a)
}

func (h *RoomAllotmentsHandler) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	err := h.repo.Delete(cctx, id)

	if err != nil {
		if errors.Is(err, room.ErrAllotmentNotFound) {
			RespondNotFound(ctx, "Allotment not found")
			return
		}
		RespondInternal(ctx, "Could not delete allotment")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Allotment deleted"})
}
