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

type RoomsRepository interface {
	List(ctx context.Context, p listing.Params) ([]room.Room, int, error)
	Create(ctx context.Context, req room.CreateRoomRequest) (room.Room, error)
	GetByID(ctx context.Context, id string) (room.Room, error)
	Update(ctx context.Context, id string, req room.UpdateRoomRequest) (room.Room, error)
	Delete(ctx context.Context, id string) error
}

type RoomsHandler struct {
	repo         RoomsRepository
	defaultLimit int
}

func NewRoomsHandler(repo RoomsRepository, defaultLimit int) *RoomsHandler {
	return &RoomsHandler{repo: repo, defaultLimit: defaultLimit}
}

func (h *RoomsHandler) List(ctx *gin.Context) {
	p := listing.Normalize(ctx.Query("page"), ctx.Query("limit"), ctx.Query("search"), h.defaultLimit)

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	items, total, err := h.repo.List(cctx, p)

	if err != nil {
		RespondInternal(ctx, "Could not list rooms")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"rooms": items,
		"total": total,
		"page":  p.Page,
		"limit": p.Limit,
	})
}

func (h *RoomsHandler) Create(ctx *gin.Context) {
	var req room.CreateRoomRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	rm, err := h.repo.Create(cctx, req)

	if err != nil {
		RespondInternal(ctx, "Could not create room")
		return
	}

	ctx.JSON(http.StatusCreated, rm)
}

func (h *RoomsHandler) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	rm, err := h.repo.GetByID(cctx, id)

	if err != nil {
		if errors.Is(err, room.ErrNotFound) {
			RespondNotFound(ctx, "Room not found")
			return
		}
		RespondInternal(ctx, "Could not fetch room")
		return
	}

	ctx.JSON(http.StatusOK, rm)
}

func (h *RoomsHandler) Update(ctx *gin.Context) {
	var req room.UpdateRoomRequest

	if !BindJSON(ctx, &req) {
		return
	}

	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	rm, err := h.repo.Update(cctx, id, req)

	if err != nil {
		if errors.Is(err, room.ErrNotFound) {
			RespondNotFound(ctx, "Room not found")
			return
		}
		RespondInternal(ctx, "Could not update room")
		return
	}

	ctx.JSON(http.StatusOK, rm)
}

func (h *RoomsHandler) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	err := h.repo.Delete(cctx, id)

	if err != nil {
		if errors.Is(err, room.ErrNotFound) {
			RespondNotFound(ctx, "Room not found")
			return
		}
		RespondInternal(ctx, "Could not delete room")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Room deleted"})
}
