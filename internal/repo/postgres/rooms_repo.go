package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/medixpro/medixpro/internal/domain/room"
	"github.com/medixpro/medixpro/internal/listing"
	"github.com/medixpro/medixpro/internal/observability"
)

var roomSpec = listing.MustSpec(listing.Spec{
	Table: "rooms",
	Columns: []string{
		"id", "room_number", "room_type", "department", "floor", "capacity",
		"status", "created_at", "updated_at",
	},
	SearchColumns: []string{"room_number", "room_type", "department"},
})

type RoomsRepo struct {
	pool *pgxpool.Pool
	obs  *observability.Prom
}

func NewRoomsRepo(pool *pgxpool.Pool, obs *observability.Prom) *RoomsRepo {
	return &RoomsRepo{pool: pool, obs: obs}
}

func scanRoom(row pgx.Row) (room.Room, error) {
	var rm room.Room

	err := row.Scan(
		&rm.ID, &rm.RoomNumber, &rm.RoomType, &rm.Department, &rm.Floor,
		&rm.Capacity, &rm.Status, &rm.CreatedAt, &rm.UpdatedAt,
	)

	return rm, err
}

func (r *RoomsRepo) List(ctx context.Context, params listing.Params) ([]room.Room, int, error) {
	query, args := roomSpec.SelectSQL(params)

	output := make([]room.Room, 0, params.Limit)

	err := r.obs.ObserveDB("rooms.list", func() error {
		rows, err := r.pool.Query(ctx, query, args...)

		if err != nil {
			return err
		}

		defer rows.Close()

		for rows.Next() {
			rm, err := scanRoom(rows)

			if err != nil {
				return err
			}

			output = append(output, rm)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, 0, err
	}

	countQuery, countArgs := roomSpec.CountSQL(params)

	total := 0

	err = r.obs.ObserveDB("rooms.count", func() error {
		return r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	})

	if err != nil {
		return nil, 0, err
	}

	return output, total, nil
}

func (r *RoomsRepo) Create(ctx context.Context, req room.CreateRoomRequest) (room.Room, error) {
	rm := room.NewFromCreateRequest(req)

	err := r.obs.ObserveDB("rooms.create", func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO rooms (id, room_number, room_type, department, floor,
				capacity, status, created_at, updated_at)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
			rm.ID, rm.RoomNumber, rm.RoomType, rm.Department, rm.Floor,
			rm.Capacity, rm.Status, rm.CreatedAt, rm.UpdatedAt,
		)
		return err
	})

	if err != nil {
		return room.Room{}, err
	}

	return rm, nil
}

func (r *RoomsRepo) GetByID(ctx context.Context, id string) (room.Room, error) {
	var rm room.Room

	err := r.obs.ObserveDB("rooms.get_by_id", func() error {
		var err error
		rm, err = scanRoom(r.pool.QueryRow(ctx,
			`SELECT id, room_number, room_type, department, floor, capacity,
				status, created_at, updated_at
			 FROM rooms WHERE id = $1`, id,
		))
		return err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return room.Room{}, room.ErrNotFound
		}

		return room.Room{}, err
	}

	return rm, nil
}

func (r *RoomsRepo) Update(ctx context.Context, id string, req room.UpdateRoomRequest) (room.Room, error) {
	var rm room.Room

	err := r.obs.ObserveDB("rooms.update", func() error {
		var err error
		rm, err = scanRoom(r.pool.QueryRow(ctx,
			`UPDATE rooms
				SET room_number = $2,
					room_type = $3,
					department = $4,
					floor = $5,
					capacity = $6,
					status = $7,
					updated_at = NOW()
			 WHERE id = $1
			 RETURNING id, room_number, room_type, department, floor, capacity,
				status, created_at, updated_at`,
			id, req.RoomNumber, req.RoomType, req.Department, req.Floor,
			req.Capacity, req.Status,
		))
		return err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return room.Room{}, room.ErrNotFound
		}

		return room.Room{}, err
	}

	return rm, nil
}

func (r *RoomsRepo) Delete(ctx context.Context, id string) error {
	var affected int64

	err := r.obs.ObserveDB("rooms.delete", func() error {
		tag, err := r.pool.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
		affected = tag.RowsAffected()
		return err
	})

	if err != nil {
		return err
	}

	if affected == 0 {
		return room.ErrNotFound
	}

	return nil
}
