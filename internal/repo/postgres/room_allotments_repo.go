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

var roomAllotmentSpec = listing.MustSpec(listing.Spec{
	Table: "room_allotments",
	Columns: []string{
		"id", "room_id", "patient_id", "patient_name", "attending_doctor",
		"allotment_date", "expected_discharge_date", "discharge_date",
		"status", "notes", "created_at", "updated_at",
	},
	SearchColumns: []string{"patient_name", "attending_doctor", "status"},
})

type RoomAllotmentsRepo struct {
	pool *pgxpool.Pool
	obs  *observability.Prom
}

func NewRoomAllotmentsRepo(pool *pgxpool.Pool, obs *observability.Prom) *RoomAllotmentsRepo {
	return &RoomAllotmentsRepo{pool: pool, obs: obs}
}

func scanAllotment(row pgx.Row) (room.Allotment, error) {
	var a room.Allotment

	err := row.Scan(
		&a.ID, &a.RoomID, &a.PatientID, &a.PatientName, &a.AttendingDoctor,
		&a.AllotmentDate, &a.ExpectedDischargeDate, &a.DischargeDate,
		&a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)

	return a, err
}

func (r *RoomAllotmentsRepo) List(ctx context.Context, params listing.Params) ([]room.Allotment, int, error) {
	query, args := roomAllotmentSpec.SelectSQL(params)

	output := make([]room.Allotment, 0, params.Limit)

	err := r.obs.ObserveDB("room_allotments.list", func() error {
		rows, err := r.pool.Query(ctx, query, args...)

		if err != nil {
			return err
		}

		defer rows.Close()

		for rows.Next() {
			a, err := scanAllotment(rows)

			if err != nil {
				return err
			}

			output = append(output, a)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, 0, err
	}

	countQuery, countArgs := roomAllotmentSpec.CountSQL(params)

	total := 0

	err = r.obs.ObserveDB("room_allotments.count", func() error {
		return r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	})

	if err != nil {
		return nil, 0, err
	}

	return output, total, nil
}

// Create allots a room to a patient and flips the room to Occupied in the
// same transaction. An already occupied room rejects the allotment.
func (r *RoomAllotmentsRepo) Create(ctx context.Context, req room.CreateAllotmentRequest) (room.Allotment, error) {
	a := room.NewAllotmentFromCreateRequest(req)

	err := r.obs.ObserveDB("room_allotments.create", func() error {
		tx, err := r.pool.Begin(ctx)

		if err != nil {
			return err
		}

		defer tx.Rollback(ctx)

		var status string

		err = tx.QueryRow(ctx, `SELECT status FROM rooms WHERE id = $1 FOR UPDATE`, a.RoomID).Scan(&status)

		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return room.ErrNotFound
			}
			return err
		}

		if status == "Occupied" {
			return room.ErrRoomOccupied
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO room_allotments (id, room_id, patient_id, patient_name,
				attending_doctor, allotment_date, expected_discharge_date,
				discharge_date, status, notes, created_at, updated_at)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
			a.ID, a.RoomID, a.PatientID, a.PatientName, a.AttendingDoctor,
			a.AllotmentDate, a.ExpectedDischargeDate, a.DischargeDate,
			a.Status, a.Notes, a.CreatedAt, a.UpdatedAt,
		)

		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `UPDATE rooms SET status = 'Occupied', updated_at = NOW() WHERE id = $1`, a.RoomID)

		if err != nil {
			return err
		}

		return tx.Commit(ctx)
	})

	if err != nil {
		return room.Allotment{}, err
	}

	return a, nil
}

func (r *RoomAllotmentsRepo) GetByID(ctx context.Context, id string) (room.Allotment, error) {
	var a room.Allotment

	err := r.obs.ObserveDB("room_allotments.get_by_id", func() error {
		var err error
		a, err = scanAllotment(r.pool.QueryRow(ctx,
			`SELECT id, room_id, patient_id, patient_name, attending_doctor,
				allotment_date, expected_discharge_date, discharge_date,
				status, notes, created_at, updated_at
			 FROM room_allotments WHERE id = $1`, id,
		))
		return err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return room.Allotment{}, room.ErrAllotmentNotFound
		}

		return room.Allotment{}, err
	}

	return a, nil
}

// Update moves an allotment through its lifecycle. Leaving the Active state
// frees the room again.
func (r *RoomAllotmentsRepo) Update(ctx context.Context, id string, req room.UpdateAllotmentRequest) (room.Allotment, error) {
	var a room.Allotment

	err := r.obs.ObserveDB("room_allotments.update", func() error {
		tx, err := r.pool.Begin(ctx)

		if err != nil {
			return err
		}

		defer tx.Rollback(ctx)

		a, err = scanAllotment(tx.QueryRow(ctx,
			`UPDATE room_allotments
				SET expected_discharge_date = $2,
					discharge_date = $3,
					status = $4,
					notes = $5,
					updated_at = NOW()
			 WHERE id = $1
			 RETURNING id, room_id, patient_id, patient_name, attending_doctor,
				allotment_date, expected_discharge_date, discharge_date,
				status, notes, created_at, updated_at`,
			id, req.ExpectedDischargeDate, req.DischargeDate, req.Status, req.Notes,
		))

		if err != nil {
			return err
		}

		if a.Status != "Active" {
			_, err = tx.Exec(ctx, `UPDATE rooms SET status = 'Available', updated_at = NOW() WHERE id = $1`, a.RoomID)

			if err != nil {
				return err
			}
		}

		return tx.Commit(ctx)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return room.Allotment{}, room.ErrAllotmentNotFound
		}

		return room.Allotment{}, err
	}

	return a, nil
}

func (r *RoomAllotmentsRepo) Delete(ctx context.Context, id string) error {
	var affected int64

	err := r.obs.ObserveDB("room_allotments.delete", func() error {
		tag, err := r.pool.Exec(ctx, `DELETE FROM room_allotments WHERE id = $1`, id)
		affected = tag.RowsAffected()
		return err
	})

	if err != nil {
		return err
	}

	if affected == 0 {
		return room.ErrAllotmentNotFound
	}

	return nil
}
