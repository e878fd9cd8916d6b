package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/medixpro/medixpro/internal/domain/emergency"
	"github.com/medixpro/medixpro/internal/listing"
	"github.com/medixpro/medixpro/internal/observability"
)

var emergencyCallSpec = listing.MustSpec(listing.Spec{
	Table: "emergency_calls",
	Columns: []string{
		"id", "patient_name", "phone", "location", "emergency_type", "priority",
		"status", "ambulance_id", "notes", "call_time", "created_at", "updated_at",
	},
	SearchColumns: []string{"patient_name", "location", "emergency_type"},
})

type EmergencyCallsRepo struct {
	pool *pgxpool.Pool
	obs  *observability.Prom
}

func NewEmergencyCallsRepo(pool *pgxpool.Pool, obs *observability.Prom) *EmergencyCallsRepo {
	return &EmergencyCallsRepo{pool: pool, obs: obs}
}

func scanEmergencyCall(row pgx.Row) (emergency.Call, error) {
	var c emergency.Call

	err := row.Scan(
		&c.ID, &c.PatientName, &c.Phone, &c.Location, &c.EmergencyType, &c.Priority,
		&c.Status, &c.AmbulanceID, &c.Notes, &c.CallTime, &c.CreatedAt, &c.UpdatedAt,
	)

	return c, err
}

func (r *EmergencyCallsRepo) List(ctx context.Context, params listing.Params) ([]emergency.Call, int, error) {
	query, args := emergencyCallSpec.SelectSQL(params)

	output := make([]emergency.Call, 0, params.Limit)

	err := r.obs.ObserveDB("emergency_calls.list", func() error {
		rows, err := r.pool.Query(ctx, query, args...)

		if err != nil {
			return err
		}

		defer rows.Close()

		for rows.Next() {
			c, err := scanEmergencyCall(rows)

			if err != nil {
				return err
			}

			output = append(output, c)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, 0, err
	}

	countQuery, countArgs := emergencyCallSpec.CountSQL(params)

	total := 0

	err = r.obs.ObserveDB("emergency_calls.count", func() error {
		return r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	})

	if err != nil {
		return nil, 0, err
	}

	return output, total, nil
}

func (r *EmergencyCallsRepo) Create(ctx context.Context, req emergency.CreateCallRequest) (emergency.Call, error) {
	c := emergency.NewFromCreateRequest(req)

	err := r.obs.ObserveDB("emergency_calls.create", func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO emergency_calls (id, patient_name, phone, location,
				emergency_type, priority, status, ambulance_id, notes, call_time,
				created_at, updated_at)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
			c.ID, c.PatientName, c.Phone, c.Location, c.EmergencyType, c.Priority,
			c.Status, c.AmbulanceID, c.Notes, c.CallTime, c.CreatedAt, c.UpdatedAt,
		)
		return err
	})

	if err != nil {
		return emergency.Call{}, err
	}

	return c, nil
}

func (r *EmergencyCallsRepo) GetByID(ctx context.Context, id string) (emergency.Call, error) {
	var c emergency.Call

	err := r.obs.ObserveDB("emergency_calls.get_by_id", func() error {
		var err error
		c, err = scanEmergencyCall(r.pool.QueryRow(ctx,
			`SELECT id, patient_name, phone, location, emergency_type, priority,
				status, ambulance_id, notes, call_time, created_at, updated_at
			 FROM emergency_calls WHERE id = $1`, id,
		))
		return err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return emergency.Call{}, emergency.ErrNotFound
		}

		return emergency.Call{}, err
	}

	return c, nil
}

func (r *EmergencyCallsRepo) Update(ctx context.Context, id string, req emergency.UpdateCallRequest) (emergency.Call, error) {
	var c emergency.Call

	err := r.obs.ObserveDB("emergency_calls.update", func() error {
		var err error
		c, err = scanEmergencyCall(r.pool.QueryRow(ctx,
			`UPDATE emergency_calls
				SET patient_name = $2,
					phone = $3,
					location = $4,
					emergency_type = $5,
					priority = $6,
					status = $7,
					ambulance_id = $8,
					notes = $9,
					updated_at = NOW()
			 WHERE id = $1
			 RETURNING id, patient_name, phone, location, emergency_type, priority,
				status, ambulance_id, notes, call_time, created_at, updated_at`,
			id, req.PatientName, req.Phone, req.Location, req.EmergencyType,
			req.Priority, req.Status, req.AmbulanceID, req.Notes,
		))
		return err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return emergency.Call{}, emergency.ErrNotFound
		}

		return emergency.Call{}, err
	}

	return c, nil
}

// UpdateStatus is the dispatch transition: it moves a call through its
// lifecycle and optionally assigns an ambulance in the same statement.
func (r *EmergencyCallsRepo) UpdateStatus(ctx context.Context, id string, req emergency.UpdateStatusRequest) (emergency.Call, error) {
	var c emergency.Call

	err := r.obs.ObserveDB("emergency_calls.update_status", func() error {
		var err error
		c, err = scanEmergencyCall(r.pool.QueryRow(ctx,
			`UPDATE emergency_calls
				SET status = $2,
					ambulance_id = COALESCE($3, ambulance_id),
					updated_at = NOW()
			 WHERE id = $1
			 RETURNING id, patient_name, phone, location, emergency_type, priority,
				status, ambulance_id, notes, call_time, created_at, updated_at`,
			id, req.Status, req.AmbulanceID,
		))
		return err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return emergency.Call{}, emergency.ErrNotFound
		}

		return emergency.Call{}, err
	}

	return c, nil
}

func (r *EmergencyCallsRepo) Delete(ctx context.Context, id string) error {
	var affected int64

	err := r.obs.ObserveDB("emergency_calls.delete", func() error {
		tag, err := r.pool.Exec(ctx, `DELETE FROM emergency_calls WHERE id = $1`, id)
		affected = tag.RowsAffected()
		return err
	})

	if err != nil {
		return err
	}

	if affected == 0 {
		return emergency.ErrNotFound
	}

	return nil
}
