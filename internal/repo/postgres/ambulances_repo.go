package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/medixpro/medixpro/internal/domain/ambulance"
	"github.com/medixpro/medixpro/internal/listing"
	"github.com/medixpro/medixpro/internal/observability"
)

var ambulanceSpec = listing.MustSpec(listing.Spec{
	Table: "ambulances",
	Columns: []string{
		"id", "name", "registration_number", "driver_name", "driver_phone",
		"vehicle_type", "status", "created_at", "updated_at",
	},
	SearchColumns: []string{"name", "registration_number", "driver_name"},
})

type AmbulancesRepo struct {
	pool *pgxpool.Pool
	obs  *observability.Prom
}

func NewAmbulancesRepo(pool *pgxpool.Pool, obs *observability.Prom) *AmbulancesRepo {
	return &AmbulancesRepo{pool: pool, obs: obs}
}

func scanAmbulance(row pgx.Row) (ambulance.Ambulance, error) {
	var a ambulance.Ambulance

	err := row.Scan(
		&a.ID, &a.Name, &a.RegistrationNumber, &a.DriverName, &a.DriverPhone,
		&a.VehicleType, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)

	return a, err
}

func (r *AmbulancesRepo) List(ctx context.Context, params listing.Params) ([]ambulance.Ambulance, int, error) {
	query, args := ambulanceSpec.SelectSQL(params)

	output := make([]ambulance.Ambulance, 0, params.Limit)

	err := r.obs.ObserveDB("ambulances.list", func() error {
		rows, err := r.pool.Query(ctx, query, args...)

		if err != nil {
			return err
		}

		defer rows.Close()

		for rows.Next() {
			a, err := scanAmbulance(rows)

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

	countQuery, countArgs := ambulanceSpec.CountSQL(params)

	total := 0

	err = r.obs.ObserveDB("ambulances.count", func() error {
		return r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	})

	if err != nil {
		return nil, 0, err
	}

	return output, total, nil
}

func (r *AmbulancesRepo) Create(ctx context.Context, req ambulance.CreateAmbulanceRequest) (ambulance.Ambulance, error) {
	a := ambulance.NewFromCreateRequest(req)

	err := r.obs.ObserveDB("ambulances.create", func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO ambulances (id, name, registration_number, driver_name,
				driver_phone, vehicle_type, status, created_at, updated_at)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
			a.ID, a.Name, a.RegistrationNumber, a.DriverName, a.DriverPhone,
			a.VehicleType, a.Status, a.CreatedAt, a.UpdatedAt,
		)
		return err
	})

	if err != nil {
		if isUniqueViolation(err) {
			return ambulance.Ambulance{}, ambulance.ErrRegistrationInUse
		}

		return ambulance.Ambulance{}, err
	}

	return a, nil
}

func (r *AmbulancesRepo) GetByID(ctx context.Context, id string) (ambulance.Ambulance, error) {
	var a ambulance.Ambulance

	err := r.obs.ObserveDB("ambulances.get_by_id", func() error {
		var err error
		a, err = scanAmbulance(r.pool.QueryRow(ctx,
			`SELECT id, name, registration_number, driver_name, driver_phone,
				vehicle_type, status, created_at, updated_at
			 FROM ambulances WHERE id = $1`, id,
		))
		return err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ambulance.Ambulance{}, ambulance.ErrNotFound
		}

		return ambulance.Ambulance{}, err
	}

	return a, nil
}

func (r *AmbulancesRepo) Update(ctx context.Context, id string, req ambulance.UpdateAmbulanceRequest) (ambulance.Ambulance, error) {
	var a ambulance.Ambulance

	err := r.obs.ObserveDB("ambulances.update", func() error {
		var err error
		a, err = scanAmbulance(r.pool.QueryRow(ctx,
			`UPDATE ambulances
				SET name = $2,
					registration_number = $3,
					driver_name = $4,
					driver_phone = $5,
					vehicle_type = $6,
					status = $7,
					updated_at = NOW()
			 WHERE id = $1
			 RETURNING id, name, registration_number, driver_name, driver_phone,
				vehicle_type, status, created_at, updated_at`,
			id, req.Name, req.RegistrationNumber, req.DriverName, req.DriverPhone,
			req.VehicleType, req.Status,
		))
		return err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ambulance.Ambulance{}, ambulance.ErrNotFound
		}

		if isUniqueViolation(err) {
			return ambulance.Ambulance{}, ambulance.ErrRegistrationInUse
		}

		return ambulance.Ambulance{}, err
	}

	return a, nil
}

func (r *AmbulancesRepo) Delete(ctx context.Context, id string) error {
	var affected int64

	err := r.obs.ObserveDB("ambulances.delete", func() error {
		tag, err := r.pool.Exec(ctx, `DELETE FROM ambulances WHERE id = $1`, id)
		affected = tag.RowsAffected()
		return err
	})

	if err != nil {
		return err
	}

	if affected == 0 {
		return ambulance.ErrNotFound
	}

	return nil
}
