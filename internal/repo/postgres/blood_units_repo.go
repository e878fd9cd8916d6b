package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/medixpro/medixpro/internal/domain/blood"
	"github.com/medixpro/medixpro/internal/listing"
	"github.com/medixpro/medixpro/internal/observability"
)

var bloodUnitSpec = listing.MustSpec(listing.Spec{
	Table: "blood_units",
	Columns: []string{
		"id", "unit_id", "blood_type", "quantity", "collection_date",
		"expiry_date", "status", "notes", "created_at", "updated_at",
	},
	SearchColumns: []string{"blood_type", "status"},
})

type BloodUnitsRepo struct {
	pool *pgxpool.Pool
	obs  *observability.Prom
}

func NewBloodUnitsRepo(pool *pgxpool.Pool, obs *observability.Prom) *BloodUnitsRepo {
	return &BloodUnitsRepo{pool: pool, obs: obs}
}

func scanBloodUnit(row pgx.Row) (blood.Unit, error) {
	var u blood.Unit

	err := row.Scan(
		&u.ID, &u.UnitID, &u.BloodType, &u.Quantity, &u.CollectionDate,
		&u.ExpiryDate, &u.Status, &u.Notes, &u.CreatedAt, &u.UpdatedAt,
	)

	return u, err
}

func (r *BloodUnitsRepo) List(ctx context.Context, params listing.Params) ([]blood.Unit, int, error) {
	query, args := bloodUnitSpec.SelectSQL(params)

	output := make([]blood.Unit, 0, params.Limit)

	err := r.obs.ObserveDB("blood_units.list", func() error {
		rows, err := r.pool.Query(ctx, query, args...)

		if err != nil {
			return err
		}

		defer rows.Close()

		for rows.Next() {
			u, err := scanBloodUnit(rows)

			if err != nil {
				return err
			}

			output = append(output, u)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, 0, err
	}

	countQuery, countArgs := bloodUnitSpec.CountSQL(params)

	total := 0

	err = r.obs.ObserveDB("blood_units.count", func() error {
		return r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	})

	if err != nil {
		return nil, 0, err
	}

	return output, total, nil
}

func (r *BloodUnitsRepo) Create(ctx context.Context, req blood.CreateUnitRequest) (blood.Unit, error) {
	u := blood.NewFromCreateRequest(req)

	err := r.obs.ObserveDB("blood_units.create", func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO blood_units (id, unit_id, blood_type, quantity, collection_date,
				expiry_date, status, notes, created_at, updated_at)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
			u.ID, u.UnitID, u.BloodType, u.Quantity, u.CollectionDate,
			u.ExpiryDate, u.Status, u.Notes, u.CreatedAt, u.UpdatedAt,
		)
		return err
	})

	if err != nil {
		return blood.Unit{}, err
	}

	return u, nil
}

func (r *BloodUnitsRepo) GetByID(ctx context.Context, id string) (blood.Unit, error) {
	var u blood.Unit

	err := r.obs.ObserveDB("blood_units.get_by_id", func() error {
		var err error
		u, err = scanBloodUnit(r.pool.QueryRow(ctx,
			`SELECT id, unit_id, blood_type, quantity, collection_date,
				expiry_date, status, notes, created_at, updated_at
			 FROM blood_units WHERE id = $1`, id,
		))
		return err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return blood.Unit{}, blood.ErrNotFound
		}

		return blood.Unit{}, err
	}

	return u, nil
}

func (r *BloodUnitsRepo) Update(ctx context.Context, id string, req blood.UpdateUnitRequest) (blood.Unit, error) {
	var u blood.Unit

	err := r.obs.ObserveDB("blood_units.update", func() error {
		var err error
		u, err = scanBloodUnit(r.pool.QueryRow(ctx,
			`UPDATE blood_units
				SET quantity = $2,
					status = $3,
					notes = $4,
					updated_at = NOW()
			 WHERE id = $1
			 RETURNING id, unit_id, blood_type, quantity, collection_date,
				expiry_date, status, notes, created_at, updated_at`,
			id, req.Quantity, req.Status, req.Notes,
		))
		return err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return blood.Unit{}, blood.ErrNotFound
		}

		return blood.Unit{}, err
	}

	return u, nil
}

func (r *BloodUnitsRepo) Delete(ctx context.Context, id string) error {
	var affected int64

	err := r.obs.ObserveDB("blood_units.delete", func() error {
		tag, err := r.pool.Exec(ctx, `DELETE FROM blood_units WHERE id = $1`, id)
		affected = tag.RowsAffected()
		return err
	})

	if err != nil {
		return err
	}

	if affected == 0 {
		return blood.ErrNotFound
	}

	return nil
}
