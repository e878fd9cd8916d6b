package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/medixpro/medixpro/internal/domain/medicine"
	"github.com/medixpro/medixpro/internal/listing"
	"github.com/medixpro/medixpro/internal/observability"
)

var medicineSpec = listing.MustSpec(listing.Spec{
	Table: "medicines",
	Columns: []string{
		"id", "name", "generic_name", "category", "manufacturer", "price",
		"stock", "unit", "status", "created_at", "updated_at",
	},
	SearchColumns: []string{"name", "generic_name", "category"},
})

type MedicinesRepo struct {
	pool *pgxpool.Pool
	obs  *observability.Prom
}

func NewMedicinesRepo(pool *pgxpool.Pool, obs *observability.Prom) *MedicinesRepo {
	return &MedicinesRepo{pool: pool, obs: obs}
}

func scanMedicine(row pgx.Row) (medicine.Medicine, error) {
	var m medicine.Medicine

	err := row.Scan(
		&m.ID, &m.Name, &m.GenericName, &m.Category, &m.Manufacturer, &m.Price,
		&m.Stock, &m.Unit, &m.Status, &m.CreatedAt, &m.UpdatedAt,
	)

	return m, err
}

func (r *MedicinesRepo) List(ctx context.Context, params listing.Params) ([]medicine.Medicine, int, error) {
	query, args := medicineSpec.SelectSQL(params)

	output := make([]medicine.Medicine, 0, params.Limit)

	err := r.obs.ObserveDB("medicines.list", func() error {
		rows, err := r.pool.Query(ctx, query, args...)

		if err != nil {
			return err
		}

		defer rows.Close()

		for rows.Next() {
			m, err := scanMedicine(rows)

			if err != nil {
				return err
			}

			output = append(output, m)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, 0, err
	}

	countQuery, countArgs := medicineSpec.CountSQL(params)

	total := 0

	err = r.obs.ObserveDB("medicines.count", func() error {
		return r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	})

	if err != nil {
		return nil, 0, err
	}

	return output, total, nil
}

func (r *MedicinesRepo) Create(ctx context.Context, req medicine.CreateMedicineRequest) (medicine.Medicine, error) {
	m := medicine.NewFromCreateRequest(req)

	err := r.obs.ObserveDB("medicines.create", func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO medicines (id, name, generic_name, category, manufacturer,
				price, stock, unit, status, created_at, updated_at)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
			m.ID, m.Name, m.GenericName, m.Category, m.Manufacturer, m.Price,
			m.Stock, m.Unit, m.Status, m.CreatedAt, m.UpdatedAt,
		)
		return err
	})

	if err != nil {
		return medicine.Medicine{}, err
	}

	return m, nil
}

func (r *MedicinesRepo) GetByID(ctx context.Context, id string) (medicine.Medicine, error) {
	var m medicine.Medicine

	err := r.obs.ObserveDB("medicines.get_by_id", func() error {
		var err error
		m, err = scanMedicine(r.pool.QueryRow(ctx,
			`SELECT id, name, generic_name, category, manufacturer, price,
				stock, unit, status, created_at, updated_at
			 FROM medicines WHERE id = $1`, id,
		))
		return err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return medicine.Medicine{}, medicine.ErrNotFound
		}

		return medicine.Medicine{}, err
	}

	return m, nil
}

func (r *MedicinesRepo) Update(ctx context.Context, id string, req medicine.UpdateMedicineRequest) (medicine.Medicine, error) {
	var m medicine.Medicine

	err := r.obs.ObserveDB("medicines.update", func() error {
		var err error
		m, err = scanMedicine(r.pool.QueryRow(ctx,
			`UPDATE medicines
				SET name = $2,
					generic_name = $3,
					category = $4,
					manufacturer = $5,
					price = $6,
					stock = $7,
					unit = $8,
					status = $9,
					updated_at = NOW()
			 WHERE id = $1
			 RETURNING id, name, generic_name, category, manufacturer, price,
				stock, unit, status, created_at, updated_at`,
			id, req.Name, req.GenericName, req.Category, req.Manufacturer,
			req.Price, req.Stock, req.Unit, req.Status,
		))
		return err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return medicine.Medicine{}, medicine.ErrNotFound
		}

		return medicine.Medicine{}, err
	}

	return m, nil
}

func (r *MedicinesRepo) Delete(ctx context.Context, id string) error {
	var affected int64

	err := r.obs.ObserveDB("medicines.delete", func() error {
		tag, err := r.pool.Exec(ctx, `DELETE FROM medicines WHERE id = $1`, id)
		affected = tag.RowsAffected()
		return err
	})

	if err != nil {
		return err
	}

	if affected == 0 {
		return medicine.ErrNotFound
	}

	return nil
}
