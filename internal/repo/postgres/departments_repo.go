package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/medixpro/medixpro/internal/domain/department"
	"github.com/medixpro/medixpro/internal/listing"
	"github.com/medixpro/medixpro/internal/observability"
)

var departmentSpec = listing.MustSpec(listing.Spec{
	Table:         "departments",
	Columns:       []string{"id", "name", "description", "head", "status", "created_at", "updated_at"},
	SearchColumns: []string{"name", "head"},
})

type DepartmentsRepo struct {
	pool *pgxpool.Pool
	obs  *observability.Prom
}

func NewDepartmentsRepo(pool *pgxpool.Pool, obs *observability.Prom) *DepartmentsRepo {
	return &DepartmentsRepo{pool: pool, obs: obs}
}

func (r *DepartmentsRepo) List(ctx context.Context, p listing.Params) ([]department.Department, int, error) {
	query, args := departmentSpec.SelectSQL(p)

	output := make([]department.Department, 0, p.Limit)

	err := r.obs.ObserveDB("departments.list", func() error {
		rows, err := r.pool.Query(ctx, query, args...)

		if err != nil {
			return err
		}

		defer rows.Close()

		for rows.Next() {
			var d department.Department

			err = rows.Scan(&d.ID, &d.Name, &d.Description, &d.Head, &d.Status, &d.CreatedAt, &d.UpdatedAt)

			if err != nil {
				return err
			}

			output = append(output, d)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, 0, err
	}

	countQuery, countArgs := departmentSpec.CountSQL(p)

	total := 0

	err = r.obs.ObserveDB("departments.count", func() error {
		return r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	})

	if err != nil {
		return nil, 0, err
	}

	return output, total, nil
}

func (r *DepartmentsRepo) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.Department, error) {
	d := department.NewFromCreateRequest(req)

	err := r.obs.ObserveDB("departments.create", func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO departments (id, name, description, head, status, created_at, updated_at)
			 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			d.ID, d.Name, d.Description, d.Head, d.Status, d.CreatedAt, d.UpdatedAt,
		)
		return err
	})

	if err != nil {
		return department.Department{}, err
	}

	return d, nil
}

func (r *DepartmentsRepo) GetByID(ctx context.Context, id string) (department.Department, error) {
	var d department.Department

	err := r.obs.ObserveDB("departments.get_by_id", func() error {
		return r.pool.QueryRow(ctx,
			`SELECT id, name, description, head, status, created_at, updated_at
			 FROM departments WHERE id = $1`, id,
		).Scan(&d.ID, &d.Name, &d.Description, &d.Head, &d.Status, &d.CreatedAt, &d.UpdatedAt)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrNotFound
		}

		return department.Department{}, err
	}

	return d, nil
}

func (r *DepartmentsRepo) Update(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.Department, error) {
	var d department.Department

	err := r.obs.ObserveDB("departments.update", func() error {
		return r.pool.QueryRow(ctx,
			`UPDATE departments
				SET name = $2,
					description = $3,
					head = $4,
					status = $5,
					updated_at = NOW()
			 WHERE id = $1
			 RETURNING id, name, description, head, status, created_at, updated_at`,
			id, req.Name, req.Description, req.Head, req.Status,
		).Scan(&d.ID, &d.Name, &d.Description, &d.Head, &d.Status, &d.CreatedAt, &d.UpdatedAt)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrNotFound
		}

		return department.Department{}, err
	}

	return d, nil
}

func (r *DepartmentsRepo) Delete(ctx context.Context, id string) error {
	var affected int64

	err := r.obs.ObserveDB("departments.delete", func() error {
		tag, err := r.pool.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
		affected = tag.RowsAffected()
		return err
	})

	if err != nil {
		return err
	}

	if affected == 0 {
		return department.ErrNotFound
	}

	return nil
}
