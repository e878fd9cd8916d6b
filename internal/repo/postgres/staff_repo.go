package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/medixpro/medixpro/internal/domain/staff"
	"github.com/medixpro/medixpro/internal/listing"
	"github.com/medixpro/medixpro/internal/observability"
)

var staffSpec = listing.MustSpec(listing.Spec{
	Table: "staff",
	Columns: []string{
		"id", "first_name", "last_name", "email", "phone", "date_of_birth",
		"gender", "address", "role", "department", "joined_date", "status",
		"created_at", "updated_at",
	},
	SearchColumns: []string{"first_name", "last_name", "email", "role"},
})

type StaffRepo struct {
	pool *pgxpool.Pool
	obs  *observability.Prom
}

func NewStaffRepo(pool *pgxpool.Pool, obs *observability.Prom) *StaffRepo {
	return &StaffRepo{pool: pool, obs: obs}
}

func scanStaff(row pgx.Row) (staff.Staff, error) {
	var s staff.Staff

	err := row.Scan(
		&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.Phone, &s.DateOfBirth,
		&s.Gender, &s.Address, &s.Role, &s.Department, &s.JoinedDate, &s.Status,
		&s.CreatedAt, &s.UpdatedAt,
	)

	return s, err
}

func (r *StaffRepo) List(ctx context.Context, p listing.Params) ([]staff.Staff, int, error) {
	query, args := staffSpec.SelectSQL(p)

	output := make([]staff.Staff, 0, p.Limit)

	err := r.obs.ObserveDB("staff.list", func() error {
		rows, err := r.pool.Query(ctx, query, args...)

		if err != nil {
			return err
		}

		defer rows.Close()

		for rows.Next() {
			s, err := scanStaff(rows)

			if err != nil {
				return err
			}

			output = append(output, s)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, 0, err
	}

	countQuery, countArgs := staffSpec.CountSQL(p)

	total := 0

	err = r.obs.ObserveDB("staff.count", func() error {
		return r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	})

	if err != nil {
		return nil, 0, err
	}

	return output, total, nil
}

func (r *StaffRepo) Create(ctx context.Context, req staff.CreateStaffRequest) (staff.Staff, error) {
	s := staff.NewFromCreateRequest(req)

	err := r.obs.ObserveDB("staff.create", func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO staff (id, first_name, last_name, email, phone, date_of_birth,
				gender, address, role, department, joined_date, status, created_at, updated_at)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
			s.ID, s.FirstName, s.LastName, s.Email, s.Phone, s.DateOfBirth,
			s.Gender, s.Address, s.Role, s.Department, s.JoinedDate, s.Status,
			s.CreatedAt, s.UpdatedAt,
		)
		return err
	})

	if err != nil {
		if isUniqueViolation(err) {
			return staff.Staff{}, staff.ErrEmailInUse
		}

		return staff.Staff{}, err
	}

	return s, nil
}

func (r *StaffRepo) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	var s staff.Staff

	err := r.obs.ObserveDB("staff.get_by_id", func() error {
		var err error
		s, err = scanStaff(r.pool.QueryRow(ctx,
			`SELECT id, first_name, last_name, email, phone, date_of_birth,
				gender, address, role, department, joined_date, status, created_at, updated_at
			 FROM staff WHERE id = $1`, id,
		))
		return err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.Staff{}, staff.ErrNotFound
		}

		return staff.Staff{}, err
	}

	return s, nil
}

func (r *StaffRepo) Update(ctx context.Context, id string, req staff.UpdateStaffRequest) (staff.Staff, error) {
	var s staff.Staff

	err := r.obs.ObserveDB("staff.update", func() error {
		var err error
		s, err = scanStaff(r.pool.QueryRow(ctx,
			`UPDATE staff
				SET first_name = $2,
					last_name = $3,
					email = $4,
					phone = $5,
					date_of_birth = $6,
					gender = $7,
					address = $8,
					role = $9,
					department = $10,
					joined_date = $11,
					status = $12,
					updated_at = NOW()
			 WHERE id = $1
			 RETURNING id, first_name, last_name, email, phone, date_of_birth,
				gender, address, role, department, joined_date, status, created_at, updated_at`,
			id, req.FirstName, req.LastName, req.Email, req.Phone, req.DateOfBirth,
			req.Gender, req.Address, req.Role, req.Department, req.JoinedDate, req.Status,
		))
		return err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.Staff{}, staff.ErrNotFound
		}

		if isUniqueViolation(err) {
			return staff.Staff{}, staff.ErrEmailInUse
		}

		return staff.Staff{}, err
	}

	return s, nil
}

func (r *StaffRepo) Delete(ctx context.Context, id string) error {
	var affected int64

	err := r.obs.ObserveDB("staff.delete", func() error {
		tag, err := r.pool.Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
		affected = tag.RowsAffected()
		return err
	})

	if err != nil {
		return err
	}

	if affected == 0 {
		return staff.ErrNotFound
	}

	return nil
}
