package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/medixpro/medixpro/internal/domain/patient"
	"github.com/medixpro/medixpro/internal/listing"
	"github.com/medixpro/medixpro/internal/observability"
)

var patientSpec = listing.MustSpec(listing.Spec{
	Table: "patients",
	Columns: []string{
		"id", "name", "email", "phone", "gender", "dob", "address",
		"blood_group", "status", "created_at", "updated_at",
	},
	SearchColumns: []string{"name", "email", "phone"},
})

type PatientsRepo struct {
	pool *pgxpool.Pool
	obs  *observability.Prom
}

func NewPatientsRepo(pool *pgxpool.Pool, obs *observability.Prom) *PatientsRepo {
	return &PatientsRepo{pool: pool, obs: obs}
}

func scanPatient(row pgx.Row) (patient.Patient, error) {
	var p patient.Patient

	err := row.Scan(
		&p.ID, &p.Name, &p.Email, &p.Phone, &p.Gender, &p.DOB, &p.Address,
		&p.BloodGroup, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)

	return p, err
}

func (r *PatientsRepo) List(ctx context.Context, params listing.Params) ([]patient.Patient, int, error) {
	query, args := patientSpec.SelectSQL(params)

	output := make([]patient.Patient, 0, params.Limit)

	err := r.obs.ObserveDB("patients.list", func() error {
		rows, err := r.pool.Query(ctx, query, args...)

		if err != nil {
			return err
		}

		defer rows.Close()

		for rows.Next() {
			p, err := scanPatient(rows)

			if err != nil {
				return err
			}

			output = append(output, p)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, 0, err
	}

	countQuery, countArgs := patientSpec.CountSQL(params)

	total := 0

	err = r.obs.ObserveDB("patients.count", func() error {
		return r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	})

	if err != nil {
		return nil, 0, err
	}

	return output, total, nil
}

func (r *PatientsRepo) Create(ctx context.Context, req patient.CreatePatientRequest) (patient.Patient, error) {
	p := patient.NewFromCreateRequest(req)

	err := r.obs.ObserveDB("patients.create", func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO patients (id, name, email, phone, gender, dob, address,
				blood_group, status, created_at, updated_at)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
			p.ID, p.Name, p.Email, p.Phone, p.Gender, p.DOB, p.Address,
			p.BloodGroup, p.Status, p.CreatedAt, p.UpdatedAt,
		)
		return err
	})

	if err != nil {
		return patient.Patient{}, err
	}

	return p, nil
}

func (r *PatientsRepo) GetByID(ctx context.Context, id string) (patient.Patient, error) {
	var p patient.Patient

	err := r.obs.ObserveDB("patients.get_by_id", func() error {
		var err error
		p, err = scanPatient(r.pool.QueryRow(ctx,
			`SELECT id, name, email, phone, gender, dob, address,
				blood_group, status, created_at, updated_at
			 FROM patients WHERE id = $1`, id,
		))
		return err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return patient.Patient{}, patient.ErrNotFound
		}

		return patient.Patient{}, err
	}

	return p, nil
}

func (r *PatientsRepo) Update(ctx context.Context, id string, req patient.UpdatePatientRequest) (patient.Patient, error) {
	var p patient.Patient

	err := r.obs.ObserveDB("patients.update", func() error {
		var err error
		p, err = scanPatient(r.pool.QueryRow(ctx,
			`UPDATE patients
				SET name = $2,
					email = $3,
					phone = $4,
					gender = $5,
					dob = $6,
					address = $7,
					blood_group = $8,
					status = $9,
					updated_at = NOW()
			 WHERE id = $1
			 RETURNING id, name, email, phone, gender, dob, address,
				blood_group, status, created_at, updated_at`,
			id, req.Name, req.Email, req.Phone, req.Gender, req.DOB, req.Address,
			req.BloodGroup, req.Status,
		))
		return err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return patient.Patient{}, patient.ErrNotFound
		}

		return patient.Patient{}, err
	}

	return p, nil
}

func (r *PatientsRepo) Delete(ctx context.Context, id string) error {
	var affected int64

	err := r.obs.ObserveDB("patients.delete", func() error {
		tag, err := r.pool.Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
		affected = tag.RowsAffected()
		return err
	})

	if err != nil {
		return err
	}

	if affected == 0 {
		return patient.ErrNotFound
	}

	return nil
}
