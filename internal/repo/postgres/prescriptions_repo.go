package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/medixpro/medixpro/internal/domain/prescription"
	"github.com/medixpro/medixpro/internal/listing"
	"github.com/medixpro/medixpro/internal/observability"
)

var prescriptionSpec = listing.MustSpec(listing.Spec{
	Table: "prescriptions",
	Columns: []string{
		"id", "patient_id", "doctor_id", "prescription_type", "prescription_date",
		"diagnosis", "medications", "notes_for_pharmacist", "status",
		"created_at", "updated_at",
	},
	SearchColumns: []string{"medications", "diagnosis", "status"},
})

type PrescriptionsRepo struct {
	pool *pgxpool.Pool
	obs  *observability.Prom
}

func NewPrescriptionsRepo(pool *pgxpool.Pool, obs *observability.Prom) *PrescriptionsRepo {
	return &PrescriptionsRepo{pool: pool, obs: obs}
}

func scanPrescription(row pgx.Row) (prescription.Prescription, error) {
	var p prescription.Prescription

	err := row.Scan(
		&p.ID, &p.PatientID, &p.DoctorID, &p.PrescriptionType, &p.PrescriptionDate,
		&p.Diagnosis, &p.Medications, &p.NotesForPharmacist, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)

	return p, err
}

func (r *PrescriptionsRepo) List(ctx context.Context, params listing.Params) ([]prescription.Prescription, int, error) {
	query, args := prescriptionSpec.SelectSQL(params)

	output := make([]prescription.Prescription, 0, params.Limit)

	err := r.obs.ObserveDB("prescriptions.list", func() error {
		rows, err := r.pool.Query(ctx, query, args...)

		if err != nil {
			return err
		}

		defer rows.Close()

		for rows.Next() {
			p, err := scanPrescription(rows)

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

	countQuery, countArgs := prescriptionSpec.CountSQL(params)

	total := 0

	err = r.obs.ObserveDB("prescriptions.count", func() error {
		return r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	})

	if err != nil {
		return nil, 0, err
	}

	return output, total, nil
}

func (r *PrescriptionsRepo) Create(ctx context.Context, req prescription.CreatePrescriptionRequest) (prescription.Prescription, error) {
	p := prescription.NewFromCreateRequest(req)

	err := r.obs.ObserveDB("prescriptions.create", func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO prescriptions (id, patient_id, doctor_id, prescription_type,
				prescription_date, diagnosis, medications, notes_for_pharmacist, status,
				created_at, updated_at)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
			p.ID, p.PatientID, p.DoctorID, p.PrescriptionType, p.PrescriptionDate,
			p.Diagnosis, p.Medications, p.NotesForPharmacist, p.Status,
			p.CreatedAt, p.UpdatedAt,
		)
		return err
	})

	if err != nil {
		return prescription.Prescription{}, err
	}

	return p, nil
}

func (r *PrescriptionsRepo) GetByID(ctx context.Context, id string) (prescription.Prescription, error) {
	var p prescription.Prescription

	err := r.obs.ObserveDB("prescriptions.get_by_id", func() error {
		var err error
		p, err = scanPrescription(r.pool.QueryRow(ctx,
			`SELECT id, patient_id, doctor_id, prescription_type, prescription_date,
				diagnosis, medications, notes_for_pharmacist, status, created_at, updated_at
			 FROM prescriptions WHERE id = $1`, id,
		))
		return err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return prescription.Prescription{}, prescription.ErrNotFound
		}

		return prescription.Prescription{}, err
	}

	return p, nil
}

func (r *PrescriptionsRepo) Update(ctx context.Context, id string, req prescription.UpdatePrescriptionRequest) (prescription.Prescription, error) {
	var p prescription.Prescription

	err := r.obs.ObserveDB("prescriptions.update", func() error {
		var err error
		p, err = scanPrescription(r.pool.QueryRow(ctx,
			`UPDATE prescriptions
				SET diagnosis = $2,
					medications = $3,
					notes_for_pharmacist = $4,
					status = $5,
					updated_at = NOW()
			 WHERE id = $1
			 RETURNING id, patient_id, doctor_id, prescription_type, prescription_date,
				diagnosis, medications, notes_for_pharmacist, status, created_at, updated_at`,
			id, req.Diagnosis, req.Medications, req.NotesForPharmacist, req.Status,
		))
		return err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return prescription.Prescription{}, prescription.ErrNotFound
		}

		return prescription.Prescription{}, err
	}

	return p, nil
}

func (r *PrescriptionsRepo) Delete(ctx context.Context, id string) error {
	var affected int64

	err := r.obs.ObserveDB("prescriptions.delete", func() error {
		tag, err := r.pool.Exec(ctx, `DELETE FROM prescriptions WHERE id = $1`, id)
		affected = tag.RowsAffected()
		return err
	})

	if err != nil {
		return err
	}

	if affected == 0 {
		return prescription.ErrNotFound
	}

	return nil
}
