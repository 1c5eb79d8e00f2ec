package repository

import (
	"context"
	"errors"
	"fmt"

	"matrimony-service/internal/domain"
	"matrimony-service/pkg/id"
	"matrimony-service/pkg/xerrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	Upsert(ctx context.Context, userID string, rec domain.ProfileRecord) (*domain.Profile, error)
}

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepo(db *pgxpool.Pool) ProfileRepository {
	return &profileRepo{db: db}
}

// date_of_birth is free text: the form accepts dates it cannot normalise.
const profileColumns = `
	id, user_id,
	first_name, last_name, phone, gender, date_of_birth::text,
	height_cm, weight_kg,
	religion, caste, marital_status,
	city, state, country, citizenship,
	occupation, education, college, company, income,
	about_me, partner_preferences,
	created_at, updated_at`

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	row := r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, userID)

	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile %s: %w", userID, err)
	}
	return p, nil
}

func (r *profileRepo) Upsert(ctx context.Context, userID string, rec domain.ProfileRecord) (*domain.Profile, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO profiles (
			id, user_id,
			first_name, last_name, phone, gender, date_of_birth,
			height_cm, weight_kg,
			religion, caste, marital_status,
			city, state, country, citizenship,
			occupation, education, college, company, income,
			about_me, partner_preferences
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23)
		ON CONFLICT (user_id) DO UPDATE SET
			first_name=EXCLUDED.first_name,
			last_name=EXCLUDED.last_name,
			phone=EXCLUDED.phone,
			gender=EXCLUDED.gender,
			date_of_birth=EXCLUDED.date_of_birth,
			height_cm=EXCLUDED.height_cm,
			weight_kg=EXCLUDED.weight_kg,
			religion=EXCLUDED.religion,
			caste=EXCLUDED.caste,
			marital_status=EXCLUDED.marital_status,
			city=EXCLUDED.city,
			state=EXCLUDED.state,
			country=EXCLUDED.country,
			citizenship=EXCLUDED.citizenship,
			occupation=EXCLUDED.occupation,
			education=EXCLUDED.education,
			college=EXCLUDED.college,
			company=EXCLUDED.company,
			income=EXCLUDED.income,
			about_me=EXCLUDED.about_me,
			partner_preferences=EXCLUDED.partner_preferences,
			updated_at=now()
		RETURNING `+profileColumns,
		id.NewRowID(), userID,
		rec.FirstName, rec.LastName, rec.Phone, rec.Gender, rec.DateOfBirth,
		rec.HeightCm, rec.WeightKg,
		rec.Religion, rec.Caste, rec.MaritalStatus,
		rec.City, rec.State, rec.Country, rec.Citizenship,
		rec.Occupation, rec.Education, rec.College, rec.Company, rec.Income,
		rec.AboutMe, rec.PartnerPreferences,
	)

	p, err := scanProfile(row)
	if err != nil {
		return nil, fmt.Errorf("upsert profile %s (sqlstate %s): %w", userID, xerrors.ParsePGErrorCode(err), err)
	}
	return p, nil
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	p := &domain.Profile{}
	rec := &p.Record
	err := row.Scan(
		&p.ID, &p.UserID,
		&rec.FirstName, &rec.LastName, &rec.Phone, &rec.Gender, &rec.DateOfBirth,
		&rec.HeightCm, &rec.WeightKg,
		&rec.Religion, &rec.Caste, &rec.MaritalStatus,
		&rec.City, &rec.State, &rec.Country, &rec.Citizenship,
		&rec.Occupation, &rec.Education, &rec.College, &rec.Company, &rec.Income,
		&rec.AboutMe, &rec.PartnerPreferences,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}
