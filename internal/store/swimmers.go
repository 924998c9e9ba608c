package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/blackwell-systems/lanewatch/internal/model"
)

// dateLayout stores birth dates as calendar dates without a time component.
const dateLayout = "2006-01-02"

// SaveProfile inserts or updates a swimmer profile. A profile without an ID
// gets a fresh UUID, which is returned via the updated copy.
func (db *DB) SaveProfile(p model.Profile) (model.Profile, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	var birth interface{}
	if p.BirthDate != nil {
		birth = p.BirthDate.Format(dateLayout)
	}

	_, err := db.conn.Exec(
		`INSERT INTO swimmers
		(id, name, birth_date, height_cm, weight_kg, resting_hr_bpm, category,
		 general_goal, medical_conditions, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			birth_date = excluded.birth_date,
			height_cm = excluded.height_cm,
			weight_kg = excluded.weight_kg,
			resting_hr_bpm = excluded.resting_hr_bpm,
			category = excluded.category,
			general_goal = excluded.general_goal,
			medical_conditions = excluded.medical_conditions,
			updated_at = excluded.updated_at`,
		p.ID, p.Name, birth, p.HeightCm, p.WeightKg, p.RestingHeartRate,
		string(p.Category), p.GeneralGoal, p.MedicalConditions,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return model.Profile{}, err
	}
	return p, nil
}

// GetProfile returns the profile for the given swimmer. A missing row comes
// back as an empty profile carrying only the requested ID, not an error, so
// downstream consumers always have something to evaluate.
func (db *DB) GetProfile(id string) (model.Profile, error) {
	row := db.conn.QueryRow(
		`SELECT id, name, birth_date, height_cm, weight_kg, resting_hr_bpm,
		 category, general_goal, medical_conditions
		 FROM swimmers WHERE id = ?`, id,
	)
	p, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return model.Profile{ID: id}, nil
	}
	if err != nil {
		return model.Profile{}, err
	}
	return p, nil
}

// GetProfileByName returns the first profile matching the given name, or an
// empty profile when none exists.
func (db *DB) GetProfileByName(name string) (model.Profile, error) {
	row := db.conn.QueryRow(
		`SELECT id, name, birth_date, height_cm, weight_kg, resting_hr_bpm,
		 category, general_goal, medical_conditions
		 FROM swimmers WHERE name = ? ORDER BY updated_at DESC LIMIT 1`, name,
	)
	p, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return model.Profile{}, nil
	}
	if err != nil {
		return model.Profile{}, err
	}
	return p, nil
}

// ListProfiles returns all stored swimmer profiles ordered by name.
func (db *DB) ListProfiles() ([]model.Profile, error) {
	rows, err := db.conn.Query(
		`SELECT id, name, birth_date, height_cm, weight_kg, resting_hr_bpm,
		 category, general_goal, medical_conditions
		 FROM swimmers ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var profiles []model.Profile
	for rows.Next() {
		p, err := scanProfileRows(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProfile(row *sql.Row) (model.Profile, error) { return scanProfileFrom(row) }

func scanProfileRows(rows *sql.Rows) (model.Profile, error) { return scanProfileFrom(rows) }

func scanProfileFrom(r rowScanner) (model.Profile, error) {
	var p model.Profile
	var birth, category, goal, conditions sql.NullString
	var height, weight, restingHR sql.NullFloat64

	if err := r.Scan(&p.ID, &p.Name, &birth, &height, &weight, &restingHR,
		&category, &goal, &conditions); err != nil {
		return model.Profile{}, err
	}

	if birth.Valid {
		if t, err := time.Parse(dateLayout, birth.String); err == nil {
			p.BirthDate = &t
		}
	}
	if height.Valid {
		v := height.Float64
		p.HeightCm = &v
	}
	if weight.Valid {
		v := weight.Float64
		p.WeightKg = &v
	}
	if restingHR.Valid {
		v := restingHR.Float64
		p.RestingHeartRate = &v
	}
	p.Category = model.Category(category.String)
	p.GeneralGoal = goal.String
	p.MedicalConditions = conditions.String

	return p, nil
}
