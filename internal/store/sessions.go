package store

import (
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/blackwell-systems/lanewatch/internal/model"
)

// InsertSession stores a training session for a swimmer. A session without
// an ID gets a fresh UUID, returned via the stored copy.
func (db *DB) InsertSession(swimmerID string, s model.Session) (model.Session, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	var blocks interface{}
	if len(s.Blocks) > 0 {
		data, err := json.Marshal(s.Blocks)
		if err != nil {
			return model.Session{}, err
		}
		blocks = string(data)
	}

	_, err := db.conn.Exec(
		`INSERT INTO sessions
		(id, swimmer_id, start_ms, kind, duration_minutes, distance_meters,
		 rpe, fatigue, heart_rate, notes, blocks_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, swimmerID, s.StartMs, string(s.Kind), s.DurationMinutes,
		s.Distance, s.RPE, string(s.Fatigue), s.HeartRate, s.Notes, blocks,
	)
	if err != nil {
		return model.Session{}, err
	}
	return s, nil
}

// ListRecentSessions returns up to limit sessions for the swimmer, newest
// first. A limit of zero or less returns all sessions.
func (db *DB) ListRecentSessions(swimmerID string, limit int) ([]model.Session, error) {
	query := `SELECT id, start_ms, kind, duration_minutes, distance_meters,
		rpe, fatigue, heart_rate, notes, blocks_json
		FROM sessions WHERE swimmer_id = ? ORDER BY start_ms DESC`
	args := []interface{}{swimmerID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var sessions []model.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// DeleteSession removes a session by ID. Deleting a missing session is not
// an error.
func (db *DB) DeleteSession(id string) error {
	_, err := db.conn.Exec("DELETE FROM sessions WHERE id = ?", id)
	return err
}

func scanSession(rows *sql.Rows) (model.Session, error) {
	var s model.Session
	var kind, fatigue, notes, blocks sql.NullString
	var duration, distance, heartRate sql.NullFloat64
	var rpe sql.NullInt64

	if err := rows.Scan(&s.ID, &s.StartMs, &kind, &duration, &distance,
		&rpe, &fatigue, &heartRate, &notes, &blocks); err != nil {
		return model.Session{}, err
	}

	s.Kind = model.Kind(kind.String)
	s.DurationMinutes = duration.Float64
	s.Distance = distance.Float64
	s.RPE = int(rpe.Int64)
	s.Fatigue = model.Fatigue(fatigue.String)
	s.HeartRate = heartRate.Float64
	s.Notes = notes.String

	if blocks.Valid && blocks.String != "" {
		// Malformed block JSON degrades to no blocks rather than failing
		// the whole listing.
		_ = json.Unmarshal([]byte(blocks.String), &s.Blocks)
	}

	return s, nil
}
