package db

import (
	"fmt"
	"time"
)

type GameRun struct {
	ID         string
	RoomID     string
	Scenario   string
	Difficulty string
	StartedAt  *time.Time
	EndedAt    *time.Time
	CreatedAt  time.Time
}

// CreateGameRun records a scheduler spin-up for a room.
func (d *DB) CreateGameRun(roomID, scenario, difficulty string) (string, error) {
	var id string
	err := d.conn.QueryRow(`
		INSERT INTO game_runs (room_id, scenario, difficulty, started_at)
		VALUES ($1, $2, $3, now())
		RETURNING id
	`, roomID, scenario, difficulty).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("creating game run: %w", err)
	}
	return id, nil
}

// EndGameRun marks a scheduler exit.
func (d *DB) EndGameRun(runID string) error {
	_, err := d.conn.Exec(`
		UPDATE game_runs SET ended_at = now() WHERE id = $1
	`, runID)
	if err != nil {
		return fmt.Errorf("ending game run: %w", err)
	}
	return nil
}
