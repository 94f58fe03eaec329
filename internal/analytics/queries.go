package analytics

import (
	"deadlytruth/internal/db"
	"fmt"

	"github.com/samber/lo"
)

type Queries struct {
	DB *db.DB
}

func NewQueries(database *db.DB) *Queries {
	return &Queries{DB: database}
}

type ScenarioCount struct {
	Scenario string `json:"scenario"`
	Games    int    `json:"games"`
}

// Overview summarizes archived play activity.
type Overview struct {
	TotalGames     int             `json:"total_games"`
	GamesPerScene  []ScenarioCount `json:"games_per_scenario"`
	Interrogations int             `json:"interrogations"`
}

func (q *Queries) GetOverview() (*Overview, error) {
	rows, err := q.DB.Query(`
		SELECT scenario, COUNT(*)
		FROM game_runs
		GROUP BY scenario
		ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying games per scenario: %w", err)
	}
	defer rows.Close()

	var perScene []ScenarioCount
	for rows.Next() {
		var sc ScenarioCount
		if err := rows.Scan(&sc.Scenario, &sc.Games); err != nil {
			return nil, fmt.Errorf("scanning scenario count: %w", err)
		}
		perScene = append(perScene, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scenario counts: %w", err)
	}

	overview := &Overview{
		GamesPerScene: perScene,
		TotalGames:    lo.SumBy(perScene, func(sc ScenarioCount) int { return sc.Games }),
	}

	err = q.DB.QueryRow(`SELECT COUNT(*) FROM interrogations`).Scan(&overview.Interrogations)
	if err != nil {
		return nil, fmt.Errorf("counting interrogations: %w", err)
	}
	return overview, nil
}
