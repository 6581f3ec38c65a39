package main

import (
	"context"
	"fmt"
	"log"

	"github.com/rosterdb/rosterdb/config"
	"github.com/rosterdb/rosterdb/internal/storage/postgres"
)

// Bootstraps the roster schema and the read-only teams reference set.
// Safe to run repeatedly; existing teams are left untouched.

const schema = `
	CREATE TABLE IF NOT EXISTS teams (
		id INTEGER PRIMARY KEY,
		team_name TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS players (
		id INTEGER PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		position TEXT NOT NULL,
		jersey_number INTEGER NOT NULL,
		height_cm INTEGER NOT NULL,
		weight_kg INTEGER NOT NULL,
		birthdate DATE NOT NULL,
		nationality TEXT NOT NULL,
		team_id INTEGER NOT NULL REFERENCES teams(id)
	);`

var teams = []string{
	"Atlanta Hawks", "Boston Celtics", "Brooklyn Nets", "Charlotte Hornets",
	"Chicago Bulls", "Cleveland Cavaliers", "Dallas Mavericks", "Denver Nuggets",
	"Detroit Pistons", "Golden State Warriors", "Houston Rockets", "Indiana Pacers",
	"LA Clippers", "Los Angeles Lakers", "Memphis Grizzlies", "Miami Heat",
	"Milwaukee Bucks", "Minnesota Timberwolves", "New Orleans Pelicans",
	"New York Knicks", "Oklahoma City Thunder", "Orlando Magic",
	"Philadelphia 76ers", "Phoenix Suns", "Portland Trail Blazers",
	"Sacramento Kings", "San Antonio Spurs", "Toronto Raptors", "Utah Jazz",
	"Washington Wizards",
}

func main() {
	cfg := config.Load()

	db, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	if _, err := db.DB.ExecContext(ctx, schema); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	seeded := 0
	for i, name := range teams {
		res, err := db.DB.ExecContext(ctx,
			`INSERT INTO teams (id, team_name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
			i+1, name)
		if err != nil {
			log.Fatalf("Failed to seed team %q: %v", name, err)
		}
		if affected, err := res.RowsAffected(); err == nil && affected > 0 {
			seeded++
		}
	}

	fmt.Printf("Schema ready, %d of %d teams seeded\n", seeded, len(teams))
}
