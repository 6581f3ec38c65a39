package roster

import (
	"strconv"
	"time"
)

// Player is the stored row shape in the players table.
type Player struct {
	ID           int
	FirstName    string
	LastName     string
	Position     string
	JerseyNumber int
	HeightCM     int
	WeightKG     int
	Birthdate    time.Time
	Nationality  string
	TeamID       int
}

// Team is a read-only reference row joined into every record.
type Team struct {
	ID   int    `json:"id"`
	Name string `json:"team_name"`
}

// Record is the read model produced by joining players to teams. The birth
// date is rendered as DD.MM.YYYY so the client-visible format matches search
// input. Field order here fixes both json key order and csv column order.
type Record struct {
	ID           int    `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Position     string `json:"position"`
	JerseyNumber int    `json:"jersey_number"`
	HeightCM     int    `json:"height_cm"`
	WeightKG     int    `json:"weight_kg"`
	BirthDate    string `json:"birth_date"`
	Nationality  string `json:"nationality"`
	Team         string `json:"team"`
}

// Columns returns the record attribute names in declared order.
func (Record) Columns() []string {
	return []string{
		"id", "first_name", "last_name", "position", "jersey_number",
		"height_cm", "weight_kg", "birth_date", "nationality", "team",
	}
}

// Values returns the attribute values in the same order as Columns.
func (r *Record) Values() []string {
	return []string{
		strconv.Itoa(r.ID),
		r.FirstName,
		r.LastName,
		r.Position,
		strconv.Itoa(r.JerseyNumber),
		strconv.Itoa(r.HeightCM),
		strconv.Itoa(r.WeightKG),
		r.BirthDate,
		r.Nationality,
		r.Team,
	}
}

// Filter carries the raw search parameters as the HTTP layer parsed them.
// An empty Field (or the AllFields sentinel) means "search everywhere".
type Filter struct {
	Search string
	Field  string
}

// PlayerRequest is the create/replace payload. Birthdate is an ISO calendar
// date (YYYY-MM-DD); it is re-rendered as DD.MM.YYYY on every read path.
type PlayerRequest struct {
	ID           int    `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Position     string `json:"position"`
	JerseyNumber int    `json:"jersey_number"`
	HeightCM     int    `json:"height_cm"`
	WeightKG     int    `json:"weight_kg"`
	Birthdate    string `json:"birthdate"`
	Nationality  string `json:"nationality"`
	TeamID       int    `json:"team_id"`
}

func (p *PlayerRequest) payload() map[string]interface{} {
	return map[string]interface{}{
		"id":            p.ID,
		"first_name":    p.FirstName,
		"last_name":     p.LastName,
		"position":      p.Position,
		"jersey_number": p.JerseyNumber,
		"height_cm":     p.HeightCM,
		"weight_kg":     p.WeightKG,
		"birthdate":     p.Birthdate,
		"nationality":   p.Nationality,
		"team_id":       p.TeamID,
	}
}
