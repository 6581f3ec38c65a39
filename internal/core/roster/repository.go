package roster

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/rosterdb/rosterdb/internal/storage/postgres"
)

// selectRecord is the single projection every read path goes through.
const selectRecord = `
	SELECT
		players.id,
		players.first_name,
		players.last_name,
		players.position,
		players.jersey_number,
		players.height_cm,
		players.weight_kg,
		TO_CHAR(players.birthdate, 'DD.MM.YYYY') AS birth_date,
		players.nationality,
		teams.team_name AS team
	FROM players
	JOIN teams ON players.team_id = teams.id`

type Repository struct {
	db *postgres.Client
}

func NewRepository(db *postgres.Client) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Search(ctx context.Context, p Predicate) ([]*Record, error) {
	query := selectRecord
	if p.Clause != "" {
		query += " WHERE " + p.Clause
	}

	rows, err := r.db.DB.QueryContext(ctx, query, p.Args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanRecords(rows)
}

func (r *Repository) GetByID(ctx context.Context, id int) (*Record, error) {
	query := selectRecord + ` WHERE players.id = $1`
	return r.scanRecord(r.db.DB.QueryRowContext(ctx, query, id))
}

func (r *Repository) GetByTeam(ctx context.Context, name string) ([]*Record, error) {
	return r.searchColumn(ctx, "teams.team_name", name)
}

func (r *Repository) GetByPosition(ctx context.Context, value string) ([]*Record, error) {
	return r.searchColumn(ctx, "players.position", value)
}

func (r *Repository) GetByNationality(ctx context.Context, value string) ([]*Record, error) {
	return r.searchColumn(ctx, "players.nationality", value)
}

func (r *Repository) searchColumn(ctx context.Context, column, value string) ([]*Record, error) {
	query := selectRecord + ` WHERE ` + column + ` ILIKE $1`

	rows, err := r.db.DB.QueryContext(ctx, query, "%"+value+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanRecords(rows)
}

func (r *Repository) TeamExists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM teams WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// Insert adds a player row. The store's constraints are the final authority
// on races: a duplicate id surfaces as ErrAlreadyExists and a missing team
// as ErrTeamNotFound regardless of any advisory pre-checks.
func (r *Repository) Insert(ctx context.Context, p *Player) error {
	query := `
		INSERT INTO players (id, first_name, last_name, position, jersey_number,
			height_cm, weight_kg, birthdate, nationality, team_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.DB.ExecContext(ctx, query,
		p.ID, p.FirstName, p.LastName, p.Position, p.JerseyNumber,
		p.HeightCM, p.WeightKG, p.Birthdate, p.Nationality, p.TeamID,
	)
	return translateConstraint(err)
}

// Update replaces every mutable attribute of the player with the given id.
// It reports whether a row was actually updated.
func (r *Repository) Update(ctx context.Context, id int, p *Player) (bool, error) {
	query := `
		UPDATE players
		SET first_name = $2, last_name = $3, position = $4, jersey_number = $5,
			height_cm = $6, weight_kg = $7, birthdate = $8, nationality = $9,
			team_id = $10
		WHERE id = $1`

	res, err := r.db.DB.ExecContext(ctx, query,
		id, p.FirstName, p.LastName, p.Position, p.JerseyNumber,
		p.HeightCM, p.WeightKG, p.Birthdate, p.Nationality, p.TeamID,
	)
	if err != nil {
		return false, translateConstraint(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *Repository) Remove(ctx context.Context, id int) error {
	_, err := r.db.DB.ExecContext(ctx, `DELETE FROM players WHERE id = $1`, id)
	return err
}

func translateConstraint(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "unique_violation":
			return ErrAlreadyExists
		case "foreign_key_violation":
			return ErrTeamNotFound
		}
	}
	return err
}

func (r *Repository) scanRecord(row *sql.Row) (*Record, error) {
	record := &Record{}

	err := row.Scan(
		&record.ID, &record.FirstName, &record.LastName, &record.Position,
		&record.JerseyNumber, &record.HeightCM, &record.WeightKG,
		&record.BirthDate, &record.Nationality, &record.Team,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return record, nil
}

func (r *Repository) scanRecords(rows *sql.Rows) ([]*Record, error) {
	var records []*Record
	for rows.Next() {
		record := &Record{}
		if err := rows.Scan(
			&record.ID, &record.FirstName, &record.LastName, &record.Position,
			&record.JerseyNumber, &record.HeightCM, &record.WeightKG,
			&record.BirthDate, &record.Nationality, &record.Team,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
