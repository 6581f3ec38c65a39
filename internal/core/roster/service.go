package roster

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rosterdb/rosterdb/internal/core/validation"
)

var (
	ErrNotFound      = errors.New("player not found")
	ErrAlreadyExists = errors.New("player already exists")
	ErrTeamNotFound  = errors.New("team not found")
	ErrUnknownField  = errors.New("unknown search field")
)

// birthdateLayout is the wire format for player input; reads always render
// DD.MM.YYYY instead.
const birthdateLayout = "2006-01-02"

// playerSchema validates mutation payloads before anything touches the store.
var playerSchema = map[string]interface{}{
	"type": "object",
	"required": []interface{}{
		"id", "first_name", "last_name", "position", "jersey_number",
		"height_cm", "weight_kg", "birthdate", "nationality", "team_id",
	},
	"properties": map[string]interface{}{
		"id":            map[string]interface{}{"type": "integer", "minimum": 1},
		"first_name":    map[string]interface{}{"type": "string", "minLength": 1},
		"last_name":     map[string]interface{}{"type": "string", "minLength": 1},
		"position":      map[string]interface{}{"type": "string", "minLength": 1},
		"jersey_number": map[string]interface{}{"type": "integer", "minimum": 0},
		"height_cm":     map[string]interface{}{"type": "integer", "minimum": 1},
		"weight_kg":     map[string]interface{}{"type": "integer", "minimum": 1},
		"birthdate":     map[string]interface{}{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
		"nationality":   map[string]interface{}{"type": "string", "minLength": 1},
		"team_id":       map[string]interface{}{"type": "integer", "minimum": 1},
	},
}

// Store is the persistence surface the service needs. *Repository satisfies
// it against Postgres.
type Store interface {
	Search(ctx context.Context, p Predicate) ([]*Record, error)
	GetByID(ctx context.Context, id int) (*Record, error)
	GetByTeam(ctx context.Context, name string) ([]*Record, error)
	GetByPosition(ctx context.Context, value string) ([]*Record, error)
	GetByNationality(ctx context.Context, value string) ([]*Record, error)
	TeamExists(ctx context.Context, id int) (bool, error)
	Insert(ctx context.Context, p *Player) error
	Update(ctx context.Context, id int, p *Player) (bool, error)
	Remove(ctx context.Context, id int) error
}

type Service struct {
	store     Store
	validator *validation.Validator
}

func NewService(store Store, validator *validation.Validator) *Service {
	return &Service{store: store, validator: validator}
}

// Search runs the filtered catalog query. An unrecognized field name is
// rejected rather than silently matching the whole catalog.
func (s *Service) Search(ctx context.Context, f Filter) ([]*Record, error) {
	predicate := BuildPredicate(f)
	if predicate.Unsupported != "" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, predicate.Unsupported)
	}

	records, err := s.store.Search(ctx, predicate)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []*Record{}
	}
	return records, nil
}

func (s *Service) Get(ctx context.Context, id int) (*Record, error) {
	record, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}
	return record, nil
}

func (s *Service) GetByTeam(ctx context.Context, name string) ([]*Record, error) {
	return s.nonEmpty(s.store.GetByTeam(ctx, name))
}

func (s *Service) GetByPosition(ctx context.Context, value string) ([]*Record, error) {
	return s.nonEmpty(s.store.GetByPosition(ctx, value))
}

func (s *Service) GetByNationality(ctx context.Context, value string) ([]*Record, error) {
	return s.nonEmpty(s.store.GetByNationality(ctx, value))
}

// nonEmpty surfaces an empty lookup result as ErrNotFound.
func (s *Service) nonEmpty(records []*Record, err error) ([]*Record, error) {
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	return records, nil
}

func (s *Service) Create(ctx context.Context, req *PlayerRequest) (*Record, error) {
	player, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	// Advisory pre-checks; the insert's constraints settle any race.
	exists, err := s.store.TeamExists(ctx, player.TeamID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: id %d", ErrTeamNotFound, player.TeamID)
	}

	existing, err := s.store.GetByID(ctx, player.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: id %d", ErrAlreadyExists, player.ID)
	}

	if err := s.store.Insert(ctx, player); err != nil {
		return nil, err
	}

	return s.Get(ctx, player.ID)
}

func (s *Service) Replace(ctx context.Context, id int, req *PlayerRequest) (*Record, error) {
	req.ID = id

	player, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	exists, err := s.store.TeamExists(ctx, player.TeamID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: id %d", ErrTeamNotFound, player.TeamID)
	}

	updated, err := s.store.Update(ctx, id, player)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	return s.Get(ctx, id)
}

// Delete removes the player and returns the prior record.
func (s *Service) Delete(ctx context.Context, id int) (*Record, error) {
	record, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	if err := s.store.Remove(ctx, id); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *Service) validate(req *PlayerRequest) (*Player, error) {
	if err := s.validator.Validate(req.payload(), playerSchema); err != nil {
		return nil, err
	}

	birthdate, err := time.Parse(birthdateLayout, req.Birthdate)
	if err != nil {
		return nil, &validation.ValidationErrors{Errors: []validation.ValidationError{
			{Field: "birthdate", Message: "must be a valid YYYY-MM-DD date"},
		}}
	}

	return &Player{
		ID:           req.ID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Position:     req.Position,
		JerseyNumber: req.JerseyNumber,
		HeightCM:     req.HeightCM,
		WeightKG:     req.WeightKG,
		Birthdate:    birthdate,
		Nationality:  req.Nationality,
		TeamID:       req.TeamID,
	}, nil
}
