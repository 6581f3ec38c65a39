package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rosterdb/rosterdb/internal/core/roster"
)

// Snapshot artifact names, fixed so static serving can rely on them. Each
// snapshot run fully overwrites both.
const (
	SnapshotJSONFile = "nba_players.json"
	SnapshotCSVFile  = "nba_players.csv"
)

// Catalog is the search surface the coordinator composes with; the roster
// service satisfies it.
type Catalog interface {
	Search(ctx context.Context, f roster.Filter) ([]*roster.Record, error)
}

type Service struct {
	catalog Catalog
	dir     string
}

func NewService(catalog Catalog, dir string) *Service {
	return &Service{catalog: catalog, dir: dir}
}

// ExportFiltered runs the filtered search and encodes the result for
// download.
func (s *Service) ExportFiltered(ctx context.Context, f roster.Filter, format Format) (*Download, error) {
	records, err := s.catalog.Search(ctx, f)
	if err != nil {
		return nil, err
	}

	return Encode(records, format)
}

// SnapshotAll rewrites the full-catalog snapshot files. The two writes are
// not atomic; a crash between them can leave one artifact stale, which is
// acceptable for a derived cache.
func (s *Service) SnapshotAll(ctx context.Context) error {
	records, err := s.catalog.Search(ctx, roster.Filter{})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	artifacts := []struct {
		format Format
		name   string
	}{
		{FormatJSON, SnapshotJSONFile},
		{FormatCSV, SnapshotCSVFile},
	}

	for _, artifact := range artifacts {
		download, err := Encode(records, artifact.format)
		if err != nil {
			return err
		}
		path := filepath.Join(s.dir, artifact.name)
		if err := os.WriteFile(path, download.Data, 0o644); err != nil {
			return fmt.Errorf("failed to write snapshot %s: %w", artifact.name, err)
		}
	}

	return nil
}
