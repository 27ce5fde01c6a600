package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LoadFixtures loads SQL fixture files into the database
func LoadFixtures(db *sql.DB, fixturesPath string, files []string) error {
	for _, file := range files {
		path := filepath.Join(fixturesPath, file)
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read fixture %s: %w", file, err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("load fixture %s: %w", file, err)
		}
		fmt.Printf("Loaded fixture: %s\n", file)
	}

	return nil
}

// InsertPlace creates a place without address references and returns its id
func InsertPlace(db *sql.DB, name string, lat, lng float64) (uuid.UUID, error) {
	id := uuid.New()
	_, err := db.ExecContext(context.Background(), `
		INSERT INTO geo_places (id, name, address, zip_code, location)
		VALUES ($1, $2, '', '', ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography)
	`, id, name, lng, lat)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert place %s: %w", name, err)
	}
	return id, nil
}

// InsertWheelchair creates a wheelchair and returns its id
func InsertWheelchair(db *sql.DB, name string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := db.ExecContext(context.Background(),
		`INSERT INTO wheelchairs (id, name) VALUES ($1, $2)`, id, name)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert wheelchair %s: %w", name, err)
	}
	return id, nil
}
