package seeder

import (
	"context"
	"fmt"
	"log"

	"skill-finder/internal/database"
)

// RunAll executes the seeders in order, stopping at the first failure.
func RunAll(ctx context.Context, db database.DB, logger *log.Logger, seeders ...Seeder) error {
	for _, s := range seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seeder %s: %w", s.Name(), err)
		}
		if logger != nil {
			logger.Printf("Seeder done | name=%s", s.Name())
		}
	}
	return nil
}
