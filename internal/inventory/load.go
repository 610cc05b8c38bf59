package inventory

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// LoadResult summarizes a Load call.
type LoadResult struct {
	Added      int // records inserted into the store
	Duplicates int // records dropped because the ID was already present
}

// Load reads every record from storage and adds it to the store. Records
// whose ID is already present are dropped by the normal Add contract. A
// missing source is not an error: the store is left as it was.
func (s *Store) Load(storage types.Storage) (LoadResult, error) {
	var res LoadResult

	records, err := storage.Load()
	if err != nil {
		if errors.Is(err, types.ErrSourceNotFound) {
			s.log.Info().Err(err).Msg("no saved inventory, starting empty")
			return res, nil
		}
		return res, fmt.Errorf("loading inventory: %w", err)
	}

	for _, rec := range records {
		if s.Add(rec.Product()) {
			res.Added++
			continue
		}
		res.Duplicates++
		s.log.Debug().Str("product_id", rec.ID).Msg("dropping duplicate record")
	}

	s.log.Info().Int("added", res.Added).Int("duplicates", res.Duplicates).Msg("inventory loaded")
	return res, nil
}

// Save hands a snapshot of every product to storage.
func (s *Store) Save(storage types.Storage) error {
	records := s.Records()
	if err := storage.Save(records); err != nil {
		return fmt.Errorf("saving inventory: %w", err)
	}
	s.log.Info().Int("products", len(records)).Msg("inventory saved")
	return nil
}
