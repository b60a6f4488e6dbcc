package store

import (
	"context"

	"github.com/netai-lab/timetravel-eval/internal/report"
)

// Store persists one structured record per evaluated prediction source.
type Store interface {
	Save(ctx context.Context, scenario string, rec *report.Record) error
	Close() error
}

// Multi fans writes out to several stores in order. The first failing
// store aborts the write.
type Multi struct {
	stores []Store
}

func NewMulti(stores ...Store) *Multi {
	return &Multi{stores: stores}
}

func (m *Multi) Save(ctx context.Context, scenario string, rec *report.Record) error {
	for _, s := range m.stores {
		if err := s.Save(ctx, scenario, rec); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every store, returning the first error encountered.
func (m *Multi) Close() error {
	var firstErr error
	for _, s := range m.stores {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
