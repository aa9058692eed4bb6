// Package rules exposes per-carrier pricing configuration behind an
// immutable, atomically swappable snapshot.
package rules

import (
	"strings"
	"sync/atomic"

	"github.com/voyageware/farequote/internal/config"
	"go.uber.org/zap"
)

// Snapshot is a read-only view of the carrier rule table. Evaluations hold
// the snapshot they started with, so a concurrent reload never exposes a
// partially updated table.
type Snapshot struct {
	carriers map[string]config.CarrierRuleConfig
}

// NewSnapshot builds a snapshot from a carrier rule table. Keys are
// normalized to uppercase; the input map is copied, not retained.
func NewSnapshot(carriers map[string]config.CarrierRuleConfig) *Snapshot {
	normalized := make(map[string]config.CarrierRuleConfig, len(carriers))
	for code, cfg := range carriers {
		normalized[normalizeCode(code)] = cfg
	}
	return &Snapshot{carriers: normalized}
}

// Lookup returns the rule config for a carrier code. Unknown codes yield an
// empty record, which downstream policies treat as "use every default";
// the snapshot itself never supplies defaults.
func (s *Snapshot) Lookup(carrierCode string) config.CarrierRuleConfig {
	if s == nil {
		return config.CarrierRuleConfig{}
	}
	return s.carriers[normalizeCode(carrierCode)]
}

// Len returns the number of configured carriers.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.carriers)
}

// Store holds the current carrier rule snapshot and supports reloading it
// from the rules file without disturbing in-flight evaluations.
type Store struct {
	logger    *zap.Logger
	rulesPath string
	current   atomic.Pointer[Snapshot]
}

// NewStore creates a store seeded with the given carrier table. If logger
// is nil, a no-op logger is used.
func NewStore(logger *zap.Logger, carriers map[string]config.CarrierRuleConfig) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	store := &Store{logger: logger}
	store.current.Store(NewSnapshot(carriers))
	return store
}

// NewStoreFromFile creates a store by loading the carrier rules file at the
// given path and remembers the path for later reloads.
func NewStoreFromFile(logger *zap.Logger, rulesPath string) (*Store, error) {
	carriers, err := config.LoadCarrierRules(rulesPath)
	if err != nil {
		return nil, err
	}
	store := NewStore(logger, carriers)
	store.rulesPath = rulesPath
	return store, nil
}

// SetRulesPath sets the file Reload reads from, for stores seeded from an
// already loaded table.
func (s *Store) SetRulesPath(rulesPath string) {
	s.rulesPath = rulesPath
}

// Snapshot returns the current rule snapshot.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Reload re-reads the rules file and atomically swaps in the new snapshot.
// On failure the previous snapshot stays in place.
func (s *Store) Reload() error {
	carriers, err := config.LoadCarrierRules(s.rulesPath)
	if err != nil {
		s.logger.Error("failed to reload carrier rules",
			zap.String("op", "rules.Reload"),
			zap.String("path", s.rulesPath),
			zap.Error(err),
		)
		return err
	}

	snapshot := NewSnapshot(carriers)
	s.current.Store(snapshot)
	s.logger.Info("carrier rules reloaded",
		zap.String("op", "rules.Reload"),
		zap.String("path", s.rulesPath),
		zap.Int("carriers", snapshot.Len()),
	)
	return nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
