package repos

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"grocerhub/internal/domain"
	applog "grocerhub/internal/log"
)

const (
	usersFile     = "users.json"
	productsFile  = "products.json"
	ordersFile    = "orders.json"
	suppliersFile = "suppliers.json"
)

// Store is a directory of flat JSON collection files, one array per entity
// type. Every operation is a whole-collection read or write; there is no
// locking, so the discipline is last-writer-wins at file granularity.
type Store struct {
	dir string
}

func NewStore(dir string) *Store { return &Store{dir: dir} }

func (s *Store) Dir() string { return s.dir }

// Init creates the data directory and seeds users.json with the bootstrap
// admin account when no user file exists yet. Existing files are left alone.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if _, err := os.Stat(s.path(usersFile)); os.IsNotExist(err) {
		admin := domain.User{
			Name:     "Admin",
			DOB:      "01-01-2000",
			Phone:    "admin",
			Location: "System",
			Password: "admin123",
			Role:     domain.RoleAdmin,
		}
		if err := saveAll(s, usersFile, []domain.User{admin}); err != nil {
			return err
		}
	}
	for _, name := range []string{productsFile, ordersFile, suppliersFile} {
		if _, err := os.Stat(s.path(name)); os.IsNotExist(err) {
			if err := saveAll(s, name, []json.RawMessage{}); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Store) path(name string) string { return filepath.Join(s.dir, name) }

// loadAll reads one collection file. A missing or unparsable file yields an
// empty slice, never an error: corruption is treated as no data. The decode
// failure is logged so the degradation is visible.
func loadAll[T any](s *Store, name string) []T {
	b, err := os.ReadFile(s.path(name))
	if err != nil {
		return nil
	}
	var out []T
	if err := json.Unmarshal(b, &out); err != nil {
		applog.Error(nil, "store.load.corrupt", err, map[string]any{"file": name})
		return nil
	}
	return out
}

// saveAll replaces one collection file wholesale. The array is written to a
// temp file and renamed into place so a reader never sees a partial write.
// Write failures are surfaced to the caller; the in-memory mutation must not
// be considered durable if this errors.
func saveAll[T any](s *Store, name string, items []T) error {
	if items == nil {
		items = []T{}
	}
	b, err := json.MarshalIndent(items, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	tmp := s.path(name + ".tmp")
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, s.path(name)); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// nextID recomputes max(id)+1 from a freshly loaded collection on every call
// so intervening mutations cannot hand out a colliding ID.
func nextID[T any](items []T, id func(T) int) int {
	max := 0
	for _, it := range items {
		if v := id(it); v > max {
			max = v
		}
	}
	return max + 1
}
