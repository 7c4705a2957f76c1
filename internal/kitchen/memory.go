// Package kitchen provides kitchen profile storage.
package kitchen

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/hazemq/souschef/internal/domain"
)

// DefaultProfile is the profile every store starts with.
const DefaultProfile = "home"

// Compile-time interface check.
var _ domain.ProfileStore = (*MemoryStore)(nil)

// MemoryStore keeps named kitchen profiles (home, travel, work) in memory.
// Safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]domain.KitchenProfile
	log      *zap.SugaredLogger
}

// NewMemoryStore creates a store seeded with a basic "home" profile.
func NewMemoryStore(log *zap.SugaredLogger) *MemoryStore {
	s := &MemoryStore{
		profiles: make(map[string]domain.KitchenProfile),
		log:      log,
	}
	s.profiles[DefaultProfile] = domain.NewKitchenProfile(DefaultProfile,
		[]string{"pan", "oven", "stove"},
		[]string{"knife", "cutting board"},
	)
	return s
}

// Get returns the named profile.
func (s *MemoryStore) Get(ctx context.Context, name string) (domain.KitchenProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[normalize(name)]
	if !ok {
		return domain.KitchenProfile{}, domain.ErrNotFound
	}
	return p, nil
}

// Save stores a profile under its name, overwriting any existing one.
func (s *MemoryStore) Save(ctx context.Context, p domain.KitchenProfile) error {
	name := normalize(p.Name)
	if name == "" {
		return &domain.ValidationError{Field: "name", Reason: "missing"}
	}
	p.Name = name

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[name] = p
	s.log.Debugw("saved kitchen profile", "name", name,
		"appliances", len(p.Appliances), "utensils", len(p.Utensils))
	return nil
}

// AddAppliance adds an appliance to the named profile.
func (s *MemoryStore) AddAppliance(ctx context.Context, profile, appliance string) error {
	return s.update(profile, func(p *domain.KitchenProfile) {
		p.Appliances[normalize(appliance)] = struct{}{}
	})
}

// AddUtensil adds a utensil to the named profile.
func (s *MemoryStore) AddUtensil(ctx context.Context, profile, utensil string) error {
	return s.update(profile, func(p *domain.KitchenProfile) {
		p.Utensils[normalize(utensil)] = struct{}{}
	})
}

// Names lists the stored profile names, sorted.
func (s *MemoryStore) Names(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

func (s *MemoryStore) update(profile string, fn func(*domain.KitchenProfile)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[normalize(profile)]
	if !ok {
		return domain.ErrNotFound
	}
	fn(&p)
	s.profiles[p.Name] = p
	return nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
