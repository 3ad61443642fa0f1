package tabs

import (
	"fmt"
	"regexp"
	"slices"
	"sort"
	"sync"

	"github.com/arthur-debert/dashtabs/pkg/errors"
	"github.com/arthur-debert/dashtabs/pkg/logging"
	"github.com/arthur-debert/dashtabs/pkg/placement"
	"github.com/rs/zerolog"
)

var namePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// ValidName reports whether name may be used for a tab
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Registry holds the tabs of every group, each group kept in placement order.
// It is safe for concurrent use; readers never see a partially sorted group.
// The zero value is an empty registry that logs nothing; New attaches the
// component logger.
type Registry struct {
	mu     sync.RWMutex
	groups map[string][]*Tab
	logger zerolog.Logger
}

// New creates an empty registry
func New() *Registry {
	return &Registry{
		groups: make(map[string][]*Tab),
		logger: logging.GetLogger("tabs"),
	}
}

// Register adds a tab to group. It fails with ErrInvalidTabName if name does
// not match ^[a-z0-9_]+$, with ErrInvalidPlacement for an unknown bucket, and
// with ErrDuplicateTab if group already has a tab called name. A failed call
// leaves the registry unchanged.
func (r *Registry) Register(group, name, title string, opts ...Option) error {
	if !ValidName(name) {
		r.logger.Warn().Str("group", group).Str("name", name).Msg("Rejected tab with invalid name")
		return errors.Newf(errors.ErrInvalidTabName,
			"invalid tab name %q: tabs must be named with lowercase letters, numbers, and underscore only", name).
			WithDetail("group", group).
			WithDetail("name", name)
	}

	tab := &Tab{
		group: group,
		name:  name,
		title: title,
	}
	for _, opt := range opts {
		opt(tab)
	}
	if tab.placement == "" {
		tab.placement = placement.Default
	}
	if !tab.placement.Valid() {
		return errors.Newf(errors.ErrInvalidPlacement, "tab %q has unknown placement %q", name, tab.placement).
			WithDetail("group", group).
			WithDetail("name", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if findTab(r.groups[group], name) != nil {
		r.logger.Warn().Str("group", group).Str("name", name).Msg("Rejected duplicate tab")
		return errors.Newf(errors.ErrDuplicateTab,
			"there is already a tab named %q registered in group %q", name, group).
			WithDetail("group", group).
			WithDetail("name", name)
	}

	if r.groups == nil {
		r.groups = make(map[string][]*Tab)
	}
	entries := append(r.groups[group], tab)
	slices.SortStableFunc(entries, func(a, b *Tab) int {
		return placement.Compare(a, b)
	})
	r.groups[group] = entries

	r.logger.Debug().
		Str("group", group).
		Str("name", name).
		Str("placement", tab.placement.String()).
		Msg("Registered tab")
	return nil
}

// UnregisterGroup removes group and all its tabs. It is a no-op for an
// unknown group.
//
// Deprecated: intended for test teardown and module reloads only. Single
// tabs cannot be removed.
func (r *Registry) UnregisterGroup(group string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.groups[group]; exists {
		delete(r.groups, group)
		r.logger.Debug().Str("group", group).Msg("Unregistered tab group")
	}
}

// GetTab returns the tab called name in group. The boolean is false when
// either the group or the tab does not exist.
func (r *Registry) GetTab(group, name string) (*Tab, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tab := findTab(r.groups[group], name)
	return tab, tab != nil
}

// GetTabGroup returns the tabs of group in placement order, or false if the
// group has never been populated or was unregistered. The slice is the
// caller's to keep; the tabs in it are the registered ones, so contents set
// through them are visible to every reader.
func (r *Registry) GetTabGroup(group string) ([]*Tab, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries, exists := r.groups[group]
	if !exists {
		return nil, false
	}
	return slices.Clone(entries), true
}

// Has reports whether group contains a tab called name
func (r *Registry) Has(group, name string) bool {
	_, ok := r.GetTab(group, name)
	return ok
}

// Groups returns all group names in sorted order
func (r *Registry) Groups() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.groups))
	for name := range r.groups {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Count returns the number of tabs in group
func (r *Registry) Count(group string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.groups[group])
}

func findTab(entries []*Tab, name string) *Tab {
	for _, tab := range entries {
		if tab.name == name {
			return tab
		}
	}
	return nil
}

// MustRegister registers a tab and panics if registration fails.
// This is useful in start-up code where a bad registration is a programming error.
func MustRegister(reg *Registry, group, name, title string, opts ...Option) {
	if err := reg.Register(group, name, title, opts...); err != nil {
		panic(fmt.Sprintf("failed to register tab %s/%s: %v", group, name, err))
	}
}
