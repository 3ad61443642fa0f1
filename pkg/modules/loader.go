package modules

import (
	"github.com/arthur-debert/dashtabs/pkg/errors"
	"github.com/arthur-debert/dashtabs/pkg/logging"
	"github.com/arthur-debert/dashtabs/pkg/registry"
	"github.com/arthur-debert/dashtabs/pkg/tabs"
	"github.com/rs/zerolog"
)

// Catalog maps module names to modules available for loading
type Catalog = registry.Registry[Module]

// NewCatalog creates a catalog holding mods
func NewCatalog(mods ...Module) (Catalog, error) {
	catalog := registry.New[Module]()
	for _, m := range mods {
		if err := catalog.Register(m.Name(), m); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}

// Loader runs modules in the order they were added
type Loader struct {
	modules []Module
	names   map[string]bool
	logger  zerolog.Logger
}

func NewLoader() *Loader {
	return &Loader{
		names:  make(map[string]bool),
		logger: logging.GetLogger("modules"),
	}
}

// Add appends a module. Module names must be unique.
func (l *Loader) Add(m Module) error {
	if l.names[m.Name()] {
		return errors.Newf(errors.ErrAlreadyExists, "module %q is already loaded", m.Name()).
			WithDetail("module", m.Name())
	}
	l.names[m.Name()] = true
	l.modules = append(l.modules, m)
	return nil
}

// AddFromCatalog adds the named modules in order
func (l *Loader) AddFromCatalog(catalog Catalog, names ...string) error {
	for _, name := range names {
		m, err := catalog.Get(name)
		if err != nil {
			return errors.Wrapf(err, errors.ErrModuleLoad, "unknown module %q", name).
				WithDetail("available", catalog.List())
		}
		if err := l.Add(m); err != nil {
			return err
		}
	}
	return nil
}

// AddManifests adds one module per manifest file
func (l *Loader) AddManifests(paths ...string) error {
	for _, path := range paths {
		m, err := FromManifest(path)
		if err != nil {
			return err
		}
		if err := l.Add(m); err != nil {
			return err
		}
	}
	return nil
}

// Modules returns the module names in load order
func (l *Loader) Modules() []string {
	names := make([]string, 0, len(l.modules))
	for _, m := range l.modules {
		names = append(names, m.Name())
	}
	return names
}

// Load registers every module's tabs into reg, stopping at the first error
func (l *Loader) Load(reg *tabs.Registry) error {
	done := logging.LogOperationStart(l.logger, "load-modules")
	defer done()

	for _, m := range l.modules {
		if err := m.RegisterTabs(reg); err != nil {
			l.logger.Error().Err(err).Str("module", m.Name()).Msg("Module failed to register its tabs")
			return errors.Wrapf(err, errors.ErrModuleLoad, "module %q failed to register its tabs", m.Name()).
				WithDetail("module", m.Name())
		}
		l.logger.Info().Str("module", m.Name()).Msg("Module loaded")
	}
	return nil
}
