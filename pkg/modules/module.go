package modules

import (
	"github.com/arthur-debert/dashtabs/pkg/manifest"
	"github.com/arthur-debert/dashtabs/pkg/tabs"
)

// Module contributes tabs to the registry
type Module interface {
	Name() string
	RegisterTabs(reg *tabs.Registry) error
}

// Func adapts a plain function into a Module
type Func struct {
	ModuleName string
	Register   func(reg *tabs.Registry) error
}

func (f Func) Name() string { return f.ModuleName }

func (f Func) RegisterTabs(reg *tabs.Registry) error { return f.Register(reg) }

// ManifestModule is a module declared by a manifest file
type ManifestModule struct {
	manifest *manifest.Manifest
	path     string
}

// FromManifest loads the manifest at path as a module
func FromManifest(path string) (*ManifestModule, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	return &ManifestModule{manifest: m, path: path}, nil
}

func (m *ManifestModule) Name() string { return m.manifest.Module }

// Path is the manifest file the module came from
func (m *ManifestModule) Path() string { return m.path }

func (m *ManifestModule) RegisterTabs(reg *tabs.Registry) error {
	return m.manifest.Apply(reg)
}
