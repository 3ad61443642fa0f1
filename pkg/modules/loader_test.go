package modules_test

import (
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dashtabs/pkg/errors"
	"github.com/arthur-debert/dashtabs/pkg/modules"
	"github.com/arthur-debert/dashtabs/pkg/placement"
	"github.com/arthur-debert/dashtabs/pkg/tabs"
	"github.com/arthur-debert/dashtabs/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tabModule(name, group, tab string, p placement.Placement) modules.Module {
	return modules.Func{
		ModuleName: name,
		Register: func(reg *tabs.Registry) error {
			return reg.Register(group, tab, tab, tabs.WithPlacement(p))
		},
	}
}

func TestLoaderRunsModulesInOrder(t *testing.T) {
	loader := modules.NewLoader()
	require.NoError(t, loader.Add(tabModule("reports", "analytics", "reports", placement.Middle)))
	require.NoError(t, loader.Add(tabModule("grades", "analytics", "grades", placement.Middle)))
	require.NoError(t, loader.Add(tabModule("intro", "analytics", "intro", placement.Beginning)))

	assert.Equal(t, []string{"reports", "grades", "intro"}, loader.Modules())

	reg := tabs.New()
	require.NoError(t, loader.Load(reg))

	group, ok := reg.GetTabGroup("analytics")
	require.True(t, ok)
	assert.Equal(t, []string{"intro", "reports", "grades"}, testutil.TabNames(group))
}

func TestLoaderRejectsDuplicateModules(t *testing.T) {
	loader := modules.NewLoader()
	require.NoError(t, loader.Add(tabModule("reports", "g", "a", placement.Middle)))

	err := loader.Add(tabModule("reports", "g", "b", placement.Middle))
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
}

func TestLoaderStopsAtFirstFailure(t *testing.T) {
	ran := false
	loader := modules.NewLoader()
	require.NoError(t, loader.Add(tabModule("first", "g", "shared", placement.Middle)))
	require.NoError(t, loader.Add(tabModule("second", "g", "shared", placement.Middle)))
	require.NoError(t, loader.Add(modules.Func{ModuleName: "third", Register: func(*tabs.Registry) error {
		ran = true
		return nil
	}}))

	err := loader.Load(tabs.New())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrModuleLoad))
	assert.Equal(t, "second", errors.GetErrorDetails(err)["module"])
	assert.True(t, stderrors.Is(err, errors.New(errors.ErrDuplicateTab, "")), "registry error is kept in the chain")
	assert.False(t, ran)
}

func TestAddFromCatalog(t *testing.T) {
	catalog, err := modules.NewCatalog(
		tabModule("alpha", "g", "alpha", placement.Middle),
		tabModule("beta", "g", "beta", placement.Middle),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, catalog.List())

	loader := modules.NewLoader()
	require.NoError(t, loader.AddFromCatalog(catalog, "beta", "alpha"))
	assert.Equal(t, []string{"beta", "alpha"}, loader.Modules())

	err = loader.AddFromCatalog(catalog, "gamma")
	assert.True(t, errors.IsErrorCode(err, errors.ErrModuleLoad))

	_, err = modules.NewCatalog(tabModule("same", "g", "a", placement.Middle), tabModule("same", "g", "b", placement.Middle))
	assert.Error(t, err)
}

func TestAddManifests(t *testing.T) {
	dir := t.TempDir()
	path := testutil.CreateFile(t, dir, "extras.toml", `
module = "extras"

[[tabs]]
group = "settings"
name = "extras"
title = "Extras"
placement = "beginning"
`)

	loader := modules.NewLoader()
	require.NoError(t, loader.AddManifests(path))
	assert.Equal(t, []string{"extras"}, loader.Modules())

	reg := tabs.New()
	require.NoError(t, loader.Load(reg))
	assert.True(t, reg.Has("settings", "extras"))

	err := loader.AddManifests(filepath.Join(dir, "missing.toml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestLoad))
}

func TestManifestModulePath(t *testing.T) {
	path := testutil.CreateFile(t, t.TempDir(), "solo.yaml", "tabs: []\n")

	m, err := modules.FromManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "solo", m.Name())
	assert.Equal(t, path, m.Path())
}
