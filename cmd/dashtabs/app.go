package dashtabs

import (
	"io"

	"github.com/arthur-debert/dashtabs/pkg/config"
	"github.com/arthur-debert/dashtabs/pkg/logging"
	"github.com/arthur-debert/dashtabs/pkg/modules"
	"github.com/arthur-debert/dashtabs/pkg/render"
	"github.com/arthur-debert/dashtabs/pkg/tabs"
	"github.com/spf13/cobra"
)

// globalFlags are the persistent flags of the root command
type globalFlags struct {
	verbosity  int
	configFile string
	format     string
	manifests  []string
}

// app is the state shared by the subcommands of one invocation
type app struct {
	flags   globalFlags
	catalog modules.Catalog
	cfg     *config.Config
	reg     *tabs.Registry
}

// overrides turns explicitly set flags into config overrides
func (a *app) overrides(cmd *cobra.Command) map[string]interface{} {
	out := make(map[string]interface{})
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		out["log.verbosity"] = a.flags.verbosity
	}
	if flags.Changed("format") {
		out["output.format"] = a.flags.format
	}
	return out
}

// setup loads the configuration and configures logging
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: a.flags.configFile,
		Overrides:  a.overrides(cmd),
	})
	if err != nil {
		return err
	}
	a.cfg = cfg

	logging.SetupLoggerWithFile(cfg.Log.Verbosity, cfg.Log.File)
	return nil
}

// registry runs the configured modules and manifests into a fresh registry
func (a *app) registry() (*tabs.Registry, error) {
	if a.reg != nil {
		return a.reg, nil
	}

	loader := modules.NewLoader()
	if err := loader.AddFromCatalog(a.catalog, a.cfg.ActiveModules()...); err != nil {
		return nil, err
	}
	manifests := append(append([]string{}, a.cfg.Manifests.Paths...), a.flags.manifests...)
	if err := loader.AddManifests(manifests...); err != nil {
		return nil, err
	}

	reg := tabs.New()
	if err := loader.Load(reg); err != nil {
		return nil, err
	}
	a.reg = reg
	return reg, nil
}

// renderer builds the configured renderer writing to w
func (a *app) renderer(w io.Writer) (render.Renderer, error) {
	format, err := render.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	return render.New(format, w, render.Options{
		Style: a.cfg.Output.Style,
		Width: a.cfg.Output.Width,
	})
}
