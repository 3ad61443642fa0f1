package dashtabs

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dashtabs/internal/version"
	"github.com/arthur-debert/dashtabs/pkg/config"
	"github.com/arthur-debert/dashtabs/pkg/errors"
	"github.com/arthur-debert/dashtabs/pkg/logging"
	"github.com/arthur-debert/dashtabs/pkg/manifest"
	"github.com/arthur-debert/dashtabs/pkg/render"
	"github.com/arthur-debert/dashtabs/pkg/tabs"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newGroupsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: MsgGroupsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry()
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return r.RenderGroups(render.Summaries(reg))
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list <group>",
		Short: MsgListShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry()
			if err != nil {
				return err
			}
			group, err := lookupGroup(reg, args[0])
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return r.RenderGroup(args[0], group)
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <group> <tab>",
		Short: MsgShowShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry()
			if err != nil {
				return err
			}
			if _, err := lookupGroup(reg, args[0]); err != nil {
				return err
			}
			tab, ok := reg.GetTab(args[0], args[1])
			if !ok {
				return errors.Newf(errors.ErrNotFound, "group %q has no tab %q", args[0], args[1]).
					WithDetail("group", args[0]).
					WithDetail("name", args[1])
			}
			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return r.RenderTab(tab)
		},
	}
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <manifest>...",
		Short: MsgValidateShort,
		Long: `Validate parses each manifest, checks every entry, and registers all of
them together into an empty registry so that clashes between manifests are
reported too. Built-in modules are not loaded.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.validate")
			scratch := tabs.New()

			for _, path := range args {
				m, err := manifest.Load(path)
				if err != nil {
					return err
				}
				if err := m.Apply(scratch); err != nil {
					return errors.Wrapf(err, errors.ErrManifestInvalid, "%s", path)
				}
				logger.Info().Str("path", path).Int("tabs", len(m.Tabs)).Msg("Manifest is valid")
				fmt.Fprintf(cmd.OutOrStdout(), MsgValidManifest, path, len(m.Tabs))
			}
			return nil
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	var as string

	cmd := &cobra.Command{
		Use:   "export <group>",
		Short: MsgExportShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := manifest.ParseFormat(as)
			if err != nil {
				return err
			}
			reg, err := a.registry()
			if err != nil {
				return err
			}
			group, err := lookupGroup(reg, args[0])
			if err != nil {
				return err
			}

			data, err := manifest.FromTabs(args[0], group).Encode(format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&as, "as", string(manifest.FormatTOML), MsgFlagExportAs)
	return cmd
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long: fmt.Sprintf(`Print the default configuration with every value commented out.
Save it as %s/config.toml and uncomment what you want to change.`, config.ConfigDir()),
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), config.GenerateConfigContent())
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "dashtabs version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(dashtabs completion bash)

Zsh:
  $ dashtabs completion zsh > "${fpath[1]}/_dashtabs"

Fish:
  $ dashtabs completion fish | source

PowerShell:
  PS> dashtabs completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func newManCmd(root *cobra.Command) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "man",
		Short: MsgManShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "cannot create %s", dir)
			}
			header := &doc.GenManHeader{
				Title:   "DASHTABS",
				Section: "1",
			}
			return doc.GenManTree(root, header, dir)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", MsgFlagManDir)
	return cmd
}

// lookupGroup turns a missing group into a user-facing error
func lookupGroup(reg *tabs.Registry, name string) ([]*tabs.Tab, error) {
	group, ok := reg.GetTabGroup(name)
	if !ok {
		return nil, errors.Newf(errors.ErrNotFound, "no tab group named %q", name).
			WithDetail("group", name).
			WithDetail("available", reg.Groups())
	}
	return group, nil
}
