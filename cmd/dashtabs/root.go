package dashtabs

import (
	"errors"

	"github.com/arthur-debert/dashtabs/internal/version"
	"github.com/arthur-debert/dashtabs/pkg/modules"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRootCmd(catalog modules.Catalog) *cobra.Command {
	rootCmd, _ := newRoot(catalog)
	return rootCmd
}

const (
	coreGroup = "core"
	miscGroup = "misc"
)

func newRoot(catalog modules.Catalog) (*cobra.Command, *app) {
	initTemplateFormatting()

	a := &app{catalog: catalog}

	rootCmd := &cobra.Command{
		Use:     "dashtabs",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Misc commands must keep working with a broken user config
			if cmd.GroupID == miscGroup {
				return nil
			}
			if err := a.setup(cmd); err != nil {
				return err
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(MsgNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.flags.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&a.flags.configFile, "config", "", MsgFlagConfig)
	flags.StringVar(&a.flags.format, "format", "auto", MsgFlagFormat)
	flags.StringArrayVar(&a.flags.manifests, "manifest", nil, MsgFlagManifest)

	rootCmd.AddGroup(&cobra.Group{ID: coreGroup, Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: miscGroup, Title: "MISC:"})
	rootCmd.SetHelpCommandGroupID(miscGroup)
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	for _, cmd := range []*cobra.Command{
		newGroupsCmd(a),
		newListCmd(a),
		newShowCmd(a),
		newValidateCmd(a),
		newExportCmd(a),
	} {
		cmd.GroupID = coreGroup
		rootCmd.AddCommand(cmd)
	}

	for _, cmd := range []*cobra.Command{
		newConfigCmd(),
		newVersionCmd(),
		newCompletionCmd(),
		newManCmd(rootCmd),
	} {
		cmd.GroupID = miscGroup
		rootCmd.AddCommand(cmd)
	}

	return rootCmd, a
}
