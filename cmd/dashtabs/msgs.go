package dashtabs

// Short messages (one-liners)
const (
	MsgRootShort = "Inspect the tabs contributed to the admin dashboard"
	MsgRootLong  = `dashtabs loads the dashboard's feature modules and tab manifests into a
tab registry and shows the result: which groups exist, which tabs each group
holds, and in which order a renderer will display them.`

	MsgGroupsShort     = "List registered tab groups"
	MsgListShort       = "List the tabs of a group in display order"
	MsgShowShort       = "Show one tab and its contents"
	MsgValidateShort   = "Check tab manifests without loading them"
	MsgExportShort     = "Write a group out as a tab manifest"
	MsgConfigShort     = "Print a starting configuration file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default $XDG_CONFIG_HOME/dashtabs/config.toml)"
	MsgFlagFormat   = "Output format: auto, term, text or json"
	MsgFlagManifest = "Additional tab manifest to load (repeatable)"
	MsgFlagExportAs = "Manifest format: toml, yaml or xml"
	MsgFlagManDir   = "Directory to write man pages to"

	MsgValidManifest = "%s: ok (%d tabs)\n"
	MsgNoCommand     = "no command specified"
)

// MsgUsageTemplate is the usage template, using the formatting helpers
const MsgUsageTemplate = `{{boldUpper "usage"}}:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if .HasAvailableSubCommands}}

{{boldUpper "commands"}}:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "flags"}}:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "global flags"}}:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
