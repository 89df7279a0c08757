package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort        = "Open URLs by short alias"
	MsgAddShort         = "Add aliases for a URL"
	MsgRemoveShort      = "Remove aliases"
	MsgListShort        = "List all aliases"
	MsgListLong         = "List shows every registered alias, grouped by the URL it opens."
	MsgExportShort      = "Export aliases as TOML"
	MsgExportLong       = "Export writes the [aliases] table of the config file, ready for 'web import'."
	MsgImportShort      = "Import aliases from a TOML file"
	MsgCompletionsShort = "Print a shell completion script"
	MsgVersionShort     = "Print version information"

	// Status messages
	MsgAdded            = "Added %s -> %s\n"
	MsgRemoved          = "Removed %s\n"
	MsgNoAliases        = "[muted]No aliases registered.[/muted]"
	MsgNoAliasesInInput = "[muted]No aliases found in input.[/muted]"
	MsgExported         = "Exported %d aliases to %s\n"
	MsgConflictTitle    = "Conflict for '%s'"
	MsgConflictDesc     = "current:  %s\nimported: %s"
	MsgKeepExisting     = "Keep existing (%s)"
	MsgUseImported      = "Use imported (%s)"
	MsgKeepAllExisting  = "Keep all existing"
	MsgUseAllImported   = "Use all imported"
	MsgVersionCommit    = "  commit: %s\n"
	MsgVersionBuilt     = "  built:  %s\n"
	MsgErrorPrefix      = "Error: "
	MsgOpening          = "Opening %s"

	// Error messages
	MsgErrNoAlias       = "No alias provided. Use 'web --help' for usage."
	MsgErrReadInput     = "Failed to read '%s'"
	MsgErrReadStdin     = "Failed to read from stdin"
	MsgErrParseInput    = "Failed to parse TOML input"
	MsgErrWriteExport   = "Failed to write '%s'"
	MsgErrNeedsTerminal = "Conflicting alias '%s' needs a decision: run in a terminal or pass --keep-existing or --overwrite"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagOutput       = "Write to a file instead of stdout"
	MsgFlagKeepExisting = "Keep current URLs on conflict"
	MsgFlagOverwrite    = "Use imported URLs on conflict"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/add-long.txt
	msgAddLongRaw string
	MsgAddLong    = strings.TrimSpace(msgAddLongRaw)

	//go:embed msgs/add-example.txt
	msgAddExampleRaw string
	MsgAddExample    = strings.TrimRight(msgAddExampleRaw, "\n")

	//go:embed msgs/remove-long.txt
	msgRemoveLongRaw string
	MsgRemoveLong    = strings.TrimSpace(msgRemoveLongRaw)

	//go:embed msgs/import-long.txt
	msgImportLongRaw string
	MsgImportLong    = strings.TrimSpace(msgImportLongRaw)

	//go:embed msgs/import-example.txt
	msgImportExampleRaw string
	MsgImportExample    = strings.TrimRight(msgImportExampleRaw, "\n")

	//go:embed msgs/completions-long.txt
	msgCompletionsLongRaw string
	MsgCompletionsLong    = strings.TrimSpace(msgCompletionsLongRaw)

	//go:embed msgs/completions-example.txt
	msgCompletionsExampleRaw string
	MsgCompletionsExample    = strings.TrimRight(msgCompletionsExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
