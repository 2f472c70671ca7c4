package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Manage a file-backed gesture library"
	MsgInfoShort       = "Show where the library lives and what it holds"
	MsgListShort       = "List entries and their gesture counts"
	MsgAddShort        = "Record a gesture under an entry name"
	MsgRemoveShort     = "Remove an entry, or one gesture from it"
	MsgExportShort     = "Write the library in another format"
	MsgImportShort     = "Merge a library file into the library"
	MsgConfigShort     = "Inspect configuration"
	MsgConfigShowShort = "Print the effective configuration"
	MsgConfigDefShort  = "Print the built-in defaults"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	MsgNoEntries      = "No gestures saved."
	MsgAddedFormat    = "Added gesture %d to %q\n"
	MsgRemovedEntry   = "Removed %q\n"
	MsgRemovedGesture = "Removed gesture %d from %q\n"
	MsgImportedFormat = "Imported %d gestures (%d already present)\n"
	MsgExportedFormat = "Exported %d entries to %s\n"
)

// Embedded message files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/add-example.txt
	msgAddExampleRaw string
	MsgAddExample    = strings.TrimRight(msgAddExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
