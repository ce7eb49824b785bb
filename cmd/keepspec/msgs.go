package keepspec

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Build shrinker configurations from rule files"
	MsgRenderShort     = "Write the configuration of a rule file"
	MsgDescribeShort   = "Summarize a rule file"
	MsgFlagsShort      = "List the processing flags"
	MsgFlagsLong       = "Flags lists every flag verb a rule file may name, the configuration field it sets and its default."
	MsgOutputsShort    = "List the files a run reads or writes"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Output
	MsgRenderedTo  = "Wrote %s configuration to %s\n"
	MsgFlagsHeader = "Flag"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrTooManyArgs = "accepts at most one rule file"
	MsgErrWriteOutput = "failed to write %s"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Settings file (default $XDG_CONFIG_HOME/keepspec/config.toml)"
	MsgFlagColor   = "Color output: auto, always or never (default from output.color)"
	MsgFlagFormat  = "Output format: %s (default from output.format)"
	MsgFlagOutput  = "Write to this file instead of standard output"
	MsgFlagInputs  = "List the files read instead of the files written"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/describe-long.txt
	msgDescribeLongRaw string
	MsgDescribeLong    = strings.TrimSpace(msgDescribeLongRaw)

	//go:embed msgs/outputs-long.txt
	msgOutputsLongRaw string
	MsgOutputsLong    = strings.TrimSpace(msgOutputsLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	MsgUsageTemplate string
)
