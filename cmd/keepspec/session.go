package keepspec

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/keepspec/pkg/config"
	"github.com/arthur-debert/keepspec/pkg/configuration"
	"github.com/arthur-debert/keepspec/pkg/dsl"
	"github.com/arthur-debert/keepspec/pkg/errors"
	"github.com/arthur-debert/keepspec/pkg/logging"
	"github.com/arthur-debert/keepspec/pkg/rulefile"
	"github.com/arthur-debert/keepspec/pkg/ui"
)

// session is the state a command works with: the tool settings and the
// evaluated rule file
type session struct {
	settings *config.Config
	format   ui.Format
	ruleFile string
	task     *dsl.Task
}

func (o *Options) settings() (*config.Config, error) {
	return config.LoadFrom(o.ConfigPath)
}

// outputFormat resolves --color, falling back to output.color
func (o *Options) outputFormat(cmd *cobra.Command, settings *config.Config) (ui.Format, error) {
	color := o.Color
	if color == "" {
		color = settings.Output.Color
	}
	f, err := ui.ParseColor(color)
	if err != nil {
		return ui.FormatText, err
	}
	return ui.Resolve(f, cmd.OutOrStdout()), nil
}

// open loads the settings and evaluates the rule file named in args, or
// the first rules.search match in the working directory.
func (o *Options) open(cmd *cobra.Command, args []string) (*session, error) {
	logger := logging.GetLogger("cmd")
	defer logging.LogOperationStart(logger, cmd.Name())()

	settings, err := o.settings()
	if err != nil {
		return nil, err
	}
	format, err := o.outputFormat(cmd, settings)
	if err != nil {
		return nil, err
	}

	path := ""
	if len(args) > 0 {
		path = args[0]
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to get working directory")
		}
		if path, err = settings.FindRuleFile(cwd); err != nil {
			return nil, err
		}
	}

	doc, err := rulefile.Load(path)
	if err != nil {
		return nil, err
	}
	task := dsl.New()
	if err := settings.ApplyDefaults(task); err != nil {
		return nil, err
	}
	if err := doc.Apply(task); err != nil {
		return nil, err
	}
	task.Freeze()

	logger.Info().Str("ruleFile", path).Int("keep", len(task.Configuration().Keep)).Msg("Rule file evaluated")
	return &session{settings: settings, format: format, ruleFile: path, task: task}, nil
}

func (s *session) configuration() *configuration.Configuration {
	return s.task.Configuration()
}
