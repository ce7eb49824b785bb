package dsl

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/keepspec/pkg/classspec"
	"github.com/arthur-debert/keepspec/pkg/configuration"
	"github.com/arthur-debert/keepspec/pkg/errors"
	"github.com/arthur-debert/keepspec/pkg/flags"
	"github.com/arthur-debert/keepspec/pkg/logging"
)

// MsgFrozen is the usage error raised by verbs called after Freeze
const MsgFrozen = "configuration is frozen"

// Task accumulates DSL verb calls into a Configuration
type Task struct {
	cfg     *configuration.Configuration
	builder *classspec.Builder
	flags   *flags.Registry
	frozen  bool
	logger  zerolog.Logger
}

// Option configures a Task
type Option func(*Task)

// WithFlags replaces the flag registry used by Flag
func WithFlags(reg *flags.Registry) Option {
	return func(t *Task) { t.flags = reg }
}

// WithConfiguration starts the task from an existing configuration
func WithConfiguration(cfg *configuration.Configuration) Option {
	return func(t *Task) { t.cfg = cfg }
}

// New returns a task holding a default Configuration
func New(opts ...Option) *Task {
	t := &Task{
		cfg:     configuration.New(),
		builder: classspec.NewBuilder(),
		flags:   flags.Default(),
		logger:  logging.GetLogger("dsl"),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Configuration returns the configuration being accumulated. Callers must
// not mutate it directly.
func (t *Task) Configuration() *configuration.Configuration {
	return t.cfg
}

// Freeze ends evaluation and hands the configuration over. Later verbs
// fail with a usage error; query accessors keep working.
func (t *Task) Freeze() *configuration.Configuration {
	if !t.frozen {
		t.frozen = true
		t.logger.Debug().
			Int("keep", len(t.cfg.Keep)).
			Int("injars", t.cfg.Jars.In.Len()).
			Int("outjars", t.cfg.Jars.Out.Len()).
			Msg("configuration frozen")
	}
	return t.cfg
}

// Frozen reports whether Freeze was called
func (t *Task) Frozen() bool {
	return t.frozen
}

// begin is called first by every verb
func (t *Task) begin(verb string) error {
	if t.frozen {
		return errors.Newf(errors.ErrUsage, "%s: %s", verb, MsgFrozen).WithDetail("verb", verb)
	}
	t.logger.Trace().Str("verb", verb).Msg("dsl verb")
	return nil
}

// fail tags err with the verb that raised it
func fail(verb string, err error) error {
	return errors.AddDetail(err, "verb", verb)
}
