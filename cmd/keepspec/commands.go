package keepspec

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/keepspec/internal/version"
	"github.com/arthur-debert/keepspec/pkg/errors"
	"github.com/arthur-debert/keepspec/pkg/flags"
	"github.com/arthur-debert/keepspec/pkg/render"
	"github.com/arthur-debert/keepspec/pkg/ui"
)

func ruleFileArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return errors.New(errors.ErrUsage, MsgErrTooManyArgs).WithDetail("args", args)
	}
	return nil
}

func newRenderCmd(opts *Options) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:     "render [rulefile]",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		GroupID: "core",
		Args:    ruleFileArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd, args)
			if err != nil {
				return err
			}
			if format == "" {
				format = s.settings.Output.Format
			}
			renderer, err := render.Get(format)
			if err != nil {
				return err
			}

			if output == "" {
				return render.Render(cmd.OutOrStdout(), renderer.Name(), s.configuration())
			}
			f, err := os.Create(output)
			if err != nil {
				return errors.Wrapf(err, errors.ErrRender, MsgErrWriteOutput, output).WithDetail("path", output)
			}
			if err := render.Render(f, renderer.Name(), s.configuration()); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return errors.Wrapf(err, errors.ErrRender, MsgErrWriteOutput, output).WithDetail("path", output)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), MsgRenderedTo, renderer.Name(), ui.Styled(s.format, ui.PathStyle, output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", fmt.Sprintf(MsgFlagFormat, strings.Join(render.Names(), ", ")))
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(render.Names(), cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

func newDescribeCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:     "describe [rulefile]",
		Short:   MsgDescribeShort,
		Long:    MsgDescribeLong,
		GroupID: "core",
		Args:    ruleFileArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd, args)
			if err != nil {
				return err
			}
			summary, err := render.String("markdown", s.configuration())
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), ui.RenderMarkdown(s.format, summary))
			return err
		},
	}
}

func newOutputsCmd(opts *Options) *cobra.Command {
	var inputs bool

	cmd := &cobra.Command{
		Use:     "outputs [rulefile]",
		Short:   MsgOutputsShort,
		Long:    MsgOutputsLong,
		GroupID: "core",
		Args:    ruleFileArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd, args)
			if err != nil {
				return err
			}
			files := s.task.OutputFiles()
			if inputs {
				files = s.task.InputFiles()
			}
			for _, f := range files {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), f); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&inputs, "inputs", false, MsgFlagInputs)
	return cmd
}

func newFlagsCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:     "flags",
		Short:   MsgFlagsShort,
		Long:    MsgFlagsLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := opts.settings()
			if err != nil {
				return err
			}
			format, err := opts.outputFormat(cmd, settings)
			if err != nil {
				return err
			}

			var rows [][]string
			for _, f := range flags.Default().List() {
				rows = append(rows, []string{
					f.Name,
					fmt.Sprintf("%s=%t", f.Field, f.Value),
					fmt.Sprintf("%t", f.Default),
					f.Description,
				})
			}
			return ui.Table(cmd.OutOrStdout(), format, []string{MsgFlagsHeader, "Sets", "Default", "Description"}, rows)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), version.String())
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
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
