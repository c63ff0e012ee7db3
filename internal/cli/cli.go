package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/gobwas/glob"
	"github.com/specialistvlad/extloader/internal/app"
	"github.com/specialistvlad/extloader/internal/component"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	ownerStyle   = lipgloss.NewStyle().Faint(true)
)

// state is shared by the root command and its subcommands.
type state struct {
	outW io.Writer
	logW io.Writer
	opts []app.Option

	mode      string
	namespace string
	paths     []string
	logLevel  string
	logFormat string

	app *app.App
}

// Execute runs the command line with args. Command output goes to outW, logs
// to logW. Usage errors are returned as *ExitError with code 2.
func Execute(args []string, outW, logW io.Writer, opts ...app.Option) error {
	root, err := NewRootCommand(outW, logW, opts...)
	if err != nil {
		return err
	}
	root.SetArgs(args)
	return root.Execute()
}

// NewRootCommand builds the extloader command tree. Flag defaults come from
// the EXTLOADER_* environment.
func NewRootCommand(outW, logW io.Writer, opts ...app.Option) (*cobra.Command, error) {
	defaults, err := app.ConfigFromEnv()
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	s := &state{outW: outW, logW: logW, opts: opts}

	root := &cobra.Command{
		Use:   "extloader",
		Short: "Discover and load browser extension components",
		Long: `extloader discovers the extension components of a namespace, either from
the namespace directories on disk (standard mode) or from the table of
contents embedded in the binary (bundled mode), and imports each of them.`,
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup()
		},
	}
	root.SetOut(outW)
	root.SetErr(outW)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &ExitError{Code: 2, Message: err.Error()}
	})

	flags := root.PersistentFlags()
	flags.StringVar(&s.mode, "mode", defaults.Mode, "Deployment mode. Options: 'standard' or 'bundled'.")
	flags.StringVar(&s.namespace, "namespace", defaults.Namespace, "Dotted extension namespace.")
	flags.StringSliceVar(&s.paths, "path", defaults.SearchPath, "Namespace directory searched in standard mode (repeatable).")
	flags.StringVar(&s.logLevel, "log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&s.logFormat, "log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")

	root.AddCommand(newListCommand(s))
	root.AddCommand(newCheckCommand(s))
	root.AddCommand(newLoadCommand(s))
	root.AddCommand(newExecCommand(s))

	return root, nil
}

func (s *state) setup() error {
	cfg, err := app.NewConfig(app.Config{
		Mode:       s.mode,
		Namespace:  s.namespace,
		SearchPath: s.paths,
		LogFormat:  s.logFormat,
		LogLevel:   s.logLevel,
	})
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	a, err := app.NewApp(s.logW, cfg, s.opts...)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	s.app = a
	return nil
}

func newListCommand(s *state) *cobra.Command {
	var match string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List discoverable components without loading them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var matcher glob.Glob
			if match != "" {
				g, err := glob.Compile(match, '.')
				if err != nil {
					return &ExitError{Code: 2, Message: fmt.Sprintf("invalid --match pattern: %v", err)}
				}
				matcher = g
			}

			descs, err := s.app.Discover(cmd.Context())
			if err != nil {
				return err
			}

			var shown []component.Descriptor
			for _, d := range descs {
				if matcher == nil || matcher.Match(d.Name) {
					shown = append(shown, d)
				}
			}

			cfg := s.app.Config()
			fmt.Fprintln(s.outW, headingStyle.Render(fmt.Sprintf("Components in %s (%s mode): %d", cfg.Namespace, cfg.Mode, len(shown))))
			for _, d := range shown {
				fmt.Fprintf(s.outW, "  %s\n", d.Name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&match, "match", "", "Only show components matching this glob; '*' stays within one name segment, '**' spans segments.")
	return cmd
}

func newCheckCommand(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify every discoverable component is compiled in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.app.Check(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(s.outW, "All components are available.")
			return nil
		},
	}
}

func newLoadCommand(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Load every component and list the commands they registered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := s.app.Load(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(s.outW, headingStyle.Render(fmt.Sprintf("Loaded %d components", len(loaded))))
			for _, name := range loaded {
				fmt.Fprintf(s.outW, "  %s\n", name)
			}
			fmt.Fprintln(s.outW, headingStyle.Render("Commands"))
			for _, c := range s.app.Commands() {
				fmt.Fprintf(s.outW, "  %-10s %s %s\n", c.Name, c.Help, ownerStyle.Render("("+c.Owner+")"))
			}
			return nil
		},
	}
}

func newExecCommand(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "exec COMMAND [ARGS...]",
		Short: "Load every component, then run one of their commands",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := s.app.Exec(cmd.Context(), args[0], args[1:])
			if err != nil {
				return err
			}
			fmt.Fprintln(s.outW, out)
			return nil
		},
	}
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
