package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/TheNeikos/diary/internal/command"
	"github.com/TheNeikos/diary/internal/config"
	"github.com/TheNeikos/diary/internal/editor"
	"github.com/TheNeikos/diary/internal/executor"
	"github.com/TheNeikos/diary/internal/logging"
	"github.com/TheNeikos/diary/internal/ui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var errUnexpectedArgs = errors.New("unexpected arguments")

// rootOptions holds the persistent flags and what is loaded from them
// before any command runs.
type rootOptions struct {
	fs afero.Fs

	configPath string
	contentDir string
	jsonOutput bool
	debug      bool

	config *config.Config
	logger *zap.Logger
}

// NewRootCommand builds the diary command reading and writing entries on fs.
func NewRootCommand(fs afero.Fs) *cobra.Command {
	cmd, _ := newRootCommand(fs)
	return cmd
}

func newRootCommand(fs afero.Fs) (*cobra.Command, *rootOptions) {
	opts := &rootOptions{fs: fs}

	cmd := &cobra.Command{
		Use:   "diary [flags] [text...]",
		Short: "A journal kept as dated files",
		Long: `diary keeps one file per entry under <content>/YYYY/MM/DD/HH-MM-SS.

Without flags it lists every entry. Limit flags choose which dates are
read, filter flags keep entries carrying a tag or category, and --cat
prints them. Text after --add becomes a new entry; "-" reads it from
stdin and no text opens the editor.`,
		Example: `  diary --add Went for a walk.
  diary --year 2023 --month 5 --cat
  diary --between 2023-01..2023-03 --in-tag work
  diary --limit-in 2023-05-17 --tag holiday
  diary --edit=3f9a2c1`,
		Args:              cobra.ArbitraryArgs,
		PersistentPreRunE: opts.load,
		RunE:              opts.run,
	}

	// Silence Cobra's built-in error and usage printing so we control stderr output
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file path")
	pf.StringVar(&opts.contentDir, "content-dir", "", "directory holding the entries (overrides config)")
	pf.BoolVar(&opts.jsonOutput, "json", false, "output in JSON format")
	pf.BoolVar(&opts.debug, "debug", false, "log debug messages to stderr")

	registerCommandFlags(cmd.Flags())

	cmd.AddCommand(newMCPCommand(opts))

	return cmd, opts
}

// registerCommandFlags adds one flag per command kind.
func registerCommandFlags(flags *pflag.FlagSet) {
	for _, kind := range command.Kinds() {
		spec := command.Table[kind]
		switch spec.Type {
		case command.FlagTypeBool:
			flags.BoolP(spec.Name, spec.Short, false, spec.Description)
		case command.FlagTypeString:
			flags.StringP(spec.Name, spec.Short, "", spec.Description)
		case command.FlagTypeOptional:
			flags.StringP(spec.Name, spec.Short, spec.Default, spec.Description)
			flags.Lookup(spec.Name).NoOptDefVal = spec.Default
		case command.FlagTypeStringArray:
			flags.StringArrayP(spec.Name, spec.Short, nil, spec.Description)
		}
	}
}

// collectCommands turns the flags set on the command line into commands,
// in table order. Positional arguments belong to --add.
func collectCommands(flags *pflag.FlagSet, args []string) ([]command.Command, error) {
	var cmds []command.Command
	add := func(kind command.Kind, args ...string) error {
		c, err := command.New(kind, args...)
		if err != nil {
			return err
		}
		cmds = append(cmds, c)
		return nil
	}

	for _, kind := range command.Kinds() {
		spec := command.Table[kind]
		f := flags.Lookup(spec.Name)
		if f == nil || !f.Changed {
			continue
		}

		var err error
		switch spec.Type {
		case command.FlagTypeBool:
			on, _ := flags.GetBool(spec.Name)
			switch {
			case !on:
			case kind == command.Add:
				err = add(kind, args...)
			default:
				err = add(kind)
			}
		case command.FlagTypeString, command.FlagTypeOptional:
			err = add(kind, f.Value.String())
		case command.FlagTypeStringArray:
			values, _ := flags.GetStringArray(spec.Name)
			for _, v := range values {
				if err = add(kind, v); err != nil {
					break
				}
			}
		}
		if err != nil {
			return nil, err
		}
	}

	if len(args) > 0 {
		if _, ok := command.Find(cmds, command.Add); !ok {
			return nil, fmt.Errorf("%w: %s (text is only taken by --add)", errUnexpectedArgs, strings.Join(args, " "))
		}
	}
	return cmds, nil
}

func (o *rootOptions) load(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if o.contentDir != "" {
		cfg.ContentDir = o.contentDir
	}
	o.config = cfg
	o.logger = logging.New(cmd.ErrOrStderr(), o.debug || cfg.Debug)
	o.logger.Debug("config loaded", zap.String("content_dir", cfg.ContentDir))
	return nil
}

// executor returns an Executor for the loaded configuration writing to
// the command's output.
func (o *rootOptions) executor(cmd *cobra.Command) *executor.Executor {
	x := &executor.Executor{
		FS:         o.fs,
		ContentDir: o.config.ContentDir,
		Logger:     o.logger,
		Out:        cmd.OutOrStdout(),
		In:         cmd.InOrStdin(),
		Editor:     editor.New(o.config.Editor),
		JSON:       o.jsonOutput,
		Theme:      ui.ResolveTheme(o.config.Theme),
	}
	if !o.jsonOutput && ui.IsTerminal(x.Out) {
		x.Pager = o.config.Pager
		x.MarkdownStyle = o.config.MarkdownStyle
	}
	return x
}

func (o *rootOptions) run(cmd *cobra.Command, args []string) error {
	cmds, err := collectCommands(cmd.Flags(), args)
	if err != nil {
		return err
	}
	return o.executor(cmd).Run(cmds)
}

func (o *rootOptions) sync() {
	if o.logger != nil {
		_ = o.logger.Sync()
	}
}

// Execute runs the root command and reports a failure on stderr.
func Execute() error {
	cmd, opts := newRootCommand(afero.NewOsFs())
	defer opts.sync()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
