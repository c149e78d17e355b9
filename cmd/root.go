// Package cmd contains the CLI commands for gh-clonestats, built with Cobra.
package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kyleking/gh-clonestats/internal/app"
	"github.com/kyleking/gh-clonestats/internal/chart"
	"github.com/kyleking/gh-clonestats/internal/config"
	"github.com/kyleking/gh-clonestats/internal/exec"
	"github.com/kyleking/gh-clonestats/internal/github"
	"github.com/kyleking/gh-clonestats/internal/logging"
	"github.com/kyleking/gh-clonestats/internal/pipeline"
	"github.com/kyleking/gh-clonestats/internal/report"
)

type rootOptions struct {
	configPath    string
	debug         bool
	output        string
	top           int
	limit         int
	noViewer      bool
	includeStatus bool
}

// runtime carries the dependencies shared by the commands.
type runtime struct {
	cfg      config.Config
	logger   *zap.SugaredLogger
	executor exec.CommandExecutor
	term     term.Term
}

// NewRootCmd builds the command tree. executor runs gh; nil selects the real gh CLI.
func NewRootCmd(executor exec.CommandExecutor) *cobra.Command {
	opts := &rootOptions{}
	rt := &runtime{executor: executor}

	rootCmd := &cobra.Command{
		Use:   "gh-clonestats [username]",
		Short: "Chart clone traffic for a GitHub account's repositories",
		Long: `gh-clonestats fetches clone traffic for every non-fork repository of a
GitHub account through the gh CLI, saves the combined report as JSON and
charts total versus unique clones for the most cloned repositories.

When no username is given it is read from standard input.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.setup(cmd, opts)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if rt.logger != nil {
				_ = rt.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			username := ""
			if len(args) == 1 {
				username = strings.TrimSpace(args[0])
			} else {
				var err error
				username, err = promptUsername(cmd.InOrStdin(), cmd.OutOrStdout())
				if err != nil {
					return err
				}
			}
			return rt.runReport(cmd, username)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.IntVar(&opts.top, "top", 0, "number of repositories to chart (default 20)")
	flags.BoolVar(&opts.noViewer, "no-viewer", false, "print the chart instead of opening the interactive viewer")
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "", "report file to write (default all_traffic_report.json)")
	rootCmd.Flags().IntVar(&opts.limit, "limit", 0, "maximum number of repositories to list (default: gh's limit)")
	rootCmd.Flags().BoolVar(&opts.includeStatus, "include-status", false, "record each repository's fetch status in the report")

	rootCmd.AddCommand(newViewCmd(rt))
	return rootCmd
}

// Execute runs the root command against the real gh CLI.
func Execute() {
	if err := NewRootCmd(nil).Execute(); err != nil {
		os.Exit(1)
	}
}

func (rt *runtime) setup(cmd *cobra.Command, opts *rootOptions) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("top") {
		cfg.Top = opts.top
	}
	if flags.Changed("limit") {
		cfg.RepoLimit = opts.limit
	}
	if flags.Changed("include-status") {
		cfg.IncludeStatus = opts.includeStatus
	}
	if opts.noViewer {
		cfg.Viewer = config.ViewerNever
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	rt.cfg = cfg

	if rt.logger == nil {
		rt.logger, err = logging.New(opts.debug)
		if err != nil {
			return err
		}
	}
	if rt.executor == nil {
		rt.executor = exec.NewRealExecutor()
	}
	rt.term = term.FromEnv()
	rt.logger.Debugw("configuration loaded", "output", cfg.Output, "top", cfg.Top, "repo_limit", cfg.RepoLimit, "viewer", cfg.Viewer)
	return nil
}

func (rt *runtime) runReport(cmd *cobra.Command, username string) error {
	out := cmd.OutOrStdout()
	client := github.NewClient(rt.executor, rt.cfg.RepoLimit)
	p := pipeline.New(client, client, pipeline.Options{
		Output:        rt.cfg.Output,
		IncludeStatus: rt.cfg.IncludeStatus,
	}, rt.logger, out)

	entries, err := p.Run(cmd.Context(), username)
	if err != nil {
		return err
	}
	return rt.visualize(cmd, entries)
}

func (rt *runtime) visualize(cmd *cobra.Command, entries []report.Entry) error {
	out := cmd.OutOrStdout()
	bars, err := chart.Prepare(entries, rt.cfg.Top)
	if errors.Is(err, chart.ErrNoData) {
		fmt.Fprintln(out, "No data available to visualize.")
		return nil
	}

	width, _, sizeErr := rt.term.Size()
	if sizeErr != nil {
		width = 0
	}
	err = app.Show(cmd.Context(), bars, app.ShowOptions{
		Interactive: rt.interactive(),
		Out:         out,
		Width:       width,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Visualization complete. Enjoy your chart!")
	return nil
}

// interactive reports whether the full-screen viewer should be used.
func (rt *runtime) interactive() bool {
	switch rt.cfg.Viewer {
	case config.ViewerAlways:
		return true
	case config.ViewerNever:
		return false
	default:
		return rt.term.IsTerminalOutput()
	}
}

// promptUsername asks for the account name on in and trims surrounding
// whitespace. The name is not validated.
func promptUsername(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter GitHub username: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read username: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", errors.New("no username given")
	}
	return strings.TrimSpace(line), nil
}
