// Conedit is an interactive demo of the conedit line editor. It reads lines
// while a background ticker prints to the same terminal, and the line being
// edited survives that output.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"src.conedit.dev/pkg/cli"
	"src.conedit.dev/pkg/cli/complete"
	"src.conedit.dev/pkg/cli/histutil"
	"src.conedit.dev/pkg/config"
	"src.conedit.dev/pkg/logutil"
	"src.conedit.dev/pkg/store"
	"src.conedit.dev/pkg/sys"
)

var logger = logutil.GetLogger("[conedit] ")

// How long to sleep between two polls of the console.
const pollInterval = 20 * time.Millisecond

var flags struct {
	config      string
	prompt      string
	historySize int
	historyDB   string
	logFile     string
	tick        time.Duration
}

var rootCmd = &cobra.Command{
	Use:   "conedit",
	Short: "Interactive line editor demo",
	Long: `Conedit reads lines from the terminal with in-place editing, history and
completion, while a ticker prints lines to the same terminal.

Built-in commands:
  prompt <text>   change the prompt
  echo on|off     turn echo of the line on or off
  history         show the history
  exit, quit      leave`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(config.Path(flags.config))
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("prompt") {
			cfg.Prompt = flags.prompt
		}
		if cmd.Flags().Changed("history-size") {
			cfg.HistorySize = flags.historySize
		}
		if cmd.Flags().Changed("history-db") {
			cfg.HistoryDB = flags.historyDB
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = flags.logFile
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		return run(cfg, flags.tick)
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flags.config, "config", "",
		"config file (default is $"+config.EnvConfig+")")
	f.StringVar(&flags.prompt, "prompt", config.DefaultPrompt, "prompt")
	f.IntVar(&flags.historySize, "history-size", config.DefaultHistorySize,
		"maximum number of history entries")
	f.StringVar(&flags.historyDB, "history-db", "", "bbolt database to keep history in")
	f.StringVar(&flags.logFile, "log-file", "", "file to write logs to")
	f.DurationVar(&flags.tick, "tick", 3*time.Second,
		"interval of the background ticker, 0 to disable")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "conedit:", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, tick time.Duration) error {
	if !sys.IsATTY(os.Stdin.Fd()) || !sys.IsATTY(os.Stdout.Fd()) {
		return fmt.Errorf("stdin and stdout must be terminals")
	}
	if cfg.LogFile != "" {
		if err := logutil.SetOutputFile(cfg.LogFile); err != nil {
			return err
		}
		defer logutil.SetOutput(io.Discard)
	}

	var st store.Store
	var db histutil.DB
	if cfg.HistoryDB != "" {
		var err error
		st, err = store.NewStore(cfg.HistoryDB)
		if err != nil {
			return err
		}
		defer st.Close()
		db = st
	}

	spec := cli.ConsoleSpec{
		Prompt:       cfg.Prompt,
		History:      histutil.New(cfg.HistorySize, db),
		ScrollMargin: cfg.ScrollMargin,
	}
	if len(cfg.CompletionWords) > 0 {
		spec.Completer = complete.NewWordProvider(cfg.CompletionWords...)
	} else {
		spec.Completer = complete.NewWordProvider(builtins...)
	}
	c, err := cli.Open(os.Stdin, os.Stdout, spec)
	if err != nil {
		return err
	}
	defer c.Close()

	if tick > 0 {
		stop := startTicker(os.Stdout, tick)
		defer stop()
	}

	sh := &shell{c, os.Stdout, st}
	for {
		line, ok, err := c.PollForCompletedLine()
		if err != nil {
			return err
		}
		if !ok {
			time.Sleep(pollInterval)
			continue
		}
		logger.Printf("got line %q", line)
		if sh.handle(line) {
			return nil
		}
	}
}
