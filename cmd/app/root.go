package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/akyairhashvil/countmedown/internal/config"
	"github.com/akyairhashvil/countmedown/internal/countdown"
	"github.com/akyairhashvil/countmedown/internal/database"
	"github.com/akyairhashvil/countmedown/internal/models"
	"github.com/akyairhashvil/countmedown/internal/sink"
	"github.com/akyairhashvil/countmedown/internal/tui"
	"github.com/akyairhashvil/countmedown/internal/util"
)

var errNoTerminal = errors.New("no time given and not attached to a terminal")

// app carries what the commands share: resolved settings and the clock.
type app struct {
	v     *viper.Viper
	clock countdown.Clock
}

func newApp() *app {
	return &app{v: viper.New(), clock: countdown.RealClock{}}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "countmedown [time]",
		Short: "Count down and keep the remaining time in a text file",
		Long: `countmedown counts down from a duration such as 5:00 or 1:02:03, or to a
clock time with --until, rewriting the output file with the remaining time
on every step. Started without a time it opens the interactive editor.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.runInteractive(cmd)
			}
			return a.runCountdown(cmd, args[0])
		},
	}

	flags := cmd.Flags()
	flags.BoolP("verbose", "v", false, "also print every line to stdout")
	flags.StringP("file", "f", config.DefaultOutputFile, "file rewritten with the remaining time")
	flags.IntP("step", "s", config.DefaultStep, "seconds between updates")
	flags.StringP("prefix", "p", config.DefaultPrefix, "text written before the remaining time")
	flags.StringP("ending", "e", config.DefaultEnding, "text written once the countdown ends")
	flags.BoolP("until", "u", false, "read time as a clock time (HH[:MM[:SS]]) to count down to")

	persistent := cmd.PersistentFlags()
	persistent.String("history-db", filepath.Join(util.DataDir(config.AppName), config.HistoryDBName), "run history database, empty disables history")
	persistent.String("config", config.DefaultPath(), "interactive configuration file")
	persistent.String("theme", "default", "interactive colour theme")

	a.v.SetEnvPrefix(config.EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	util.MustSucceed(slog.Default(), "bind flags", a.v.BindPFlags(flags))
	util.MustSucceed(slog.Default(), "bind flags", a.v.BindPFlags(persistent))

	cmd.AddCommand(newHistoryCmd(a))
	return cmd
}

// plan resolves the countdown flags against timeIn.
func (a *app) plan(timeIn string) (countdown.Plan, error) {
	secs, err := countdown.Parse(timeIn, a.v.GetBool("until"), a.clock.Now())
	if err != nil {
		return countdown.Plan{}, err
	}
	plan := countdown.Plan{
		TotalSeconds: secs,
		Prefix:       a.v.GetString("prefix"),
		Ending:       a.v.GetString("ending"),
		Step:         a.v.GetInt("step"),
		Path:         a.v.GetString("file"),
		Verbose:      a.v.GetBool("verbose"),
	}
	return plan, plan.Validate()
}

func (a *app) runCountdown(cmd *cobra.Command, timeIn string) error {
	ctx := cmd.Context()
	logger := util.SetupLogger(cmd.ErrOrStderr(), a.v.GetBool("verbose"))

	plan, err := a.plan(timeIn)
	if err != nil {
		return err
	}

	out := sink.Multi{sink.NewFile(plan.Path)}
	if plan.Verbose {
		out = append(out, sink.NewConsole(cmd.OutOrStdout()))
	}

	db := a.openHistory(ctx, logger)
	if db != nil {
		defer db.Close()
	}
	runID := a.recordStart(ctx, logger, db, timeIn, plan)

	logger.Debug("countdown starting",
		slog.String("time_in", timeIn),
		slog.Uint64("seconds", uint64(plan.TotalSeconds)),
		slog.Int("step", plan.Step),
		slog.String("file", plan.Path))

	res, err := countdown.NewScheduler(out,
		countdown.WithClock(a.clock),
		countdown.WithLogger(logger),
	).Run(ctx, plan)

	status := models.RunStatusCompleted
	if err != nil {
		status = models.RunStatusStopped
	}
	finishedAt := res.FinishedAt
	if finishedAt.IsZero() {
		finishedAt = a.clock.Now()
	}
	a.recordFinish(ctx, logger, db, runID, status, finishedAt)
	return err
}

func (a *app) openHistory(ctx context.Context, logger *slog.Logger) *database.Database {
	path := a.v.GetString("history-db")
	if path == "" {
		return nil
	}
	db, err := database.Open(ctx, path)
	if err != nil {
		util.LogError(logger, "open history", err)
		return nil
	}
	return db
}

func (a *app) recordStart(ctx context.Context, logger *slog.Logger, db *database.Database, timeIn string, plan countdown.Plan) string {
	if db == nil {
		return ""
	}
	run := models.Run{
		ID:           uuid.NewString(),
		Mode:         models.ModeCLI,
		TimeIn:       timeIn,
		Until:        a.v.GetBool("until"),
		TotalSeconds: plan.TotalSeconds,
		Step:         plan.Step,
		Prefix:       plan.Prefix,
		Ending:       plan.Ending,
		FilePath:     plan.Path,
		StartedAt:    a.clock.Now(),
	}
	if err := db.StartRun(ctx, run); err != nil {
		util.LogError(logger, "record run start", err)
		return ""
	}
	return run.ID
}

func (a *app) recordFinish(ctx context.Context, logger *slog.Logger, db *database.Database, id string, status models.RunStatus, at time.Time) {
	if db == nil || id == "" {
		return
	}
	util.LogError(logger, "record run finish", db.FinishRun(ctx, id, status, at))
}

func (a *app) runInteractive(cmd *cobra.Command) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.Wrap(errNoTerminal, "pass a time such as 5:00")
	}
	ctx := cmd.Context()

	logger := util.DiscardLogger()
	logFile, err := util.OpenLogFile(filepath.Join(util.DataDir(config.AppName), config.LogFileName))
	if err == nil {
		defer logFile.Close()
		logger = util.SetupLogger(logFile, a.v.GetBool("verbose"))
	}
	if theme := a.v.GetString("theme"); !tui.SetTheme(theme) {
		logger.Warn("unknown theme", slog.String("theme", theme))
	}

	cfgPath := a.v.GetString("config")
	rec, ok := config.LoadOptional(cfgPath)
	if !ok {
		rec = config.DefaultRecord()
	}
	opts := tui.Options{
		Record:     rec,
		ConfigPath: cfgPath,
		Logger:     logger,
		Context:    ctx,
	}
	if db := a.openHistory(ctx, logger); db != nil {
		defer db.Close()
		opts.History = db
	}

	p := tea.NewProgram(tui.New(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive session: %w", err)
	}
	return nil
}
