package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/akyairhashvil/countmedown/internal/config"
	"github.com/akyairhashvil/countmedown/internal/database"
	"github.com/akyairhashvil/countmedown/internal/report"
	"github.com/akyairhashvil/countmedown/internal/util"
)

var errHistoryDisabled = errors.New("history is disabled (empty --history-db)")

// reportPathAuto asks for a PDF at the default reports location.
const reportPathAuto = "auto"

func newHistoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent countdowns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runHistory(cmd)
		},
	}
	cmd.Flags().IntP("limit", "n", config.DefaultHistoryLimit, "number of runs to show")
	cmd.Flags().String("pdf", "", "write a PDF report to this path instead of printing a table")
	cmd.Flags().Lookup("pdf").NoOptDefVal = reportPathAuto

	util.MustSucceed(slog.Default(), "bind flags", a.v.BindPFlag("limit", cmd.Flags().Lookup("limit")))
	util.MustSucceed(slog.Default(), "bind flags", a.v.BindPFlag("pdf", cmd.Flags().Lookup("pdf")))
	return cmd
}

func (a *app) runHistory(cmd *cobra.Command) error {
	ctx := cmd.Context()
	path := a.v.GetString("history-db")
	if path == "" {
		return errHistoryDisabled
	}
	db, err := database.Open(ctx, path)
	if err != nil {
		return errors.Wrapf(err, "open history %s", path)
	}
	defer db.Close()

	limit := util.Clamp(a.v.GetInt("limit"), 1, config.MaxHistoryLimit)
	runs, err := db.RecentRuns(ctx, limit)
	if err != nil {
		return err
	}

	out := a.v.GetString("pdf")
	if out == "" {
		return report.WriteTable(cmd.OutOrStdout(), runs)
	}
	now := a.clock.Now()
	if out == reportPathAuto {
		out = filepath.Join(util.ReportsDir(config.AppName), report.DefaultFileName(now))
	}
	if err := report.WritePDF(out, runs, now); err != nil {
		return err
	}
	abs, err := filepath.Abs(out)
	if err != nil {
		abs = out
	}
	fmt.Fprintf(cmd.OutOrStdout(), "PDF report generated: %s\n", abs)
	return nil
}
