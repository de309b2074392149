package commands

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/responsive_viewer/pkg/history"
	"github.com/Dicklesworthstone/responsive_viewer/pkg/model"
)

func historyCmd() *cobra.Command {
	var (
		journalPath string
		driver      string
		sessionID   int64
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Summarise recorded breakpoint transitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if journalPath == "" {
				journalPath = history.DefaultPath()
			}
			j, err := history.Open(journalPath, driver)
			if err != nil {
				return err
			}
			defer j.Close()

			sessions, err := j.Sessions()
			if err != nil {
				return fmt.Errorf("list sessions: %w", err)
			}
			if len(sessions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sessions recorded. Run `rv run --record` first.")
				return nil
			}

			ends := make(map[int64]time.Time, len(sessions))
			for _, s := range sessions {
				if s.EndedAt != nil {
					ends[s.ID] = *s.EndedAt
				}
			}
			transitions, err := j.Transitions(sessionID)
			if err != nil {
				return fmt.Errorf("list transitions: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), sessionTable(sessions, sessionID))
			fmt.Fprintln(cmd.OutOrStdout(), dwellTable(history.DwellTimes(transitions, ends)))
			return nil
		},
	}

	cmd.Flags().StringVar(&journalPath, "journal", "", "journal database (default ~/.config/rv/history.db)")
	cmd.Flags().StringVar(&driver, "driver", history.DefaultDriver, "sqlite driver: sqlite (pure Go) or sqlite3 (cgo)")
	cmd.Flags().Int64Var(&sessionID, "session", 0, "only this session (default: all)")
	return cmd
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func sessionTable(sessions []model.Session, only int64) string {
	t := newTable("Session", "Config", "Units", "Started", "Duration", "Transitions")
	for _, s := range sessions {
		if only != 0 && s.ID != only {
			continue
		}
		duration := "running"
		if s.EndedAt != nil {
			duration = s.EndedAt.Sub(s.StartedAt).Round(time.Second).String()
		}
		t.Row(
			fmt.Sprint(s.ID),
			s.ConfigName,
			string(s.Units),
			s.StartedAt.Format(time.DateTime),
			duration,
			fmt.Sprint(s.Transitions),
		)
	}
	return t.String()
}

func dwellTable(dwells []history.Dwell) string {
	t := newTable("Breakpoint", "Visits", "Total", "Mean", "Std dev", "Median width")
	for _, d := range dwells {
		t.Row(
			d.Breakpoint,
			fmt.Sprint(d.Visits),
			d.Total.Round(time.Millisecond).String(),
			d.Mean.Round(time.Millisecond).String(),
			d.StdDev.Round(time.Millisecond).String(),
			model.FormatWidth(d.MedianW),
		)
	}
	return t.String()
}
