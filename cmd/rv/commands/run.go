package commands

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/responsive_viewer/pkg/history"
	"github.com/Dicklesworthstone/responsive_viewer/pkg/ui"
	"github.com/Dicklesworthstone/responsive_viewer/pkg/viewport"
	"github.com/Dicklesworthstone/responsive_viewer/pkg/watcher"
)

// terminalWidth is swapped out in tests.
var terminalWidth = viewport.TerminalWidth

func runCmd() *cobra.Command {
	var (
		logFile     string
		journalPath string
		record      bool
		driver      string
		debounce    time.Duration
		watch       bool
		style       string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the responsive demo in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The TUI owns the terminal, so logs go to a file or nowhere.
			if logFile != "" {
				f, err := tea.LogToFile(logFile, "rv")
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
			} else {
				log.SetOutput(io.Discard)
			}

			width, err := terminalWidth(os.Stdout)
			if errors.Is(err, viewport.ErrNotTerminal) {
				return fmt.Errorf("rv run needs an interactive terminal: %w", err)
			}
			if err != nil {
				return fmt.Errorf("measure terminal: %w", err)
			}

			cfg, path, err := loadConfig()
			if err != nil {
				return err
			}

			if record && journalPath == "" {
				journalPath = history.DefaultPath()
			}
			var journal *history.Journal
			if journalPath != "" {
				journal, err = history.Open(journalPath, driver)
				if err != nil {
					return err
				}
				defer journal.Close()
			}

			m, err := ui.NewModel(ui.Options{
				Config:         cfg,
				ConfigPath:     path,
				InitialWidth:   float64(width),
				ResizeDebounce: debounce,
				Journal:        journal,
				Theme:          ui.DefaultTheme(os.Stdout),
				GlamourStyle:   style,
			})
			if err != nil {
				return err
			}
			defer m.Close()

			p := tea.NewProgram(m, tea.WithAltScreen())
			m.SetSender(p.Send)

			if path != "" && watch {
				w := watcher.New(path, func() {
					p.Send(ui.LoadConfigCmd(path)())
				}, watcher.WithErrorHandler(func(err error) {
					log.Printf("watch %s: %v", path, err)
				}))
				if err := w.Start(); err != nil {
					log.Printf("watch %s: %v", path, err)
				} else {
					defer w.Stop()
					log.Printf("watching %s (polling=%v)", path, w.Polling())
				}
			}

			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run demo: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&logFile, "log", "", "write debug logs to this file")
	cmd.Flags().StringVar(&journalPath, "journal", "", "record breakpoint transitions to this SQLite database")
	cmd.Flags().BoolVar(&record, "record", false, "record transitions to the default journal (~/.config/rv/history.db)")
	cmd.Flags().StringVar(&driver, "driver", history.DefaultDriver, "sqlite driver: sqlite (pure Go) or sqlite3 (cgo)")
	cmd.Flags().DurationVar(&debounce, "debounce", 100*time.Millisecond, "wait for resizing to settle before switching breakpoints (0 disables)")
	cmd.Flags().BoolVar(&watch, "watch", true, "reload the config file when it changes")
	cmd.Flags().StringVar(&style, "style", "dark", "glamour style for the article (dark, light, notty)")
	return cmd
}
