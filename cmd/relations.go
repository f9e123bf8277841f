package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"db-standard/internal/relation"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var (
	watch    bool
	debounce time.Duration
)

var relationsCmd = &cobra.Command{
	Use:     "relations",
	Aliases: []string{"rel"},
	Short:   "Check the six relations between the design definitions",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !watch {
			return checkRelations()
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := checkRelations(); err != nil && !errors.Is(err, ErrValidationFailed) {
			return err
		}
		return watchDir(ctx, Store.Dir(), debounce, func() {
			fmt.Println()
			fmt.Println(time.Now().Format("15:04:05"), "변경 감지, 다시 점검합니다")
			if err := checkRelations(); err != nil && !errors.Is(err, ErrValidationFailed) {
				logger.Error("Relation check failed", slog.Any("error", err))
			}
		})
	},
}

func checkRelations() error {
	snap, err := Store.LoadSnapshot()
	if err != nil {
		return err
	}
	res, err := relation.ValidateDesignRelations(snap)
	if err != nil {
		return err
	}

	if jsonOut {
		if err := printJSON(res); err != nil {
			return err
		}
	} else {
		printRelations(res)
	}

	if strict && res.Totals.ErrorCount > 0 {
		return fmt.Errorf("%w: %d unmatched records", ErrValidationFailed, res.Totals.ErrorCount)
	}
	return nil
}

func printRelations(res *relation.Result) {
	for _, s := range res.Summaries {
		mark := "OK"
		if s.Unmatched > 0 {
			mark = strings.ToUpper(string(s.Severity))
		}
		fmt.Printf("[%-7s] %-20s 점검 %d / 일치 %d / 불일치 %d\n", mark, s.Name, s.TotalChecked, s.Matched, s.Unmatched)
		for _, is := range s.Issues {
			fmt.Printf("    - %s: %s\n", is.TargetLabel, is.Reason)
		}
	}
	t := res.Totals
	fmt.Printf("합계: 점검 %d, 일치 %d, 불일치 %d (오류 %d, 경고 %d)\n", t.Checked, t.Matched, t.Unmatched, t.ErrorCount, t.WarningCount)
}

// watchDir calls fn once per burst of changes to JSON files in dir until ctx
// is done.
func watchDir(ctx context.Context, dir string, delay time.Duration, fn func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	logger.Info("Watching data directory", slog.String("dir", dir), slog.Duration("debounce", delay))

	timer := time.NewTimer(delay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			name := filepath.Base(ev.Name)
			// 임시 파일(.xxx.json-*.tmp)은 rename 시점에만 의미가 있다
			if strings.HasPrefix(name, ".") || filepath.Ext(name) != ".json" {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue
			}
			logger.Debug("Data file changed", slog.String("file", name), slog.String("op", ev.Op.String()))
			timer.Reset(delay)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error", slog.Any("error", err))
		case <-timer.C:
			fn()
		}
	}
}

func init() {
	relationsCmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when an error-severity relation has unmatched records")
	relationsCmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-run the check whenever a data file changes")
	relationsCmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "quiet period before re-running in watch mode")

	RootCmd.AddCommand(relationsCmd)
}
