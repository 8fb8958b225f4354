package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tunesort/library"
)

var debounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Scan the library and re-scan whenever it changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.RootDir == "" {
			return fmt.Errorf("no root directory: pass --root or set TUNESORT_ROOT")
		}
		if debounce <= 0 {
			debounce = cfg.Debounce
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("create watcher: %w", err)
		}
		defer watcher.Close()

		rescan := func() {
			scanner := library.NewScanner(cfg.RootDir, zlog)
			// Watch every directory the scan visits so changes deeper in
			// the tree trigger a re-scan too.
			scanner.OnDirectory = func(dir string) { _ = watcher.Add(dir) }

			dirs, err := scanner.Scan(context.Background())
			if err != nil {
				zlog.Error("scan aborted", zap.Error(err))
				return
			}
			for i := range dirs {
				fmt.Println(dirs[i].String())
			}
			zlog.Info("scan complete",
				zap.String("root", cfg.RootDir),
				zap.Int("albumDirectories", len(dirs)))
		}

		rescan()
		zlog.Info("watching for changes",
			zap.String("root", cfg.RootDir),
			zap.Duration("debounce", debounce))

		timer := time.NewTimer(debounce)
		if !timer.Stop() {
			<-timer.C
		}

		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				zlog.Debug("filesystem change",
					zap.String("path", ev.Name), zap.String("op", ev.Op.String()))
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounce)

			case <-timer.C:
				rescan()

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				zlog.Warn("watcher error", zap.Error(err))
			}
		}
	},
}

func init() {
	watchCmd.Flags().DurationVar(&debounce, "debounce", 0,
		"quiet period after the last change before re-scanning (defaults to TUNESORT_DEBOUNCE)")
	rootCmd.AddCommand(watchCmd)
}
