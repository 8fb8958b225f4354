package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tunesort/library"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the library once and print the album directories found",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.RootDir == "" {
			return fmt.Errorf("no root directory: pass --root or set TUNESORT_ROOT")
		}

		bar := progressbar.NewOptions(-1,
			progressbar.OptionSetDescription("scanning"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionClearOnFinish(),
		)

		scanner := library.NewScanner(cfg.RootDir, zlog)
		scanner.OnDirectory = func(string) { _ = bar.Add(1) }

		dirs, err := scanner.Scan(context.Background())
		_ = bar.Finish()
		if err != nil {
			return err
		}

		for i := range dirs {
			fmt.Println(dirs[i].String())
		}
		zlog.Info("scan complete",
			zap.String("root", cfg.RootDir),
			zap.Int("albumDirectories", len(dirs)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
