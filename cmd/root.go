package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tunesort/config"
	"tunesort/logger"
)

var (
	cfg     *config.Config
	zlog    *zap.Logger
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "tunesort",
	Short: "tunesort finds album directories in a music library",
	Long: `tunesort walks a music library, classifies each directory's files into
music and ordinary files, and reports every directory that contains at least
one track with readable tags. The grouping feeds album-level renaming and
organizing tools.`,
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "",
		"root directory of the music library (defaults to TUNESORT_ROOT)")
}

func initConfig() {
	cfg = config.Load()
	if rootDir != "" {
		cfg.RootDir = rootDir
	}
	zlog = logger.New(cfg.LogLevel, cfg.LogPath)
}
