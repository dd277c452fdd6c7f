package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tmendel/so6enum/enumerate"
)

// summaryFile receives the per-level statistics of a run, next to the
// per-T-count data files; the chart command reads it back.
const summaryFile = "summary.yaml"

func newRunCmd() *cobra.Command {
	var (
		configPath  string
		target      int
		storedDepth int
		threads     int
		patternPath string
		dataDir     string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the breadth-first enumeration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			// Flags the user set override the file.
			if cmd.Flags().Changed("tcount") || cfg.Target == 0 {
				cfg.Target = target
			}
			if cmd.Flags().Changed("stored-depth") || cfg.StoredDepth == 0 {
				cfg.StoredDepth = storedDepth
			}
			if cmd.Flags().Changed("threads") || cfg.Threads == 0 {
				cfg.Threads = threads
			}
			if cmd.Flags().Changed("patterns") || cfg.Patterns == "" {
				cfg.Patterns = patternPath
			}
			if cmd.Flags().Changed("data-dir") || cfg.DataDir == "" {
				cfg.DataDir = dataDir
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

			var checklist *enumerate.Checklist
			if cfg.Patterns != "" {
				checklist, err = enumerate.LoadChecklist(cfg.Patterns)
				if err != nil {
					return err
				}
				logger.Info("checklist loaded", "patterns", checklist.Len())
			}

			opts := []enumerate.Option{
				enumerate.WithContext(cmd.Context()),
				enumerate.WithTarget(cfg.Target),
				enumerate.WithStoredDepth(cfg.StoredDepth),
				enumerate.WithDataDir(cfg.DataDir),
				enumerate.WithChecklist(checklist),
				enumerate.WithLogger(logger),
			}
			if cfg.Threads > 0 {
				opts = append(opts, enumerate.WithThreads(cfg.Threads))
			}

			res, err := enumerate.Run(opts...)
			if err != nil {
				return err
			}

			if err := writeSummary(cfg.DataDir, res); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Describe())
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML run configuration")
	cmd.Flags().IntVarP(&target, "tcount", "t", 6, "target T-count (inclusive)")
	cmd.Flags().IntVarP(&storedDepth, "stored-depth", "s", 4, "levels held fully in memory")
	cmd.Flags().IntVarP(&threads, "threads", "j", 0, "worker threads (0 = all CPUs)")
	cmd.Flags().StringVarP(&patternPath, "patterns", "p", "", "pattern checklist file")
	cmd.Flags().StringVarP(&dataDir, "data-dir", "o", "data", "output directory for <k>.dat files")
	return cmd
}

func writeSummary(dataDir string, res *enumerate.Result) error {
	data, err := yaml.Marshal(res)
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	path := filepath.Join(dataDir, summaryFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}
