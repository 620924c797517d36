package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"streetinterview/internal/adapters/storage"
	"streetinterview/internal/config"
	"streetinterview/internal/logging"
)

var (
	configPath string
	backend    string
	dataDir    string

	cfg  *config.Config
	repo *storage.Repository
)

var rootCmd = &cobra.Command{
	Use:   "streetinterview-cli",
	Short: "Build branching interview questions and run interviews from the shell",
	Long: `streetinterview-cli manages the question list used for street interviews
and walks through an interview one step at a time.

Questions are asked in list order unless a question has branches, in which
case the answer decides where the interview goes next.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if backend != "" {
			cfg.Storage.Backend = backend
		}
		if dataDir != "" {
			cfg.Storage.Path = config.ExpandPath(dataDir)
		}

		logger := logging.NewStderr(cfg.Log)
		cmd.SetContext(log.WithContext(cmd.Context(), logger))

		repo, err = storage.Open(cfg.Storage.Backend, cfg.Storage.Path)
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		logger.Debug("storage opened", "backend", cfg.Storage.Backend, "location", repo.Location())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo == nil {
			return nil
		}
		return repo.Close()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "storage backend: file, sqlite or memory")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory")
}

// GetRepo returns the initialized repository
func GetRepo() *storage.Repository {
	return repo
}
