package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/stratadb/nodeops/pkg/config"
	"github.com/stratadb/nodeops/pkg/executor"
	"github.com/stratadb/nodeops/pkg/log"
	"github.com/stratadb/nodeops/pkg/orchestrator"
	"github.com/stratadb/nodeops/pkg/secrets"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var (
	reIPNode    bool
	restartNode bool
	configPath  string
	logLevel    string
	logJSON     bool
)

var rootCmd = &cobra.Command{
	Use:   "nodeops",
	Short: "Nodeops - node address and restart orchestration for database pods",
	Long: `Nodeops runs once per container start inside a database cluster pod.

It detects whether the local host belongs to a live cluster, resolves the
local node's identity, and then either re-registers the node's network
address to match the pod's current address (init container) or restarts the
node's service process (app container). With no mode flag it performs the
detection steps only and exits.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if reIPNode && restartNode {
			return errors.New("--re-ip-node and --restart-node are mutually exclusive")
		}

		log.Init(log.Config{
			Level:      log.Level(logLevel),
			JSONOutput: logJSON,
			Output:     os.Stdout,
		})
		log.Logger = log.Logger.With().Str("run_id", uuid.NewString()).Logger()

		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %v", err)
		}

		mode := orchestrator.ModeDetect
		switch {
		case reIPNode:
			mode = orchestrator.ModeReIP
		case restartNode:
			mode = orchestrator.ModeRestart
		}

		orch := orchestrator.New(cfg, executor.NewCommandRunner(), secrets.NewFileProvider(cfg.CredentialPath))
		outcome := orch.Run(context.Background(), mode)
		if !outcome.Succeeded {
			return errors.New(outcome.Message)
		}

		fmt.Println(outcome.Message)
		return nil
	},
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"Nodeops version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	rootCmd.Flags().BoolVar(&reIPNode, "re-ip-node", false, "Update the registered address of the local node")
	rootCmd.Flags().BoolVar(&restartNode, "restart-node", false, "Restart the local node")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Optional YAML file overriding default paths")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	rootCmd.Flags().BoolVar(&logJSON, "log-json", false, "Emit JSON logs instead of console output")
}
