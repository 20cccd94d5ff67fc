package cmd

import (
	"net/http"
	"strings"

	"github.com/mezonai/wavesgo/client"
	"github.com/mezonai/wavesgo/config"
	"github.com/mezonai/wavesgo/exception"
	"github.com/mezonai/wavesgo/logx"
	"github.com/mezonai/wavesgo/monitoring"
	"github.com/spf13/cobra"
)

type RootConfig struct {
	ConfigFile  string
	Profile     string
	NodeURL     string
	MetricsAddr string
}

var rootConfig RootConfig

var rootCmd = &cobra.Command{
	Use:   "waves",
	Short: "Waves node client CLI",
	Long:  "Command line interface for deriving addresses, signing transfers and querying a Waves node.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		monitoring.InitMetrics()
		if rootConfig.MetricsAddr != "" {
			startMetricsServer(rootConfig.MetricsAddr)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootConfig.ConfigFile, "config", "c", "", "client config file (.yml or .ini)")
	rootCmd.PersistentFlags().StringVarP(&rootConfig.Profile, "profile", "P", "", "network profile: mainnet, testnet or stagenet")
	rootCmd.PersistentFlags().StringVarP(&rootConfig.NodeURL, "node-url", "u", "", "node REST URL, overrides the profile")
	rootCmd.PersistentFlags().StringVar(&rootConfig.MetricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		logx.Error("CMD", "Command execution failed: ", err)
		return 1
	}
	return 0
}

func startMetricsServer(addr string) {
	mux := http.NewServeMux()
	monitoring.RegisterMetrics(mux)
	exception.SafeGo("metrics server", func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			logx.Error("CMD", "metrics server stopped:", err)
		}
	})
}

// resolveConfig merges the config file with the --profile and --node-url flags.
func resolveConfig(rc RootConfig) (config.Resolved, error) {
	cfg := &config.ClientConfig{}
	if rc.ConfigFile != "" {
		loaded, err := config.Load(rc.ConfigFile)
		if err != nil {
			return config.Resolved{}, err
		}
		cfg = loaded
	}
	if rc.Profile != "" {
		cfg.Profile = rc.Profile
	}
	if rc.NodeURL != "" {
		cfg.NodeURL = strings.TrimSpace(rc.NodeURL)
	}
	return cfg.Resolve()
}

func createClient(rc RootConfig) (*client.NodeClient, config.Resolved, error) {
	resolved, err := resolveConfig(rc)
	if err != nil {
		return nil, config.Resolved{}, err
	}
	logx.Debug("CMD", "using node ", resolved.NodeURL, " on chain ", resolved.Profile.ChainID.String())
	return client.NewClient(client.ConfigFromFile(resolved)), resolved, nil
}
