package main

import (
	"github.com/spf13/cobra"
)

func buildRootCmd() *cobra.Command {
	var rpcURL string

	cmd := cobra.Command{
		Use:   "hubscan",
		Short: "Inspect a deployed bridge hub and its registered chains and assets",
		Long: `hubscan discovers every chain attached to a bridge hub, resolves the full
per-chain contract topology, and classifies the assets registered with the
shared asset router. All queries are read-only.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&rpcURL, "rpc", "", "RPC endpoint to query (falls back to RPC_URL in .env)")

	cmd.AddCommand(buildChainsCmd(&rpcURL))
	cmd.AddCommand(buildAssetsCmd(&rpcURL))

	return &cmd
}
