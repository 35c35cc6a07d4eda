package main

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/elastic-chain/hubscan"
	"github.com/elastic-chain/hubscan/internal/utils/safecast"
	"github.com/elastic-chain/hubscan/types"
)

type chainsOptions struct {
	Hub    string `validate:"required,eth_addr"`
	Role   string `validate:"required,oneof=RootChain Rollup"`
	Window int    `validate:"gt=0"`
}

func buildChainsCmd(rpcURL *string) *cobra.Command {
	opts := chainsOptions{}

	cmd := cobra.Command{
		Use:   "chains",
		Short: "Discover the chains registered with a bridge hub and report their topology",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validator.New().Struct(opts); err != nil {
				return err
			}

			ctx := newRunContext()

			client, err := dialClient(ctx, *rpcURL)
			if err != nil {
				return err
			}
			defer client.Close()

			window, err := safecast.IntToUint64(opts.Window)
			if err != nil {
				return err
			}

			hub, err := hubscan.NewHub(ctx, client, common.HexToAddress(opts.Hub))
			if err != nil {
				return err
			}

			// The rollup-side hyperchain enumerator is host-provided; the CLI
			// only wires the root-chain strategy.
			engine, err := hubscan.NewChainDiscoveryEngine(client, nil, window)
			if err != nil {
				return err
			}

			if _, err := hub.DiscoverChains(ctx, engine, types.StringToNetworkRole[opts.Role]); err != nil {
				return err
			}

			report, err := hub.DetailedReport(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report)

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Hub, "hub", "", "Bridge hub contract address")
	cmd.Flags().StringVar(&opts.Role, "role", string(types.RoleRootChain), "Network role of the RPC endpoint (RootChain or Rollup)")
	cmd.Flags().IntVar(&opts.Window, "window", hubscan.DefaultScanWindow, "Block-count window for historical log scans")

	return &cmd
}
