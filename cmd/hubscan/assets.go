package main

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/elastic-chain/hubscan"
	"github.com/elastic-chain/hubscan/internal/utils/safecast"
)

type assetsOptions struct {
	Router string `validate:"required,eth_addr"`
	Window int    `validate:"gt=0"`
}

func buildAssetsCmd(rpcURL *string) *cobra.Command {
	opts := assetsOptions{}

	cmd := cobra.Command{
		Use:   "assets",
		Short: "Discover and classify the assets registered with the shared asset router",
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

			registry, err := hubscan.NewAssetRegistry(client, window)
			if err != nil {
				return err
			}

			router := common.HexToAddress(opts.Router)
			assets, err := registry.DiscoverAssets(ctx, router)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), hubscan.RenderAssets(router, assets))

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Router, "router", "", "Shared asset router contract address")
	cmd.Flags().IntVar(&opts.Window, "window", hubscan.DefaultScanWindow, "Block-count window for historical log scans")

	return &cmd
}
