package hubscan

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/elastic-chain/hubscan/sdk"
	"github.com/elastic-chain/hubscan/types"
)

// ChainDiscoveryEngine enumerates the chain ids registered with a bridge
// hub. The scanning strategy depends on the role of the queried network:
// on the root chain the hub's NewChain events are scanned, on a rollup the
// external hyperchain enumerator is consulted. The two strategies produce
// interchangeable results; no consumer branches on which one ran.
type ChainDiscoveryEngine struct {
	scanner    *LogWindowScanner
	enumerator sdk.HyperchainEnumerator
}

// NewChainDiscoveryEngine creates a discovery engine. The enumerator may be
// nil when discovery only ever runs against the root chain.
func NewChainDiscoveryEngine(client sdk.ChainClient, enumerator sdk.HyperchainEnumerator, window uint64) (*ChainDiscoveryEngine, error) {
	scanner, err := NewLogWindowScanner(client, window)
	if err != nil {
		return nil, err
	}

	return &ChainDiscoveryEngine{scanner: scanner, enumerator: enumerator}, nil
}

// DiscoverChains returns the deduplicated set of chain ids registered with
// the hub. A chain is never removed once discovered within a run.
func (e *ChainDiscoveryEngine) DiscoverChains(ctx context.Context, hub common.Address, role types.NetworkRole) (types.ChainSet, error) {
	switch role {
	case types.RoleRootChain:
		return e.discoverFromLogs(ctx, hub)
	case types.RoleRollup:
		return e.discoverFromEnumerator(ctx)
	default:
		return nil, NewUnknownNetworkRoleError(role)
	}
}

func (e *ChainDiscoveryEngine) discoverFromLogs(ctx context.Context, hub common.Address) (types.ChainSet, error) {
	logs, err := e.scanner.ScanAll(ctx, hub)
	if err != nil {
		return nil, err
	}

	set := types.NewChainSet()
	for _, l := range logs {
		switch classifyLog(l) {
		case eventNewChain:
			if len(l.Topics) < 2 {
				continue
			}
			set.Add(chainIDFromTopic(l.Topics[1]))
		case eventAssetRegistered:
			// Asset registrations on the hub are handled by the asset
			// registry's own scan of the router, not here.
		}
	}

	sdk.LoggerFrom(ctx).Infof("discovered %d chains on hub %s", len(set), hub)

	return set, nil
}

func (e *ChainDiscoveryEngine) discoverFromEnumerator(ctx context.Context) (types.ChainSet, error) {
	if e.enumerator == nil {
		return nil, fmt.Errorf("rollup discovery requested but no hyperchain enumerator is configured")
	}

	hyperchains, err := e.enumerator.EnumerateHyperchains(ctx)
	if err != nil {
		return nil, err
	}

	set := types.NewChainSet()
	for _, hc := range hyperchains {
		set.Add(hc.ChainID)
	}

	return set, nil
}
