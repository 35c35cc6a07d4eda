package hubscan

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/elastic-chain/hubscan/sdk"
	"github.com/elastic-chain/hubscan/sdk/evm/bindings"
	"github.com/elastic-chain/hubscan/types"
)

// nativeTokenSentinel is the reserved token address the vault reports for
// the network's native currency.
var nativeTokenSentinel = common.HexToAddress("0x0000000000000000000000000000000000000001")

// AssetRegistry discovers the assets registered with the shared asset router
// and classifies each by the contract that registered it.
type AssetRegistry struct {
	client  sdk.ChainClient
	scanner *LogWindowScanner
}

// NewAssetRegistry creates a registry scanning with the given window size.
func NewAssetRegistry(client sdk.ChainClient, window uint64) (*AssetRegistry, error) {
	scanner, err := NewLogWindowScanner(client, window)
	if err != nil {
		return nil, err
	}

	return &AssetRegistry{client: client, scanner: scanner}, nil
}

type registeredPair struct {
	assetID common.Hash
	tracker common.Address
	block   uint64
	index   uint
}

// DiscoverAssets scans the router's registration events and resolves every
// registered asset, keyed by asset id. Classifications run concurrently and
// are joined before the map is assembled; a single classification failure
// fails the whole discovery. When the same asset id was registered more than
// once, the registration later in chain order wins, regardless of which
// classification finished first.
func (r *AssetRegistry) DiscoverAssets(ctx context.Context, router common.Address) (map[common.Hash]types.RegisteredAsset, error) {
	opts := &bind.CallOpts{Context: ctx}
	contract := bindings.NewAssetRouter(router, r.client)

	vault, err := contract.NativeTokenVault(opts)
	if err != nil {
		return nil, fmt.Errorf("read native token vault of router %s: %w", router, err)
	}
	hub, err := contract.BridgeHub(opts)
	if err != nil {
		return nil, fmt.Errorf("read bridge hub of router %s: %w", router, err)
	}

	logs, err := r.scanner.ScanAll(ctx, router)
	if err != nil {
		return nil, err
	}

	var pairs []registeredPair
	for _, l := range logs {
		if classifyLog(l) != eventAssetHandlerRegistered || len(l.Topics) < 3 {
			continue
		}
		tracker, err := addressFromTopic(l.Topics[2])
		if err != nil {
			return nil, fmt.Errorf("decode deployment tracker of asset %s: %w", l.Topics[1], err)
		}
		pairs = append(pairs, registeredPair{assetID: l.Topics[1], tracker: tracker, block: l.BlockNumber, index: l.Index})
	}

	// The backward scan visits newer blocks first. Re-registration of an
	// asset id must win by chain order, so sort by block position before
	// assembling the map.
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].block != pairs[j].block {
			return pairs[i].block < pairs[j].block
		}

		return pairs[i].index < pairs[j].index
	})

	// One result slot per pair: completion order of the fan-out can never
	// influence which registration wins.
	results := make([]types.RegisteredAsset, len(pairs))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for i, p := range pairs {
		wg.Add(1)
		go func(i int, p registeredPair) {
			defer wg.Done()

			asset, err := r.classify(ctx, p, vault, hub)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()

				return
			}
			results[i] = asset
		}(i, p)
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}

	assets := make(map[common.Hash]types.RegisteredAsset, len(pairs))
	for _, asset := range results {
		assets[asset.ID] = asset
	}

	sdk.LoggerFrom(ctx).Infof("discovered %d assets on router %s", len(assets), router)

	return assets, nil
}

func (r *AssetRegistry) classify(ctx context.Context, p registeredPair, vault, hub common.Address) (types.RegisteredAsset, error) {
	opts := &bind.CallOpts{Context: ctx}

	switch p.tracker {
	case vault:
		token, err := bindings.NewNativeTokenVault(vault, r.client).TokenAddress(opts, p.assetID)
		if err != nil {
			return types.RegisteredAsset{}, fmt.Errorf("read token address of asset %s: %w", p.assetID, err)
		}

		name := "ETH"
		if token != nativeTokenSentinel {
			name, err = bindings.NewERC20(token, r.client).Name(opts)
			if err != nil {
				return types.RegisteredAsset{}, fmt.Errorf("read name of token %s: %w", token, err)
			}
		}

		return types.RegisteredAsset{
			ID:           p.assetID,
			Handler:      types.HandlerVault,
			TokenAddress: token,
			TokenName:    name,
		}, nil
	case hub:
		return types.RegisteredAsset{ID: p.assetID, Handler: types.HandlerHub}, nil
	default:
		return types.RegisteredAsset{ID: p.assetID, Handler: types.HandlerOther, Tracker: p.tracker}, nil
	}
}

// ChainBalance reports the amount of a vault-tracked asset escrowed for one
// chain in the native token vault.
func (r *AssetRegistry) ChainBalance(ctx context.Context, router common.Address, chainID types.ChainID, assetID common.Hash) (*big.Int, error) {
	opts := &bind.CallOpts{Context: ctx}

	vaultAddr, err := bindings.NewAssetRouter(router, r.client).NativeTokenVault(opts)
	if err != nil {
		return nil, fmt.Errorf("read native token vault of router %s: %w", router, err)
	}

	vault := bindings.NewNativeTokenVault(vaultAddr, r.client)
	token, err := vault.TokenAddress(opts, assetID)
	if err != nil {
		return nil, fmt.Errorf("read token address of asset %s: %w", assetID, err)
	}

	balance, err := vault.ChainBalance(opts, new(big.Int).SetUint64(uint64(chainID)), token)
	if err != nil {
		return nil, fmt.Errorf("read chain balance of token %s for chain %d: %w", token, chainID, err)
	}

	return balance, nil
}
