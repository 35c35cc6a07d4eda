package hubscan

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/elastic-chain/hubscan/sdk"
	"github.com/elastic-chain/hubscan/sdk/evm/bindings"
	"github.com/elastic-chain/hubscan/types"
)

// Hub is a read-only handle to a deployed bridge hub contract.
type Hub struct {
	address      common.Address
	sharedBridge common.Address
	client       sdk.ChainClient
	contract     *bindings.Bridgehub
	chains       types.ChainSet
}

// NewHub binds to the hub at the given address. It fails with
// NoContractCodeError when the address holds no code, which usually means
// the wrong address or the wrong network was configured.
func NewHub(ctx context.Context, client sdk.ChainClient, address common.Address) (*Hub, error) {
	code, err := client.CodeAt(ctx, address, nil)
	if err != nil {
		return nil, fmt.Errorf("read code at %s: %w", address, err)
	}
	if len(code) == 0 {
		return nil, NewNoContractCodeError(address)
	}

	contract := bindings.NewBridgehub(address, client)
	sharedBridge, err := contract.SharedBridge(&bind.CallOpts{Context: ctx})
	if err != nil {
		return nil, fmt.Errorf("read shared bridge of hub %s: %w", address, err)
	}

	return &Hub{
		address:      address,
		sharedBridge: sharedBridge,
		client:       client,
		contract:     contract,
	}, nil
}

// Address returns the hub contract address.
func (h *Hub) Address() common.Address {
	return h.address
}

// SharedBridge returns the shared bridge address read at construction time.
func (h *Hub) SharedBridge() common.Address {
	return h.sharedBridge
}

// Chains returns the chain set from the last DiscoverChains run, or nil when
// discovery has not run yet.
func (h *Hub) Chains() types.ChainSet {
	return h.chains
}

// DiscoverChains runs chain discovery for this hub and remembers the result
// for later detail reporting.
func (h *Hub) DiscoverChains(ctx context.Context, engine *ChainDiscoveryEngine, role types.NetworkRole) (types.ChainSet, error) {
	set, err := engine.DiscoverChains(ctx, h.address, role)
	if err != nil {
		return nil, err
	}
	h.chains = set

	return set, nil
}

// ResolveTopology builds the full contract topology snapshot for one chain.
// The six queries run in a fixed order; only the validator timelock lookup
// depends on an earlier result (the transition manager address). The base
// token lookup is the single tolerated failure: a migrated chain can
// temporarily have no base token set, in which case the zero address is
// reported instead of an error. Every other failure aborts the resolution.
func (h *Hub) ResolveTopology(ctx context.Context, chainID types.ChainID) (types.BridgeTopology, error) {
	opts := &bind.CallOpts{Context: ctx}
	id := new(big.Int).SetUint64(uint64(chainID))

	stm, err := h.contract.StateTransitionManager(opts, id)
	if err != nil {
		return types.BridgeTopology{}, fmt.Errorf("read transition manager of chain %d: %w", chainID, err)
	}

	baseToken, err := h.contract.BaseToken(opts, id)
	if err != nil {
		baseToken = common.Address{}
	}

	transitionContract, err := h.contract.GetHyperchain(opts, id)
	if err != nil {
		return types.BridgeTopology{}, fmt.Errorf("read transition contract of chain %d: %w", chainID, err)
	}

	sharedBridge, err := h.contract.SharedBridge(opts)
	if err != nil {
		return types.BridgeTopology{}, fmt.Errorf("read shared bridge of hub %s: %w", h.address, err)
	}

	timelock, err := bindings.NewStateTransitionManager(stm, h.client).ValidatorTimelock(opts)
	if err != nil {
		return types.BridgeTopology{}, fmt.Errorf("read validator timelock of transition manager %s: %w", stm, err)
	}

	assetID, err := h.contract.StmAssetIDFromChainID(opts, id)
	if err != nil {
		return types.BridgeTopology{}, fmt.Errorf("read asset id of chain %d: %w", chainID, err)
	}

	return types.BridgeTopology{
		TransitionManager:  stm,
		TransitionContract: transitionContract,
		SharedBridge:       sharedBridge,
		BaseToken:          baseToken,
		ValidatorTimelock:  timelock,
		AssetID:            assetID,
	}, nil
}

// StateTransition reads the progress snapshot of the chain's transition
// contract.
func (h *Hub) StateTransition(ctx context.Context, chainID types.ChainID) (types.StateTransitionSnapshot, error) {
	transitionContract, err := h.contract.GetHyperchain(&bind.CallOpts{Context: ctx}, new(big.Int).SetUint64(uint64(chainID)))
	if err != nil {
		return types.StateTransitionSnapshot{}, fmt.Errorf("read transition contract of chain %d: %w", chainID, err)
	}

	return NewStateTransitionReader(h.client).ReadSnapshot(ctx, transitionContract)
}
