package bindings

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

const bridgehubABI = `[
	{"type":"function","name":"sharedBridge","inputs":[],"outputs":[{"name":"","type":"address"}],"stateMutability":"view"},
	{"type":"function","name":"stateTransitionManager","inputs":[{"name":"chainId","type":"uint256"}],"outputs":[{"name":"","type":"address"}],"stateMutability":"view"},
	{"type":"function","name":"baseToken","inputs":[{"name":"chainId","type":"uint256"}],"outputs":[{"name":"","type":"address"}],"stateMutability":"view"},
	{"type":"function","name":"getHyperchain","inputs":[{"name":"_chainId","type":"uint256"}],"outputs":[{"name":"","type":"address"}],"stateMutability":"view"},
	{"type":"function","name":"stmAssetIdFromChainId","inputs":[{"name":"_chainId","type":"uint256"}],"outputs":[{"name":"","type":"bytes32"}],"stateMutability":"view"},
	{"type":"event","name":"NewChain","inputs":[{"name":"chainId","type":"uint256","indexed":true},{"name":"stateTransitionManager","type":"address","indexed":false},{"name":"chainGovernance","type":"address","indexed":true}],"anonymous":false},
	{"type":"event","name":"AssetRegistered","inputs":[{"name":"assetInfo","type":"bytes32","indexed":true},{"name":"assetAddress","type":"address","indexed":true},{"name":"additionalData","type":"bytes32","indexed":true},{"name":"sender","type":"address","indexed":false}],"anonymous":false}
]`

var bridgehubParsedABI = mustParseABI(bridgehubABI)

// Signature hashes of the hub events the log scan classifies on.
var (
	NewChainTopic        = bridgehubParsedABI.Events["NewChain"].ID
	AssetRegisteredTopic = bridgehubParsedABI.Events["AssetRegistered"].ID
)

// Bridgehub is a read-only binding to the bridge hub contract.
type Bridgehub struct {
	address  common.Address
	contract *bind.BoundContract
}

// NewBridgehub creates a read-only Bridgehub binding at the given address.
func NewBridgehub(address common.Address, caller bind.ContractCaller) *Bridgehub {
	return &Bridgehub{
		address:  address,
		contract: bind.NewBoundContract(address, bridgehubParsedABI, caller, nil, nil),
	}
}

// Address returns the bound contract address.
func (b *Bridgehub) Address() common.Address {
	return b.address
}

// SharedBridge calls sharedBridge().
func (b *Bridgehub) SharedBridge(opts *bind.CallOpts) (common.Address, error) {
	var out []any
	if err := b.contract.Call(opts, &out, "sharedBridge"); err != nil {
		return common.Address{}, err
	}

	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

// StateTransitionManager calls stateTransitionManager(chainId).
func (b *Bridgehub) StateTransitionManager(opts *bind.CallOpts, chainID *big.Int) (common.Address, error) {
	var out []any
	if err := b.contract.Call(opts, &out, "stateTransitionManager", chainID); err != nil {
		return common.Address{}, err
	}

	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

// BaseToken calls baseToken(chainId).
func (b *Bridgehub) BaseToken(opts *bind.CallOpts, chainID *big.Int) (common.Address, error) {
	var out []any
	if err := b.contract.Call(opts, &out, "baseToken", chainID); err != nil {
		return common.Address{}, err
	}

	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

// GetHyperchain calls getHyperchain(chainId).
func (b *Bridgehub) GetHyperchain(opts *bind.CallOpts, chainID *big.Int) (common.Address, error) {
	var out []any
	if err := b.contract.Call(opts, &out, "getHyperchain", chainID); err != nil {
		return common.Address{}, err
	}

	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

// StmAssetIDFromChainID calls stmAssetIdFromChainId(chainId).
func (b *Bridgehub) StmAssetIDFromChainID(opts *bind.CallOpts, chainID *big.Int) (common.Hash, error) {
	var out []any
	if err := b.contract.Call(opts, &out, "stmAssetIdFromChainId", chainID); err != nil {
		return common.Hash{}, err
	}

	return common.Hash(*abi.ConvertType(out[0], new([32]byte)).(*[32]byte)), nil
}
