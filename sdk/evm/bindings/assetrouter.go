package bindings

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

const assetRouterABI = `[
	{"type":"function","name":"nativeTokenVault","inputs":[],"outputs":[{"name":"","type":"address"}],"stateMutability":"view"},
	{"type":"function","name":"BRIDGE_HUB","inputs":[],"outputs":[{"name":"","type":"address"}],"stateMutability":"view"},
	{"type":"event","name":"AssetHandlerRegisteredInitial","inputs":[{"name":"assetId","type":"bytes32","indexed":true},{"name":"assetHandlerAddress","type":"address","indexed":true},{"name":"additionalData","type":"bytes32","indexed":true},{"name":"sender","type":"address","indexed":false}],"anonymous":false}
]`

var assetRouterParsedABI = mustParseABI(assetRouterABI)

// AssetHandlerRegisteredInitialTopic is the signature hash of the router's
// asset registration event.
var AssetHandlerRegisteredInitialTopic = assetRouterParsedABI.Events["AssetHandlerRegisteredInitial"].ID

// AssetRouter is a read-only binding to the shared asset router contract.
type AssetRouter struct {
	contract *bind.BoundContract
}

// NewAssetRouter creates a read-only AssetRouter binding at the given address.
func NewAssetRouter(address common.Address, caller bind.ContractCaller) *AssetRouter {
	return &AssetRouter{
		contract: bind.NewBoundContract(address, assetRouterParsedABI, caller, nil, nil),
	}
}

// NativeTokenVault calls nativeTokenVault().
func (r *AssetRouter) NativeTokenVault(opts *bind.CallOpts) (common.Address, error) {
	var out []any
	if err := r.contract.Call(opts, &out, "nativeTokenVault"); err != nil {
		return common.Address{}, err
	}

	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

// BridgeHub calls BRIDGE_HUB().
func (r *AssetRouter) BridgeHub(opts *bind.CallOpts) (common.Address, error) {
	var out []any
	if err := r.contract.Call(opts, &out, "BRIDGE_HUB"); err != nil {
		return common.Address{}, err
	}

	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}
