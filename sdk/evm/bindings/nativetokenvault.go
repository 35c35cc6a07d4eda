package bindings

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

const nativeTokenVaultABI = `[
	{"type":"function","name":"tokenAddress","inputs":[{"name":"assetId","type":"bytes32"}],"outputs":[{"name":"","type":"address"}],"stateMutability":"view"},
	{"type":"function","name":"chainBalance","inputs":[{"name":"_chainId","type":"uint256"},{"name":"_l1Token","type":"address"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"}
]`

var nativeTokenVaultParsedABI = mustParseABI(nativeTokenVaultABI)

// NativeTokenVault is a read-only binding to the native token vault contract.
type NativeTokenVault struct {
	contract *bind.BoundContract
}

// NewNativeTokenVault creates a read-only NativeTokenVault binding at the
// given address.
func NewNativeTokenVault(address common.Address, caller bind.ContractCaller) *NativeTokenVault {
	return &NativeTokenVault{
		contract: bind.NewBoundContract(address, nativeTokenVaultParsedABI, caller, nil, nil),
	}
}

// TokenAddress calls tokenAddress(assetId).
func (v *NativeTokenVault) TokenAddress(opts *bind.CallOpts, assetID common.Hash) (common.Address, error) {
	var out []any
	if err := v.contract.Call(opts, &out, "tokenAddress", [32]byte(assetID)); err != nil {
		return common.Address{}, err
	}

	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

// ChainBalance calls chainBalance(chainId, token).
func (v *NativeTokenVault) ChainBalance(opts *bind.CallOpts, chainID *big.Int, token common.Address) (*big.Int, error) {
	var out []any
	if err := v.contract.Call(opts, &out, "chainBalance", chainID, token); err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}
