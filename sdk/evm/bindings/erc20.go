package bindings

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

const erc20ABI = `[
	{"type":"function","name":"name","inputs":[],"outputs":[{"name":"","type":"string"}],"stateMutability":"view"}
]`

var erc20ParsedABI = mustParseABI(erc20ABI)

// ERC20 is a read-only binding to the name() getter of an ERC-20 token.
type ERC20 struct {
	contract *bind.BoundContract
}

// NewERC20 creates a read-only ERC20 binding at the given address.
func NewERC20(address common.Address, caller bind.ContractCaller) *ERC20 {
	return &ERC20{
		contract: bind.NewBoundContract(address, erc20ParsedABI, caller, nil, nil),
	}
}

// Name calls name().
func (t *ERC20) Name(opts *bind.CallOpts) (string, error) {
	var out []any
	if err := t.contract.Call(opts, &out, "name"); err != nil {
		return "", err
	}

	return *abi.ConvertType(out[0], new(string)).(*string), nil
}
