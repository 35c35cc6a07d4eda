package bindings

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

const stateTransitionManagerABI = `[
	{"type":"function","name":"validatorTimelock","inputs":[],"outputs":[{"name":"","type":"address"}],"stateMutability":"view"}
]`

var stateTransitionManagerParsedABI = mustParseABI(stateTransitionManagerABI)

// StateTransitionManager is a read-only binding to a per-chain transition
// manager contract.
type StateTransitionManager struct {
	contract *bind.BoundContract
}

// NewStateTransitionManager creates a read-only StateTransitionManager
// binding at the given address.
func NewStateTransitionManager(address common.Address, caller bind.ContractCaller) *StateTransitionManager {
	return &StateTransitionManager{
		contract: bind.NewBoundContract(address, stateTransitionManagerParsedABI, caller, nil, nil),
	}
}

// ValidatorTimelock calls validatorTimelock().
func (m *StateTransitionManager) ValidatorTimelock(opts *bind.CallOpts) (common.Address, error) {
	var out []any
	if err := m.contract.Call(opts, &out, "validatorTimelock"); err != nil {
		return common.Address{}, err
	}

	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}
