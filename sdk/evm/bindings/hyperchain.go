package bindings

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

const hyperchainABI = `[
	{"type":"function","name":"getVerifier","inputs":[],"outputs":[{"name":"","type":"address"}],"stateMutability":"view"},
	{"type":"function","name":"getAdmin","inputs":[],"outputs":[{"name":"","type":"address"}],"stateMutability":"view"},
	{"type":"function","name":"getTotalBatchesCommitted","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"getTotalBatchesVerified","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"getTotalBatchesExecuted","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"getSemverProtocolVersion","inputs":[],"outputs":[{"name":"","type":"uint32"},{"name":"","type":"uint32"},{"name":"","type":"uint32"}],"stateMutability":"view"},
	{"type":"function","name":"getL2BootloaderBytecodeHash","inputs":[],"outputs":[{"name":"","type":"bytes32"}],"stateMutability":"view"},
	{"type":"function","name":"getL2DefaultAccountBytecodeHash","inputs":[],"outputs":[{"name":"","type":"bytes32"}],"stateMutability":"view"},
	{"type":"function","name":"getL2SystemContractsUpgradeTxHash","inputs":[],"outputs":[{"name":"","type":"bytes32"}],"stateMutability":"view"},
	{"type":"function","name":"getChainId","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"getSettlementLayer","inputs":[],"outputs":[{"name":"","type":"address"}],"stateMutability":"view"}
]`

var hyperchainParsedABI = mustParseABI(hyperchainABI)

// Hyperchain is a read-only binding to a per-chain transition contract.
type Hyperchain struct {
	address  common.Address
	contract *bind.BoundContract
}

// NewHyperchain creates a read-only Hyperchain binding at the given address.
func NewHyperchain(address common.Address, caller bind.ContractCaller) *Hyperchain {
	return &Hyperchain{
		address:  address,
		contract: bind.NewBoundContract(address, hyperchainParsedABI, caller, nil, nil),
	}
}

func (h *Hyperchain) callAddress(opts *bind.CallOpts, method string) (common.Address, error) {
	var out []any
	if err := h.contract.Call(opts, &out, method); err != nil {
		return common.Address{}, err
	}

	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

func (h *Hyperchain) callUint256(opts *bind.CallOpts, method string) (*big.Int, error) {
	var out []any
	if err := h.contract.Call(opts, &out, method); err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (h *Hyperchain) callBytes32(opts *bind.CallOpts, method string) (common.Hash, error) {
	var out []any
	if err := h.contract.Call(opts, &out, method); err != nil {
		return common.Hash{}, err
	}

	return common.Hash(*abi.ConvertType(out[0], new([32]byte)).(*[32]byte)), nil
}

// GetVerifier calls getVerifier().
func (h *Hyperchain) GetVerifier(opts *bind.CallOpts) (common.Address, error) {
	return h.callAddress(opts, "getVerifier")
}

// GetAdmin calls getAdmin().
func (h *Hyperchain) GetAdmin(opts *bind.CallOpts) (common.Address, error) {
	return h.callAddress(opts, "getAdmin")
}

// GetTotalBatchesCommitted calls getTotalBatchesCommitted().
func (h *Hyperchain) GetTotalBatchesCommitted(opts *bind.CallOpts) (*big.Int, error) {
	return h.callUint256(opts, "getTotalBatchesCommitted")
}

// GetTotalBatchesVerified calls getTotalBatchesVerified().
func (h *Hyperchain) GetTotalBatchesVerified(opts *bind.CallOpts) (*big.Int, error) {
	return h.callUint256(opts, "getTotalBatchesVerified")
}

// GetTotalBatchesExecuted calls getTotalBatchesExecuted().
func (h *Hyperchain) GetTotalBatchesExecuted(opts *bind.CallOpts) (*big.Int, error) {
	return h.callUint256(opts, "getTotalBatchesExecuted")
}

// GetSemverProtocolVersion calls getSemverProtocolVersion().
func (h *Hyperchain) GetSemverProtocolVersion(opts *bind.CallOpts) (uint32, uint32, uint32, error) {
	var out []any
	if err := h.contract.Call(opts, &out, "getSemverProtocolVersion"); err != nil {
		return 0, 0, 0, err
	}

	major := *abi.ConvertType(out[0], new(uint32)).(*uint32)
	minor := *abi.ConvertType(out[1], new(uint32)).(*uint32)
	patch := *abi.ConvertType(out[2], new(uint32)).(*uint32)

	return major, minor, patch, nil
}

// GetL2BootloaderBytecodeHash calls getL2BootloaderBytecodeHash().
func (h *Hyperchain) GetL2BootloaderBytecodeHash(opts *bind.CallOpts) (common.Hash, error) {
	return h.callBytes32(opts, "getL2BootloaderBytecodeHash")
}

// GetL2DefaultAccountBytecodeHash calls getL2DefaultAccountBytecodeHash().
func (h *Hyperchain) GetL2DefaultAccountBytecodeHash(opts *bind.CallOpts) (common.Hash, error) {
	return h.callBytes32(opts, "getL2DefaultAccountBytecodeHash")
}

// GetL2SystemContractsUpgradeTxHash calls getL2SystemContractsUpgradeTxHash().
func (h *Hyperchain) GetL2SystemContractsUpgradeTxHash(opts *bind.CallOpts) (common.Hash, error) {
	return h.callBytes32(opts, "getL2SystemContractsUpgradeTxHash")
}

// GetChainID calls getChainId().
func (h *Hyperchain) GetChainID(opts *bind.CallOpts) (*big.Int, error) {
	return h.callUint256(opts, "getChainId")
}

// GetSettlementLayer calls getSettlementLayer().
func (h *Hyperchain) GetSettlementLayer(opts *bind.CallOpts) (common.Address, error) {
	return h.callAddress(opts, "getSettlementLayer")
}
