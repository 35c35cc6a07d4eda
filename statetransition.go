package hubscan

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/elastic-chain/hubscan/sdk"
	"github.com/elastic-chain/hubscan/sdk/evm/bindings"
	"github.com/elastic-chain/hubscan/types"
)

// StateTransitionReader reads the progress and version snapshot of one
// transition contract.
type StateTransitionReader struct {
	client sdk.ChainClient
}

// NewStateTransitionReader creates a reader over the given client.
func NewStateTransitionReader(client sdk.ChainClient) *StateTransitionReader {
	return &StateTransitionReader{client: client}
}

// ReadSnapshot issues the fixed sequence of read calls against the
// transition contract and assembles the snapshot. The calls are independent
// and the snapshot is not atomic across them: state changing mid-read shows
// up as-is.
func (r *StateTransitionReader) ReadSnapshot(ctx context.Context, address common.Address) (types.StateTransitionSnapshot, error) {
	contract := bindings.NewHyperchain(address, r.client)
	opts := &bind.CallOpts{Context: ctx}

	fail := func(field string, err error) (types.StateTransitionSnapshot, error) {
		return types.StateTransitionSnapshot{}, fmt.Errorf("read %s of transition contract %s: %w", field, address, err)
	}

	verifier, err := contract.GetVerifier(opts)
	if err != nil {
		return fail("verifier", err)
	}

	committed, err := contract.GetTotalBatchesCommitted(opts)
	if err != nil {
		return fail("batches committed", err)
	}
	verified, err := contract.GetTotalBatchesVerified(opts)
	if err != nil {
		return fail("batches verified", err)
	}
	executed, err := contract.GetTotalBatchesExecuted(opts)
	if err != nil {
		return fail("batches executed", err)
	}

	major, minor, patch, err := contract.GetSemverProtocolVersion(opts)
	if err != nil {
		return fail("protocol version", err)
	}

	admin, err := contract.GetAdmin(opts)
	if err != nil {
		return fail("admin", err)
	}

	bootloaderHash, err := contract.GetL2BootloaderBytecodeHash(opts)
	if err != nil {
		return fail("bootloader hash", err)
	}
	defaultAccountHash, err := contract.GetL2DefaultAccountBytecodeHash(opts)
	if err != nil {
		return fail("default account hash", err)
	}
	upgradeTxHash, err := contract.GetL2SystemContractsUpgradeTxHash(opts)
	if err != nil {
		return fail("system upgrade tx hash", err)
	}

	chainID, err := contract.GetChainID(opts)
	if err != nil {
		return fail("chain id", err)
	}
	settlementLayer, err := contract.GetSettlementLayer(opts)
	if err != nil {
		return fail("settlement layer", err)
	}

	return types.StateTransitionSnapshot{
		Verifier:            verifier,
		Admin:               admin,
		BatchesCommitted:    committed,
		BatchesVerified:     verified,
		BatchesExecuted:     executed,
		ProtocolVersion:     types.ProtocolVersion{Major: major, Minor: minor, Patch: patch},
		BootloaderHash:      bootloaderHash,
		DefaultAccountHash:  defaultAccountHash,
		SystemUpgradeTxHash: upgradeTxHash,
		ChainID:             chainID,
		SettlementLayer:     settlementLayer,
	}, nil
}
