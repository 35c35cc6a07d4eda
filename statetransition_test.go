package hubscan

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elastic-chain/hubscan/types"
)

var (
	verifierAddr   = common.HexToAddress("0xe1e1e1e1e1e1e1e1e1e1e1e1e1e1e1e1e1e1e1e1")
	adminAddr      = common.HexToAddress("0xe2e2e2e2e2e2e2e2e2e2e2e2e2e2e2e2e2e2e2e2")
	settlementAddr = common.HexToAddress("0xe3e3e3e3e3e3e3e3e3e3e3e3e3e3e3e3e3e3e3e3")
	bootloaderHash = common.HexToHash("0xf1f1f1f1f1f1f1f1f1f1f1f1f1f1f1f1f1f1f1f1f1f1f1f1f1f1f1f1f1f1f1f1")
	aaHash         = common.HexToHash("0xf2f2f2f2f2f2f2f2f2f2f2f2f2f2f2f2f2f2f2f2f2f2f2f2f2f2f2f2f2f2f2f2")
	upgradeTxHash  = common.HexToHash("0xf3f3f3f3f3f3f3f3f3f3f3f3f3f3f3f3f3f3f3f3f3f3f3f3f3f3f3f3f3f3f3f3")
)

// setupSnapshotCalls primes the fake with all nine transition contract reads.
func setupSnapshotCalls(client *fakeChainClient, contract common.Address) {
	client.setCall(contract, "getVerifier()", encAddress(verifierAddr))
	client.setCall(contract, "getAdmin()", encAddress(adminAddr))
	client.setCall(contract, "getTotalBatchesCommitted()", encUint256(120))
	client.setCall(contract, "getTotalBatchesVerified()", encUint256(110))
	client.setCall(contract, "getTotalBatchesExecuted()", encUint256(100))
	client.setCall(contract, "getSemverProtocolVersion()", encUint32Triple(0, 26, 1))
	client.setCall(contract, "getL2BootloaderBytecodeHash()", encHash(bootloaderHash))
	client.setCall(contract, "getL2DefaultAccountBytecodeHash()", encHash(aaHash))
	client.setCall(contract, "getL2SystemContractsUpgradeTxHash()", encHash(upgradeTxHash))
	client.setCall(contract, "getChainId()", encUint256(270))
	client.setCall(contract, "getSettlementLayer()", encAddress(settlementAddr))
}

func TestStateTransitionReader_ReadSnapshot(t *testing.T) {
	t.Parallel()

	client := newFakeChainClient()
	setupSnapshotCalls(client, transitionAddr)

	snapshot, err := NewStateTransitionReader(client).ReadSnapshot(context.Background(), transitionAddr)
	require.NoError(t, err)

	assert.Equal(t, types.StateTransitionSnapshot{
		Verifier:            verifierAddr,
		Admin:               adminAddr,
		BatchesCommitted:    big.NewInt(120),
		BatchesVerified:     big.NewInt(110),
		BatchesExecuted:     big.NewInt(100),
		ProtocolVersion:     types.ProtocolVersion{Major: 0, Minor: 26, Patch: 1},
		BootloaderHash:      bootloaderHash,
		DefaultAccountHash:  aaHash,
		SystemUpgradeTxHash: upgradeTxHash,
		ChainID:             big.NewInt(270),
		SettlementLayer:     settlementAddr,
	}, snapshot)
}

// Counters are reported as-is: a transiently inconsistent ordering (for
// example during a re-org) is not validated away.
func TestStateTransitionReader_DoesNotValidateCounters(t *testing.T) {
	t.Parallel()

	client := newFakeChainClient()
	setupSnapshotCalls(client, transitionAddr)
	client.setCall(transitionAddr, "getTotalBatchesExecuted()", encUint256(999))

	snapshot, err := NewStateTransitionReader(client).ReadSnapshot(context.Background(), transitionAddr)
	require.NoError(t, err)

	assert.Equal(t, big.NewInt(999), snapshot.BatchesExecuted)
	assert.Equal(t, big.NewInt(110), snapshot.BatchesVerified)
}

func TestStateTransitionReader_FailureNamesField(t *testing.T) {
	t.Parallel()

	client := newFakeChainClient()
	setupSnapshotCalls(client, transitionAddr)
	client.setCallError(transitionAddr, "getVerifier()", errors.New("execution reverted"))

	_, err := NewStateTransitionReader(client).ReadSnapshot(context.Background(), transitionAddr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verifier")
}

func TestHub_StateTransition(t *testing.T) {
	t.Parallel()

	client := newFakeChainClient()
	setupTopologyCalls(client)
	setupSnapshotCalls(client, transitionAddr)

	hub, err := NewHub(context.Background(), client, testHubAddr)
	require.NoError(t, err)

	snapshot, err := hub.StateTransition(context.Background(), 270)
	require.NoError(t, err)

	assert.Equal(t, verifierAddr, snapshot.Verifier)
	assert.Equal(t, big.NewInt(270), snapshot.ChainID)
}
