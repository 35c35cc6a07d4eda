package hubscan

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/elastic-chain/hubscan/sdk"
	"github.com/elastic-chain/hubscan/sdk/evm/bindings"
	"github.com/elastic-chain/hubscan/types"
)

// fakeChainClient is a fake sdk.ChainClient. Read calls are looked up by
// contract address and 4-byte selector; logs are filtered by address and
// block range, mirroring eth_getLogs. Safe for concurrent use.
type fakeChainClient struct {
	mu        sync.Mutex
	head      uint64
	headErr   error
	filterErr error
	code      map[common.Address][]byte
	logs      []ethtypes.Log
	calls     map[string][]byte
	callErrs  map[string]error
	callCount map[string]int
	windows   [][2]uint64
}

func newFakeChainClient() *fakeChainClient {
	return &fakeChainClient{
		code:      make(map[common.Address][]byte),
		calls:     make(map[string][]byte),
		callErrs:  make(map[string]error),
		callCount: make(map[string]int),
	}
}

func selectorOf(sig string) string {
	return common.Bytes2Hex(crypto.Keccak256([]byte(sig))[:4])
}

func callKey(to common.Address, selectorHex string) string {
	return to.Hex() + "/" + selectorHex
}

func (f *fakeChainClient) setCode(account common.Address, code []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.code[account] = code
}

func (f *fakeChainClient) setCall(to common.Address, sig string, output []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[callKey(to, selectorOf(sig))] = output
}

func (f *fakeChainClient) setCallError(to common.Address, sig string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.callErrs[callKey(to, selectorOf(sig))] = err
}

func (f *fakeChainClient) addLog(l ethtypes.Log) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logs = append(f.logs, l)
}

func (f *fakeChainClient) callsTo(to common.Address, sig string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.callCount[callKey(to, selectorOf(sig))]
}

func (f *fakeChainClient) scannedWindows() [][2]uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([][2]uint64(nil), f.windows...)
}

func (f *fakeChainClient) CodeAt(_ context.Context, account common.Address, _ *big.Int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if code, ok := f.code[account]; ok {
		return code, nil
	}

	// Contracts exist by default so that BoundContract's empty-result code
	// probe succeeds.
	return []byte{0x01}, nil
}

func (f *fakeChainClient) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := callKey(*msg.To, common.Bytes2Hex(msg.Data[:4]))
	f.callCount[key]++

	if err, ok := f.callErrs[key]; ok {
		return nil, err
	}
	if output, ok := f.calls[key]; ok {
		return output, nil
	}

	return nil, fmt.Errorf("unexpected call %s", key)
}

func (f *fakeChainClient) BlockNumber(_ context.Context) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.head, f.headErr
}

func (f *fakeChainClient) FilterLogs(_ context.Context, q ethereum.FilterQuery) ([]ethtypes.Log, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	from, to := q.FromBlock.Uint64(), q.ToBlock.Uint64()
	f.windows = append(f.windows, [2]uint64{from, to})

	if f.filterErr != nil {
		return nil, f.filterErr
	}

	var out []ethtypes.Log
	for _, l := range f.logs {
		if l.BlockNumber < from || l.BlockNumber > to {
			continue
		}
		for _, addr := range q.Addresses {
			if l.Address == addr {
				out = append(out, l)
				break
			}
		}
	}

	return out, nil
}

var _ sdk.ChainClient = (*fakeChainClient)(nil)

// fakeEnumerator is a fake sdk.HyperchainEnumerator.
type fakeEnumerator struct {
	hyperchains []sdk.Hyperchain
	err         error
}

func (f *fakeEnumerator) EnumerateHyperchains(_ context.Context) ([]sdk.Hyperchain, error) {
	return f.hyperchains, f.err
}

// ABI return-value encoders for fake call outputs.

func encAddress(a common.Address) []byte {
	return common.LeftPadBytes(a.Bytes(), 32)
}

func encHash(h common.Hash) []byte {
	return h.Bytes()
}

func encUint256(n uint64) []byte {
	return common.LeftPadBytes(new(big.Int).SetUint64(n).Bytes(), 32)
}

func encUint32Triple(major, minor, patch uint32) []byte {
	out := make([]byte, 0, 96)
	for _, v := range []uint32{major, minor, patch} {
		out = append(out, common.LeftPadBytes(new(big.Int).SetUint64(uint64(v)).Bytes(), 32)...)
	}

	return out
}

func encString(s string) []byte {
	out := make([]byte, 0, 96)
	out = append(out, common.LeftPadBytes(big.NewInt(32).Bytes(), 32)...)
	out = append(out, common.LeftPadBytes(big.NewInt(int64(len(s))).Bytes(), 32)...)
	padded := make([]byte, (len(s)+31)/32*32)
	copy(padded, s)

	return append(out, padded...)
}

// Log constructors for the events the scanner classifies.

func newChainLog(hub common.Address, chainID types.ChainID, block uint64) ethtypes.Log {
	return ethtypes.Log{
		Address: hub,
		Topics: []common.Hash{
			bindings.NewChainTopic,
			common.BigToHash(new(big.Int).SetUint64(uint64(chainID))),
			common.Hash{},
		},
		BlockNumber: block,
	}
}

func assetRegisteredLog(router common.Address, assetID common.Hash, tracker common.Hash, block uint64) ethtypes.Log {
	return ethtypes.Log{
		Address: router,
		Topics: []common.Hash{
			bindings.AssetHandlerRegisteredInitialTopic,
			assetID,
			tracker,
		},
		BlockNumber: block,
	}
}
