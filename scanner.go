// Package hubscan inspects a deployed multi-chain bridge hub: it discovers
// every chain registered with the hub, resolves the per-chain contract
// topology, and discovers and classifies the assets registered with the
// shared asset router.
package hubscan

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/go-playground/validator/v10"

	"github.com/elastic-chain/hubscan/sdk"
	"github.com/elastic-chain/hubscan/sdk/evm/bindings"
	"github.com/elastic-chain/hubscan/types"
)

// DefaultScanWindow is the block-count window used for historical log
// pagination when the caller does not override it.
const DefaultScanWindow = 10_000

type scannerConfig struct {
	Window uint64 `validate:"gt=0"`
}

// LogWindowScanner pages a contract's historical event log backward in fixed
// block windows, from the current head down to genesis.
type LogWindowScanner struct {
	client sdk.ChainClient
	window uint64
}

// NewLogWindowScanner creates a scanner with the given window size. The
// window must be a positive block count.
func NewLogWindowScanner(client sdk.ChainClient, window uint64) (*LogWindowScanner, error) {
	if err := validator.New().Struct(scannerConfig{Window: window}); err != nil {
		return nil, fmt.Errorf("invalid scan window %d: %w", window, err)
	}

	return &LogWindowScanner{client: client, window: window}, nil
}

// ScanAll returns every historical log emitted by the contract across
// [0, head]. Pages are queried strictly in descending order: each window's
// bounds derive from the previous cursor, so pages are never fetched
// concurrently. A head of 0 still scans the single window [0, 0]. Any query
// failure aborts the scan.
func (s *LogWindowScanner) ScanAll(ctx context.Context, contract common.Address) ([]ethtypes.Log, error) {
	head, err := s.client.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("get chain head: %w", err)
	}

	logger := sdk.LoggerFrom(ctx)

	var (
		all     []ethtypes.Log
		windows int
	)
	cursor := head
	for {
		prev := uint64(0)
		if cursor > s.window {
			prev = cursor - s.window
		}
		from := uint64(0)
		if cursor > 0 {
			from = prev + 1
		}

		logs, err := s.client.FilterLogs(ctx, ethereum.FilterQuery{
			FromBlock: new(big.Int).SetUint64(from),
			ToBlock:   new(big.Int).SetUint64(cursor),
			Addresses: []common.Address{contract},
		})
		if err != nil {
			return nil, fmt.Errorf("filter logs [%d, %d] for %s: %w", from, cursor, contract, err)
		}
		all = append(all, logs...)
		windows++

		if cursor == 0 {
			break
		}
		cursor = prev
	}

	logger.Infof("scanned %d windows for %s: %d logs", windows, contract, len(all))

	return all, nil
}

// eventKind classifies a log by its signature topic. The set of recognized
// events is closed; anything else falls through to eventUnknown and is
// ignored by every consumer.
type eventKind int

const (
	eventUnknown eventKind = iota
	eventNewChain
	eventAssetRegistered
	eventAssetHandlerRegistered
)

func classifyLog(l ethtypes.Log) eventKind {
	if len(l.Topics) == 0 {
		return eventUnknown
	}

	switch l.Topics[0] {
	case bindings.NewChainTopic:
		return eventNewChain
	case bindings.AssetRegisteredTopic:
		return eventAssetRegistered
	case bindings.AssetHandlerRegisteredInitialTopic:
		return eventAssetHandlerRegistered
	default:
		return eventUnknown
	}
}

// chainIDFromTopic narrows an indexed 256-bit chain id to 64 bits. Chain ids
// above 2^64 do not occur in practice; the cast mirrors what the hub itself
// emits.
func chainIDFromTopic(topic common.Hash) types.ChainID {
	return types.ChainID(new(big.Int).SetBytes(topic.Bytes()).Uint64())
}

// addressFromTopic narrows an indexed 256-bit topic value to a 20-byte
// address, failing when the upper 12 bytes are not zero.
func addressFromTopic(topic common.Hash) (common.Address, error) {
	for _, b := range topic[:common.HashLength-common.AddressLength] {
		if b != 0 {
			return common.Address{}, NewTopicNotAddressError(topic)
		}
	}

	return common.BytesToAddress(topic.Bytes()), nil
}
