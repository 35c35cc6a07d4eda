package hubscan

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/elastic-chain/hubscan/types"
)

// markHash appends a visibility marker to non-empty hashes that usually
// indicate in-flight state, such as a pending system upgrade.
func markHash(h common.Hash) string {
	if h == (common.Hash{}) {
		return h.Hex()
	}

	return h.Hex() + " (!)"
}

// markAddress appends a visibility marker to non-zero addresses of the same
// kind, such as a chain settling on another layer.
func markAddress(a common.Address) string {
	if a == (common.Address{}) {
		return a.Hex()
	}

	return a.Hex() + " (!)"
}

// RenderTopology renders one chain's contract topology block.
func RenderTopology(t types.BridgeTopology) string {
	var b strings.Builder
	fmt.Fprintf(&b, "    Shared bridge:      %s\n", t.SharedBridge.Hex())
	fmt.Fprintf(&b, "    Transition manager: %s\n", t.TransitionManager.Hex())
	fmt.Fprintf(&b, "    Transition:         %s\n", t.TransitionContract.Hex())
	fmt.Fprintf(&b, "    Base token:         %s\n", t.BaseToken.Hex())
	fmt.Fprintf(&b, "    Validator timelock: %s\n", t.ValidatorTimelock.Hex())
	fmt.Fprintf(&b, "    Asset id:           %s\n", t.AssetID.Hex())

	return b.String()
}

// RenderSnapshot renders one transition contract's progress block.
func RenderSnapshot(s types.StateTransitionSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "    Protocol version:   %s\n", s.ProtocolVersion)
	fmt.Fprintf(&b, "    Batches (C, V, E):  %s %s %s\n", s.BatchesCommitted, s.BatchesVerified, s.BatchesExecuted)
	fmt.Fprintf(&b, "    System upgrade:     %s\n", markHash(s.SystemUpgradeTxHash))
	fmt.Fprintf(&b, "    Bootloader hash:    %s\n", s.BootloaderHash.Hex())
	fmt.Fprintf(&b, "    AA hash:            %s\n", s.DefaultAccountHash.Hex())
	fmt.Fprintf(&b, "    Verifier:           %s\n", s.Verifier.Hex())
	fmt.Fprintf(&b, "    Admin:              %s\n", s.Admin.Hex())
	fmt.Fprintf(&b, "    Settlement layer:   %s\n", markAddress(s.SettlementLayer))

	return b.String()
}

// RenderAssets renders the asset router block with one entry per registered
// asset, ordered by asset id for stable output.
func RenderAssets(router common.Address, assets map[common.Hash]types.RegisteredAsset) string {
	ids := make([]common.Hash, 0, len(assets))
	for id := range assets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})

	var b strings.Builder
	fmt.Fprintf(&b, "Asset router: %s\n", router.Hex())
	for _, id := range ids {
		asset := assets[id]
		fmt.Fprintf(&b, "  Asset:   %s\n", AssetDisplayName(asset))
		fmt.Fprintf(&b, "    id:      %s\n", asset.ID.Hex())
		switch asset.Handler {
		case types.HandlerVault:
			fmt.Fprintf(&b, "    handler: vault token=%s name=%q\n", asset.TokenAddress.Hex(), asset.TokenName)
		case types.HandlerHub:
			fmt.Fprintf(&b, "    handler: hub\n")
		case types.HandlerOther:
			fmt.Fprintf(&b, "    handler: other tracker=%s\n", asset.Tracker.Hex())
		}
	}

	return b.String()
}

type chainDetails struct {
	topology types.BridgeTopology
	snapshot types.StateTransitionSnapshot
}

// DetailedReport resolves every discovered chain and renders the full hub
// report. Chain discovery must have run first. Per-chain resolutions fan out
// concurrently; the first failure aborts the whole report, so a report is
// always complete or absent, never partial.
func (h *Hub) DetailedReport(ctx context.Context) (string, error) {
	if h.chains == nil {
		return "", NewChainsNotDiscoveredError(h.address)
	}

	ids := h.chains.IDs()
	details := make([]chainDetails, len(ids))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id types.ChainID) {
			defer wg.Done()

			topology, err := h.ResolveTopology(ctx, id)
			if err == nil {
				var snapshot types.StateTransitionSnapshot
				snapshot, err = NewStateTransitionReader(h.client).ReadSnapshot(ctx, topology.TransitionContract)
				details[i] = chainDetails{topology: topology, snapshot: snapshot}
			}
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(i, id)
	}
	wg.Wait()
	if firstErr != nil {
		return "", firstErr
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Bridgehub:      %s\n", h.address.Hex())
	fmt.Fprintf(&b, "Shared bridge:  %s\n", h.sharedBridge.Hex())
	for i, id := range ids {
		fmt.Fprintf(&b, "  Chain: %d\n", id)
		b.WriteString(RenderTopology(details[i].topology))
		b.WriteString(RenderSnapshot(details[i].snapshot))
	}

	return b.String(), nil
}
