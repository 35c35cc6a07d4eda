package hubscan

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/elastic-chain/hubscan/types"
)

// wellKnownAssetNames maps asset ids that ship with standard hub deployments
// to short display names. Extended as public deployments publish their ids.
var wellKnownAssetNames = map[common.Hash]string{}

// assetBaseName returns the well-known name for an asset id, falling back to
// a truncated hex rendering.
func assetBaseName(id common.Hash) string {
	if name, ok := wellKnownAssetNames[id]; ok {
		return name
	}
	h := id.Hex()

	return h[:10] + ".." + h[len(h)-4:]
}

// AssetDisplayName renders the human-readable name of a registered asset.
// Vault-backed assets carry their token name as a prefix.
func AssetDisplayName(a types.RegisteredAsset) string {
	if a.Handler == types.HandlerVault {
		return a.TokenName + "-" + assetBaseName(a.ID)
	}

	return assetBaseName(a.ID)
}
