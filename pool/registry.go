package pool

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common"

	"github.com/alanyoungcy/panoptic-go/tokenid"
)

// Entry is one known pool in a Registry. Address holds the hex form of
// either a V3 pool address or a V4 pool-key hash; only its trailing five
// bytes key the registry.
type Entry struct {
	Name        string `toml:"name"`
	Address     string `toml:"address"`
	Fee         uint32 `toml:"fee"`
	TickSpacing int32  `toml:"tick_spacing"`
	Token0      Token  `toml:"token0"`
	Token1      Token  `toml:"token1"`
}

// Registry maps 40-bit pool fragments to known-pool metadata, so decoded
// identifiers can be annotated with full addresses and token symbols.
type Registry struct {
	byFragment map[uint64]Entry
}

// NewRegistry builds a registry over entries. Later entries win on fragment
// collision.
func NewRegistry(entries []Entry) (*Registry, error) {
	r := &Registry{byFragment: make(map[uint64]Entry, len(entries))}
	for _, e := range entries {
		id, err := tokenid.PoolIDFromHex(e.Address, e.TickSpacing, tokenid.DefaultVegoid)
		if err != nil {
			return nil, fmt.Errorf("pool: registry entry %q: %w", e.Name, err)
		}
		r.byFragment[tokenid.DecodePoolID(id).Fragment] = e
	}
	return r, nil
}

// registryFile is the on-disk shape: a list of [[pool]] tables.
type registryFile struct {
	Pools []Entry `toml:"pool"`
}

// LoadRegistry reads [[pool]] entries from a TOML file and layers them over
// the built-in mainnet defaults.
func LoadRegistry(path string) (*Registry, error) {
	var f registryFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("pool: load registry %s: %w", path, err)
	}
	return NewRegistry(append(DefaultEntries(), f.Pools...))
}

// Find returns the entry whose pool hex ends in fragment.
func (r *Registry) Find(fragment uint64) (Entry, bool) {
	e, ok := r.byFragment[fragment]
	return e, ok
}

// Len returns the number of distinct fragments registered.
func (r *Registry) Len() int { return len(r.byFragment) }

// DefaultRegistry returns a registry over the built-in mainnet defaults.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultEntries())
	if err != nil {
		panic(err) // the built-in entries always parse
	}
	return r
}

// DefaultEntries returns a starter set of mainnet V3 pools.
func DefaultEntries() []Entry {
	usdc := Token{Address: common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"), Symbol: "USDC", Decimals: 6}
	weth := Token{Address: common.HexToAddress("0xC02aaa39b223FE8D0A0e5C4F27eAD9083C756Cc2"), Symbol: "WETH", Decimals: 18}
	wbtc := Token{Address: common.HexToAddress("0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599"), Symbol: "WBTC", Decimals: 8}
	dai := Token{Address: common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F"), Symbol: "DAI", Decimals: 18}

	return []Entry{
		{
			Name:        "USDC/WETH 0.05%",
			Address:     "0x88e6A0c2dDD26FEEb64F039a2c41296FcB3f5640",
			Fee:         500,
			TickSpacing: 10,
			Token0:      usdc,
			Token1:      weth,
		},
		{
			Name:        "USDC/WETH 0.3%",
			Address:     "0x8ad599c3A0ff1De082011EFDDc58f1908eb6e6D8",
			Fee:         3000,
			TickSpacing: 60,
			Token0:      usdc,
			Token1:      weth,
		},
		{
			Name:        "WBTC/WETH 0.3%",
			Address:     "0xCBCdF9626bC03E24f779434178A73a0B4bad62eD",
			Fee:         3000,
			TickSpacing: 60,
			Token0:      wbtc,
			Token1:      weth,
		},
		{
			Name:        "DAI/USDC 0.01%",
			Address:     "0x5777d92f208679DB4b9778590Fa3CAB3aC9e2168",
			Fee:         100,
			TickSpacing: 1,
			Token0:      dai,
			Token1:      usdc,
		},
	}
}
