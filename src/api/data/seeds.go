package data

// Static configuration: the canonical agent roster and the tracked asset
// universe. Seeding operations take these as input; nothing derives them.

type AgentProfile struct {
	AgentID string
	Name    string
	Role    string
	Emoji   string
}

var DefaultAgents = []AgentProfile{
	{AgentID: "coordinator", Name: "Mission Control", Role: "Coordinator", Emoji: "🎯"},
	{AgentID: "crypto", Name: "Crypto", Role: "BTC/ETH/SOL Specialist", Emoji: "₿"},
	{AgentID: "gold", Name: "Gold", Role: "XAU Specialist", Emoji: "🥇"},
	{AgentID: "equities", Name: "Equities", Role: "Stock Specialist", Emoji: "📈"},
}

type AssetKey struct {
	Symbol    string
	Frequency string
}

var DefaultAssets = []AssetKey{
	{Symbol: "BTC", Frequency: "high"},
	{Symbol: "ETH", Frequency: "high"},
	{Symbol: "SOL", Frequency: "high"},
	{Symbol: "XAU", Frequency: "high"},
	{Symbol: "BTC", Frequency: "low"},
	{Symbol: "ETH", Frequency: "low"},
	{Symbol: "SOL", Frequency: "low"},
	{Symbol: "XAU", Frequency: "low"},
	{Symbol: "SPYX", Frequency: "low"},
	{Symbol: "NVDAX", Frequency: "low"},
	{Symbol: "TSLAX", Frequency: "low"},
	{Symbol: "AAPLX", Frequency: "low"},
	{Symbol: "GOOGLX", Frequency: "low"},
}

// AssetOwners maps symbols to the specialist agent responsible for them,
// used by the assignment repair tool.
var AssetOwners = map[string]string{
	"BTC": "crypto", "ETH": "crypto", "SOL": "crypto",
	"XAU": "gold",
	"SPYX": "equities", "NVDAX": "equities", "TSLAX": "equities",
	"AAPLX": "equities", "GOOGLX": "equities",
}
