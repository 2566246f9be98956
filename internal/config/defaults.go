package config

// Default values for optional configuration fields. Filenames follow the
// collector's on-disk layout.
const (
	DefaultDataDir       = "data"
	DefaultSnapshotsFile = "orderbook_snapshots.json"
	DefaultTradesFile    = "trades.json"
	DefaultTickSizesFile = "tick_size_changes.json"
	DefaultBookDepth     = 5
	DefaultAssetIDWidth  = 20
)

// Default returns a configuration with every field at its default,
// for invocations that supply no config file.
func Default() *ReaderConfig {
	cfg := &ReaderConfig{}
	cfg.applyDefaults()
	return cfg
}

func (c *ReaderConfig) applyDefaults() {
	// Data defaults
	if c.Data.Dir == "" {
		c.Data.Dir = DefaultDataDir
	}
	if c.Data.SnapshotsFile == "" {
		c.Data.SnapshotsFile = DefaultSnapshotsFile
	}
	if c.Data.TradesFile == "" {
		c.Data.TradesFile = DefaultTradesFile
	}
	if c.Data.TickSizesFile == "" {
		c.Data.TickSizesFile = DefaultTickSizesFile
	}

	// Display defaults
	if c.Display.BookDepth == 0 {
		c.Display.BookDepth = DefaultBookDepth
	}
	if c.Display.AssetIDWidth == 0 {
		c.Display.AssetIDWidth = DefaultAssetIDWidth
	}
}
