package config

// ReaderConfig is the root configuration for a reader invocation.
type ReaderConfig struct {
	Data    DataConfig    `yaml:"data"`
	Display DisplayConfig `yaml:"display"`
}

// DataConfig locates the collector's capture files.
type DataConfig struct {
	Dir           string `yaml:"dir"`             // data directory the collector appends into
	SnapshotsFile string `yaml:"snapshots_file"`  // orderbook snapshot dataset filename
	TradesFile    string `yaml:"trades_file"`     // trade dataset filename
	TickSizesFile string `yaml:"tick_sizes_file"` // tick-size change dataset filename
}

// DisplayConfig controls record rendering.
type DisplayConfig struct {
	BookDepth    int `yaml:"book_depth"`     // best levels shown per book side
	AssetIDWidth int `yaml:"asset_id_width"` // asset ID characters shown before truncation
}
