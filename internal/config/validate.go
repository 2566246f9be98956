package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *ReaderConfig) Validate() error {
	if c.Data.Dir == "" {
		return errors.New("data.dir is required")
	}
	if c.Data.SnapshotsFile == "" {
		return errors.New("data.snapshots_file is required")
	}
	if c.Data.TradesFile == "" {
		return errors.New("data.trades_file is required")
	}
	if c.Data.TickSizesFile == "" {
		return errors.New("data.tick_sizes_file is required")
	}

	if c.Display.BookDepth < 1 {
		return fmt.Errorf("display.book_depth must be >= 1, got %d", c.Display.BookDepth)
	}
	if c.Display.AssetIDWidth < 1 {
		return fmt.Errorf("display.asset_id_width must be >= 1, got %d", c.Display.AssetIDWidth)
	}

	return nil
}
