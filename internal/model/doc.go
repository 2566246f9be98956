// Package model defines typed views over the records the Polymarket
// collector appends to its NDJSON data files.
//
// Conventions:
//   - Prices and sizes: decimal text as written by the exchange, echoed
//     verbatim and parsed to float64 only where arithmetic is required
//   - Timestamps: string milliseconds since Unix epoch
//   - Optional BTC reference prices: float64, absent or <= 0 means unavailable
//
// Every record lives only for the duration of processing one line; nothing
// is cached or persisted between invocations.
package model
