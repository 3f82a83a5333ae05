// Package clerk provides the types and functions for keeping a personal
// investment ledger and deriving income reports from it. It is designed to be
// local-first and auditable: plain CSV files users can read, diff and back up.
//
// The core functionalities include:
//   - Ledger: the current per-asset, per-account unit holdings together with
//     each asset's income-generation metadata.
//   - Transaction Log: an immutable, append-only record of every transaction
//     (buys, sells, transfers, contributions, dividends, withdrawals).
//   - Transaction application: each transaction kind validates its
//     preconditions against the ledger and log, computes its derived monetary
//     total, and commits all-or-nothing.
//   - Report generation: pure functions from a (ledger, log) snapshot to
//     income projections, income schedules, realized income and
//     contribution-room summaries.
//   - Persistence: CSV encoding and decoding of every table, with a
//     timestamped snapshot written alongside each canonical file for audit.
//
// This package serves as the foundational logic for the `clk` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package clerk
