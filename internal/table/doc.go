// Package table renders uniform records as aligned, pipe-delimited text tables.
//
// The header row comes from the field names of the first record. Each column is
// as wide as its widest cell (header included), measured in terminal cells, and
// every row is padded to those widths so the output lines up on a monospace display.
// Null or missing values render as empty cells.
package table
