// Package data bundles the default compound card table.
package data

import _ "embed"

// CompoundsTSV is the tab-separated card table shipped with the binary.
//
//go:embed compounds.tsv
var CompoundsTSV []byte
