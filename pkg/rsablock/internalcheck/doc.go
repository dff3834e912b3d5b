// Package internalcheck holds static policy tests for the rsablock packages.
//
// The tests load the library packages with golang.org/x/tools/go/packages and
// inspect their syntax trees:
//
//   - private key values and fields never reach fmt/log format calls
//   - the arithmetic core stays on native integers (no math/big)
//
// It is not intended for import.
package internalcheck
