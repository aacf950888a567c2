// Package sfcgen compiles single-file component blocks into a JavaScript module.
//
// The pipeline consists of:
//   - [Classify]: picks the template, setup script and legacy script blocks
//   - hoist analysis: decides which element subtrees are fully static
//   - the generator: renders the template into a render function, merges the
//     scripts into one component object and assembles the module text
//
// Embedded expressions are parsed and scope-qualified by package jsexpr.
// Parsing raw source text into [Node] values is done by package sfcparse.
package sfcgen
