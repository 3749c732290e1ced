// Package flow converts rich-text document nodes into the flow model
// consumed by layout: paragraph nodes become runs of flow blocks
// (splitting around block-level inline content), table nodes become
// structural table blocks with resolved borders, padding, and column
// widths.
//
// Conversion never fails on malformed input. Nodes that do not parse
// into a valid block, row, or cell are dropped and conversion continues;
// the drops are recorded as warnings on the conversion context.
package flow
