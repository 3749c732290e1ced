// Package doc defines the read-only view of the host editor's rich-text
// document tree that the layout core consumes: node kinds, attribute
// bags, inline marks, and source text positions.
//
// The layout core never mutates a tree. Hosts adapt their own document
// representation to the Node interface; the builders in this package
// construct trees directly and are what the test suites use.
package doc
