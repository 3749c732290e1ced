// Package model provides the intermediate representation for document
// layout: flow blocks, runs, section ranges, table structure, page
// fragments, and the measurement types the pagination engine consumes.
//
// All geometry is in CSS pixels at 96 DPI with the origin at the top-left
// of the page. Source OOXML units (twips, half-points) are converted at
// the converter boundary and never appear past it.
package model
