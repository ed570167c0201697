// Package model provides the in-memory representation of a paginated,
// already-typeset document: pages with positioned lines, tables and images,
// plus a derived block index over the lines.
//
// # Document Structure
//
// The [Document] type holds the pages of one typeset document:
//
//	doc := model.NewDocument("book.pdf")
//	doc.AddPage(page)
//
// Each [Page] owns its [Line], [Table] and [Image] values. A [Block] is a
// secondary index over page-owned lines - one logical paragraph, heading,
// list item or caption - and never a second owner. A block may span two
// adjacent pages when a paragraph breaks across a page boundary; the
// ContinuesFromPrev and ContinuesToNext flags record that.
//
// # Coordinates
//
// All geometry uses top-origin page coordinates in points: X grows rightward,
// Y grows downward, so lines on a page are ordered by ascending baseline Y.
// [BBox] provides intersection, union and overlap calculations in this
// convention.
//
// # Traversal
//
// The document exposes read-only traversal used by the defect detectors:
// [Document.BlocksSpanning], [Document.TablesSpanning], [Document.ImagesOn]
// and the All* variants, which report a page-spanning block or table exactly
// once.
package model
