// Package leytext extracts and structures the text of Paraguay's labor code
// (Ley N° 213) from its official HTML publication. It fetches the page,
// strips markup into normalized text lines, segments the lines into the
// book/title/chapter/article hierarchy, validates completeness and content
// quality, and persists the result as JSON to local disk or object storage.
//
// This package contains domain types, interfaces, and the pure segmentation
// and validation algorithms following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, gcs/, fs/).
package leytext
