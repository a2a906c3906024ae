// Package diag models structural diagnostics for tag documents.
//
// Structural problems are data, not control flow: the validator reports
// orphan tags, mismatches, and missing closing tags through a Bag, and no
// operation in the core ever fails because a document is unbalanced.
package diag
