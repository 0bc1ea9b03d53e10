// Package document defines the normalized text document produced by
// transcript readers, plus a flat loader that builds documents from plain
// text files.
package document
