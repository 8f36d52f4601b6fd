// Package model provides the core data structures for vimtag.
//
// This package defines the AudioFile, Tags, Change, and ChangeSet types
// that flow through the batch-edit pipeline:
//
//	scan   -> []*AudioFile        (files plus their tag snapshot)
//	parse  -> []ChangeSet         (diff of edited document vs snapshot)
//	apply  -> per-file tag writes driven by each ChangeSet
//
// The editable field set is fixed (title, artist, album, genre,
// tracknumber, date). Arbitrary keys typed into the edit document are
// rejected upstream by the parser, so nothing in this package needs to
// handle open-ended tag names.
package model
