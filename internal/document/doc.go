// Package document serializes audio file tags into the editable text
// document and parses the user's edits back out.
//
// The document is the only contract between vimtag and the external
// editor. It looks like this:
//
//	# vimtag metadata editor
//	# Instructions: ...
//
//	# File: /music/01 Some Song.mp3
//	# --- Metadata ---
//	title: Some Song
//	artist: Some Artist
//	album:
//	genre:
//	tracknumber: 1
//	date: 2019
//	# --- End Metadata ---
//
// Format renders one such block per file; Parse splits the edited text
// back into blocks by the "# File:" headers, validates that every
// original block is still present exactly once, and diffs each block
// against the tags captured at scan time.
package document
