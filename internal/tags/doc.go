// Package tags reads and writes audio file metadata for every format
// vimtag supports.
//
// Each format is handled by a Store that maps the format's native tag
// representation onto the fixed editable field set in package model:
//
//   - MP3: ID3v2 text frames via github.com/bogem/id3v2
//   - FLAC: the VORBIS_COMMENT metadata block via github.com/go-flac/go-flac
//   - M4A, OGG, Opus, WAV: TagLib properties via go.senan.xyz/taglib
//
// Stores are selected by file extension:
//
//	tags, err := tags.ReadFile("/music/song.flac")
//	...
//	err = tags.ApplyFile("/music/song.flac", changeSet)
//
// Reading returns every editable field, with absent tags as empty
// strings. Applying a change whose new value is empty removes the tag
// from the file. Tags outside the editable set (cover art, lyrics,
// MusicBrainz IDs, ...) are never touched.
package tags
