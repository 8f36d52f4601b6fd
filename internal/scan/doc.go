// Package scan finds the audio files to edit.
//
// The scanner lists a single directory (no recursion), keeps files
// with a supported audio extension in deterministic name order, and
// snapshots each file's tags through the tag stores. Files that match
// by extension but fail to read are collected as skips, reported to
// the user, and excluded from the edit document.
package scan
