// Package edit orchestrates the batch-edit pipeline.
//
// One Run is a single forward pass:
//
//	scan directory -> render document -> external editor -> parse edits
//	-> per-file tag writes and renames -> summary
//
// There is no retry and no concurrency; the only blocking step is
// waiting for the editor process to exit. Structural problems in the
// edited document (a missing or duplicated file header) abort the run
// before any write. Problems with individual files during the write
// phase are recorded in the Summary and never stop the batch.
//
// The Manager reports through a ProgressEvent callback, leaving all
// presentation to the caller.
package edit
