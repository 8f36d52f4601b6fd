// Package editor launches the external text editor over the edit
// document.
//
// The flow is deliberately synchronous: write the document to a temp
// file, hand the terminal to the editor, block until it exits, read
// the file back. The temp file on disk is the only channel between the
// two processes.
//
//	cmd, args, err := editor.Resolve(cfg.Editor)
//	...
//	inv := &editor.Invoker{Command: cmd, Args: args}
//	edited, tmpPath, err := inv.Edit(ctx, doc)
package editor
