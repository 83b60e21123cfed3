// Package watch reparses Java source files as they change on disk.
//
// # Overview
//
// Watch wraps fsnotify over the directories in WatchConfig.Directories,
// parsing every ".java" file found at startup and reparsing each file
// fsnotify reports a write for. Rapid successive writes to the same file
// (an editor's atomic-save-via-rename, a formatter running twice) are
// coalesced by a per-file debounce timer before a reparse fires.
//
// Reparse's current behavior — arena reset plus full reparse — applies
// here too: a changed file is reparsed as a whole-file-replace
// ast.EditRange rather than a line-level diff, since the parser performs
// a full reparse either way.
//
// # Usage
//
//	w, err := watch.New(cfg.Watch, cfg.Security, logger, collector)
//	if err != nil {
//	 log.Fatal(err)
//	}
//	ctx := cli.SetupSignalHandler()
//	if err := w.Watch(ctx); err != nil {
//	 log.Fatal(err)
//	}
package watch
