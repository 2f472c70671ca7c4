// Package library binds a gesture store to a storage location.
//
// A Library is created for one location and never rebinds. Save writes the
// whole store to the location, replacing what was there, and does nothing
// at all when the store has no unsaved changes. Load merges the entries
// found at the location into the store.
//
// Both operations come in two flavours. Save and Load report a plain
// success flag and never panic, which is all most callers need. TrySave and
// TryLoad return the underlying *errors.GestureError, whose code tells a
// missing directory apart from a permission problem or a corrupt file:
//
//	lib := library.FromFile("/home/me/.local/share/gestures/gestures.lib")
//	if !lib.Load() {
//	    // nothing saved yet, or unreadable
//	}
//	lib.AddGesture("circle", g)
//	if err := lib.TrySave(); err != nil {
//	    log.Warn().Err(err).Msg("gestures not saved")
//	}
//
// A Library performs no locking. Callers sharing one across goroutines
// must serialize Save and Load themselves.
package library
