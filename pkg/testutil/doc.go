// Package testutil provides utilities for testing gestures components.
//
// Key components:
//   - NewTestFS: afero-backed in-memory filesystem
//   - CountingFS: types.FS wrapper recording every call that reaches it
//   - MockStore: types.GestureStore with a line-based format and
//     injectable failures, for exercising a library without a codec
//   - TestEnvironment: temp data, config and state dirs wired through
//     the GESTURES_* variables
//
// Tests touching permissions on the real filesystem should call
// SkipIfRoot first.
package testutil
