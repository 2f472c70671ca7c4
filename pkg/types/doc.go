// Package types defines the core types and interfaces used throughout the
// gestures module. This includes the FS and Store interfaces the library
// handle depends on, as well as the gesture data model (Point, Stroke,
// Gesture) shared by the store and the codecs.
package types
