// Package codec provides the on-disk formats of a gesture library.
//
// A Codec turns a Document (the version tag plus every entry of a store)
// into bytes and back. The library handle never looks at these bytes; it
// only decides when the store encodes or decodes them.
//
// Three codecs are registered by name:
//
//   - "msgpack": compact binary format, the default
//   - "yaml": human-readable, useful for export and hand editing
//   - "toml": human-readable, same layout as yaml
package codec
