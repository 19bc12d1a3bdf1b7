// Package synthview provides synthetic child views for opaque native containers.
//
// A debugger only sees raw memory and static type metadata. View providers
// re-derive the layout of a container from its template arguments and member
// names, and present its logical content as a list of named, typed children:
//
//   - Optional:    boost::optional<T>, zero or one payload
//   - SmallVector: boost::container::small_vector<T, N>, N indexed elements
//   - Variant:     boost::variant<T...>, the active alternative
//   - MultiIndex:  boost::multi_index::multi_index_container<T, ...>, element count only
//
// Providers are short-lived: the host constructs one per inspected value, asks
// for the child count, then resolves children on demand. Memory access, type
// metadata and value synthesis stay on the host side (see Value and Type).
package synthview
