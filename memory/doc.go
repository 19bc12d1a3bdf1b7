// Package memory implements an in-memory inspection host.
//
// A Space holds read-only target memory segments, Type describes native type
// layout (scalars, pointers, references, arrays and structs with template
// arguments) and Value binds a Type to a Space address, a detached byte buffer
// or a synthesized literal. Value implements synthview.Value, so view providers
// can be exercised against memory images without a live process.
//
// Struct layouts can be derived from Go mirror structs:
//
//	type optionalInt struct {
//		Initialized bool    `layout:"m_initialized"`
//		Storage     [4]byte `layout:"m_storage"`
//	}
//	optional, err := memory.StructOf("boost::optional", optionalInt{}, memory.Int)
package memory
