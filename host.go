package synthview

type (
	//Type represents host static type metadata
	Type interface {
		//Name returns fully qualified type name, i.e. boost::optional<int>
		Name() string
		IsReference() bool
		//Dereference returns referent type, only valid for reference types
		Dereference() Type
		ByteSize() uint64
		TemplateArgumentCount() int
		//TemplateArgument returns type argument or nil if index is out of range
		TemplateArgument(index int) Type
	}

	//Value represents host value bound to target memory or synthesized in the host
	Value interface {
		Name() string
		Type() Type
		//Member returns named member, fails if member does not exist
		Member(name string) (Value, error)
		//Unsigned reads value as unsigned integer
		Unsigned() (uint64, error)
		//Summary returns display text
		Summary() (string, error)
		//ChildAtOffset creates named child at byte offset with supplied type,
		//for pointer values offset is relative to the pointee
		ChildAtOffset(name string, offset uint64, valueType Type) (Value, error)
		//FromExpression creates synthesized value from literal expression
		FromExpression(name string, expression string) (Value, error)
		//Reinterpret creates a value from this value bytes reinterpreted as supplied type
		Reinterpret(name string, valueType Type) (Value, error)
	}

	//Registrar represents host synthetic view subsystem
	Registrar interface {
		AddSynthetic(pattern string, factory Factory) error
	}
)
