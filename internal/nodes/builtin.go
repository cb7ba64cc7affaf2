package nodes

// Built-in kinds.
var (
	Hex64 = KindID{Name: "hex64"}
	Hex32 = KindID{Name: "hex32"}
	Hex16 = KindID{Name: "hex16"}
	Hex8  = KindID{Name: "hex8"}

	NInt  = KindID{Name: "nint"}
	Int64 = KindID{Name: "int64"}
	Int32 = KindID{Name: "int32"}
	Int16 = KindID{Name: "int16"}
	Int8  = KindID{Name: "int8"}

	NUInt  = KindID{Name: "nuint"}
	UInt64 = KindID{Name: "uint64"}
	UInt32 = KindID{Name: "uint32"}
	UInt16 = KindID{Name: "uint16"}
	UInt8  = KindID{Name: "uint8"}

	Bool     = KindID{Name: "bool"}
	BitField = KindID{Name: "bitfield"}
	Enum     = KindID{Name: "enum"}

	Float  = KindID{Name: "float"}
	Double = KindID{Name: "double"}
	Custom = KindID{Name: "custom"}

	Vector4   = KindID{Name: "vector4"}
	Vector3   = KindID{Name: "vector3"}
	Vector2   = KindID{Name: "vector2"}
	Matrix4x4 = KindID{Name: "matrix4x4"}
	Matrix3x4 = KindID{Name: "matrix3x4"}
	Matrix3x3 = KindID{Name: "matrix3x3"}

	Utf8Text     = KindID{Name: "utf8text"}
	Utf8TextPtr  = KindID{Name: "utf8textptr"}
	Utf16Text    = KindID{Name: "utf16text"}
	Utf16TextPtr = KindID{Name: "utf16textptr"}

	Pointer = KindID{Name: "pointer"}
	Array   = KindID{Name: "array"}
	Union   = KindID{Name: "union"}

	ClassInstance = KindID{Name: "classinstance"}

	VTable      = KindID{Name: "vtable"}
	Function    = KindID{Name: "function"}
	FunctionPtr = KindID{Name: "functionptr"}

	// Class is the canonical record kind every wrapper starts out holding.
	// It is instantiable but not offered in any group.
	Class = KindID{Name: "class"}
	// Base is the abstract root kind.
	Base = KindID{Name: "base"}
)

var builtInGroups = []Group{
	{Name: "hex", kinds: []KindID{Hex64, Hex32, Hex16, Hex8}},
	{Name: "signed", kinds: []KindID{NInt, Int64, Int32, Int16, Int8}},
	{Name: "unsigned", kinds: []KindID{NUInt, UInt64, UInt32, UInt16, UInt8}},
	{Name: "flags", kinds: []KindID{Bool, BitField, Enum}},
	{Name: "float", kinds: []KindID{Float, Double, Custom}},
	{Name: "vector", kinds: []KindID{Vector4, Vector3, Vector2, Matrix4x4, Matrix3x4, Matrix3x3}},
	{Name: "text", kinds: []KindID{Utf8Text, Utf8TextPtr, Utf16Text, Utf16TextPtr}},
	{Name: "reference", kinds: []KindID{Pointer, Array, Union}},
	{Name: "class", kinds: []KindID{ClassInstance}},
	{Name: "function", kinds: []KindID{VTable, Function, FunctionPtr}},
}

// Rarely used kinds that a narrow toolbar may push into its overflow menu.
var overflowKinds = map[KindID]struct{}{
	NInt:         {},
	NUInt:        {},
	BitField:     {},
	Utf16Text:    {},
	Utf16TextPtr: {},
}

// valueKinds are the kinds a pointer or array may target besides Class.
var valueKinds = []KindID{
	Hex64, Hex32, Hex16, Hex8,
	NInt, Int64, Int32, Int16, Int8,
	NUInt, UInt64, UInt32, UInt16, UInt8,
	Bool, BitField, Enum,
	Float, Double, Custom,
	Vector4, Vector3, Vector2, Matrix4x4, Matrix3x4, Matrix3x3,
	Utf8Text, Utf8TextPtr, Utf16Text, Utf16TextPtr,
}

var builtinSpecs = []KindSpec{
	{ID: Base, Label: "Base", Abstract: true},
	{ID: Class, Label: "Class", Icon: "class_type"},

	{ID: Hex64, Label: "Hex64", Icon: "button_hex_64"},
	{ID: Hex32, Label: "Hex32", Icon: "button_hex_32"},
	{ID: Hex16, Label: "Hex16", Icon: "button_hex_16"},
	{ID: Hex8, Label: "Hex8", Icon: "button_hex_8"},

	{ID: NInt, Label: "NInt", Icon: "button_nint"},
	{ID: Int64, Label: "Int64", Icon: "button_int_64"},
	{ID: Int32, Label: "Int32", Icon: "button_int_32"},
	{ID: Int16, Label: "Int16", Icon: "button_int_16"},
	{ID: Int8, Label: "Int8", Icon: "button_int_8"},

	{ID: NUInt, Label: "NUInt", Icon: "button_nuint"},
	{ID: UInt64, Label: "UInt64", Icon: "button_uint_64"},
	{ID: UInt32, Label: "UInt32", Icon: "button_uint_32"},
	{ID: UInt16, Label: "UInt16", Icon: "button_uint_16"},
	{ID: UInt8, Label: "UInt8", Icon: "button_uint_8"},

	{ID: Bool, Label: "Bool", Icon: "button_bool"},
	{ID: BitField, Label: "BitField", Icon: "button_bits"},
	{ID: Enum, Label: "Enum", Icon: "button_enum"},

	{ID: Float, Label: "Float", Icon: "button_float"},
	{ID: Double, Label: "Double", Icon: "button_double"},
	{ID: Custom, Label: "Custom", Icon: "button_custom"},

	{ID: Vector4, Label: "Vector4", Icon: "button_vector_4"},
	{ID: Vector3, Label: "Vector3", Icon: "button_vector_3"},
	{ID: Vector2, Label: "Vector2", Icon: "button_vector_2"},
	{ID: Matrix4x4, Label: "Matrix 4x4", Icon: "button_matrix_4x4"},
	{ID: Matrix3x4, Label: "Matrix 3x4", Icon: "button_matrix_3x4"},
	{ID: Matrix3x3, Label: "Matrix 3x3", Icon: "button_matrix_3x3"},

	{ID: Utf8Text, Label: "UTF8 Text", Icon: "button_text"},
	{ID: Utf8TextPtr, Label: "Pointer to UTF8 Text", Icon: "button_text_pointer"},
	{ID: Utf16Text, Label: "UTF16 Text", Icon: "button_utext"},
	{ID: Utf16TextPtr, Label: "Pointer to UTF16 Text", Icon: "button_utext_pointer"},

	{ID: Pointer, Label: "Pointer", Icon: "button_pointer", Accepts: append([]KindID{Class}, valueKinds...)},
	{ID: Array, Label: "Array", Icon: "button_array", Accepts: append([]KindID{Class, Pointer}, valueKinds...)},
	{ID: Union, Label: "Union", Icon: "button_union"},

	{ID: ClassInstance, Label: "Class Instance", Icon: "button_class_instance", Accepts: []KindID{Class}},

	{ID: VTable, Label: "VTable Pointer", Icon: "button_vtable"},
	{ID: Function, Label: "Function", Icon: "button_function"},
	{ID: FunctionPtr, Label: "Function Pointer", Icon: "button_function_pointer"},
}

// BuiltInGroups returns the fixed, ordered built-in groups. Every call
// returns an equal value; the groups themselves are immutable.
func BuiltInGroups() []Group {
	return append([]Group(nil), builtInGroups...)
}

// CanOverflow reports whether a toolbar may move kind into its overflow menu.
func CanOverflow(kind KindID) bool {
	_, ok := overflowKinds[kind]
	return ok
}
