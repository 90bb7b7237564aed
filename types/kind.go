package types

type Kind uint8

const (
	KindClass Kind = iota
	KindInterface
	KindValueType
	KindObject
	KindString
	KindVoid
)

var kindNames = [...]string{
	KindClass:     "class",
	KindInterface: "interface",
	KindValueType: "valuetype",
	KindObject:    "object",
	KindString:    "string",
	KindVoid:      "void",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsReference reports whether values of the kind live on the managed heap.
func (k Kind) IsReference() bool {
	switch k {
	case KindClass, KindInterface, KindObject, KindString:
		return true
	default:
		return false
	}
}

// ElementType is the element-type code used by constant rows and
// signatures to name a built-in type.
type ElementType uint8

const (
	ElemEnd     ElementType = 0x00
	ElemVoid    ElementType = 0x01
	ElemBoolean ElementType = 0x02
	ElemChar    ElementType = 0x03
	ElemI1      ElementType = 0x04
	ElemU1      ElementType = 0x05
	ElemI2      ElementType = 0x06
	ElemU2      ElementType = 0x07
	ElemI4      ElementType = 0x08
	ElemU4      ElementType = 0x09
	ElemI8      ElementType = 0x0A
	ElemU8      ElementType = 0x0B
	ElemR4      ElementType = 0x0C
	ElemR8      ElementType = 0x0D
	ElemString  ElementType = 0x0E
	ElemPtr     ElementType = 0x0F
	ElemByRef   ElementType = 0x10
	ElemValueType ElementType = 0x11
	ElemClass   ElementType = 0x12
	ElemObject  ElementType = 0x1C
	ElemI       ElementType = 0x18
	ElemU       ElementType = 0x19
)

// SystemNamespace is the runtime's system namespace.
const SystemNamespace = "System"

// primitiveElems maps the system namespace's primitive type names to
// their element-type codes. Decimal is a primitive value type but has no
// element-type code of its own.
var primitiveElems = map[string]ElementType{
	"Boolean": ElemBoolean,
	"Char":    ElemChar,
	"SByte":   ElemI1,
	"Byte":    ElemU1,
	"Int16":   ElemI2,
	"UInt16":  ElemU2,
	"Int32":   ElemI4,
	"UInt32":  ElemU4,
	"Int64":   ElemI8,
	"UInt64":  ElemU8,
	"Single":  ElemR4,
	"Double":  ElemR8,
	"IntPtr":  ElemI,
	"UIntPtr": ElemU,
	"Decimal": ElemEnd,
}

// IsPrimitiveName reports whether name is one of the system namespace's
// primitive value types.
func IsPrimitiveName(name string) bool {
	_, ok := primitiveElems[name]
	return ok
}

// primitiveWidening lists, per source element type, the element types a
// constant or value of that type may widen to. Identity conversions are
// implied and not listed.
var primitiveWidening = map[ElementType][]ElementType{
	ElemI1:      {ElemI2, ElemI4, ElemI8, ElemR4, ElemR8},
	ElemU1:      {ElemI2, ElemU2, ElemI4, ElemU4, ElemI8, ElemU8, ElemR4, ElemR8},
	ElemI2:      {ElemI4, ElemI8, ElemR4, ElemR8},
	ElemU2:      {ElemI4, ElemU4, ElemI8, ElemU8, ElemR4, ElemR8},
	ElemChar:    {ElemU2, ElemI4, ElemU4, ElemI8, ElemU8, ElemR4, ElemR8},
	ElemI4:      {ElemI8, ElemR4, ElemR8},
	ElemU4:      {ElemI8, ElemU8, ElemR4, ElemR8},
	ElemI8:      {ElemR4, ElemR8},
	ElemU8:      {ElemR4, ElemR8},
	ElemR4:      {ElemR8},
}

// widensTo reports whether a value of element type from may be assigned
// to a slot of element type to.
func widensTo(from, to ElementType) bool {
	if from == to {
		return true
	}
	for _, t := range primitiveWidening[from] {
		if t == to {
			return true
		}
	}
	return false
}
