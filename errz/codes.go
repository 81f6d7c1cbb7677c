package errz

// Code represents a unique identifier for error types.
// Codes are organized by category:
//   - T1xxx: Tree serialization errors
//   - T2xxx: Validation errors
//   - T3xxx: Splice errors
type Code string

const (
	// Serialization errors (T1xxx)
	T1001 Code = "T1001" // Unsupported literal value
	T1002 Code = "T1002" // Unsupported node
	T1003 Code = "T1003" // Unknown operator
	T1004 Code = "T1004" // Statement in expression position
	T1005 Code = "T1005" // Malformed raw fragment

	// Validation errors (T2xxx)
	T2001 Code = "T2001" // Invalid identifier
	T2002 Code = "T2002" // Reserved word used as a name
	T2003 Code = "T2003" // Empty name
	T2004 Code = "T2004" // Duplicate parameter name
	T2005 Code = "T2005" // Duplicate property key
	T2006 Code = "T2006" // Duplicate field name
	T2007 Code = "T2007" // Invalid operator
	T2008 Code = "T2008" // Missing operand

	// Splice errors (T3xxx)
	T3001 Code = "T3001" // Source parse failure
	T3002 Code = "T3002" // Function not found
)

var codeDescriptions = map[Code]string{
	T1001: "unsupported literal value",
	T1002: "unsupported node",
	T1003: "unknown operator",
	T1004: "statement in expression position",
	T1005: "malformed raw fragment",

	T2001: "invalid identifier",
	T2002: "reserved word used as a name",
	T2003: "empty name",
	T2004: "duplicate parameter name",
	T2005: "duplicate property key",
	T2006: "duplicate field name",
	T2007: "invalid operator",
	T2008: "missing operand",

	T3001: "source parse failure",
	T3002: "function not found",
}

// Description returns the short description for an error code.
func (c Code) Description() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return "unknown error"
}

// String returns the error code as a string.
func (c Code) String() string {
	return string(c)
}

// Category returns the error category based on the code prefix.
func (c Code) Category() string {
	if len(c) < 2 {
		return "unknown"
	}
	switch c[1] {
	case '1':
		return "serialize"
	case '2':
		return "validate"
	case '3':
		return "splice"
	default:
		return "unknown"
	}
}

// Kind maps a code to its error kind.
func (c Code) Kind() Kind {
	switch c {
	case T1001:
		return ErrUnsupportedValue
	case T1002, T1003, T1004:
		return ErrUnsupportedNode
	case T1005:
		return ErrMalformedRaw
	}
	switch c.Category() {
	case "validate":
		return ErrValidation
	case "splice":
		return ErrSplice
	}
	return ErrUnsupportedNode
}
