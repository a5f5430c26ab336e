// Package config is the single source of truth for the tables the
// parser, analyzer, and code generator all need to agree on: LA's four
// primitive type tags, the fixed string-buffer size, and the field-name
// heuristic used to pick a printf/scanf
// conversion when a field's declared type isn't consulted directly.
// Collecting them here keeps the heuristic a single edit instead of a
// scatter of string literals across the packages that consult it.
package config

// Primitive type tags, as spelled in LA source and carried verbatim as a
// latype.Primitive's display name.
const (
	Inteiro = "inteiro"
	Real    = "real"
	Literal = "literal"
	Logico  = "logico"
)

// StringBufferSize is the fixed capacity of every generated `literal`
// buffer (`char name[80]`).
const StringBufferSize = 80

// StringFieldSubstrings and IntegerFieldSubstrings implement the
// field-name heuristic for choosing a record field's printf/scanf format
// when the generator falls back to guessing from the field's name rather
// than consulting its declared type: a known source of wrong output (e.g.
// a `real` field named "valor" prints as `%d`), kept for output
// compatibility with existing translated programs rather than fixed.
var (
	StringFieldSubstrings  = []string{"nome", "titulo", "descricao"}
	IntegerFieldSubstrings = []string{"idade", "numero", "valor"}
)

// CType renders the C type for a primitive tag.
// isParam selects the parameter-passing form (`char*` instead of the
// `char[80]` buffer form); isString reports whether the caller must
// append the `[N]`/`*` buffer declarator itself rather than using ctype
// bare.
func CType(tag string, isParam bool) (ctype string, isString bool) {
	switch tag {
	case Inteiro:
		return "int", false
	case Real:
		return "float", false
	case Logico:
		return "int", false
	case Literal:
		if isParam {
			return "char*", false
		}
		return "char", true
	default:
		return "int", false
	}
}

// FormatFor renders the printf/scanf conversion for a scalar primitive
// tag.
func FormatFor(tag string) string {
	switch tag {
	case Real:
		return "%f"
	case Literal:
		return "%s"
	default:
		return "%d"
	}
}
