// Package diagnostics defines the user-visible error vocabulary shared by
// every compiler stage and collects them in source order.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/lacc-lang/lacc/internal/token"
)

// Code identifies one of the fixed diagnostic kinds a compilation run can
// produce. Every Code maps to exactly one message template in templates.
type Code int

const (
	UnterminatedString Code = iota
	InvalidChar
	UnterminatedComment
	SyntaxError
	UndeclaredIdentifier
	DuplicateIdentifier
	UndeclaredType
	DuplicateType
	IncompatibleAssignment
	NotARecord
	MissingField
	NonIntegerIndex
	ArityMismatch
)

var templates = map[Code]string{
	UnterminatedString:     "cadeia literal nao fechada",
	InvalidChar:            "%s - simbolo nao identificado",
	UnterminatedComment:    "comentario nao fechado",
	SyntaxError:            "erro sintatico proximo a %s",
	UndeclaredIdentifier:   "identificador %s nao declarado",
	DuplicateIdentifier:    "identificador %s ja declarado",
	UndeclaredType:         "tipo %s nao declarado",
	DuplicateType:          "tipo %s ja declarado",
	IncompatibleAssignment: "atribuicao nao compativel para %s",
	NotARecord:             "%s nao e do tipo registro",
	MissingField:           "campo %s nao existe no registro %s",
	NonIntegerIndex:        "indice de array deve ser inteiro",
	ArityMismatch:          "incompatibilidade de parametros na chamada de %s",
}

// Diagnostic is one reported problem, attributed to the line of the token
// that triggered it.
type Diagnostic struct {
	Code Code
	Line int
	Args []interface{}
}

// Error renders the diagnostic the way the compiler prints it: "Linha L:
// <message>".
func (d Diagnostic) Error() string {
	tmpl, ok := templates[d.Code]
	if !ok {
		tmpl = "erro desconhecido"
	}
	msg := tmpl
	if len(d.Args) > 0 {
		msg = fmt.Sprintf(tmpl, d.Args...)
	}
	return fmt.Sprintf("Linha %d: %s", d.Line, msg)
}

// Collector accumulates diagnostics across every pipeline stage. A
// Collector is never reset mid-run: each stage appends to the same list
// and later stages keep scanning rather than stopping at the first error.
type Collector struct {
	items []Diagnostic
}

// New returns an empty Collector.
func New() *Collector {
	return &Collector{}
}

// Add appends a diagnostic built from a token's position and zero or more
// template arguments.
func (c *Collector) Add(code Code, tok token.Token, args ...interface{}) {
	c.items = append(c.items, Diagnostic{Code: code, Line: tok.Line, Args: args})
}

// AddLine appends a diagnostic attributed directly to a line number, for
// callers that don't hold a token (e.g. the error listener on malformed
// input where no token was produced).
func (c *Collector) AddLine(code Code, line int, args ...interface{}) {
	c.items = append(c.items, Diagnostic{Code: code, Line: line, Args: args})
}

// Empty reports whether no diagnostic has been recorded.
func (c *Collector) Empty() bool {
	return len(c.items) == 0
}

// All returns every diagnostic recorded so far, in the order reported.
func (c *Collector) All() []Diagnostic {
	return c.items
}

// String renders every diagnostic on its own line, in report order.
func (c *Collector) String() string {
	lines := make([]string, len(c.items))
	for i, d := range c.items {
		lines[i] = d.Error()
	}
	return strings.Join(lines, "\n")
}
