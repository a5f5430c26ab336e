// Package emitter writes a compilation's final result to its destination:
// either the diagnostic list (with trailing "Fim da compilacao") or the
// generated C source. Internal failures collapse to a single error line
// followed by the same terminator.
package emitter

import (
	"fmt"
	"os"

	"github.com/lacc-lang/lacc/internal/diagnostics"
)

const terminator = "Fim da compilacao"

// DiagnosticsText renders the diagnostic path's file contents: every
// diagnostic one per line, followed by the terminator. Exported so callers
// that need the text itself (e.g. to cache it alongside a successful
// translation) don't have to reimplement the layout.
func DiagnosticsText(col *diagnostics.Collector) string {
	return col.String() + "\n" + terminator + "\n"
}

// WriteDiagnostics writes every diagnostic, one per line, followed by the
// terminator.
func WriteDiagnostics(path string, col *diagnostics.Collector) error {
	return os.WriteFile(path, []byte(DiagnosticsText(col)), 0o644)
}

// WriteSuccess writes generated C source verbatim.
func WriteSuccess(path string, source string) error {
	return os.WriteFile(path, []byte(source), 0o644)
}

// WriteInternalError writes the single internal-failure line the reference
// implementation's outer try/except produces for an unexpected panic or
// I/O failure, followed by the terminator.
func WriteInternalError(path string, cause error) error {
	content := fmt.Sprintf("Erro durante a compilacao: %s\n%s\n", cause, terminator)
	return os.WriteFile(path, []byte(content), 0o644)
}

// HostCompilerErrorText renders the file contents for a failed host build:
// the host compiler's own failure summary (already carrying its
// "Erro na compilacao" prefix) followed by the terminator. Exported so the
// driver can record the same text it writes.
func HostCompilerErrorText(cause error) string {
	return fmt.Sprintf("%s\n%s\n", cause, terminator)
}

// WriteHostCompilerError replaces the generated C with the host compiler's
// failure summary.
func WriteHostCompilerError(path string, cause error) error {
	return os.WriteFile(path, []byte(HostCompilerErrorText(cause)), 0o644)
}
