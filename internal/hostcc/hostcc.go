// Package hostcc optionally spawns a host C compiler on the generated
// translation unit. Absence of a working compiler is tolerated rather
// than treated as a compilation failure, since LAC's job ends at emitting
// valid C.
package hostcc

import (
	"fmt"
	"os/exec"
	"strings"
)

// Available reports whether a gcc binary can be found on PATH.
func Available() bool {
	_, err := exec.LookPath("gcc")
	return err == nil
}

// Compile invokes `gcc <cPath> -o <outPath>`. It returns a formatted
// "Erro na compilacao: <stderr>" error on nonzero exit, the text written
// in place of the generated C when the host build fails.
func Compile(cPath, outPath string) error {
	cmd := exec.Command("gcc", cPath, "-o", outPath)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("Erro na compilacao: %s", strings.TrimSpace(stderr.String()))
	}
	return nil
}
