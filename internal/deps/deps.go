// Package deps checks availability of the external binaries clipcut shells
// out to.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"clipcut/internal/faults"
)

// CheckBinary verifies that the named command resolves to an executable.
func CheckBinary(command string) error {
	command = strings.TrimSpace(command)
	if command == "" {
		return faults.Wrap(faults.ErrValidation, "deps", "", "command not configured", nil)
	}
	if _, err := exec.LookPath(command); err != nil {
		return faults.Wrap(faults.ErrExecution, "deps", command,
			fmt.Sprintf("binary %q not found", command), err)
	}
	return nil
}
