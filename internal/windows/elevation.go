//go:build windows

package windows

import (
	"fmt"
	"os"
	"strings"

	syswin "golang.org/x/sys/windows"
)

const swShowNormal = 1

// IsElevated reports whether the process token is elevated. Changing the
// styles of an elevated window requires an elevated caller.
func IsElevated() bool {
	return syswin.GetCurrentProcessToken().IsElevated()
}

// RelaunchAsAdmin starts the current executable again with the runas verb
// and the same arguments
func RelaunchAsAdmin() error {
	exe, err := os.Executable()
	if err != nil {
		return err
	}

	// Check if running via 'go run' (exe will be in temp dir)
	if strings.Contains(exe, "go-build") {
		return fmt.Errorf("cannot relaunch when run via 'go run', please build the executable first with: go build -o winfx.exe")
	}

	args := make([]string, 0, len(os.Args)-1)
	for _, a := range os.Args[1:] {
		args = append(args, syswin.EscapeArg(a))
	}

	return ShellExecute(0, "runas", exe, strings.Join(args, " "), "", swShowNormal)
}
