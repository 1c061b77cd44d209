// Package user names the person running the CLI, for --mine assignments
package user

import (
	"os"
	osuser "os/user"
	"strings"
)

// OverrideEnv replaces the detected username, e.g. on shared accounts
const OverrideEnv = "KANBAN_USER"

// fallback is returned when no name can be found
const fallback = "unknown"

// GetCurrentUsername returns the name cards are assigned to with --mine:
// KANBAN_USER, then the OS account, then $USER. It never returns "".
func GetCurrentUsername() string {
	if name := strings.TrimSpace(os.Getenv(OverrideEnv)); name != "" {
		return name
	}
	if u, err := osuser.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return fallback
}
