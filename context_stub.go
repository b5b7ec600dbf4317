//go:build !windows

package winhook

import "errors"

// Low-level input hooks exist only on Windows; other platforms get a
// constructor that fails cleanly (same shape as a registration failure).
func newHookContext(kind HookKind) (hookContext, error) {
	return nil, &HookError{Kind: kind, Err: errors.New("low-level input hooks are only supported on windows")}
}
