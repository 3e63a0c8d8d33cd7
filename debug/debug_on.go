//go:build debug

package debug

// DEBUG is true when built with `-tags debug`.
const DEBUG = true
