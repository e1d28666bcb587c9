// Package winapi wraps the user32 calls cursorlock needs: pointer clipping,
// hotkey registration, foreground WinEvent hooks, display enumeration and the
// per-thread message pump they all depend on.
//
// Every function that touches a message queue must be called from a goroutine
// locked to its OS thread.
package winapi
