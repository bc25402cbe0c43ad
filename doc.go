// Package inputhook provides the shared error taxonomy for the Windows
// global input hook backend.
//
// The library is split into thread-bound building blocks: package hook wraps
// SetWindowsHookEx with a per-process registration table, package msgloop
// owns a per-thread message queue, package layout translates scan codes to
// layout-correct characters, package listener composes them into a run loop
// on one dedicated thread, and package synth synthesizes input events.
package inputhook
