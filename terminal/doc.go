// @focus: #sys { term }
// Package terminal provides direct raw-mode terminal control for a character-grid display.
//
// Features:
//   - Scoped raw mode with a 0.1s read timeout (VMIN=0, VTIME=1)
//   - Byte-level key decoding with bounded escape-sequence lookahead
//   - Window size query with a cursor-report fallback
//   - Per-frame output buffers flushed in a single write
//   - Clean terminal restoration on quit, fatal error, signal and panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
