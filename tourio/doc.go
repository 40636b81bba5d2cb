// Package tourio reads and writes point sets and tours, and records run
// progress.
//
// Text format (Write / Read):
//
//	x y\n   one point per line, tour order, the closing point is not repeated
//
// Read also skips blank lines and lines starting with '#'.
//
// Files:
//   - Save writes through a temp file and renames it into place, so a reader
//     never sees a half-written tour.
//   - Load is Read over a file.
//
// Progress trace:
//   - TraceWriter appends TraceEntry values as JSON lines. It is buffered and
//     safe for concurrent use.
package tourio
