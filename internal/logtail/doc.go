// Package logtail reads the tail of glog files for display in the TUI.
//
// # Reading
//
// Read extracts the last N lines of a file with a ring buffer of size N:
//
//	1. Allocate ring buffer of size maxLines
//	2. For each line in file, store it at the current index and advance
//	   (wrapping at maxLines)
//	3. If fewer than maxLines were seen, return them as-is
//	4. Otherwise return the buffer starting at the oldest line
//
// Memory is O(maxLines), independent of file size. A non-positive maxLines
// reads the whole file.
//
// # glog Entries
//
// ReadEntries parses each line with Parse, which understands the glog
// prefix:
//
//	Lmmdd hh:mm:ss.uuuuuu threadid file:line] msg
//
// The four header lines glog writes at the top of each file are dropped.
// Lines without a prefix are kept with SeverityNone.
//
// # Error Handling
//
// Missing files yield no lines and no error, since glog creates the file
// lazily on the first log call. Other I/O errors are wrapped.
package logtail
