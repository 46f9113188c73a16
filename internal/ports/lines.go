package ports

// LineReader streams a file one logical line at a time.
// Lines are delivered without their terminator ("\n" or "\r\n"). Every call
// reopens the file, so a LineReader is restartable and keeps no handle
// between calls.
type LineReader interface {
	// EachLine calls fn for every line of the file at path, in order.
	// An open failure is returned before fn is ever called and wraps
	// fs.ErrNotExist or fs.ErrPermission where applicable. A non-nil error
	// from fn stops the iteration and is returned unchanged.
	EachLine(path string, fn func(line string) error) error
}
