package ports

// Watcher monitors a fixed set of files and reports when one of them changes.
// Editors often replace a file through rename, so adapters watch the parent
// directories and filter events down to the registered paths.
type Watcher interface {
	// Watch starts monitoring paths. onChange is called with the path exactly
	// as it was passed in, once per debounced burst of write/create/rename/remove
	// events. The callback may be invoked from any goroutine.
	Watch(paths []string, onChange func(path string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
