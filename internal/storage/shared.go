package storage

import "sync"

// shared is the process-wide engine handed out by Shared.
var shared struct {
	once sync.Once
	fs   *FileStorage
	err  error
}

// Shared returns the process-wide FileStorage. The first call opens and
// reloads it from cfg; later calls return the same instance and ignore
// their arguments.
func Shared(cfg Config, opts ...Option) (*FileStorage, error) {
	shared.once.Do(func() {
		shared.fs, shared.err = Open(cfg, opts...)
	})
	return shared.fs, shared.err
}
