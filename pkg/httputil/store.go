package httputil

// Store is a keyed cache of JSON-marshalable values. [Cache] keeps entries
// on disk; [RedisCache] shares them between server instances.
type Store interface {
	// Get loads the entry for key into v and reports whether it was a
	// fresh hit.
	Get(key string, v any) (bool, error)
	// Set stores v under key.
	Set(key string, v any) error
}

var (
	_ Store = (*Cache)(nil)
	_ Store = (*RedisCache)(nil)
)
