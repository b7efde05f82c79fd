package track_cache

// CacheError is a custom error type for search cache errors
type CacheError string

// Error implements the error interface
func (e CacheError) Error() string {
	return string(e)
}

const (
	ErrCacheMiss       CacheError = "search result not cached"
	ErrNilConfig       CacheError = "config cannot be nil"
	ErrNilRedisClient  CacheError = "redis client cannot be nil"
	ErrEmptyIdentifier CacheError = "identifier cannot be empty"
	ErrNilEntry        CacheError = "entry cannot be nil"
)
