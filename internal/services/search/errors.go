package search

// SearchError is a custom error type for search errors
type SearchError string

// Error implements the error interface
func (e SearchError) Error() string {
	return string(e)
}

const (
	ErrEmptyQuery       SearchError = "query cannot be empty"
	ErrSearchEmpty      SearchError = "no results found"
	ErrSearchFailed     SearchError = "search failed"
	ErrNilConfig        SearchError = "config cannot be nil"
	ErrNilAudioNode     SearchError = "audio node client cannot be nil"
	ErrNilClock         SearchError = "clock cannot be nil"
	ErrNilUUIDGenerator SearchError = "UUID generator cannot be nil"
)
