package common

import "time"

// CacheInterface is the contract for ephemeral key/value storage. It backs
// only the single-use share-token markers; the report fetch path never
// caches anything.
type CacheInterface interface {
	// Set stores a value in cache with the given key and duration
	Set(key string, value interface{}, duration time.Duration)

	// Add stores a value only if the key is absent, atomically.
	// Returns an error when the key already exists.
	Add(key string, value interface{}, duration time.Duration) error

	// Get retrieves a value from cache by key
	// Returns the value and true if found, nil and false otherwise
	Get(key string) (interface{}, bool)

	// Delete removes a value from cache by key
	Delete(key string)

	// Close closes any underlying connections
	Close() error
}
