package processor

import (
	"sync"

	"go.uber.org/atomic"
)

// Outcome is the cached result of transcribing one text
type Outcome struct {
	IPA string
	Err error
}

// TranscriptionCache stores transcriptions in memory for batch operations
type TranscriptionCache struct {
	mu      sync.RWMutex
	entries map[string]Outcome
	hits    *atomic.Int64
	misses  *atomic.Int64
}

// NewTranscriptionCache creates a new transcription cache
func NewTranscriptionCache() *TranscriptionCache {
	return &TranscriptionCache{
		entries: make(map[string]Outcome),
		hits:    atomic.NewInt64(0),
		misses:  atomic.NewInt64(0),
	}
}

// Add stores the outcome of transcribing text
func (c *TranscriptionCache) Add(text, ipa string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[text] = Outcome{IPA: ipa, Err: err}
}

// Get retrieves a transcription from the cache
func (c *TranscriptionCache) Get(text string) (Outcome, bool) {
	c.mu.RLock()
	out, ok := c.entries[text]
	c.mu.RUnlock()

	if ok {
		c.hits.Inc()
	} else {
		c.misses.Inc()
	}
	return out, ok
}

// GetAll returns all successful cached transcriptions
func (c *TranscriptionCache) GetAll() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make(map[string]string, len(c.entries))
	for k, v := range c.entries {
		if v.Err == nil {
			result[k] = v.IPA
		}
	}
	return result
}

// Stats returns the number of cache hits and misses
func (c *TranscriptionCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
