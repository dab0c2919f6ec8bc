package twotouch

// Hooks receive conversion and cache events.
// Implementations must be cheap and non-blocking; wrap slow sinks with
// hooks/async.
type Hooks interface {
	// Encode met a rune with no code and no phrase matched. pos is a rune index.
	UnknownRune(input string, pos int, r rune)

	// Decode met a 2-digit chunk with no character. pos is a byte offset.
	UnknownCode(input string, pos int, chunk string)

	// Encode returned phrase shortcuts only because the literal encoding failed.
	PhraseFallback(input string, shortcuts int)

	// A cached entry was deleted on read.
	// reason ∈ {"corrupt", "kind_mismatch", "stale_table", "stale_gen", "value_decode"}
	CacheSelfHeal(storageKey, reason string)

	// Provider returned ok=false on Set (backpressure/eviction).
	ProviderSetRejected(storageKey string)

	// Provider or GenStore call failed; op ∈ {"get", "set", "del", "gen_snapshot", "gen_bump"}.
	ProviderError(op string, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) UnknownRune(string, int, rune)   {}
func (NopHooks) UnknownCode(string, int, string) {}
func (NopHooks) PhraseFallback(string, int)      {}
func (NopHooks) CacheSelfHeal(string, string)    {}
func (NopHooks) ProviderSetRejected(string)      {}
func (NopHooks) ProviderError(string, error)     {}
