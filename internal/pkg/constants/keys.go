package constants

// Redis key formats. Format arguments are noted next to each key.
const (
	KeyQuoteCache = "quote:%s:%d:%d" // version, quantity, days
	KeyUserLock   = "lock:user:%s"   // user ID
	KeyProlongRun = "lock:prolong-run"
)
