package redis

const (
	// KeyPrefixTheme is the prefix for per-client theme keys
	KeyPrefixTheme = "folio:theme:"
)

// ThemeKey returns the Redis key for a client's theme preference
func ThemeKey(client string) string {
	return KeyPrefixTheme + client
}
