package redis

const (
	// KeyPrefixLink is the prefix for affiliate link keys
	KeyPrefixLink = "pinforge:link:"
	// KeyPrefixClicks is the prefix for per-link click event logs
	KeyPrefixClicks = "pinforge:clicks:"
	// KeyPrefixPin is the prefix for scheduled pin keys
	KeyPrefixPin = "pinforge:pin:"
	// KeyAllLinks is the key for the set of all link IDs
	KeyAllLinks = "pinforge:links:all"
	// KeyAllPins is the key for the set of all pin IDs
	KeyAllPins = "pinforge:pins:all"
)

// LinkKey returns the Redis key for an affiliate link by ID
func LinkKey(id string) string {
	return KeyPrefixLink + id
}

// ClicksKey returns the Redis key for a link's click event log
func ClicksKey(linkID string) string {
	return KeyPrefixClicks + linkID
}

// PinKey returns the Redis key for a scheduled pin by ID
func PinKey(id string) string {
	return KeyPrefixPin + id
}
