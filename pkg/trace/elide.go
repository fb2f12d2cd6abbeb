package trace

// Elision thresholds and retention widths for display labels.
// Any address longer than addressMaxLen keeps the first addressHead and
// last addressTail characters around a single ellipsis rune; transaction
// IDs use the wider txid widths.
const (
	addressMaxLen = 14
	addressHead   = 6
	addressTail   = 4

	txidMaxLen = 18
	txidHead   = 10
	txidTail   = 5
)

// ElideAddress collapses a long address to "first6…last4" for display.
// Addresses of 14 characters or fewer are returned verbatim.
func ElideAddress(addr string) string {
	return elide(addr, addressMaxLen, addressHead, addressTail)
}

// ElideTxID collapses a long transaction ID to "first10…last5" for display.
// IDs of 18 characters or fewer are returned verbatim.
func ElideTxID(txid string) string {
	return elide(txid, txidMaxLen, txidHead, txidTail)
}

func elide(s string, maxLen, head, tail int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:head]) + "…" + string(r[len(r)-tail:])
}
