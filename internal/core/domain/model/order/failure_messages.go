package order

import "strings"

// FailureMessagesSeparator joins the failure messages of an order when they
// are stored as a single value. The round trip is lossy: a message that
// contains the separator comes back as two messages.
const FailureMessagesSeparator = ","

// JoinFailureMessages returns the stored form of messages.
func JoinFailureMessages(messages []string) string {
	return strings.Join(messages, FailureMessagesSeparator)
}

// SplitFailureMessages parses the stored form. An empty value yields an
// empty, non-nil slice.
func SplitFailureMessages(stored string) []string {
	if stored == "" {
		return []string{}
	}
	return strings.Split(stored, FailureMessagesSeparator)
}
