// Package shortid generates the random alphanumeric identifiers used for
// event id suffixes and marketing short-links.
package shortid

import "crypto/rand"

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Bytes at or above this value are discarded; reducing them modulo the
// alphabet size would skew ids toward its first characters.
const maxUnbiased = 256 - 256%len(alphabet)

// ShortLinkLength is the length of marketing QR short ids.
const ShortLinkLength = 7

// EventSuffixLength is the length of the random suffix on event ids.
const EventSuffixLength = 4

// New returns a uniformly random string of n characters from [A-Za-z0-9].
func New(n int) string {
	out := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			panic(err)
		}
		for _, b := range buf {
			if int(b) >= maxUnbiased {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == n {
				break
			}
		}
	}
	return string(out)
}
