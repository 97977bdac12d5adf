package lib

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newID builds an identifier of the form <prefix>_<unix-ms>_<9 base36 chars>.
// The millisecond timestamp keeps ids roughly sortable by creation time.
func newID(prefix string) string {
	var suffix strings.Builder
	suffix.Grow(9)
	for i := 0; i < 9; i++ {
		suffix.WriteByte(idAlphabet[rand.Intn(len(idAlphabet))])
	}

	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), suffix.String())
}

// NewOrderID generates a unique order identifier.
func NewOrderID() string {
	return newID("order")
}

// NewInquiryID generates a unique inquiry identifier.
func NewInquiryID() string {
	return newID("inquiry")
}
