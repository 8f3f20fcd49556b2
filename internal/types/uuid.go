package types

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// Typed id prefixes. Every persisted entity id is a lowercase ULID with one
// of these prefixes so ids are self-describing in logs and API payloads.
const (
	UUID_PREFIX_PAYMENT  = "pay"
	UUID_PREFIX_INVOICE  = "inv"
	UUID_PREFIX_TENANT   = "ten"
	UUID_PREFIX_UNIT     = "unit"
	UUID_PREFIX_PROPERTY = "prop"
	UUID_PREFIX_REQUEST  = "req"
)

// GenerateUUID returns a lowercase ULID.
func GenerateUUID() string {
	return strings.ToLower(ulid.MustNew(ulid.Timestamp(time.Now().UTC()), rand.Reader).String())
}

// GenerateUUIDWithPrefix returns a prefixed lowercase ULID, e.g. pay_01h....
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}
