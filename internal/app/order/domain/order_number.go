package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewOrderNumber generates a human-readable order number:
//
//	ORD-YYYYMMDD-XXXXXXXX
//
// The suffix is the first 8 hex characters of a random UUID, uppercased.
// Collisions are possible, so callers probe uniqueness and regenerate.
func NewOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix)
}
