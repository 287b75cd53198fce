package sensor

import (
	"strings"

	"github.com/google/uuid"
)

// NewSerial returns a short device serial for this simulator session.
// The real device reports a hardware serial on its banner; the simulator
// mints one per process so concurrent test runs are distinguishable in
// logs and recordings.
func NewSerial() string {
	id := uuid.NewString()
	return "WG-SIM-" + strings.ToUpper(id[:8])
}
