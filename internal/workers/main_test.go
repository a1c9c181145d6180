package workers

import (
	"testing"

	"go.uber.org/goleak"
)

// Every worker must be gone once Stop returns.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
