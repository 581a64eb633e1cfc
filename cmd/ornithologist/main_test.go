package main

import "testing"

// TestCoverageGaps_IntentionallyUntested documents why cmd/ornithologist has no unit tests.
// Run with -v to see skip reason.
func TestCoverageGaps_IntentionallyUntested(t *testing.T) {
	t.Skip("main.go is wiring-only; the session flow is tested in internal/cli against a fake provider")
}
