package verlet

import "testing"

func TestPackageLoggerHasNoWritersByDefault(t *testing.T) {
	if len(log.Outputs()) != 0 {
		t.Fatalf("expected a silent default logger, got %d writers", len(log.Outputs()))
	}
}
