package calendar

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/username/workday-calendar/pkg/dateutil"
)

func TestLoadClosuresFile(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	content := `# Company closures
2025-12-26 Fermeture annuelle
2025-12-29

not-a-date this line is skipped
2026-01-02 Pont
`
	path := filepath.Join(t.TempDir(), "closures.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	closures, err := LoadClosuresFile(path, logger)
	if err != nil {
		t.Fatalf("LoadClosuresFile() error = %v", err)
	}

	want := []dateutil.Date{
		{Year: 2025, Month: time.December, Day: 26},
		{Year: 2025, Month: time.December, Day: 29},
		{Year: 2026, Month: time.January, Day: 2},
	}

	if len(closures) != len(want) {
		t.Fatalf("LoadClosuresFile() returned %d dates, want %d", len(closures), len(want))
	}

	for i, date := range want {
		if closures[i] != date {
			t.Errorf("closures[%d] = %v, want %v", i, closures[i], date)
		}
	}
}

func TestLoadClosuresFileMissing(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	_, err := LoadClosuresFile(filepath.Join(t.TempDir(), "does-not-exist.txt"), logger)
	if err == nil {
		t.Error("LoadClosuresFile() expected error for missing file, got nil")
	}
}
