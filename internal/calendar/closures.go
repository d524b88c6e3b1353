package calendar

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/username/workday-calendar/pkg/dateutil"
)

// LoadClosuresFile reads extra closure dates from a local text file.
//
// Format: one date per line, "YYYY-MM-DD [note]".
// Example: 2025-12-26 Fermeture annuelle
// Blank lines and lines starting with # are skipped. Malformed lines are
// logged and skipped rather than failing the whole file.
func LoadClosuresFile(filePath string, logger *zap.Logger) ([]dateutil.Date, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open closures file: %w", err)
	}
	defer file.Close()

	var closures []dateutil.Date

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Anything after the date is a free-form note
		dateStr, _, _ := strings.Cut(line, " ")

		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			logger.Warn("Invalid closure date, skipping",
				zap.String("line", line),
				zap.Error(err))
			continue
		}

		closures = append(closures, dateutil.DateOf(parsed))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading closures file: %w", err)
	}

	logger.Info("Closures file loaded",
		zap.String("file", filePath),
		zap.Int("closures", len(closures)))

	return closures, nil
}
