package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/moodkeeper/internal/client/models"
)

// exportTimeLayout renders UTC instants with millisecond precision.
const exportTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// BuildExport renders the export document for user as indented JSON.
// Password material is never included.
func BuildExport(user *models.User, entries []models.CheckInEntry, now time.Time) ([]byte, error) {
	if entries == nil {
		entries = []models.CheckInEntry{}
	}
	doc := models.Export{
		ExportedAt: now.UTC().Format(exportTimeLayout),
		User: models.ExportUser{
			ID:       user.ID,
			Email:    user.Email,
			Username: user.Username,
		},
		Entries: entries,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return data, nil
}

// ExportFileName is the file name used for an export made on todayISO.
func ExportFileName(todayISO string) string {
	return fmt.Sprintf("moodkeeper-export-%s.json", todayISO)
}
