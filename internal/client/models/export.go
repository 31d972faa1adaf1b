package models

// ExportUser is the public part of a User included in an export.
type ExportUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Export is the document written by the export command.
type Export struct {
	ExportedAt string         `json:"exportedAt"`
	User       ExportUser     `json:"user"`
	Entries    []CheckInEntry `json:"entries"`
}
