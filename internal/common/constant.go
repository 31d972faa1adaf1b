package common

// Storage keys. Values under these keys are JSON documents.
const (
	UsersKey         = "moodkeeper_users_v1"
	SessionKey       = "moodkeeper_session_v1"
	EntriesKeyPrefix = "moodkeeper_checkins_v1"
)

// EntriesKey returns the storage key holding the check-ins of userID.
func EntriesKey(userID string) string {
	return EntriesKeyPrefix + ":" + userID
}
