package redis

const (
	// KeyPrefixBookmark is the prefix for bookmark rows.
	KeyPrefixBookmark = "marque:bookmark:"
	// KeyPrefixUserBookmarks is the prefix for the per-user set of row ids.
	KeyPrefixUserBookmarks = "marque:user:"
	// KeyPrefixUser is the prefix for credentials records.
	KeyPrefixUser = "marque:account:"
	// KeyPrefixEmail maps a lowercased email to a user id.
	KeyPrefixEmail = "marque:email:"
	// KeyPrefixProfile is the prefix for profile rows.
	KeyPrefixProfile = "marque:profile:"
	// KeyPrefixReset is the prefix for one-time password reset tokens.
	KeyPrefixReset = "marque:reset:"
)

// BookmarkKey returns the key holding a bookmark row.
func BookmarkKey(id string) string {
	return KeyPrefixBookmark + id
}

// UserBookmarksKey returns the key of the set of a user's bookmark ids.
func UserBookmarksKey(userID string) string {
	return KeyPrefixUserBookmarks + userID + ":bookmarks"
}

// UserKey returns the key holding a credentials record.
func UserKey(id string) string {
	return KeyPrefixUser + id
}

// EmailKey returns the key mapping an email to a user id.
func EmailKey(email string) string {
	return KeyPrefixEmail + email
}

// ProfileKey returns the key holding a profile row.
func ProfileKey(userID string) string {
	return KeyPrefixProfile + userID
}

// ResetKey returns the key holding a password reset token.
func ResetKey(token string) string {
	return KeyPrefixReset + token
}
