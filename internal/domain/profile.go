package domain

import "time"

// Profile holds the user-facing account details, separate from the
// credentials record.
type Profile struct {
	ID        string    `json:"id"` // same as the owning user id
	Name      string    `json:"name"`
	Age       *int      `json:"age,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// defaultAvatarURL is shown until the user picks their own.
const defaultAvatarURL = "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?auto=format&fit=crop&w=200&h=200"

// DefaultProfile is created on first read when a user has no profile yet.
func DefaultProfile(userID string, now time.Time) Profile {
	return Profile{
		ID:        userID,
		Name:      "New User",
		AvatarURL: defaultAvatarURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ProfilePatch is a partial update of the editable profile fields.
type ProfilePatch struct {
	Name      *string `json:"name,omitempty"`
	Age       *int    `json:"age,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// Empty reports whether no field is set.
func (pp ProfilePatch) Empty() bool {
	return pp.Name == nil && pp.Age == nil && pp.Bio == nil && pp.AvatarURL == nil
}

// Apply copies the set fields onto p and bumps UpdatedAt.
func (pp ProfilePatch) Apply(p *Profile, now time.Time) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Age != nil {
		p.Age = pp.Age
	}
	if pp.Bio != nil {
		p.Bio = *pp.Bio
	}
	if pp.AvatarURL != nil {
		p.AvatarURL = *pp.AvatarURL
	}
	p.UpdatedAt = now
}
