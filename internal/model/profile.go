package model

import "github.com/google/uuid"

// ProfileUpdate is a message of the profile change topic.
type ProfileUpdate struct {
	UserID      uuid.UUID `json:"user_uuid"`
	Username    string    `json:"username"`
	DisplayName *string   `json:"display_name,omitempty"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
}

func (p ProfileUpdate) User() User {
	return User{
		ID:          p.UserID,
		Username:    p.Username,
		DisplayName: p.DisplayName,
		AvatarURL:   p.AvatarURL,
	}
}
