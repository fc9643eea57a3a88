package domain

import "time"

// Session is the access/refresh token pair. An empty string stands for an
// absent token.
type Session struct {
	AccessToken  string
	RefreshToken string
}

func (s Session) Authenticated() bool {
	return s.AccessToken != ""
}

func (s Session) Empty() bool {
	return s.AccessToken == "" && s.RefreshToken == ""
}

// TokenPair is the token payload returned by the login and refresh endpoints.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
}

// SessionRecord is the non-secret description of the last login, kept so
// that commands can show who is signed in without calling the server.
type SessionRecord struct {
	Profile     string
	BaseURL     string
	UserID      int
	Name        string
	Email       string
	Role        Role
	LoggedInAt  time.Time
	RefreshedAt time.Time
}
