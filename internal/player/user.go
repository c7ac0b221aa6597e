// Package player provides the player record kept across sessions.
package player

// User is the player: a name, the score of the running session and the
// best score ever recorded.
type User struct {
	Name      string
	Score     int
	Highscore int
}

// New creates a user without any recorded score.
func New(name string) *User {
	return &User{Name: name}
}

// AddPoint increases the session score by one.
func (u *User) AddPoint() {
	u.Score++
}

// ResetScore clears the session score.
func (u *User) ResetScore() {
	u.Score = 0
}

// UpdateHighscore raises the highscore to the session score if it is
// higher and reports whether it did.
func (u *User) UpdateHighscore() bool {
	if u.Score <= u.Highscore {
		return false
	}
	u.Highscore = u.Score
	return true
}

// Is reports whether other names the same player. Names are case-sensitive.
func (u *User) Is(other *User) bool {
	return other != nil && u.Name == other.Name
}
