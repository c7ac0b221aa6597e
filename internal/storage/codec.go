package storage

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samdwyer/littleprofessor/internal/player"
)

// fieldSeparator never appears in a valid username.
const fieldSeparator = "+"

// ErrCorruptRecord is returned for records that cannot be decoded.
var ErrCorruptRecord = errors.New("storage: corrupt record")

// EncodeUser turns a user into "name+highscore".
func EncodeUser(u *player.User) (string, error) {
	if u == nil {
		return "", errors.New("storage: nil user")
	}
	if u.Name == "" || strings.Contains(u.Name, fieldSeparator) {
		return "", fmt.Errorf("storage: cannot encode name %q", u.Name)
	}
	return u.Name + fieldSeparator + strconv.Itoa(u.Highscore), nil
}

// DecodeUser parses a "name+highscore" record.
func DecodeUser(record string) (*player.User, error) {
	fields := strings.Split(record, fieldSeparator)
	if len(fields) != 2 || fields[0] == "" {
		return nil, fmt.Errorf("%w: %q", ErrCorruptRecord, record)
	}
	highscore, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: highscore %q", ErrCorruptRecord, fields[1])
	}
	return &player.User{Name: fields[0], Highscore: highscore}, nil
}
