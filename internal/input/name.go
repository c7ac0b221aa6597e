package input

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	MinNameLength = 3
	MaxNameLength = 12
)

var namePattern = regexp.MustCompile(`^[A-Za-z]+$`)

// NameError explains why a username was rejected.
type NameError struct {
	Name   string
	Reason string
}

func (e *NameError) Error() string {
	return e.Reason
}

// ParseName trims raw and checks it is a valid username: 3 to 12 ASCII
// letters. Names never contain the store's field delimiter.
func ParseName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	switch {
	case len(name) < MinNameLength:
		return "", &NameError{Name: name, Reason: fmt.Sprintf("Please choose at least %d chars for your username.", MinNameLength)}
	case len(name) > MaxNameLength:
		return "", &NameError{Name: name, Reason: fmt.Sprintf("The username has too many chars, please use %d chars maximum.", MaxNameLength)}
	case !namePattern.MatchString(name):
		return "", &NameError{Name: name, Reason: "The username must only contain upper and lowercase letters."}
	}
	return name, nil
}
