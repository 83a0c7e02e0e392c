package services

import "errors"

// ValidationError marks input the caller can fix; handlers map it to a 400
// response with the message as the body.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// ErrInvalidCredentials is returned by login when the employee number or
// password does not match. The two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid employee number or password")
