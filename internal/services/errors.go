package services

import "errors"

// ErrNotAuthenticated is returned when an operation that needs a signed-in
// user runs without one. Callers surface it as a 401 or a sign-in redirect;
// it is never fatal.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrInvalidCredentials covers bad email/password pairs on sign-in.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailTaken is returned on sign-up with an already registered email.
var ErrEmailTaken = errors.New("email already registered")
