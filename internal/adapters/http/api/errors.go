package api

import "errors"

// ErrBadRequest indicates a malformed request path, query or body.
var ErrBadRequest = errors.New("bad request")
