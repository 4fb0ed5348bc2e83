package storage

import "errors"

var errWriteDenied = errors.New("write denied")
