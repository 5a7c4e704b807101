package thermo

import "errors"

var ErrKeyNotFound = errors.New("albedo key not found")
