package surfaces

import "errors"

var ErrArgumentMismatch = errors.New("number of albedos and areas differ")
