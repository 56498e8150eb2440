package pricing

import "errors"

var ErrUnknownAddon = errors.New("unknown add-on")
