package merchant

import "errors"

var (
	// ErrNotFound reports that no merchant exists with the given id.
	ErrNotFound = errors.New("merchant: not found")

	// ErrNameTaken reports a merchant name collision on create or update.
	ErrNameTaken = errors.New("merchant: name already taken")
)
