package joker

import "errors"

var (
	// ErrUnknownJoker means a construction request or persisted reference
	// named an identifier no registry entry covers.
	ErrUnknownJoker = errors.New("unknown joker identifier")

	// ErrBadState means a state payload failed validation. The instance's
	// prior in-memory state is unchanged when this is returned.
	ErrBadState = errors.New("malformed joker state payload")

	// ErrUnsupportedVersion means a persisted payload carries a schema
	// version newer than this build understands.
	ErrUnsupportedVersion = errors.New("unsupported state schema version")
)
