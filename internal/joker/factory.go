package joker

// New constructs an instance of the identified kind from the default
// registry. Construction is pure: it never mutates process-wide state.
func New(id ID) (Joker, error) {
	return Default().New(id, nil)
}

// NewWithArgs constructs a parameterized kind, such as a scripted joker
// that takes its source from the arguments.
func NewWithArgs(id ID, args Args) (Joker, error) {
	return Default().New(id, args)
}
