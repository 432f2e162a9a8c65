package obj

// resolveIndex converts a one-based or negative OBJ reference into a
// zero-based index into an attribute array that currently holds length
// entries. Negative values count back from the end, so -1 is the most
// recently declared entry.
func resolveIndex(value, length int) (int, error) {
	var index int
	switch {
	case value > 0:
		index = value - 1
	case value < 0:
		index = length + value
	default:
		return 0, ErrIndexOutOfRange
	}

	if index < 0 || index >= length {
		return 0, ErrIndexOutOfRange
	}
	return index, nil
}
