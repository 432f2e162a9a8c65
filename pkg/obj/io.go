package obj

import (
	"fmt"
	"io"
	"os"
)

// ParseFile reads and parses an OBJ file
func ParseFile(filename string, opts ...Option) (*Model, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseBytes(data, opts...)
}

// ParseReader reads r to the end and parses the result
func ParseReader(r io.Reader, opts ...Option) (*Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read OBJ data: %w", err)
	}
	return ParseBytes(data, opts...)
}

// ParseBytes parses an OBJ document held in memory
func ParseBytes(data []byte, opts ...Option) (*Model, error) {
	return Parse(string(data), opts...)
}
