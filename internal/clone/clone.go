// Package clone copies values deeply by encoding and decoding them.
package clone

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// DeepClone returns an independent copy of v. Only exported fields are
// copied; v and everything it references must be encodable with gob.
// Nil pointers, slices and maps come back as their zero value.
func DeepClone[T any](v T) (T, error) {
	var out T
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&v); err != nil {
		return out, fmt.Errorf("clone: encode %T: %w", v, err)
	}
	if err := gob.NewDecoder(&buf).Decode(&out); err != nil {
		return out, fmt.Errorf("clone: decode %T: %w", v, err)
	}
	return out, nil
}
