package gen

import (
	"fmt"
	"os"
)

// Emit writes the assembled module text to destination, replacing any
// previous content. The artifact is fully assembled before this runs, so a
// failed run never leaves partial output behind.
func Emit(destination, artifact string) error {
	if err := os.WriteFile(destination, []byte(artifact), 0o644); err != nil {
		return fmt.Errorf("failed to write generated module %s: %w", destination, err)
	}
	return nil
}
