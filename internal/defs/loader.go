// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadSkinDefinitions reads a JSON array of (possibly partial) skin definitions
// and merges it over the built-in library. Fields absent from an entry keep
// their built-in values; entries with a new ID add a skin.
func LoadSkinDefinitions(path string) (Library, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skin definitions file: %w", err)
	}
	lib, err := ParseSkinDefinitions(file, DefaultLibrary())
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d skin definitions from %s", len(lib), path)
	return lib, nil
}

// ParseSkinDefinitions merges the JSON document data into base and returns it.
func ParseSkinDefinitions(data []byte, base Library) (Library, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal skin definitions: %w", err)
	}

	for i, entry := range raw {
		var head struct {
			ID SkinID `json:"id"`
		}
		if err := json.Unmarshal(entry, &head); err != nil {
			return nil, fmt.Errorf("skin definition %d: %w", i, err)
		}
		if head.ID == "" {
			return nil, fmt.Errorf("skin definition %d: missing id", i)
		}

		def := base[head.ID]
		// Копируем срезы: json переиспользует их память при перезаписи
		def.Palette = append([]string(nil), def.Palette...)
		def.Background = append([]string(nil), def.Background...)
		if err := json.Unmarshal(entry, &def); err != nil {
			return nil, fmt.Errorf("skin definition %q: %w", head.ID, err)
		}
		if err := def.Validate(); err != nil {
			return nil, err
		}
		base[head.ID] = def
	}
	return base, nil
}
