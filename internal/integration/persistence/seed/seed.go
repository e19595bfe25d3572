// Package seed holds the catalog shipped with the binary.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/finance-academy/backend/internal/application/usecase/catalog"
)

//go:embed catalog.json
var catalogJSON []byte

// Catalog decodes the embedded catalog. Enum values are validated later by the seeder.
func Catalog() (catalog.SeedCatalogInput, error) {
	var input catalog.SeedCatalogInput
	if err := json.Unmarshal(catalogJSON, &input); err != nil {
		return catalog.SeedCatalogInput{}, fmt.Errorf("failed to decode embedded catalog: %w", err)
	}
	return input, nil
}
