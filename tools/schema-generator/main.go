// Regenerates the embedded configuration schema. Run from the repo root
// whenever config.Config changes:
//
//	go run ./tools/schema-generator
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/MAPO-UPTC/mapo-cli/config"
)

func main() {
	schemaBytes, err := config.GenerateSchema()
	if err != nil {
		log.Fatalf("Error generating schema: %v", err)
	}

	outputPath := filepath.Join("schema", "mapo.embedded.schema.json")
	if err := os.WriteFile(outputPath, schemaBytes, 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Successfully generated schema at %s", outputPath)
}
