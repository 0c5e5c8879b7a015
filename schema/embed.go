// Package schema provides the embedded JSON schema for the orchestrator
// configuration file.
package schema

import "embed"

// FS contains the embedded schema files.
//
//go:embed *.schema.json
var FS embed.FS
