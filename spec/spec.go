// Package spec embeds the OpenAPI description of the Driver Logbook API.
// The handler package serves it at /openapi.yaml, so the document ships
// with the binary it describes.
package spec

import _ "embed"

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time.
//
//go:embed openapi.yaml
var OpenAPI []byte
