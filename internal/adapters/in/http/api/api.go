// Package api holds the OpenAPI document of the HTTP interface.
package api

import (
	_ "embed"
)

//go:embed openapi.json
var OpenAPI []byte
