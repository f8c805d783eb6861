//go:build !swag

package swaggerkit

import _ "embed"

// openapi.json mirrors the swag output so builds without the swag tag still serve the full document
//
//go:embed openapi.json
var openapiJSON string

// docReader is swapped by tests
var docReader = func() string { return openapiJSON }
