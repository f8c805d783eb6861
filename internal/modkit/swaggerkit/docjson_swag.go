//go:build swag

package swaggerkit

import docs "bankocr/internal/services/api/docs"

// docReader is swapped by tests
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }
