package servers

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=oapi-codegen.yaml openapi.yaml

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var swaggerSpec []byte

// GetSwagger returns the OpenAPI document the server in server.gen.go was
// generated from. The request validator uses it.
func GetSwagger() (swagger *openapi3.T, err error) {
	loader := openapi3.NewLoader()
	swagger, err = loader.LoadFromData(swaggerSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	return swagger, nil
}
