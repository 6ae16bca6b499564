// Package docs contiene la especificación OpenAPI de la API y la registra en swag.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var swaggerJSON []byte

// SwaggerInfo metadatos de la especificación.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Plexora API",
	Description:      "API de analítica para restaurantes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  string(swaggerJSON),
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

// JSON especificación embebida; /docs la sirve cuando no hay archivo externo.
func JSON() []byte { return swaggerJSON }

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
