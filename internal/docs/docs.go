// Package docs provides the Swagger specification served at /swagger.
// Maintained by hand alongside the handler annotations; keep both in step
// when routes change.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/incomes": {
            "get": {"tags": ["incomes"], "summary": "List incomes", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["incomes"], "summary": "Record an income", "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input"}}}
        },
        "/incomes/{id}": {
            "get": {"tags": ["incomes"], "summary": "Get an income", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "put": {"tags": ["incomes"], "summary": "Update an income", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "delete": {"tags": ["incomes"], "summary": "Delete an income", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
        },
        "/expenses": {
            "get": {"tags": ["expenses"], "summary": "List expenses", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["expenses"], "summary": "Record an expense", "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input"}}}
        },
        "/expenses/{id}": {
            "get": {"tags": ["expenses"], "summary": "Get an expense", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "put": {"tags": ["expenses"], "summary": "Update an expense", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "delete": {"tags": ["expenses"], "summary": "Delete an expense", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
        },
        "/vendors": {
            "get": {"tags": ["vendors"], "summary": "List vendors", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["vendors"], "summary": "Add a vendor", "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input"}}}
        },
        "/vendors/{id}": {
            "get": {"tags": ["vendors"], "summary": "Get a vendor", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "put": {"tags": ["vendors"], "summary": "Update a vendor", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "delete": {"tags": ["vendors"], "summary": "Delete a vendor", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
        },
        "/labours": {
            "get": {"tags": ["labours"], "summary": "List workers", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["labours"], "summary": "Add a worker", "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input"}}}
        },
        "/labours/stats": {
            "get": {"tags": ["labours"], "summary": "Worker wage positions", "responses": {"200": {"description": "OK"}}}
        },
        "/labours/{id}": {
            "get": {"tags": ["labours"], "summary": "Get a worker", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "put": {"tags": ["labours"], "summary": "Update a worker", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "delete": {"tags": ["labours"], "summary": "Delete a worker and their records", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
        },
        "/attendance": {
            "get": {"tags": ["attendance"], "summary": "List attendance", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["attendance"], "summary": "Mark attendance", "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input"}, "404": {"description": "Worker not found"}}}
        },
        "/attendance/bulk": {
            "post": {"tags": ["attendance"], "summary": "Mark all present", "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input"}}}
        },
        "/attendance/{id}": {
            "put": {"tags": ["attendance"], "summary": "Update an attendance entry", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "delete": {"tags": ["attendance"], "summary": "Delete an attendance entry", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
        },
        "/payments": {
            "get": {"tags": ["payments"], "summary": "List payouts", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["payments"], "summary": "Record a payout", "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input"}, "404": {"description": "Worker not found"}}}
        },
        "/payments/{id}": {
            "get": {"tags": ["payments"], "summary": "Get a payout", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "put": {"tags": ["payments"], "summary": "Update a payout", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "delete": {"tags": ["payments"], "summary": "Delete a payout", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
        },
        "/dashboard": {
            "get": {"tags": ["reports"], "summary": "Project dashboard", "responses": {"200": {"description": "OK"}}}
        },
        "/ledger": {
            "get": {"tags": ["reports"], "summary": "Unified ledger", "parameters": [{"type": "string", "name": "category", "in": "query"}, {"type": "string", "name": "q", "in": "query"}], "responses": {"200": {"description": "OK"}}}
        },
        "/settings": {
            "get": {"tags": ["settings"], "summary": "Get settings", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["settings"], "summary": "Update settings", "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid input"}}}
        },
        "/snapshot": {
            "get": {"tags": ["snapshot"], "summary": "Export backup", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["snapshot"], "summary": "Import backup", "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid snapshot"}}},
            "delete": {"tags": ["snapshot"], "summary": "Reset all data", "responses": {"200": {"description": "OK"}}}
        },
        "/reports/csv": {
            "get": {"tags": ["reports"], "summary": "Download CSV report", "produces": ["text/csv"], "responses": {"200": {"description": "OK"}}}
        },
        "/reports/xlsx": {
            "get": {"tags": ["reports"], "summary": "Download XLSX report", "responses": {"200": {"description": "OK"}}}
        },
        "/sync": {
            "post": {"tags": ["sync"], "summary": "Push to sheet", "responses": {"200": {"description": "OK"}, "400": {"description": "Sync not configured"}, "502": {"description": "Push failed"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Sitekhata API",
	Description:      "Sitekhata is a single-project construction finance tracker: partner incomes, expenses, vendor directory, labour attendance and wages, backups, and reports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
