package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "El Sur Driving School API",
        "description": "Roster fetch and enrollment PDF generation for the front desk",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Students", "description": "Roster fetched from the backing spreadsheet"},
        {"name": "Export", "description": "Filled enrollment PDF generation"},
        {"name": "Auth", "description": "One-time Google consent flow"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/api/students": {
            "get": {
                "tags": ["Students"],
                "summary": "Fetch the student roster",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StudentsResponse"}},
                    "401": {"description": "Spreadsheet account not connected", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "500": {"description": "Missing configuration or fetch failure", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/students/export": {
            "get": {
                "tags": ["Students"],
                "summary": "Download the roster as a csv or pdf table",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "File download"},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/export": {
            "post": {
                "tags": ["Export"],
                "summary": "Generate a filled enrollment PDF for one student record",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Student"}}
                ],
                "produces": ["application/pdf"],
                "responses": {
                    "200": {"description": "PDF download"},
                    "400": {"description": "Invalid JSON or invalid record shape", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "500": {"description": "PDF generation failed", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/auth/google": {
            "get": {
                "tags": ["Auth"],
                "summary": "Redirect to the Google consent screen",
                "responses": {
                    "302": {"description": "Redirect"}
                }
            }
        },
        "/api/auth/callback": {
            "get": {
                "tags": ["Auth"],
                "summary": "Exchange the authorization code and display the refresh token",
                "parameters": [
                    {"name": "code", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "HTML page with the refresh token"},
                    "400": {"description": "Missing authorization code", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "Student": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "lastName": {"type": "string"},
                "firstName": {"type": "string"},
                "middleName": {"type": "string"},
                "dob": {"type": "string"},
                "birthCity": {"type": "string"},
                "birthState": {"type": "string"},
                "birthCounty": {"type": "string"},
                "birthCountry": {"type": "string"},
                "addressStreet": {"type": "string"},
                "addressApt": {"type": "string"},
                "addressCounty": {"type": "string"},
                "addressCity": {"type": "string"},
                "addressState": {"type": "string"},
                "addressZipCode": {"type": "string"},
                "phoneNumber": {"type": "string"},
                "drivingPermitNumber": {"type": "string"},
                "drivingPermitState": {"type": "string"},
                "drivingPermitIssueDate": {"type": "string"},
                "drivingPermitExpireDate": {"type": "string"},
                "age": {"type": "number", "x-nullable": true},
                "gender": {"type": "string"},
                "eyeColor": {"type": "string"},
                "hairColor": {"type": "string"},
                "race": {"type": "string"},
                "ethnicity": {"type": "string"},
                "weight": {"type": "number", "x-nullable": true},
                "height": {"type": "string"},
                "fatherLastName": {"type": "string"},
                "motherLastName": {"type": "string"},
                "primaryContactName": {"type": "string"},
                "primaryContactPhone": {"type": "string"},
                "primaryContactAddress": {"type": "string"},
                "secondaryContactName": {"type": "string"},
                "secondaryContactPhone": {"type": "string"},
                "secondaryContactAddress": {"type": "string"}
            }
        },
        "StudentsResponse": {
            "type": "object",
            "properties": {
                "students": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/Student"}
                }
            }
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "details": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "array",
                        "items": {"type": "string"}
                    }
                }
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
