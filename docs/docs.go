// Package docs registers the OpenAPI document served at /swagger.
// It follows the layout swag init emits; keep the template in sync with the
// @Router annotations in api/http/handlers.
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
        "/analyze": {
            "post": {
                "description": "Accepts a PDF or DOCX résumé and returns matched and missing skills, fit percentage, alternative roles, contact details and tips.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Analysis"],
                "summary": "Analyze a résumé against a job role",
                "parameters": [
                    {"type": "file", "description": "Résumé (PDF or DOCX)", "name": "resume", "in": "formData", "required": true},
                    {"type": "string", "description": "Target role name", "name": "job_role", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/analysis.Result"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {}}}
                }
            }
        },
        "/roles": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Analysis"],
                "summary": "List job roles",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}}}
                }
            }
        },
        "/search_jobs": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Jobs"],
                "summary": "Search and rank job postings",
                "parameters": [
                    {"description": "Role, optional location and résumé text", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.searchJobsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.searchJobsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/vacancies": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Jobs"],
                "summary": "Publish a vacancy",
                "parameters": [
                    {"description": "Vacancy", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.createVacancyRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "analysis.ContactInfo": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "analysis.Result": {
            "type": "object",
            "properties": {
                "candidate_info": {"$ref": "#/definitions/analysis.ContactInfo"},
                "job_role": {"type": "string"},
                "match_percentage": {"type": "number"},
                "matched_skills": {"type": "array", "items": {"type": "string"}},
                "missing_skills": {"type": "array", "items": {"$ref": "#/definitions/analysis.SkillGap"}},
                "recommendations": {"type": "array", "items": {"$ref": "#/definitions/analysis.RoleRecommendation"}},
                "resume_text": {"type": "string"},
                "tips": {"type": "array", "items": {"type": "string"}}
            }
        },
        "analysis.RoleRecommendation": {
            "type": "object",
            "properties": {
                "percentage": {"type": "number"},
                "role": {"type": "string"}
            }
        },
        "analysis.SkillGap": {
            "type": "object",
            "properties": {
                "link": {"type": "string"},
                "skill": {"type": "string"}
            }
        },
        "handlers.createVacancyRequest": {
            "type": "object",
            "properties": {
                "company": {"type": "string"},
                "description": {"type": "string"},
                "job_url": {"type": "string"},
                "location": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "handlers.searchJobsRequest": {
            "type": "object",
            "properties": {
                "job_role": {"type": "string"},
                "location": {"type": "string"},
                "resume_text": {"type": "string"}
            }
        },
        "handlers.searchJobsResponse": {
            "type": "object",
            "properties": {
                "jobs": {"type": "array", "items": {"$ref": "#/definitions/jobs.Match"}}
            }
        },
        "jobs.Match": {
            "type": "object",
            "properties": {
                "company": {"type": "string"},
                "description_snippet": {"type": "string"},
                "job_url": {"type": "string"},
                "location": {"type": "string"},
                "match_score": {"type": "number"},
                "title": {"type": "string"}
            }
        },
        "presenter.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Authorization token. Accepts \"Bearer <JWT>\" or \"<JWT>\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "resume-analyzer API",
	Description:      "Scores résumés against job roles, suggests learning resources and ranks job postings by text similarity.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
