// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

// Package docs holds the OpenAPI 2.0 document of the MovieSense API in the
// layout swag init writes, and registers it with swag for /swagger/doc.json.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/genres": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Movies"],
                "summary": "List genres",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/envelope.GenreList"}
                    },
                    "503": {
                        "description": "Catalog not loaded",
                        "schema": {"$ref": "#/definitions/models.APIResponse"}
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Service health",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/envelope.HealthStatus"}
                    }
                }
            }
        },
        "/health/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/models.APIResponse"}
                    }
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/envelope.HealthStatus"}
                    },
                    "503": {
                        "description": "Catalog not loaded",
                        "schema": {"$ref": "#/definitions/models.APIResponse"}
                    }
                }
            }
        },
        "/movies": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Movies"],
                "summary": "List movies",
                "parameters": [
                    {"minimum": 0, "type": "integer", "description": "Page size, 0 for all", "name": "limit", "in": "query"},
                    {"minimum": 0, "type": "integer", "description": "Page start", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/envelope.MovieList"}
                    },
                    "400": {
                        "description": "Invalid parameters",
                        "schema": {"$ref": "#/definitions/models.APIResponse"}
                    },
                    "503": {
                        "description": "Catalog not loaded",
                        "schema": {"$ref": "#/definitions/models.APIResponse"}
                    }
                }
            }
        },
        "/movies/export.csv": {
            "get": {
                "produces": ["text/csv"],
                "tags": ["Movies"],
                "summary": "Export movies as CSV",
                "parameters": [
                    {"maxLength": 200, "type": "string", "description": "Export the results of this query", "name": "q", "in": "query"},
                    {"minimum": 0, "type": "integer", "description": "Number of similar titles for title queries", "name": "k", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "file"}
                    },
                    "400": {
                        "description": "Invalid parameters",
                        "schema": {"$ref": "#/definitions/models.APIResponse"}
                    },
                    "503": {
                        "description": "Catalog not loaded",
                        "schema": {"$ref": "#/definitions/models.APIResponse"}
                    }
                }
            }
        },
        "/movies/featured": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Movies"],
                "summary": "Featured movies",
                "parameters": [
                    {"minimum": 0, "type": "integer", "description": "Sample size", "name": "n", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/envelope.MovieList"}
                    },
                    "400": {
                        "description": "Invalid parameters",
                        "schema": {"$ref": "#/definitions/models.APIResponse"}
                    },
                    "503": {
                        "description": "Catalog not loaded",
                        "schema": {"$ref": "#/definitions/models.APIResponse"}
                    }
                }
            }
        },
        "/recommendations": {
            "get": {
                "description": "Resolves q as a release year, a genre or a title and returns matching movies ranked by rating.",
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Recommend movies",
                "parameters": [
                    {"maxLength": 200, "type": "string", "description": "Year, genre or title", "name": "q", "in": "query", "required": true},
                    {"minimum": 0, "type": "integer", "description": "Number of similar titles for title queries", "name": "k", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/envelope.Recommendations"}
                    },
                    "400": {
                        "description": "Invalid parameters",
                        "schema": {"$ref": "#/definitions/models.APIResponse"}
                    },
                    "503": {
                        "description": "Catalog not loaded",
                        "schema": {"$ref": "#/definitions/models.APIResponse"}
                    }
                }
            }
        },
        "/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Service statistics",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/envelope.ServiceStats"}
                    },
                    "503": {
                        "description": "Catalog not loaded",
                        "schema": {"$ref": "#/definitions/models.APIResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "envelope.GenreList": {
            "allOf": [
                {"$ref": "#/definitions/models.APIResponse"},
                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.GenreList"}}}
            ]
        },
        "envelope.HealthStatus": {
            "allOf": [
                {"$ref": "#/definitions/models.APIResponse"},
                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.HealthStatus"}}}
            ]
        },
        "envelope.MovieList": {
            "allOf": [
                {"$ref": "#/definitions/models.APIResponse"},
                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.MovieList"}}}
            ]
        },
        "envelope.Recommendations": {
            "allOf": [
                {"$ref": "#/definitions/models.APIResponse"},
                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.Recommendations"}}}
            ]
        },
        "envelope.ServiceStats": {
            "allOf": [
                {"$ref": "#/definitions/models.APIResponse"},
                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.ServiceStats"}}}
            ]
        },
        "middleware.EndpointStats": {
            "type": "object",
            "properties": {
                "endpoint": {"type": "string"},
                "request_count": {"type": "integer"},
                "error_count": {"type": "integer"},
                "avg_ms": {"type": "number"},
                "p50_ms": {"type": "number"},
                "p95_ms": {"type": "number"},
                "p99_ms": {"type": "number"},
                "max_ms": {"type": "number"}
            }
        },
        "models.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "models.APIResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["success", "error"]},
                "data": {},
                "metadata": {"$ref": "#/definitions/models.Metadata"},
                "error": {"$ref": "#/definitions/models.APIError"}
            }
        },
        "models.CacheStats": {
            "type": "object",
            "properties": {
                "enabled": {"type": "boolean"},
                "hits": {"type": "integer"},
                "misses": {"type": "integer"},
                "size": {"type": "integer"},
                "hit_rate": {"type": "number"}
            }
        },
        "models.CatalogStats": {
            "type": "object",
            "properties": {
                "source": {"type": "string"},
                "movies": {"type": "integer"},
                "unique_titles": {"type": "integer"},
                "genres": {"type": "integer"},
                "vocabulary": {"type": "integer"},
                "matcher": {"type": "string"},
                "build_duration_ms": {"type": "integer"},
                "built_at": {"type": "string", "format": "date-time"},
                "warnings": {"type": "object", "additionalProperties": {"type": "integer"}}
            }
        },
        "models.GenreList": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "genres": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.HealthStatus": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "version": {"type": "string"},
                "catalog_loaded": {"type": "boolean"},
                "movies": {"type": "integer"},
                "built_at": {"type": "string", "format": "date-time"},
                "uptime_seconds": {"type": "number"}
            }
        },
        "models.Metadata": {
            "type": "object",
            "properties": {
                "timestamp": {"type": "string", "format": "date-time"},
                "query_time_ms": {"type": "integer"},
                "cached": {"type": "boolean"},
                "request_id": {"type": "string"}
            }
        },
        "models.MovieList": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "count": {"type": "integer"},
                "offset": {"type": "integer"},
                "limit": {"type": "integer"},
                "movies": {"type": "array", "items": {"$ref": "#/definitions/recommend.Result"}}
            }
        },
        "models.Recommendations": {
            "type": "object",
            "properties": {
                "query": {"type": "string"},
                "kind": {"type": "string", "enum": ["year", "genre", "title", "none"]},
                "matched": {"type": "string"},
                "count": {"type": "integer"},
                "results": {"type": "array", "items": {"$ref": "#/definitions/recommend.Result"}}
            }
        },
        "models.ServiceStats": {
            "type": "object",
            "properties": {
                "catalog": {"$ref": "#/definitions/models.CatalogStats"},
                "cache": {"$ref": "#/definitions/models.CacheStats"},
                "endpoints": {"type": "array", "items": {"$ref": "#/definitions/middleware.EndpointStats"}},
                "uptime_seconds": {"type": "number"}
            }
        },
        "recommend.Result": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "genre": {"type": "string"},
                "year": {"type": "integer", "x-nullable": true},
                "rating": {"type": "number", "x-nullable": true},
                "poster_url": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "MovieSense API",
	Description:      "Content-based movie recommendations from a catalog file.\nQueries resolve as a release year, a genre or a title.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
