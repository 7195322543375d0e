// Package docs registers the OpenAPI description of the portal with swag.
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
        "/": {
            "get": {
                "tags": [
                    "dashboard"
                ],
                "summary": "Landing",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Login",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "body",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.loginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.authResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/auth/register": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Register a new user",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "body",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.RegisterPayload"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.authResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Logout",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/auth/session": {
            "get": {
                "tags": [
                    "auth"
                ],
                "summary": "Current session",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/dashboard": {
            "get": {
                "tags": [
                    "dashboard"
                ],
                "summary": "Role home redirect",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "303": {
                        "description": "See Other"
                    }
                }
            }
        },
        "/dashboard/interesado/convocatorias": {
            "get": {
                "tags": [
                    "convocatorias"
                ],
                "summary": "Public convocatorias",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Page (0-based)",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page size",
                        "name": "size",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/dashboard/interesado/convocatorias/{id}/inscribirse": {
            "post": {
                "tags": [
                    "convocatorias"
                ],
                "summary": "Inscribirse en convocatoria",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/dashboard/presidente/convocatorias": {
            "get": {
                "tags": [
                    "convocatorias"
                ],
                "summary": "Club convocatorias",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Page (0-based)",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page size",
                        "name": "size",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "post": {
                "tags": [
                    "convocatorias"
                ],
                "summary": "Create convocatoria",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "body",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.CreateConvocatoriaPayload"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    }
                }
            }
        },
        "/dashboard/presidente/convocatorias/{id}": {
            "patch": {
                "tags": [
                    "convocatorias"
                ],
                "summary": "Update convocatoria",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "body",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.UpdateConvocatoriaPayload"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/dashboard/presidente/convocatorias/{id}/inscripciones": {
            "get": {
                "tags": [
                    "convocatorias"
                ],
                "summary": "Inscripciones de convocatoria",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "TODAS, PENDIENTE o ACEPTADA",
                        "name": "estado",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/dashboard/presidente/convocatorias/{id}/inscripciones/{regId}/aceptar": {
            "post": {
                "tags": [
                    "convocatorias"
                ],
                "summary": "Aceptar inscripción",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Inscripción ID",
                        "name": "regId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/dashboard/presidente/convocatorias/{id}/inscripciones/{regId}/rechazar": {
            "post": {
                "tags": [
                    "convocatorias"
                ],
                "summary": "Rechazar inscripción",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Inscripción ID",
                        "name": "regId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/dashboard/presidente/proyectos": {
            "post": {
                "tags": [
                    "proyectos"
                ],
                "summary": "Create proyecto",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "body",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.CreateProyectoPayload"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    }
                }
            }
        },
        "/dashboard/presidente/proyectos/{id}": {
            "patch": {
                "tags": [
                    "proyectos"
                ],
                "summary": "Update proyecto",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "body",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.UpdateProyectoPayload"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/dashboard/presidente/proyectos/{id}/inscripciones": {
            "get": {
                "tags": [
                    "proyectos"
                ],
                "summary": "Inscripciones de proyecto",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/dashboard/socio/proyectos": {
            "get": {
                "tags": [
                    "proyectos"
                ],
                "summary": "Club proyectos",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Page (0-based)",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page size",
                        "name": "size",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/dashboard/socio/proyectos/{id}/inscribirse": {
            "post": {
                "tags": [
                    "proyectos"
                ],
                "summary": "Inscribirse en proyecto",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/dashboard/socio/proyectos/{id}/aceptados": {
            "get": {
                "tags": [
                    "proyectos"
                ],
                "summary": "Miembros aceptados",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/dashboard/representante/clubes": {
            "get": {
                "tags": [
                    "clubes"
                ],
                "summary": "Clubes",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Page (0-based)",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page size",
                        "name": "size",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        }
    },
    "definitions": {
        "handler.errorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "properties": {
                "correo": {
                    "type": "string"
                },
                "contrasena": {
                    "type": "string"
                }
            },
            "required": [
                "correo",
                "contrasena"
            ]
        },
        "handler.authResponse": {
            "type": "object",
            "properties": {
                "user": {
                    "$ref": "#/definitions/domain.User"
                },
                "redirect": {
                    "type": "string"
                }
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                },
                "apellidos": {
                    "type": "string"
                },
                "correo": {
                    "type": "string"
                },
                "rol": {
                    "type": "string"
                }
            }
        },
        "domain.RegisterPayload": {
            "type": "object",
            "properties": {
                "nombre": {
                    "type": "string"
                },
                "correo": {
                    "type": "string"
                },
                "contrasena": {
                    "type": "string"
                },
                "ciudad": {
                    "type": "string"
                },
                "fechaNacimiento": {
                    "type": "string"
                }
            },
            "required": [
                "nombre",
                "correo",
                "contrasena",
                "ciudad",
                "fechaNacimiento"
            ]
        },
        "domain.CreateConvocatoriaPayload": {
            "type": "object",
            "properties": {
                "titulo": {
                    "type": "string"
                },
                "descripcion": {
                    "type": "string"
                },
                "cupoMaximo": {
                    "type": "integer"
                },
                "fechaPublicacion": {
                    "type": "string"
                },
                "fechaCierre": {
                    "type": "string"
                },
                "fechaInicioPostulacion": {
                    "type": "string"
                },
                "fechaFinPostulacion": {
                    "type": "string"
                },
                "requisitos": {
                    "type": "string"
                }
            }
        },
        "domain.UpdateConvocatoriaPayload": {
            "type": "object",
            "properties": {
                "titulo": {
                    "type": "string"
                },
                "descripcion": {
                    "type": "string"
                },
                "cupoMaximo": {
                    "type": "integer"
                },
                "fechaCierre": {
                    "type": "string"
                },
                "fechaInicioPostulacion": {
                    "type": "string"
                },
                "fechaFinPostulacion": {
                    "type": "string"
                },
                "requisitos": {
                    "type": "string"
                }
            }
        },
        "domain.CreateProyectoPayload": {
            "type": "object",
            "properties": {
                "titulo": {
                    "type": "string"
                },
                "descripcion": {
                    "type": "string"
                },
                "objetivo": {
                    "type": "string"
                },
                "requisitos": {
                    "type": "string"
                },
                "lugar": {
                    "type": "string"
                },
                "cupoMaximo": {
                    "type": "integer"
                },
                "fechaInicioPostulacion": {
                    "type": "string"
                },
                "fechaFinPostulacion": {
                    "type": "string"
                },
                "fechaInicioProyecto": {
                    "type": "string"
                },
                "fechaFinProyecto": {
                    "type": "string"
                }
            }
        },
        "domain.UpdateProyectoPayload": {
            "type": "object",
            "properties": {
                "titulo": {
                    "type": "string"
                },
                "descripcion": {
                    "type": "string"
                },
                "objetivo": {
                    "type": "string"
                },
                "requisitos": {
                    "type": "string"
                },
                "lugar": {
                    "type": "string"
                },
                "cupoMaximo": {
                    "type": "integer"
                },
                "fechaInicioPostulacion": {
                    "type": "string"
                },
                "fechaFinPostulacion": {
                    "type": "string"
                },
                "fechaInicioProyecto": {
                    "type": "string"
                },
                "fechaFinProyecto": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Rotaract D4465 Portal",
	Description:      "Local gateway over the district REST API: session, route gates and dashboard views.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
