// Package docs Swagger 文档，路由见 internal/app/router.go
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
		"/api/health": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"系统"
				],
				"summary": "健康检查",
				"parameters": [],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/util.Response"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/util.Response"
						}
					}
				}
			}
		},
		"/api/{resource}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"学习资源"
				],
				"summary": "资源列表",
				"parameters": [
					{
						"type": "string",
						"description": "资源名",
						"name": "resource",
						"in": "path",
						"required": true,
						"enum": [
							"aspnetcore",
							"designpatterns",
							"systemdesign",
							"csharp",
							"efcore",
							"studysessions"
						]
					},
					{
						"type": "string",
						"name": "category",
						"in": "query"
					},
					{
						"type": "string",
						"name": "status",
						"in": "query"
					},
					{
						"type": "boolean",
						"name": "favorite",
						"in": "query",
						"description": "systemdesign"
					},
					{
						"type": "string",
						"name": "from",
						"in": "query",
						"description": "studysessions"
					},
					{
						"type": "string",
						"name": "to",
						"in": "query",
						"description": "studysessions"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/util.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/util.Response"
						}
					}
				}
			},
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"学习资源"
				],
				"summary": "新建记录",
				"parameters": [
					{
						"type": "string",
						"description": "资源名",
						"name": "resource",
						"in": "path",
						"required": true,
						"enum": [
							"aspnetcore",
							"designpatterns",
							"systemdesign",
							"csharp",
							"efcore",
							"studysessions"
						]
					},
					{
						"description": "记录",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/util.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/util.Response"
						}
					}
				}
			}
		},
		"/api/{resource}/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"学习资源"
				],
				"summary": "获取单条记录",
				"parameters": [
					{
						"type": "string",
						"description": "资源名",
						"name": "resource",
						"in": "path",
						"required": true,
						"enum": [
							"aspnetcore",
							"designpatterns",
							"systemdesign",
							"csharp",
							"efcore",
							"studysessions"
						]
					},
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
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/util.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/util.Response"
						}
					}
				}
			},
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"学习资源"
				],
				"summary": "整体更新记录",
				"parameters": [
					{
						"type": "string",
						"description": "资源名",
						"name": "resource",
						"in": "path",
						"required": true,
						"enum": [
							"aspnetcore",
							"designpatterns",
							"systemdesign",
							"csharp",
							"efcore",
							"studysessions"
						]
					},
					{
						"type": "integer",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "记录",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/util.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/util.Response"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/util.Response"
						}
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"学习资源"
				],
				"summary": "删除记录",
				"parameters": [
					{
						"type": "string",
						"description": "资源名",
						"name": "resource",
						"in": "path",
						"required": true,
						"enum": [
							"aspnetcore",
							"designpatterns",
							"systemdesign",
							"csharp",
							"efcore",
							"studysessions"
						]
					},
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
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/util.Response"
						}
					}
				}
			}
		},
		"/api/{resource}/{id}/favorite": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"学习资源"
				],
				"summary": "切换收藏",
				"parameters": [
					{
						"type": "string",
						"description": "资源名",
						"name": "resource",
						"in": "path",
						"required": true,
						"enum": [
							"aspnetcore",
							"designpatterns",
							"systemdesign",
							"csharp",
							"efcore",
							"studysessions"
						]
					},
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
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/util.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/util.Response"
						}
					}
				}
			}
		},
		"/api/{resource}/clear": {
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"学习资源"
				],
				"summary": "清空资源表",
				"parameters": [
					{
						"type": "string",
						"description": "资源名",
						"name": "resource",
						"in": "path",
						"required": true,
						"enum": [
							"aspnetcore",
							"designpatterns",
							"systemdesign",
							"csharp",
							"efcore",
							"studysessions"
						]
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/util.Response"
						}
					}
				}
			}
		},
		"/api/{resource}/seed": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"学习资源"
				],
				"summary": "导入示例数据",
				"parameters": [
					{
						"type": "string",
						"description": "资源名",
						"name": "resource",
						"in": "path",
						"required": true,
						"enum": [
							"aspnetcore",
							"designpatterns",
							"systemdesign",
							"csharp",
							"efcore",
							"studysessions"
						]
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/util.Response"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/util.Response"
						}
					}
				}
			}
		},
		"/api/{resource}/categories": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"学习资源"
				],
				"summary": "分类列表",
				"parameters": [
					{
						"type": "string",
						"description": "资源名",
						"name": "resource",
						"in": "path",
						"required": true,
						"enum": [
							"aspnetcore",
							"designpatterns",
							"systemdesign",
							"csharp",
							"efcore",
							"studysessions"
						]
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/util.Response"
						}
					}
				}
			}
		},
		"/api/systemdesign/{id}/review": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"系统设计"
				],
				"summary": "记录一次复习",
				"parameters": [
					{
						"type": "integer",
						"description": "ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "复习结果",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/controller.RecordReviewRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/util.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/util.Response"
						}
					}
				}
			}
		},
		"/api/systemdesign/favorites": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"系统设计"
				],
				"summary": "收藏的系统设计主题",
				"parameters": [],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/util.Response"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"util.Response": {
			"type": "object",
			"properties": {
				"code": {
					"type": "integer"
				},
				"message": {
					"type": "string"
				},
				"data": {}
			}
		},
		"controller.RecordReviewRequest": {
			"type": "object",
			"required": [
				"status"
			],
			"properties": {
				"confidenceLevel": {
					"type": "integer"
				},
				"status": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Study Tracker API",
	Description:      "个人学习进度追踪后端：学习主题与学习记录的增删改查、收藏、种子数据。",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
