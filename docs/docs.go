package docs

import "github.com/swaggo/swag"

const docTemplate = `{
  "swagger": "2.0",
  "info": {
    "title": "Sales Dashboard API",
    "description": "Sales performance KPIs, rankings and period views built from the team spreadsheet",
    "version": "1.0"
  },
  "basePath": "/",
  "paths": {
    "/healthz": {
      "get": {
        "tags": [
          "health"
        ],
        "summary": "Health check",
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          },
          "503": {
            "description": "Cache unavailable"
          }
        }
      }
    },
    "/api/dashboard": {
      "get": {
        "tags": [
          "dashboard"
        ],
        "summary": "Dashboard overview",
        "parameters": [
          {
            "name": "sheetUrl",
            "in": "query",
            "type": "string",
            "required": false,
            "description": "XLSX export URL, defaults to SHEET_URL"
          },
          {
            "name": "skipCache",
            "in": "query",
            "type": "string",
            "required": false,
            "description": "Bypass the cache (true/1/yes)"
          }
        ],
        "responses": {
          "200": {
            "description": "OK"
          },
          "400": {
            "description": "Missing or invalid sheetUrl"
          },
          "502": {
            "description": "Spreadsheet could not be loaded"
          }
        }
      }
    },
    "/api/dashboard/vendedores": {
      "get": {
        "tags": [
          "dashboard"
        ],
        "summary": "Salesperson performance",
        "parameters": [
          {
            "name": "sheetUrl",
            "in": "query",
            "type": "string",
            "required": false,
            "description": "XLSX export URL, defaults to SHEET_URL"
          }
        ],
        "responses": {
          "200": {
            "description": "OK"
          },
          "400": {
            "description": "Missing or invalid sheetUrl"
          },
          "502": {
            "description": "Spreadsheet could not be loaded"
          }
        }
      }
    },
    "/api/dashboard/campanhas": {
      "get": {
        "tags": [
          "dashboard"
        ],
        "summary": "Campaign performance",
        "parameters": [
          {
            "name": "sheetUrl",
            "in": "query",
            "type": "string",
            "required": false,
            "description": "XLSX export URL, defaults to SHEET_URL"
          }
        ],
        "responses": {
          "200": {
            "description": "OK"
          },
          "400": {
            "description": "Missing or invalid sheetUrl"
          },
          "502": {
            "description": "Spreadsheet could not be loaded"
          }
        }
      }
    },
    "/api/dashboard/leads": {
      "get": {
        "tags": [
          "dashboard"
        ],
        "summary": "Filtered leads",
        "parameters": [
          {
            "name": "sheetUrl",
            "in": "query",
            "type": "string",
            "required": false,
            "description": "XLSX export URL, defaults to SHEET_URL"
          },
          {
            "name": "vendedor",
            "in": "query",
            "type": "string",
            "required": false,
            "description": "Exact closer name"
          },
          {
            "name": "campanha",
            "in": "query",
            "type": "string",
            "required": false,
            "description": "Exact campaign name"
          },
          {
            "name": "status",
            "in": "query",
            "type": "string",
            "required": false,
            "description": "Exact status"
          }
        ],
        "responses": {
          "200": {
            "description": "OK"
          },
          "400": {
            "description": "Missing or invalid sheetUrl"
          },
          "502": {
            "description": "Spreadsheet could not be loaded"
          }
        }
      }
    },
    "/api/dashboard/status": {
      "get": {
        "tags": [
          "dashboard"
        ],
        "summary": "Lead count per status",
        "parameters": [
          {
            "name": "sheetUrl",
            "in": "query",
            "type": "string",
            "required": false,
            "description": "XLSX export URL, defaults to SHEET_URL"
          }
        ],
        "responses": {
          "200": {
            "description": "OK"
          },
          "400": {
            "description": "Missing or invalid sheetUrl"
          },
          "502": {
            "description": "Spreadsheet could not be loaded"
          }
        }
      }
    },
    "/api/dashboard/leaderboard": {
      "get": {
        "tags": [
          "ranking"
        ],
        "summary": "Top closers and SDRs",
        "parameters": [
          {
            "name": "sheetUrl",
            "in": "query",
            "type": "string",
            "required": false,
            "description": "XLSX export URL, defaults to SHEET_URL"
          },
          {
            "name": "limit",
            "in": "query",
            "type": "integer",
            "required": false,
            "description": "Entries per role (default 3)"
          }
        ],
        "responses": {
          "200": {
            "description": "OK"
          },
          "400": {
            "description": "Missing or invalid sheetUrl"
          },
          "502": {
            "description": "Spreadsheet could not be loaded"
          }
        }
      }
    },
    "/api/dashboard/cache/status": {
      "get": {
        "tags": [
          "cache"
        ],
        "summary": "Cache status",
        "responses": {
          "200": {
            "description": "OK"
          }
        }
      }
    },
    "/api/dashboard/cache/clear": {
      "post": {
        "tags": [
          "cache"
        ],
        "summary": "Clear cache",
        "parameters": [
          {
            "name": "X-Admin-Key",
            "in": "header",
            "type": "string",
            "required": false
          }
        ],
        "responses": {
          "200": {
            "description": "OK"
          },
          "401": {
            "description": "Invalid admin key"
          }
        }
      }
    },
    "/api/sales-data": {
      "get": {
        "tags": [
          "sales"
        ],
        "summary": "Sales data by period",
        "parameters": [
          {
            "name": "periodType",
            "in": "query",
            "type": "string",
            "required": false,
            "description": "month, week or custom"
          },
          {
            "name": "startDate",
            "in": "query",
            "type": "string",
            "required": false,
            "description": "YYYY-MM-DD"
          },
          {
            "name": "endDate",
            "in": "query",
            "type": "string",
            "required": false,
            "description": "YYYY-MM-DD"
          }
        ],
        "responses": {
          "200": {
            "description": "OK"
          },
          "400": {
            "description": "Invalid query"
          }
        }
      }
    },
    "/api/quips": {
      "get": {
        "tags": [
          "ranking"
        ],
        "summary": "Ranking quips of the day",
        "parameters": [
          {
            "name": "date",
            "in": "query",
            "type": "string",
            "required": false,
            "description": "YYYY-MM-DD, defaults to today"
          }
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        }
      }
    },
    "/metrics": {
      "get": {
        "tags": [
          "health"
        ],
        "summary": "Prometheus metrics",
        "produces": [
          "text/plain"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        }
      }
    }
  }
}`

func init() {
	swag.Register(swag.Name, &s{})
}

type s struct{}

func (s *s) ReadDoc() string {
	return docTemplate
}
