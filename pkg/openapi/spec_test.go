package openapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/agent-hub/pkg/openapi"
)

func TestNewSpec(t *testing.T) {
	spec := openapi.NewSpec("Agent Hub API", "1.0.0")
	spec.SetDescription("agents")
	spec.AddServer("")
	spec.AddServer("http://localhost:5000")

	if spec.OpenAPI != "3.1.0" {
		t.Errorf("OpenAPI = %q", spec.OpenAPI)
	}
	if spec.Info.Title != "Agent Hub API" || spec.Info.Version != "1.0.0" || spec.Info.Description != "agents" {
		t.Errorf("Info = %+v", spec.Info)
	}
	if len(spec.Servers) != 1 {
		t.Errorf("Servers = %d, want 1", len(spec.Servers))
	}
	if _, ok := spec.Components.Schemas["Error"]; !ok {
		t.Error("missing shared Error schema")
	}
}

func TestAddOperation(t *testing.T) {
	spec := openapi.NewSpec("t", "v")
	get := &openapi.Operation{Summary: "list"}
	post := &openapi.Operation{Summary: "start"}

	spec.AddOperation("/agents", "get", get)
	spec.AddOperation("/agents", http.MethodPost, post)
	spec.AddOperation("/agents", http.MethodPatch, &openapi.Operation{})

	item := spec.Paths["/agents"]
	if item == nil {
		t.Fatal("path not registered")
	}
	if item.Get != get || item.Post != post {
		t.Errorf("PathItem = %+v", item)
	}
	if item.Put != nil || item.Delete != nil {
		t.Error("unsupported method should be ignored")
	}
}

func TestComponents_AddSchemas(t *testing.T) {
	c := openapi.NewComponents()
	c.AddSchemas(map[string]*openapi.Schema{
		"Agent": {Type: "object"},
		"Error": {Type: "string"},
	})

	if c.Schemas["Agent"] == nil {
		t.Error("Agent schema not added")
	}
	if c.Schemas["Error"].Type != "string" {
		t.Error("existing schema should be replaced")
	}
}

func TestServeSpec(t *testing.T) {
	spec := openapi.NewSpec("Agent Hub API", "1.0.0")
	spec.AddOperation("/available_agents", http.MethodGet, &openapi.Operation{
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSONArray("Agents", "Agent"),
		},
	})

	body, err := openapi.MarshalJSON(spec)
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}

	rec := httptest.NewRecorder()
	openapi.ServeSpec(body)(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}

	var decoded struct {
		Paths map[string]struct {
			Get struct {
				Responses map[string]struct {
					Content map[string]struct {
						Schema struct {
							Type  string `json:"type"`
							Items struct {
								Ref string `json:"$ref"`
							} `json:"items"`
						} `json:"schema"`
					} `json:"content"`
				} `json:"responses"`
			} `json:"get"`
		} `json:"paths"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}

	schema := decoded.Paths["/available_agents"].Get.Responses["200"].Content["application/json"].Schema
	if schema.Type != "array" || schema.Items.Ref != "#/components/schemas/Agent" {
		t.Errorf("schema = %+v", schema)
	}
}

func TestConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_OPENAPI_TITLE", "Custom")

	cfg := &openapi.Config{}
	if err := cfg.Finalize(&openapi.ConfigEnv{Title: "TEST_OPENAPI_TITLE"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Title != "Custom" {
		t.Errorf("Title = %q, want Custom", cfg.Title)
	}
	if cfg.Description == "" {
		t.Error("Description should default")
	}
}
