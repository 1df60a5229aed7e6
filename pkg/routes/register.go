package routes

import (
	"net/http"

	"github.com/JaimeStill/agent-hub/pkg/openapi"
)

// Register mounts every route of groups on mux. Routes carrying OpenAPI
// operations are added to spec when spec is non-nil; operations without tags
// inherit the tags of their group.
func Register(mux *http.ServeMux, spec *openapi.Spec, groups ...Group) {
	for _, g := range groups {
		registerGroup(mux, spec, "", g)
	}
}

func registerGroup(mux *http.ServeMux, spec *openapi.Spec, parentPrefix string, group Group) {
	prefix := parentPrefix + group.Prefix

	for _, route := range group.Routes {
		path := prefix + route.Pattern
		mux.HandleFunc(route.Method+" "+path, route.Handler)

		if spec == nil || route.OpenAPI == nil {
			continue
		}

		op := *route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = group.Tags
		}
		spec.AddOperation(path, route.Method, &op)
	}

	for _, child := range group.Children {
		registerGroup(mux, spec, prefix, child)
	}
}
