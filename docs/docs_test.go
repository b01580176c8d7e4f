package docs_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"testing"

	"smartcity-portal/docs"
	"smartcity-portal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

type document struct {
	Paths       map[string]map[string]json.RawMessage `json:"paths"`
	Definitions map[string]struct {
		Properties map[string]json.RawMessage `json:"properties"`
	} `json:"definitions"`
}

func readDocument(t *testing.T) document {
	t.Helper()
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)
	var doc document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc), "rendered document is not valid JSON")
	return doc
}

func documentedRoutes(doc document) []string {
	var out []string
	for path, ops := range doc.Paths {
		for method := range ops {
			out = append(out, strings.ToUpper(method)+" "+path)
		}
	}
	sort.Strings(out)
	return out
}

func sourceRoutes(t *testing.T, glob string, re *regexp.Regexp, format func([]string) string) []string {
	t.Helper()
	files, err := filepath.Glob(glob)
	require.NoError(t, err)
	require.NotEmpty(t, files)
	var out []string
	for _, f := range files {
		if strings.HasSuffix(f, "_test.go") {
			continue
		}
		src, err := os.ReadFile(f)
		require.NoError(t, err)
		for _, m := range re.FindAllStringSubmatch(string(src), -1) {
			if route := format(m); route != "" {
				out = append(out, route)
			}
		}
	}
	sort.Strings(out)
	return out
}

func TestDocument_MatchesRouter(t *testing.T) {
	doc := readDocument(t)

	mux := regexp.MustCompile(`mux\.Handle(?:Func)?\("([A-Z]+) (/[^"]*)"`)
	routes := sourceRoutes(t, filepath.Join("..", "router", "*.go"), mux, func(m []string) string {
		// Operational endpoints are not part of the API document.
		if m[2] == "/metrics" || m[2] == "/swagger/" {
			return ""
		}
		return m[1] + " " + m[2]
	})

	assert.Equal(t, routes, documentedRoutes(doc))
}

func TestDocument_MatchesHandlerAnnotations(t *testing.T) {
	doc := readDocument(t)

	annotation := regexp.MustCompile(`@Router\s+(/\S+)\s+\[(\w+)\]`)
	routes := sourceRoutes(t, filepath.Join("..", "handler", "*.go"), annotation, func(m []string) string {
		return strings.ToUpper(m[2]) + " " + m[1]
	})

	assert.Equal(t, routes, documentedRoutes(doc))
}

func jsonNames(v interface{}) []string {
	var out []string
	typ := reflect.TypeOf(v)
	for i := 0; i < typ.NumField(); i++ {
		name := strings.SplitN(typ.Field(i).Tag.Get("json"), ",", 2)[0]
		if name != "" && name != "-" {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func TestDocument_DefinitionsMatchModels(t *testing.T) {
	doc := readDocument(t)

	models := map[string]interface{}{
		"model.SignupRequest": model.SignupRequest{},
		"model.Registration":  model.Registration{},
		"model.LoginRequest":  model.LoginRequest{},
	}
	for name, v := range models {
		t.Run(name, func(t *testing.T) {
			def, ok := doc.Definitions[name]
			require.True(t, ok, "definition %s missing", name)
			var props []string
			for p := range def.Properties {
				props = append(props, p)
			}
			sort.Strings(props)
			assert.Equal(t, jsonNames(v), props)
		})
	}
}
