package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	openapi "github.com/SamuelMarks/cdd-c-sub007"
	"github.com/SamuelMarks/cdd-c-sub007/internal/model"
)

// cmdToDocsJSON implements `to_docs_json [--no-imports] [--no-wrapping]
// -i <spec>`: read an already-emitted OpenAPI document and print its
// per-operation example snippet catalog to stdout.
func cmdToDocsJSON(args []string) error {
	fs := flag.NewFlagSet("to_docs_json", flag.ContinueOnError)
	specPath := fs.String("i", "", "path to an OpenAPI document")
	noImports := fs.Bool("no-imports", false, "omit operationId/summary from each catalog entry")
	noWrapping := fs.Bool("no-wrapping", false, "emit raw example values instead of fenced-code snippets")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", openapi.ErrInvalidArgument, err)
	}
	if *specPath == "" {
		return fmt.Errorf("%w: -i is required", openapi.ErrInvalidArgument)
	}

	raw, err := os.ReadFile(*specPath)
	if err != nil {
		return fmt.Errorf("%w: %v", openapi.ErrIOFailure, err)
	}

	spec, err := specForDocsCatalog(raw)
	if err != nil {
		return err
	}

	g := openapi.New()
	out, err := g.ToDocsJSON(spec, nil, *noImports, *noWrapping)
	if err != nil {
		return err
	}

	fmt.Println(string(out))

	return nil
}

// jsonMediaType and jsonOperation/jsonDoc mirror only the subset of an
// OpenAPI document's JSON shape that Generator.ToDocsJSON's
// example-catalog walk reads: operationId, summary, and each content
// entry's examples. This is not a general OpenAPI-JSON importer —
// model.Spec has no JSON tags (it is the Aggregator's write-only
// intermediate form, marshaled out through internal/export's view
// adapters, never unmarshaled back in) so a full importer is out of
// scope; see DESIGN.md.
type jsonMediaType struct {
	Examples map[string]struct {
		Summary       string `json:"summary"`
		Description   string `json:"description"`
		Value         any    `json:"value"`
		ExternalValue string `json:"externalValue"`
	} `json:"examples"`
}

type jsonOperation struct {
	OperationID string `json:"operationId"`
	Summary     string `json:"summary"`
	RequestBody *struct {
		Content map[string]jsonMediaType `json:"content"`
	} `json:"requestBody"`
	Responses map[string]struct {
		Content map[string]jsonMediaType `json:"content"`
	} `json:"responses"`
}

type jsonDoc struct {
	Paths map[string]map[string]jsonOperation `json:"paths"`
}

func specForDocsCatalog(raw []byte) (*model.Spec, error) {
	var doc jsonDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", openapi.ErrInvalidArgument, err)
	}

	spec := model.NewSpec()
	for route, methods := range doc.Paths {
		for method, jop := range methods {
			op := &model.Operation{
				Method:      strings.ToUpper(method),
				OperationID: jop.OperationID,
				Summary:     jop.Summary,
				Responses:   make(map[string]*model.Response),
			}
			if jop.RequestBody != nil {
				op.RequestBody = &model.RequestBody{Content: toMediaTypes(jop.RequestBody.Content)}
			}
			for status, r := range jop.Responses {
				op.Responses[status] = &model.Response{Content: toMediaTypes(r.Content)}
			}
			if err := model.AddOperation(spec, route, op); err != nil {
				return nil, err
			}
		}
	}

	return spec, nil
}

func toMediaTypes(in map[string]jsonMediaType) map[string]*model.MediaType {
	if len(in) == 0 {
		return nil
	}

	out := make(map[string]*model.MediaType, len(in))
	for ct, mt := range in {
		m := &model.MediaType{}
		if len(mt.Examples) > 0 {
			m.Examples = make(map[string]model.Example, len(mt.Examples))
			for name, ex := range mt.Examples {
				m.Examples[name] = model.Example{
					Summary:       ex.Summary,
					Description:   ex.Description,
					Value:         ex.Value,
					ExternalValue: ex.ExternalValue,
				}
			}
		}
		out[ct] = m
	}

	return out
}
