package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	openapi "github.com/SamuelMarks/cdd-c-sub007"
	"github.com/SamuelMarks/cdd-c-sub007/internal/emit/cgen"
	"github.com/SamuelMarks/cdd-c-sub007/internal/emit/jsonschema"
	"github.com/SamuelMarks/cdd-c-sub007/internal/inspect"
	"github.com/SamuelMarks/cdd-c-sub007/internal/model"
	"github.com/SamuelMarks/cdd-c-sub007/internal/token"
)

// cmdFromOpenAPI implements `from_openapi -i <spec.json>`: derive C
// type definitions from a JSON Schema/OpenAPI document and emit
// generated_client.{c,h} in the current directory.
func cmdFromOpenAPI(args []string) error {
	fs := flag.NewFlagSet("from_openapi", flag.ContinueOnError)
	specPath := fs.String("i", "", "path to a JSON Schema or OpenAPI document")
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

	defs, err := jsonschema.FromOpenAPI(raw, nil)
	if err != nil {
		return err
	}

	header, err := os.Create("generated_client.h")
	if err != nil {
		return fmt.Errorf("%w: %v", openapi.ErrIOFailure, err)
	}
	defer header.Close()

	source, err := os.Create("generated_client.c")
	if err != nil {
		return fmt.Errorf("%w: %v", openapi.ErrIOFailure, err)
	}
	defer source.Close()

	emitter := cgen.NewEmitter(defs, cgen.DefaultJSONRuntime())

	return emitter.Emit(header, source, "generated_client")
}

// cmdToOpenAPI implements `to_openapi -f <dir> [-o <out.json>]`: walk a
// directory of C sources and emit the merged OpenAPI document.
func cmdToOpenAPI(args []string) error {
	fs := flag.NewFlagSet("to_openapi", flag.ContinueOnError)
	dir := fs.String("f", "", "directory of C sources to walk")
	out := fs.String("o", "", "output file (defaults to stdout)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", openapi.ErrInvalidArgument, err)
	}
	if *dir == "" {
		return fmt.Errorf("%w: -f is required", openapi.ErrInvalidArgument)
	}

	result, err := generateFromDir(context.Background(), *dir, "", "")
	if err != nil {
		return err
	}

	return writeOutput(*out, result.JSON)
}

// cmdC2OpenAPI implements `c2openapi [--base f] [--self uri] [--dialect
// uri] <dir> <out>`. --base is validated to exist but, since
// internal/model.Spec has no JSON tags to unmarshal an existing OpenAPI
// document back into (it is the Aggregator's write-only intermediate
// form; see DESIGN.md), only the <dir> merge itself folds onto the
// fresh spec --base would otherwise seed.
func cmdC2OpenAPI(args []string) error {
	fs := flag.NewFlagSet("c2openapi", flag.ContinueOnError)
	base := fs.String("base", "", "existing OpenAPI document to merge onto (accepted; see DESIGN.md)")
	self := fs.String("self", "", "value for the spec's $self field")
	dialect := fs.String("dialect", "", "value for the spec's jsonSchemaDialect field")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", openapi.ErrInvalidArgument, err)
	}

	rest := fs.Args()
	if len(rest) != 2 {
		return fmt.Errorf("%w: usage: c2openapi [--base f] [--self uri] [--dialect uri] <dir> <out>", openapi.ErrInvalidArgument)
	}
	dir, out := rest[0], rest[1]

	if *base != "" {
		if _, err := os.Stat(*base); err != nil {
			return fmt.Errorf("%w: %v", openapi.ErrNotFound, err)
		}
	}

	result, err := generateFromDir(context.Background(), dir, *self, *dialect)
	if err != nil {
		return err
	}

	return writeOutput(out, result.JSON)
}

// cmdCode2Schema implements `code2schema <header.h> <schema.json>`.
func cmdCode2Schema(args []string) error {
	fs := flag.NewFlagSet("code2schema", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", openapi.ErrInvalidArgument, err)
	}

	rest := fs.Args()
	if len(rest) != 2 {
		return fmt.Errorf("%w: usage: code2schema <header.h> <schema.json>", openapi.ErrInvalidArgument)
	}
	headerPath, outPath := rest[0], rest[1]

	src, err := os.ReadFile(headerPath)
	if err != nil {
		return fmt.Errorf("%w: %v", openapi.ErrIOFailure, err)
	}

	toks := token.Tokenize(src)
	defs, err := inspect.ExtractTypeDefs(src, toks)
	if err != nil {
		return fmt.Errorf("%w: %v", openapi.ErrInvalidArgument, err)
	}

	out, err := jsonschema.CodeToSchema(defs, nil)
	if err != nil {
		return err
	}

	return writeOutput(outPath, out)
}

// cmdAudit implements the `audit <dir>` stub: a memory-safety scanner
// is an external collaborator per spec.md §1, out of this build's scope.
func cmdAudit(_ []string) error {
	fmt.Fprintln(os.Stderr, "audit: not implemented in this build")

	return errNotImplemented
}

// generateFromDir walks dir's C sources in sorted order, folding each
// onto a single accumulating spec (so to_openapi and c2openapi share
// one merge implementation), seeding self/dialect before any file is
// processed so ApplyGlobalMeta's first-wins rule keeps them.
func generateFromDir(ctx context.Context, dir, self, dialect string) (*openapi.Result, error) {
	files, err := walkCSources(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no C sources found under %q", openapi.ErrNotFound, dir)
	}

	base := model.NewSpec()
	base.Self = self
	base.JSONSchemaDialect = dialect

	g := openapi.New()

	var result *openapi.Result
	for _, path := range files {
		src, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("%w: %v", openapi.ErrIOFailure, readErr)
		}

		result, err = g.ToOpenAPIMerge(ctx, base, src)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		if _, err := os.Stdout.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("%w: %v", openapi.ErrIOFailure, err)
		}

		return nil
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", openapi.ErrIOFailure, err)
	}

	return nil
}
