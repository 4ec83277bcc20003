// Command cnotate is the CLI surface over the C-source <-> OpenAPI
// bridge: a thin flag-based dispatcher, per spec.md §6's verb table.
// The library packages do the real work; this command only parses
// argv, reads/writes files, and maps errors to process exit codes.
package main

import (
	"fmt"
	"os"
)

// version is the CLI's own version string, independent of any
// generated OpenAPI document's "openapi" field.
const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()

		return 1
	}

	cmd := args[0]
	rest := args[1:]

	switch cmd {
	case "--version":
		fmt.Println("cnotate", version)

		return 0
	case "--help":
		printUsage()

		return 0
	}

	handler, ok := commands[cmd]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		printUsage()

		return 1
	}

	if err := handler(rest); err != nil {
		code := exitCode(err)
		fmt.Fprintf(os.Stderr, "Error executing '%s': code %d\n", cmd, code)

		return code
	}

	return 0
}

var commands = map[string]func([]string) error{
	"from_openapi": cmdFromOpenAPI,
	"to_openapi":   cmdToOpenAPI,
	"to_docs_json": cmdToDocsJSON,
	"c2openapi":    cmdC2OpenAPI,
	"code2schema":  cmdCode2Schema,
	"audit":        cmdAudit,
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `cnotate: C source <-> OpenAPI bridge

Usage:
  cnotate from_openapi -i <spec.json>
  cnotate to_openapi -f <dir> [-o <out.json>]
  cnotate to_docs_json [--no-imports] [--no-wrapping] -i <spec>
  cnotate c2openapi [--base f] [--self uri] [--dialect uri] <dir> <out>
  cnotate code2schema <header.h> <schema.json>
  cnotate audit <dir>
  cnotate --version
  cnotate --help`)
}
