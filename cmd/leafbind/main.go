package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/reoring/leafbind/export"
	"github.com/reoring/leafbind/leaflet"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "export":
		exportCmd(os.Args[2:])
	case "verify":
		verifyCmd()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "leafbind CLI\n\nUsage:\n  leafbind export [-format json|yaml] [-schema] [-o out]\n  leafbind verify\n\nNotes:\n  - export writes the generator hand-off document for the Leaflet surface.\n  - verify assembles the surface and reports registration issues, if any.")
}

func exportCmd(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	var format string
	var schema bool
	var out string
	fs.StringVar(&format, "format", "json", "output format: json or yaml")
	fs.BoolVar(&schema, "schema", false, "write the document's JSON Schema instead of the document")
	fs.StringVar(&out, "o", "", "output filename (default stdout)")
	_ = fs.Parse(args)

	var b []byte
	var err error
	if schema {
		b, err = export.DocumentSchema()
	} else {
		a, aerr := leaflet.Assemble()
		if aerr != nil {
			fatalf("assemble: %v", aerr)
		}
		switch format {
		case "json":
			b, err = export.JSONIndent(a)
		case "yaml":
			b, err = export.YAML(a)
		default:
			fs.Usage()
			os.Exit(2)
		}
	}
	if err != nil {
		fatalf("export: %v", err)
	}

	if out == "" {
		_, _ = os.Stdout.Write(b)
		return
	}
	if err := os.WriteFile(out, b, 0o644); err != nil {
		fatalf("writing output: %v", err)
	}
}

func verifyCmd() {
	if _, err := leaflet.Assemble(); err != nil {
		fatalf("surface has registration issues: %v", err)
	}
	fmt.Println("ok")
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
