// Command rtval-lint validates JSON documents against a YAML shape file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gorunn/rtval"
	"github.com/gorunn/rtval/internal/decode"
	"github.com/gorunn/rtval/internal/shapefile"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "check":
		checkCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "rtval-lint CLI\n\nUsage:\n  rtval-lint check -shape shape.yaml -in document.json [-in doc2.json ...]")
}

type inFlags []string

func (i *inFlags) String() string { return fmt.Sprint([]string(*i)) }
func (i *inFlags) Set(v string) error {
	*i = append(*i, v)
	return nil
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var shapePath string
	var ins inFlags
	fs.StringVar(&shapePath, "shape", "", "path to a YAML shape file")
	fs.Var(&ins, "in", "path to a JSON document to validate (repeatable)")
	_ = fs.Parse(args)
	if shapePath == "" || len(ins) == 0 {
		fs.Usage()
		os.Exit(2)
	}

	validator, err := loadShape(shapePath)
	if err != nil {
		fatalf("%v", err)
	}

	failed := false
	for _, path := range ins {
		if !checkDocument(path, validator) {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func loadShape(path string) (rtval.Validator[any], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading shape file: %w", err)
	}
	node, err := shapefile.Load(data)
	if err != nil {
		return nil, err
	}
	validator, err := shapefile.Build(node)
	if err != nil {
		return nil, fmt.Errorf("building validator from %s: %w", path, err)
	}
	return validator, nil
}

// checkDocument reports every ValidationError for path to stderr and
// returns whether the document passed.
func checkDocument(path string, validator rtval.Validator[any]) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: reading document: %v\n", path, err)
		return false
	}
	doc, err := decode.Document(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return false
	}
	result := rtval.Validate(doc, validator)
	if rtval.IsOk(result) {
		return true
	}
	for _, e := range rtval.FromErr(result) {
		fmt.Fprintf(os.Stderr, "%s: %s\n", path, e.Description)
	}
	return false
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
