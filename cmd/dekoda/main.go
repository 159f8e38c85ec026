package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/reoring/dekoda/codec"
	"github.com/reoring/dekoda/jsonv"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "check":
		checkCmd(os.Args[2:])
	case "convert":
		convertCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "dekoda CLI\n\nUsage:\n  dekoda check [-yaml] file\n  dekoda convert -to {json|cbor|msgpack} [-yaml] [-indent] file")
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	fromYAML := fs.Bool("yaml", false, "read the input as YAML instead of JSON")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	v, err := load(fs.Arg(0), *fromYAML)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Printf("ok: %s document (%s)\n", v.Kind(), fs.Arg(0))
}

func convertCmd(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	to := fs.String("to", "json", "target codec: json, cbor or msgpack")
	fromYAML := fs.Bool("yaml", false, "read the input as YAML instead of JSON")
	indent := fs.Bool("indent", false, "indent JSON output")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	v, err := load(fs.Arg(0), *fromYAML)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if *to == "json" && *indent {
		out, serr := v.Stringify("  ")
		if serr != nil {
			fmt.Fprintln(os.Stderr, "error:", serr)
			os.Exit(1)
		}
		fmt.Println(out)
		return
	}
	c, ok := codec.ByName(*to)
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown codec %q\n", *to)
		os.Exit(2)
	}
	out, err := c.Marshal(v)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func load(path string, fromYAML bool) (jsonv.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return jsonv.Value{}, err
	}
	if fromYAML {
		return jsonv.ParseYAML(data)
	}
	return jsonv.Parse(data)
}
