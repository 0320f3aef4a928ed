// pngmeta is a command-line tool for inspecting and editing PNG metadata
// chunks. It loads a file, applies one operation from the pngmeta library,
// and writes the result back — pixel data is never decoded or re-encoded.
//
// Usage:
//
//	pngmeta inspect [--digest alg] file.png
//	pngmeta get file.png keyword
//	pngmeta set [-o out.png] [--compress | --intl] file.png keyword text
//	pngmeta phys [-o out.png] --x N --y N [--unit meter] file.png
//	pngmeta strip [-o out.png] file.png
//	pngmeta repair [-o out.png] file.png
package main

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/pflag"

	"github.com/jpl-au/pngmeta"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "pngmeta: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: pngmeta <inspect|get|set|phys|strip|repair> [flags] <file> [args]")
	}

	switch args[0] {
	case "inspect":
		return inspect(args[1:])
	case "get":
		return get(args[1:])
	case "set":
		return set(args[1:])
	case "phys":
		return phys(args[1:])
	case "strip":
		return strip(args[1:])
	case "repair":
		return repair(args[1:])
	}
	return fmt.Errorf("unknown command %q", args[0])
}

// digestAlg maps a flag value to a fingerprint algorithm constant.
func digestAlg(name string) (int, error) {
	switch name {
	case "":
		return 0, nil
	case "xxh3":
		return pngmeta.AlgXXHash3, nil
	case "fnv1a":
		return pngmeta.AlgFNV1a, nil
	case "blake2b":
		return pngmeta.AlgBlake2b, nil
	}
	return 0, fmt.Errorf("unknown digest algorithm %q", name)
}

func inspect(args []string) error {
	fs := pflag.NewFlagSet("inspect", pflag.ContinueOnError)
	digest := fs.String("digest", "", "per-chunk payload digest: xxh3, fnv1a, blake2b")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: pngmeta inspect [--digest alg] <file>")
	}

	alg, err := digestAlg(*digest)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	rep, err := pngmeta.Inspect(data, alg)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func get(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: pngmeta get <file> <keyword>")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	list, err := pngmeta.Parse(data)
	if err != nil {
		return err
	}
	texts, err := list.Texts()
	if err != nil {
		return err
	}
	text, ok := texts[args[1]]
	if !ok {
		return fmt.Errorf("keyword %q not found", args[1])
	}
	fmt.Println(text)
	return nil
}

func set(args []string) error {
	fs := pflag.NewFlagSet("set", pflag.ContinueOnError)
	out := fs.StringP("output", "o", "", "output file (default: overwrite input)")
	compressed := fs.Bool("compress", false, "store as a compressed zTXt chunk")
	intl := fs.Bool("intl", false, "store as an international iTXt chunk")
	lang := fs.String("lang", "", "language tag for --intl")
	translated := fs.String("translated", "", "translated keyword for --intl")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 3 {
		return fmt.Errorf("usage: pngmeta set [flags] <file> <keyword> <text>")
	}
	path, kw, text := fs.Arg(0), fs.Arg(1), fs.Arg(2)

	var chunk pngmeta.Chunk
	var err error
	switch {
	case *intl:
		chunk, err = pngmeta.EncodeIntlText(pngmeta.IntlText{
			Keyword:    kw,
			Language:   *lang,
			Translated: *translated,
			Text:       text,
			Compressed: *compressed,
		})
	case *compressed:
		chunk, err = pngmeta.EncodeCompressedText(kw, text)
	default:
		chunk, err = pngmeta.EncodeText(kw, text)
	}
	if err != nil {
		return err
	}

	return edit(path, *out, func(list *pngmeta.List) error {
		return list.SetText(chunk)
	})
}

func phys(args []string) error {
	fs := pflag.NewFlagSet("phys", pflag.ContinueOnError)
	out := fs.StringP("output", "o", "", "output file (default: overwrite input)")
	x := fs.Uint32("x", 0, "horizontal pixel density")
	y := fs.Uint32("y", 0, "vertical pixel density")
	unit := fs.String("unit", "unknown", "density unit: unknown, meter")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: pngmeta phys [flags] <file>")
	}

	res := pngmeta.Resolution{X: *x, Y: *y}
	switch *unit {
	case "unknown":
		res.Unit = pngmeta.UnitUnknown
	case "meter":
		res.Unit = pngmeta.UnitMeter
	default:
		return fmt.Errorf("unknown unit %q", *unit)
	}

	return edit(fs.Arg(0), *out, func(list *pngmeta.List) error {
		return list.Set(pngmeta.EncodeResolution(res))
	})
}

func strip(args []string) error {
	fs := pflag.NewFlagSet("strip", pflag.ContinueOnError)
	out := fs.StringP("output", "o", "", "output file (default: overwrite input)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: pngmeta strip [flags] <file>")
	}

	return edit(fs.Arg(0), *out, func(list *pngmeta.List) error {
		list.Remove(pngmeta.TypeText)
		list.Remove(pngmeta.TypeCompressedText)
		list.Remove(pngmeta.TypeIntlText)
		return nil
	})
}

func repair(args []string) error {
	fs := pflag.NewFlagSet("repair", pflag.ContinueOnError)
	out := fs.StringP("output", "o", "", "output file (default: overwrite input)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: pngmeta repair [flags] <file>")
	}
	path := fs.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	fixedData, fixed, err := pngmeta.Repair(data)
	if err != nil {
		return err
	}
	fmt.Printf("repaired %d chunk(s)\n", fixed)

	if *out == "" {
		*out = path
	}
	return os.WriteFile(*out, fixedData, 0o644)
}

// edit loads a file, applies a list mutation, and writes the result.
func edit(path, out string, fn func(*pngmeta.List) error) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	list, err := pngmeta.Parse(data)
	if err != nil {
		return err
	}
	if err := fn(&list); err != nil {
		return err
	}
	if out == "" {
		out = path
	}
	return os.WriteFile(out, list.Encode(), 0o644)
}
