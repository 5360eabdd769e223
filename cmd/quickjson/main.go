// Package main provides the quickjson CLI: a thin front end over the
// library's public API, for smoke-testing and quick inspection of JSON
// and JSONC documents from the command line.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/quickjson/quickjson"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "quickjson",
		Short:         "Inspect and re-serialize JSON/JSONC documents",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	var allowComments, allowTrailingComma, optionalComma bool
	registerGrammarFlags := func(fs *pflag.FlagSet) {
		fs.BoolVar(&allowComments, "comments", false, "allow // and /* */ comments")
		fs.BoolVar(&allowTrailingComma, "trailing-comma", false, "allow a single trailing comma")
		fs.BoolVar(&optionalComma, "optional-comma", false, "make commas between members optional (implies trailing-comma)")
	}

	cfgFromFlags := func() quickjson.Config {
		return quickjson.NewConfig().
			WithAllowComments(allowComments).
			WithAllowTrailingComma(allowTrailingComma).
			WithRequireComma(!optionalComma)
	}

	parseCmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a document and report success or the first error",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}
			_, perr := quickjson.Parse(quickjson.FromBytes(data), cfgFromFlags())
			if perr != nil {
				return perr
			}
			fmt.Println("ok")
			return nil
		},
	}
	registerGrammarFlags(parseCmd.Flags())

	getCmd := &cobra.Command{
		Use:   "get <path> [file]",
		Short: "Skip to a dotted/indexed path and print the value as JSON",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := readInput(args[1:])
			if err != nil {
				return err
			}
			path, err := parsePath(args[0])
			if err != nil {
				return err
			}
			v, perr := quickjson.ParseAt(quickjson.FromBytes(data), cfgFromFlags(), path)
			if perr != nil {
				return perr
			}
			return printValue(os.Stdout, v)
		},
	}
	registerGrammarFlags(getCmd.Flags())

	fmtCmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Decode then re-serialize via encoding/json, for smoke-testing",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}
			v, perr := quickjson.Parse(quickjson.FromBytes(data), cfgFromFlags())
			if perr != nil {
				return perr
			}
			return printValue(os.Stdout, v)
		},
	}
	registerGrammarFlags(fmtCmd.Flags())

	rootCmd.AddCommand(parseCmd, getCmd, fmtCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

// parsePath splits a simple dotted/bracketed path like "users[0].name"
// into a quickjson.Path. This is deliberately not a full JSONPath
// implementation, per the library's own Non-goals.
func parsePath(s string) (quickjson.Path, error) {
	var parts []any
	for _, seg := range strings.FieldsFunc(s, func(r rune) bool { return r == '.' || r == '[' }) {
		seg = strings.TrimSuffix(seg, "]")
		if seg == "" {
			continue
		}
		if n, err := strconv.Atoi(seg); err == nil {
			parts = append(parts, n)
		} else {
			parts = append(parts, seg)
		}
	}
	return quickjson.At(parts...), nil
}

// printValue re-serializes v via encoding/json (the library has no
// emitter; see Non-goals), pretty-printing when stdout is a terminal.
func printValue(w io.Writer, v quickjson.Value) error {
	out, err := toAny(v)
	if err != nil {
		return err
	}
	var data []byte
	if term.IsTerminal(int(os.Stdout.Fd())) {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func toAny(v quickjson.Value) (any, error) {
	switch v.Kind() {
	case quickjson.KindNull:
		return nil, nil
	case quickjson.KindBool:
		b, _ := v.AsBool()
		return b, nil
	case quickjson.KindNumber:
		n, _ := v.AsNumber()
		switch n.Kind {
		case quickjson.NumberUnsigned:
			return n.Unsigned, nil
		case quickjson.NumberSigned:
			return n.Signed, nil
		default:
			return n.Float, nil
		}
	case quickjson.KindString:
		s, _ := v.AsString()
		return s, nil
	case quickjson.KindArray:
		arr, _ := v.AsArray()
		out := make([]any, len(arr))
		for i, e := range arr {
			converted, err := toAny(e)
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil
	case quickjson.KindObject:
		obj, _ := v.AsObject()
		out := make(map[string]any, obj.Len())
		for _, p := range obj.Pairs() {
			converted, err := toAny(p.Value)
			if err != nil {
				return nil, err
			}
			out[p.Key] = converted
		}
		return out, nil
	default:
		return nil, fmt.Errorf("quickjson: unknown value kind %v", v.Kind())
	}
}
