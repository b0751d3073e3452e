// Package flagx lets several config loaders share os.Args without tripping
// over each other's flags.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs keeps only the flags named in valued (flags that take a value)
// and boolean (switches), dropping everything else from args.
//
// Accepted spellings:
//
//	-name value   --name value
//	-name=value   --name=value
//	-switch       --switch=true
//
// Names are matched without leading dashes, so "-a" and "--a" are the same
// flag. A valued flag swallows the following argument only when it does not
// itself start with '-'.
func FilterArgs(args []string, valued []string, boolean []string) []string {
	takesValue := make(map[string]bool, len(valued)+len(boolean))
	for _, f := range valued {
		takesValue[trimDashes(f)] = true
	}
	for _, f := range boolean {
		takesValue[trimDashes(f)] = false
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		name, _, hasValue := strings.Cut(trimDashes(arg), "=")
		withValue, known := takesValue[name]
		if !known {
			continue
		}

		filtered = append(filtered, arg)
		if hasValue || !withValue {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

func trimDashes(s string) string {
	return strings.TrimLeft(s, "-")
}

// ConfigFile returns the path passed via -c or -config in args, or "" when
// neither is present. Other arguments are ignored.
func ConfigFile(args []string) string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"c", "config"}, nil))

	return path
}
