// Package script parses and runs the small cache-operation language the
// cachectl subcommands accept as positional arguments.
package script

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Inexplicable-YL/LRU-TTLCache/pkg/cache"
)

// Op is a single cache operation parsed from a CLI argument.
type Op struct {
	Name  string
	Key   string
	Value string
	Dur   time.Duration
}

// Parse parses one argument. The accepted forms are:
//
//	set:key=value   getd:key=default   get:key   del:key   has:key
//	len   keys   sleep:duration
func Parse(arg string) (Op, error) {
	name, rest, cut := strings.Cut(arg, ":")
	switch name {
	case "len", "keys":
		if cut {
			return Op{}, fmt.Errorf("op %q takes no argument", name)
		}
		return Op{Name: name}, nil
	case "get", "del", "has":
		if rest == "" {
			return Op{}, fmt.Errorf("op %q needs a key, e.g. %s:mykey", name, name)
		}
		return Op{Name: name, Key: rest}, nil
	case "set", "getd":
		key, value, ok := strings.Cut(rest, "=")
		if !ok || key == "" {
			return Op{}, fmt.Errorf("op %q needs key=value, e.g. %s:mykey=1", name, name)
		}
		return Op{Name: name, Key: key, Value: value}, nil
	case "sleep":
		d, err := time.ParseDuration(rest)
		if err != nil {
			return Op{}, fmt.Errorf("op sleep needs a duration, e.g. sleep:100ms: %v", err)
		}
		return Op{Name: name, Dur: d}, nil
	default:
		return Op{}, fmt.Errorf("unknown op %q", name)
	}
}

// ParseAll parses every argument, failing on the first bad one.
func ParseAll(args []string) ([]Op, error) {
	ops := make([]Op, 0, len(args))
	for _, arg := range args {
		op, err := Parse(arg)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// Run applies ops in order against c, printing each outcome to out, and
// finishes with the cache's debug rendering.
func Run(out io.Writer, c cache.Cache[string, string], ops []Op) error {
	for _, op := range ops {
		switch op.Name {
		case "set":
			c.Set(op.Key, op.Value)
			fmt.Fprintf(out, "set %s=%s\n", op.Key, op.Value)
		case "get":
			value, err := c.Get(op.Key)
			if errors.Is(err, cache.ErrNotFound) {
				fmt.Fprintf(out, "get %s: not found\n", op.Key)
			} else if err != nil {
				return err
			} else {
				fmt.Fprintf(out, "get %s: %s\n", op.Key, value)
			}
		case "getd":
			fmt.Fprintf(out, "getd %s: %s\n", op.Key, c.GetOrDefault(op.Key, op.Value))
		case "del":
			if err := c.Delete(op.Key); errors.Is(err, cache.ErrNotFound) {
				fmt.Fprintf(out, "del %s: not found\n", op.Key)
			} else if err != nil {
				return err
			} else {
				fmt.Fprintf(out, "del %s\n", op.Key)
			}
		case "has":
			fmt.Fprintf(out, "has %s: %t\n", op.Key, c.Contains(op.Key))
		case "len":
			fmt.Fprintf(out, "len: %d\n", c.Len())
		case "keys":
			fmt.Fprintf(out, "keys: %v\n", c.Keys())
		case "sleep":
			time.Sleep(op.Dur)
			fmt.Fprintf(out, "slept %v\n", op.Dur)
		}
	}
	fmt.Fprintln(out, c)
	return nil
}
