package criterion

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type factory func(arg string) (Criterion, error)

var registry = map[string]factory{
	"end-reached": func(arg string) (Criterion, error) {
		if arg != "" {
			return nil, fmt.Errorf("%w: end-reached takes no argument", ErrInvalidParameter)
		}
		return EndReached{}, nil
	},
	"max-actions":         intArg(func(n int) (Criterion, error) { return NewMaxActions(n) }),
	"episodes":            intArg(func(n int) (Criterion, error) { return NewEpisodes(n) }),
	"consecutive-optimal": intArg(NewConsecutiveOptimal),
	"consecutive-success": intArg(NewConsecutiveSuccess),
	"expr": func(arg string) (Criterion, error) {
		return NewExpr(arg)
	},
}

func intArg(build func(int) (Criterion, error)) factory {
	return func(arg string) (Criterion, error) {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidParameter, arg)
		}
		return build(n)
	}
}

// Names lists the registered criterion names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Parse builds a criterion from "name" or "name:argument". Only the first
// colon separates, so expressions may contain colons and commas.
//
//	end-reached
//	max-actions:200
//	episodes:50
//	consecutive-optimal:5
//	consecutive-success:10
//	expr:actions > 3 * optimal_length
//
// The label of a parsed criterion reproduces its spec.
func Parse(spec string) (Criterion, error) {
	name, arg, _ := strings.Cut(strings.TrimSpace(spec), ":")
	f, ok := registry[strings.TrimSpace(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCriterion, name)
	}
	return f(strings.TrimSpace(arg))
}

// ParseList parses each spec in order.
func ParseList(specs []string) ([]Criterion, error) {
	out := make([]Criterion, 0, len(specs))
	for _, s := range specs {
		c, err := Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
