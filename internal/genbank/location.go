package genbank

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	rangeRegex   = regexp.MustCompile(`^<?(\d+)\.\.>?(\d+)$`)
	betweenRegex = regexp.MustCompile(`^(\d+)\^(\d+)$`)
	singleRegex  = regexp.MustCompile(`^<?(\d+)>?$`)
)

// parseLocation parses a feature location string, ex:
//
//	"100..200", "complement(<1..>69)", "join(1..10,20..30)", "12^13"
func parseLocation(loc string) (Location, error) {
	loc = strings.TrimSpace(loc)
	if loc == "" {
		return Location{}, fmt.Errorf("empty location")
	}

	if inner, ok := unwrap(loc, "complement"); ok {
		l, err := parseLocation(inner)
		if err != nil {
			return Location{}, err
		}
		l.Strand = flip(l.Strand)
		return l, nil
	}

	for _, op := range []string{"join", "order"} {
		if inner, ok := unwrap(loc, op); ok {
			return parseCompound(inner)
		}
	}

	if m := rangeRegex.FindStringSubmatch(loc); m != nil {
		start, _ := strconv.Atoi(m[1])
		end, _ := strconv.Atoi(m[2])
		if start < 1 || end < start {
			return Location{}, fmt.Errorf("invalid range %s", loc)
		}
		return Location{Start: start - 1, End: end, Strand: Forward}, nil
	}

	if m := betweenRegex.FindStringSubmatch(loc); m != nil {
		pos, _ := strconv.Atoi(m[1])
		return Location{Start: pos, End: pos, Strand: Forward}, nil
	}

	if m := singleRegex.FindStringSubmatch(loc); m != nil {
		pos, _ := strconv.Atoi(m[1])
		if pos < 1 {
			return Location{}, fmt.Errorf("invalid position %s", loc)
		}
		return Location{Start: pos - 1, End: pos, Strand: Forward}, nil
	}

	return Location{}, fmt.Errorf("unsupported location %s", loc)
}

// parseCompound parses the comma separated parts of a join or order
func parseCompound(inner string) (Location, error) {
	parts := splitTopLevel(inner)
	if len(parts) == 0 {
		return Location{}, fmt.Errorf("empty compound location")
	}

	var out Location
	for i, part := range parts {
		l, err := parseLocation(part)
		if err != nil {
			return Location{}, err
		}
		if i == 0 {
			out = l
			continue
		}
		if l.Start < out.Start {
			out.Start = l.Start
		}
		if l.End > out.End {
			out.End = l.End
		}
		if l.Strand != out.Strand {
			out.Strand = Unknown
		}
	}
	return out, nil
}

// unwrap returns the contents of "op(...)" if loc is wrapped in op
func unwrap(loc, op string) (string, bool) {
	if !strings.HasPrefix(loc, op+"(") || !strings.HasSuffix(loc, ")") {
		return "", false
	}
	return loc[len(op)+1 : len(loc)-1], true
}

// splitTopLevel splits on commas that aren't nested in parentheses
func splitTopLevel(s string) (parts []string) {
	depth, last := 0, 0
	for i, c := range s {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[last:i])
				last = i + 1
			}
		}
	}
	if last < len(s) {
		parts = append(parts, s[last:])
	}
	return
}

func flip(s Strand) Strand {
	switch s {
	case Forward:
		return Reverse
	case Reverse:
		return Forward
	}
	return Unknown
}
