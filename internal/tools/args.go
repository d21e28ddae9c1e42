package tools

import (
	"fmt"
	"math"

	"newsmcp/internal/news"
)

// fetchArgs is the validated argument set for fetch_news.
type fetchArgs struct {
	Category string
	Limit    int
	DaysBack int
}

// searchArgs is the validated argument set for search_news.
type searchArgs struct {
	Query string
	Limit int
}

// parseFetchArgs applies defaults and rejects unknown or mistyped fields.
func parseFetchArgs(raw map[string]any) (fetchArgs, error) {
	args := fetchArgs{Limit: news.DefaultLimit, DaysBack: 7}
	for key, val := range raw {
		var err error
		switch key {
		case "category":
			args.Category, err = stringArg(key, val)
		case "limit":
			args.Limit, err = intArg(key, val)
		case "days_back":
			args.DaysBack, err = intArg(key, val)
		default:
			err = unexpectedArg(key)
		}
		if err != nil {
			return fetchArgs{}, err
		}
	}
	return args, nil
}

func parseSearchArgs(raw map[string]any) (searchArgs, error) {
	args := searchArgs{Limit: news.DefaultLimit}
	seen := false
	for key, val := range raw {
		var err error
		switch key {
		case "query":
			args.Query, err = stringArg(key, val)
			seen = true
		case "limit":
			args.Limit, err = intArg(key, val)
		default:
			err = unexpectedArg(key)
		}
		if err != nil {
			return searchArgs{}, err
		}
	}
	if !seen {
		return searchArgs{}, &news.ArgumentError{Reason: "query is required"}
	}
	return args, nil
}

// parseEmptyArgs rejects any argument; used by tools that take none.
func parseEmptyArgs(raw map[string]any) error {
	for key := range raw {
		return unexpectedArg(key)
	}
	return nil
}

func stringArg(key string, val any) (string, error) {
	s, ok := val.(string)
	if !ok {
		return "", &news.ArgumentError{Reason: fmt.Sprintf("%s must be a string", key)}
	}
	return s, nil
}

// intArg accepts the integer encodings JSON decoding can produce. A
// fractional number is a type error, not a value to round.
func intArg(key string, val any) (int, error) {
	switch n := val.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, &news.ArgumentError{Reason: fmt.Sprintf("%s must be an integer", key)}
		}
		return int(n), nil
	default:
		return 0, &news.ArgumentError{Reason: fmt.Sprintf("%s must be an integer", key)}
	}
}

func unexpectedArg(key string) error {
	return &news.ArgumentError{Reason: fmt.Sprintf("unexpected argument %q", key)}
}
