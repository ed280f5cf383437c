// Package stats counts served requests per route and status class.
//
// Recording is best effort: a failing store never fails the request.
package stats

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// Event is one served request. Route is the gin route template, never the
// raw path, to keep key cardinality bounded.
type Event struct {
	Method string
	Route  string
	Status int
	At     time.Time
}

type Store interface {
	Record(ctx context.Context, ev Event) error
}

// statusClass folds a status code into "2xx", "4xx"...
func statusClass(status int) string {
	if status < 100 || status > 599 {
		return "other"
	}
	return strconv.Itoa(status/100) + "xx"
}

func routeField(ev Event) string {
	route := strings.TrimSpace(ev.Route)
	if route == "" {
		route = "unmatched"
	}
	return strings.TrimSpace(strings.TrimSpace(ev.Method) + " " + route)
}
