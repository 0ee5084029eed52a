package cli

import (
	"context"
	"strings"

	"github.com/idilsaglam/pagedlist/internal/auth"
	"github.com/idilsaglam/pagedlist/internal/config"
	"github.com/idilsaglam/pagedlist/internal/render"
	"github.com/idilsaglam/pagedlist/internal/route"
	"github.com/idilsaglam/pagedlist/internal/store"
	"github.com/idilsaglam/pagedlist/internal/store/httpstore"
	"github.com/idilsaglam/pagedlist/internal/store/jsonstore"
	"github.com/idilsaglam/pagedlist/internal/store/sqlitestore"
	"github.com/idilsaglam/pagedlist/internal/surface"
)

const sqliteFileName = "memos.db"

// openSource builds the configured memo source. The returned close func is
// never nil.
func openSource(ctx context.Context, cfg *config.Config) (store.Source, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Source {
	case "", "json":
		path := cfg.Data
		if path == "" {
			p, err := jsonstore.DefaultPath()
			if err != nil {
				return nil, nil, err
			}
			path = p
		}
		return jsonstore.NewSource(path), noop, nil

	case "sqlite":
		path := cfg.Data
		if path == "" {
			path = sqliteFileName
		}
		s, err := sqlitestore.Open(ctx, path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil

	case "http":
		if cfg.API.URL == "" {
			return nil, nil, usagef("the http source needs --%s or api.url", FlagAPIURL)
		}
		c := httpstore.New(cfg.API.URL,
			httpstore.WithToken(auth.Token),
			httpstore.WithTimeout(cfg.API.Timeout),
		)
		return c, noop, nil
	}
	return nil, nil, usagef("unknown source %q (want json, sqlite or http)", cfg.Source)
}

// effectiveFilter narrows the configured filter by what the route implies.
func effectiveFilter(l *config.List) string {
	terms := []string{route.Filter(l.Route), l.Filter}
	var out []string
	for _, t := range terms {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, " ")
}

// surfaceOptions maps configuration onto the list surface.
func surfaceOptions(cfg *config.Config) (surface.Options, error) {
	renderer, err := render.ByName(cfg.List.Renderer, cfg.UI.Markdown)
	if err != nil {
		return surface.Options{}, usagef("%v", err)
	}
	sortFn, err := render.SortByName(cfg.List.Sort)
	if err != nil {
		return surface.Options{}, usagef("%v", err)
	}
	return surface.Options{
		Filter:            effectiveFilter(cfg.List),
		PageSize:          cfg.List.PageSize,
		Renderer:          renderer,
		ListSort:          sortFn,
		Route:             cfg.List.Route,
		Title:             title(cfg),
		MaxWidth:          cfg.UI.MaxWidth,
		GestureBreakpoint: cfg.Gesture.Breakpoint,
		PullThreshold:     cfg.Gesture.Threshold,
	}, nil
}

func title(cfg *config.Config) string {
	switch r := cfg.List.Route; {
	case r == route.Explore:
		return "Explore"
	case r == route.Archived:
		return "Archived"
	default:
		if name, ok := route.User(r); ok {
			return "@" + name
		}
	}
	return "Memos"
}
