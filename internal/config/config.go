// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads YAML search-definition files into SearchConfigs.
// A file either holds a top-level "searches" list (one config per entry) or
// is itself a single search mapping. Nested filter mappings are flattened to
// dotted-path keys for the OpenAlex filter parameter.
package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/SpectraGen/openalex-scrapping/pkg/types"
)

// Load reads a YAML search-definition file and returns one SearchConfig per
// defined search. Missing keys fall back to the package defaults; searches in
// a "searches" list are named "search_{index}" unless they carry a "name".
func Load(path string) ([]types.SearchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	raw, err := asMapping(doc)
	if err != nil {
		return nil, fmt.Errorf("YAML config must define a mapping at the top level")
	}

	searches, ok := raw["searches"]
	if !ok {
		cfg, err := parseSearch(raw, "default_search")
		if err != nil {
			return nil, err
		}
		return []types.SearchConfig{cfg}, nil
	}

	list, ok := searches.([]any)
	if !ok {
		return nil, fmt.Errorf("'searches' must be a list in the YAML config")
	}

	configs := make([]types.SearchConfig, 0, len(list))
	for idx, entry := range list {
		m, err := asMapping(entry)
		if err != nil {
			return nil, fmt.Errorf("search %d: entries of 'searches' must be mappings", idx)
		}
		cfg, err := parseSearch(m, fmt.Sprintf("search_%d", idx))
		if err != nil {
			return nil, fmt.Errorf("search %d: %w", idx, err)
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

// parseSearch builds a SearchConfig from one search mapping. The recognized
// filter keys (year, from_year, to_year, min_relevance) may appear at the top
// level of the mapping or inside "filters"; top level wins, and the filters
// copy is consumed either way so it never reaches the flattener.
func parseSearch(raw map[string]any, defaultName string) (types.SearchConfig, error) {
	cfg := types.SearchConfig{
		Query:    types.DefaultQuery,
		PerPage:  types.DefaultPerPage,
		MaxPages: types.DefaultMaxPages,
		Name:     defaultName,
	}

	if v, ok := raw["query"]; ok {
		s, ok := v.(string)
		if !ok {
			return cfg, fmt.Errorf("'query' must be a string, got %v", v)
		}
		cfg.Query = s
	}
	if v, ok := raw["name"]; ok {
		s, ok := v.(string)
		if !ok {
			return cfg, fmt.Errorf("'name' must be a string, got %v", v)
		}
		cfg.Name = s
	}

	var err error
	if cfg.PerPage, err = intOr(raw["per_page"], types.DefaultPerPage); err != nil {
		return cfg, fmt.Errorf("'per_page': %w", err)
	}
	if cfg.MaxPages, err = intOr(raw["max_pages"], types.DefaultMaxPages); err != nil {
		return cfg, fmt.Errorf("'max_pages': %w", err)
	}

	filters := map[string]any{}
	if v, ok := raw["filters"]; ok && v != nil {
		if filters, err = asMapping(v); err != nil {
			return cfg, fmt.Errorf("'filters' must be a mapping in the YAML config")
		}
	}

	if cfg.Filters.Year, err = optionalInt(take(raw, filters, "year")); err != nil {
		return cfg, fmt.Errorf("'year': %w", err)
	}
	if cfg.Filters.FromYear, err = optionalInt(take(raw, filters, "from_year")); err != nil {
		return cfg, fmt.Errorf("'from_year': %w", err)
	}
	if cfg.Filters.ToYear, err = optionalInt(take(raw, filters, "to_year")); err != nil {
		return cfg, fmt.Errorf("'to_year': %w", err)
	}
	if cfg.Filters.MinRelevance, err = optionalFloat(take(raw, filters, "min_relevance")); err != nil {
		return cfg, fmt.Errorf("'min_relevance': %w", err)
	}

	extra := map[string]string{}
	if err := flattenFilters(filters, "", extra); err != nil {
		return cfg, err
	}
	if len(extra) > 0 {
		cfg.Filters.Extra = extra
	}
	return cfg, nil
}

// take returns the value for key from the search mapping, falling back to the
// filters section. The filters copy is removed in both cases.
func take(raw, filters map[string]any, key string) any {
	fv, inFilters := filters[key]
	if inFilters {
		delete(filters, key)
	}
	if v, ok := raw[key]; ok {
		return v
	}
	if inFilters {
		return fv
	}
	return nil
}

// flattenFilters walks nested filter mappings and emits dotted-path keys
// (e.g. institutions → id becomes "institutions.id"). Nil values are dropped.
func flattenFilters(m map[string]any, prefix string, out map[string]string) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := m[key]
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case nil:
		case map[string]any:
			if err := flattenFilters(v, full, out); err != nil {
				return err
			}
		case map[any]any:
			nested, err := asMapping(v)
			if err != nil {
				return err
			}
			if err := flattenFilters(nested, full, out); err != nil {
				return err
			}
		default:
			out[full] = filterValue(value)
		}
	}
	return nil
}

// filterValue renders a YAML scalar or list as an OpenAlex filter value.
// Lists become "|"-joined alternatives (the API's OR syntax); booleans are
// lowercased as the API expects.
func filterValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, filterValue(item))
		}
		return strings.Join(parts, "|")
	default:
		return fmt.Sprintf("%v", val)
	}
}

// asMapping converts a decoded YAML mapping to map[string]any, rejecting
// non-string keys.
func asMapping(v any) (map[string]any, error) {
	switch m := v.(type) {
	case map[string]any:
		return m, nil
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("filter keys must be strings, got %v", k)
			}
			out[ks] = val
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected a mapping, got %T", v)
	}
}

func intOr(v any, fallback int) (int, error) {
	if v == nil {
		return fallback, nil
	}
	n, err := toInt(v)
	if err != nil {
		return fallback, err
	}
	return n, nil
}

func optionalInt(v any) (*int, error) {
	if v == nil {
		return nil, nil
	}
	n, err := toInt(v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func optionalFloat(v any) (*float64, error) {
	if v == nil {
		return nil, nil
	}
	f, err := toFloat(v)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		return int(n), nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("expected integer-compatible value, got %q", n)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("expected integer-compatible value, got %v", v)
	}
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("expected float-compatible value, got %q", n)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("expected float-compatible value, got %v", v)
	}
}
