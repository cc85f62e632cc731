/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package params_test

import (
	"errors"
	"testing"

	"github.com/2948841010/BUILD-MY-AGENT/agents/toolcall/params"
)

func TestExtract(t *testing.T) {
	args := map[string]any{
		"full_name":   "golang/go",
		"max_results": float64(5),
		"archived":    false,
		"stars":       float64(130000),
		"empty":       "",
		"zero":        float64(0),
	}

	t.Run("string", func(t *testing.T) {
		v, err := params.Extract[string](args, "full_name")
		if err != nil {
			t.Fatal(err)
		}
		if v != "golang/go" {
			t.Errorf("got %q, want %q", v, "golang/go")
		}
	})

	t.Run("empty string", func(t *testing.T) {
		v, err := params.Extract[string](args, "empty")
		if err != nil {
			t.Fatal(err)
		}
		if v != "" {
			t.Errorf("got %q, want empty string", v)
		}
	})

	t.Run("int from float64", func(t *testing.T) {
		v, err := params.Extract[int](args, "max_results")
		if err != nil {
			t.Fatal(err)
		}
		if v != 5 {
			t.Errorf("got %d, want 5", v)
		}
	})

	t.Run("int64 from float64", func(t *testing.T) {
		v, err := params.Extract[int64](args, "stars")
		if err != nil {
			t.Fatal(err)
		}
		if v != 130000 {
			t.Errorf("got %d, want 130000", v)
		}
	})

	t.Run("float64", func(t *testing.T) {
		v, err := params.Extract[float64](args, "max_results")
		if err != nil {
			t.Fatal(err)
		}
		if v != 5 {
			t.Errorf("got %f, want 5", v)
		}
	})

	t.Run("bool", func(t *testing.T) {
		v, err := params.Extract[bool](args, "archived")
		if err != nil {
			t.Fatal(err)
		}
		if v {
			t.Error("got true, want false")
		}
	})

	t.Run("zero int", func(t *testing.T) {
		v, err := params.Extract[int](args, "zero")
		if err != nil {
			t.Fatal(err)
		}
		if v != 0 {
			t.Errorf("got %d, want 0", v)
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, err := params.Extract[string](args, "missing")
		if err == nil {
			t.Fatal("expected error for missing parameter")
		}
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := params.Extract[bool](args, "full_name")
		if err == nil {
			t.Fatal("expected error for wrong type")
		}
	})
}

func TestExtractOptional(t *testing.T) {
	args := map[string]any{
		"sort":        "stars",
		"max_results": float64(10),
	}

	t.Run("present", func(t *testing.T) {
		v, err := params.ExtractOptional(args, "sort", "updated")
		if err != nil {
			t.Fatal(err)
		}
		if v != "stars" {
			t.Errorf("got %q, want %q", v, "stars")
		}
	})

	t.Run("missing uses default", func(t *testing.T) {
		v, err := params.ExtractOptional(args, "search_mode", "simple")
		if err != nil {
			t.Fatal(err)
		}
		if v != "simple" {
			t.Errorf("got %q, want %q", v, "simple")
		}
	})

	t.Run("int conversion", func(t *testing.T) {
		v, err := params.ExtractOptional(args, "max_results", 5)
		if err != nil {
			t.Fatal(err)
		}
		if v != 10 {
			t.Errorf("got %d, want 10", v)
		}
	})

	t.Run("type mismatch", func(t *testing.T) {
		_, err := params.ExtractOptional(args, "sort", 0)
		if err == nil {
			t.Fatal("expected error for type mismatch")
		}
	})
}

func TestError(t *testing.T) {
	result := params.Error("bad %s", "query")
	if result["error"] != "bad query" {
		t.Errorf("got %q, want %q", result["error"], "bad query")
	}
}

func TestErrorWithContext(t *testing.T) {
	result := params.ErrorWithContext(errors.New("not found"), map[string]any{"full_name": "golang/go"})
	if result["error"] != "not found" {
		t.Errorf("got %q, want %q", result["error"], "not found")
	}
	if result["full_name"] != "golang/go" {
		t.Errorf("got %q, want %q", result["full_name"], "golang/go")
	}
}

func TestErrorWithContext_NilContext(t *testing.T) {
	result := params.ErrorWithContext(errors.New("not found"), nil)
	if result["error"] != "not found" {
		t.Errorf("got %q, want %q", result["error"], "not found")
	}
}
