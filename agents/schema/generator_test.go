/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package schema_test

import (
	"testing"

	"github.com/2948841010/BUILD-MY-AGENT/agents/schema"
)

func TestReflect(t *testing.T) {
	type repoFinding struct {
		FullName string `json:"full_name" jsonschema:"description=Repository full name,required"`
		Stars    int    `json:"stars,omitempty"`
	}
	type sample struct {
		Summary  string        `json:"summary" jsonschema:"description=Search summary,required"`
		Findings []repoFinding `json:"findings,omitempty" jsonschema:"description=Repositories discovered"`
	}

	s := schema.Reflect(&sample{})
	if s == nil {
		t.Fatal("expected schema")
	}

	if len(s.Required) != 1 || s.Required[0] != "summary" {
		t.Fatalf("unexpected required: %#v", s.Required)
	}

	props := s.Properties
	if props == nil {
		t.Fatal("expected properties")
	}

	summary, ok := props.Get("summary")
	if !ok {
		t.Fatal("missing summary property")
	}
	if summary.Description != "Search summary" {
		t.Fatalf("unexpected description: %q", summary.Description)
	}

	findings, ok := props.Get("findings")
	if !ok {
		t.Fatal("missing findings property")
	}
	if findings.Type != "array" {
		t.Fatalf("findings type: got %q, want array", findings.Type)
	}
	if findings.Items.Type != "object" {
		t.Fatal("findings should contain objects")
	}
	fullName, ok := findings.Items.Properties.Get("full_name")
	if !ok {
		t.Fatal("missing full_name property")
	}
	if fullName.Description != "Repository full name" {
		t.Fatalf("unexpected nested description: %q", fullName.Description)
	}
}

func TestReflectType(t *testing.T) {
	type plan struct {
		Strategy string `json:"strategy" jsonschema:"description=Search strategy,required"`
	}

	s := schema.ReflectType[plan]()
	if s == nil {
		t.Fatal("expected schema")
	}
	if s.Type != "object" {
		t.Errorf("expected object type, got %s", s.Type)
	}
	if _, ok := s.Properties.Get("strategy"); !ok {
		t.Error("missing strategy property")
	}
}
