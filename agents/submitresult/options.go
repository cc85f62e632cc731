/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package submitresult wires a submit_result tool into agent executors.
// The tool lets the model return its final answer as a structured payload
// validated against the JSON schema of the Go response type, instead of
// relying on fenced JSON in free text.
package submitresult

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/2948841010/BUILD-MY-AGENT/agents/schema"
	"github.com/invopop/jsonschema"
)

// Options configures the submit_result tool wiring.
type Options[Response any] struct {
	ToolName           string
	Description        string
	SuccessMessage     string
	PayloadFieldName   string
	PayloadDescription string
	Generator          *schema.Generator
}

func (o *Options[Response]) setDefaults() {
	if o.ToolName == "" {
		o.ToolName = "submit_result"
	}
	if o.Description == "" {
		o.Description = "Submit the final result and complete the analysis."
	}
	if o.SuccessMessage == "" {
		o.SuccessMessage = "Result submitted successfully."
	}
	if o.PayloadFieldName == "" {
		o.PayloadFieldName = "result"
	}
	if o.PayloadDescription == "" {
		o.PayloadDescription = "Structured result payload."
	}
	if o.Generator == nil {
		o.Generator = schema.NewGenerator()
	}
}

func (o *Options[Response]) validate() error {
	if o.PayloadFieldName == "" {
		return fmt.Errorf("payload field name is required")
	}
	return nil
}

func (o *Options[Response]) schemaForResponse() *jsonschema.Schema {
	typ := reflect.TypeFor[Response]()
	var value any
	if typ.Kind() == reflect.Pointer {
		value = reflect.New(typ.Elem()).Interface()
	} else {
		value = reflect.New(typ).Interface()
	}
	return o.Generator.Reflect(value)
}

func schemaToMap(s *jsonschema.Schema) (map[string]any, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// decodePayload unmarshals the raw payload map into a freshly allocated
// Response value, handling both pointer and value response types.
func decodePayload[Response any](payloadRaw map[string]any) (Response, error) {
	var zero Response

	payloadJSON, err := json.Marshal(payloadRaw)
	if err != nil {
		return zero, fmt.Errorf("marshal payload: %w", err)
	}

	typ := reflect.TypeFor[Response]()
	var dest any
	if typ.Kind() == reflect.Pointer {
		dest = reflect.New(typ.Elem()).Interface()
	} else {
		dest = reflect.New(typ).Interface()
	}

	if err := json.Unmarshal(payloadJSON, dest); err != nil {
		return zero, fmt.Errorf("unmarshal payload: %w", err)
	}

	if typ.Kind() == reflect.Pointer {
		return dest.(Response), nil
	}
	return reflect.ValueOf(dest).Elem().Interface().(Response), nil
}
