/*
Copyright © 2026 The hbase-preflight Authors
SPDX-License-Identifier: Apache-2.0
*/

package admin

import (
	"encoding/json"
	"fmt"
)

// AttrDataBlockEncoding is the column family attribute holding the configured
// data block encoding.
const AttrDataBlockEncoding = "DATA_BLOCK_ENCODING"

// TableSchema is a read-only snapshot of a table descriptor as reported by
// the cluster. It is fetched once per validation run and never written back.
type TableSchema struct {
	Name           string               `json:"name" yaml:"name"`
	Attributes     map[string]string    `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	ColumnFamilies []ColumnFamilySchema `json:"columnFamilies" yaml:"columnFamilies"`
}

// ColumnFamilySchema is a column family descriptor: a name plus the family's
// string attribute map.
type ColumnFamilySchema struct {
	Name       string            `json:"name" yaml:"name"`
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Value returns the raw attribute value for key, or the empty string when the
// attribute is not set on the family.
func (cf ColumnFamilySchema) Value(key string) string {
	return cf.Attributes[key]
}

// UnmarshalJSON decodes the REST gateway schema representation, where table
// attributes are flattened alongside "name" and "ColumnSchema".
func (t *TableSchema) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	t.Attributes = map[string]string{}
	for key, msg := range raw {
		switch key {
		case "name":
			if err := json.Unmarshal(msg, &t.Name); err != nil {
				return fmt.Errorf("table name: %w", err)
			}
		case "ColumnSchema":
			if err := json.Unmarshal(msg, &t.ColumnFamilies); err != nil {
				return fmt.Errorf("column schema for table %q: %w", t.Name, err)
			}
		default:
			t.Attributes[key] = attributeString(msg)
		}
	}
	return nil
}

// UnmarshalJSON decodes the REST gateway column schema representation, where
// every attribute is flattened alongside "name".
func (cf *ColumnFamilySchema) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	cf.Attributes = map[string]string{}
	for key, msg := range raw {
		if key == "name" {
			if err := json.Unmarshal(msg, &cf.Name); err != nil {
				return fmt.Errorf("column family name: %w", err)
			}
			continue
		}
		cf.Attributes[key] = attributeString(msg)
	}
	return nil
}

// attributeString renders an attribute value as the string the cluster
// stores. Attribute values are strings on the wire; anything else is kept in
// its literal JSON form so the caller still sees the offending value.
func attributeString(msg json.RawMessage) string {
	var s string
	if err := json.Unmarshal(msg, &s); err == nil {
		return s
	}
	return string(msg)
}
