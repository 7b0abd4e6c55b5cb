// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

type ABIField struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type SingleTypeABI struct {
	ID    uint8                 `json:"id"`
	Name  string                `json:"name"`
	Types map[string][]ABIField `json:"types"`
}

// ABI describes every type registered with [p] as JSON. Field types come
// from the `wire` struct tag when present and the Go type name otherwise.
func (p *TypeParser[T]) ABI() ([]byte, error) {
	abi := make([]SingleTypeABI, 0, len(p.indexToEntry))
	for _, index := range p.Indices() {
		e := p.indexToEntry[index]
		typeABI, err := getTypeABI(index, e.name, e.zero)
		if err != nil {
			return nil, err
		}
		abi = append(abi, typeABI)
	}
	return json.MarshalIndent(abi, "", "  ")
}

func getTypeABI(index uint8, name string, o any) (SingleTypeABI, error) {
	t := reflect.TypeOf(o)
	if t == nil {
		return SingleTypeABI{}, fmt.Errorf("type %s has no value", name)
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	result := SingleTypeABI{
		ID:    index,
		Name:  name,
		Types: make(map[string][]ABIField),
	}

	typesLeft := []reflect.Type{t}
	processed := make(map[reflect.Type]bool)
	for len(typesLeft) > 0 {
		next := typesLeft[0]
		typesLeft = typesLeft[1:]
		if processed[next] {
			continue
		}

		fields, moreTypes, err := describeStruct(next, t.PkgPath())
		if err != nil {
			return SingleTypeABI{}, err
		}
		result.Types[next.Name()] = fields
		typesLeft = append(typesLeft, moreTypes...)
		processed[next] = true
	}
	return result, nil
}

// describeStruct only follows nested structs declared in [pkgPath] so
// library types such as big.Int stay opaque.
func describeStruct(t reflect.Type, pkgPath string) ([]ABIField, []reflect.Type, error) {
	if t.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("type %s is not a struct", t.String())
	}

	fields := make([]ABIField, 0, t.NumField())
	otherStructsSeen := make([]reflect.Type, 0)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		fieldName := field.Name
		if jsonTag := field.Tag.Get("json"); jsonTag != "" {
			parts := strings.Split(jsonTag, ",")
			if parts[0] == "-" {
				continue
			}
			if parts[0] != "" {
				fieldName = parts[0]
			}
		}

		fieldType := field.Type
		arrayPrefix := ""
		for fieldType.Kind() == reflect.Slice {
			arrayPrefix += "[]"
			fieldType = fieldType.Elem()
		}
		if fieldType.Kind() == reflect.Ptr {
			fieldType = fieldType.Elem()
		}

		typeName := fieldType.Name()
		if wireTag := field.Tag.Get("wire"); wireTag != "" {
			typeName = wireTag
		} else if fieldType.Kind() == reflect.Struct && fieldType.PkgPath() == pkgPath {
			otherStructsSeen = append(otherStructsSeen, fieldType)
		}

		fields = append(fields, ABIField{
			Name: fieldName,
			Type: arrayPrefix + typeName,
		})
	}

	return fields, otherStructsSeen, nil
}
