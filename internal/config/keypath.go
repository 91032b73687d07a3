package config

import (
	"encoding/json"
	"maps"
	"reflect"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// taggedFields maps the tag names used by one encoding to the field types of
// struct type t.
func taggedFields(t reflect.Type, tag string) map[string]reflect.Type {
	fields := make(map[string]reflect.Type, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "" || name == "-" {
			continue
		}
		fields[name] = f.Type
	}
	return fields
}

func elemType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func joinKey(path []string, key string) []string {
	return append(slices.Clip(path), key)
}

func unknownKey(path []string) error {
	return &FieldError{Key: strings.Join(path, "."), Problem: "is not a recognized key", Err: ErrUnknownConfigField}
}

func invalidValue(path []string, err error) error {
	return &FieldError{Key: strings.Join(path, "."), Problem: "invalid value", Err: err}
}

// checkYAMLNode walks node against t and reports the first unknown key or
// ill-typed value, in document order, with its dotted path.
func checkYAMLNode(node *yaml.Node, t reflect.Type, path []string) error {
	t = elemType(t)
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil
		}
		return checkYAMLNode(node.Content[0], t, path)
	case yaml.AliasNode:
		return checkYAMLNode(node.Alias, t, path)
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil
	}

	switch t.Kind() {
	case reflect.Struct:
		if node.Kind != yaml.MappingNode {
			return invalidValue(path, decodeYAMLNode(node, t))
		}
		fields := taggedFields(t, "yaml")
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			ft, ok := fields[key]
			if !ok {
				return unknownKey(joinKey(path, key))
			}
			if err := checkYAMLNode(node.Content[i+1], ft, joinKey(path, key)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Map:
		if node.Kind != yaml.MappingNode {
			return invalidValue(path, decodeYAMLNode(node, t))
		}
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			if err := checkYAMLNode(node.Content[i+1], t.Elem(), joinKey(path, key)); err != nil {
				return err
			}
		}
		return nil
	default:
		if err := decodeYAMLNode(node, t); err != nil {
			return invalidValue(path, err)
		}
		return nil
	}
}

func decodeYAMLNode(node *yaml.Node, t reflect.Type) error {
	return node.Decode(reflect.New(t).Interface())
}

// checkJSONValue walks a generically decoded JSON document against t. Object
// keys are visited in sorted order so the reported key is stable. Keys match
// struct tags exactly first and then case-insensitively, as encoding/json does.
func checkJSONValue(value any, t reflect.Type, path []string) error {
	t = elemType(t)
	if value == nil {
		return nil
	}

	switch t.Kind() {
	case reflect.Struct:
		obj, ok := value.(map[string]any)
		if !ok {
			return invalidValue(path, decodeJSONValue(value, t))
		}
		fields := taggedFields(t, "json")
		for _, key := range slices.Sorted(maps.Keys(obj)) {
			ft, ok := lookupJSONField(fields, key)
			if !ok {
				return unknownKey(joinKey(path, key))
			}
			if err := checkJSONValue(obj[key], ft, joinKey(path, key)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Map:
		obj, ok := value.(map[string]any)
		if !ok {
			return invalidValue(path, decodeJSONValue(value, t))
		}
		for _, key := range slices.Sorted(maps.Keys(obj)) {
			if err := checkJSONValue(obj[key], t.Elem(), joinKey(path, key)); err != nil {
				return err
			}
		}
		return nil
	default:
		if err := decodeJSONValue(value, t); err != nil {
			return invalidValue(path, err)
		}
		return nil
	}
}

func lookupJSONField(fields map[string]reflect.Type, key string) (reflect.Type, bool) {
	if ft, ok := fields[key]; ok {
		return ft, true
	}
	for name, ft := range fields {
		if strings.EqualFold(name, key) {
			return ft, true
		}
	}
	return nil, false
}

func decodeJSONValue(value any, t reflect.Type) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, reflect.New(t).Interface())
}
