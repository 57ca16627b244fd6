package lspwire

import (
	"encoding/json"
	"math"

	"github.com/tidwall/gjson"
)

// Decode helpers shared by the entity catalog. Every decoder works on the
// untyped wire tree via gjson: required fields must be present and of the
// matching shape, null counts as absent, and unknown keys are ignored.

const maxRawInError = 80

// trimRaw bounds the raw wire text carried inside decode errors.
func trimRaw(raw string) string {
	if len(raw) > maxRawInError {
		return raw[:maxRawInError] + "..."
	}
	return raw
}

// parseObject validates data as JSON and requires it to be an object.
func parseObject(data []byte, typeName string) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, &ShapeError{Type: typeName, Raw: trimRaw(string(data))}
	}
	v := gjson.ParseBytes(data)
	if !v.IsObject() {
		return gjson.Result{}, &ShapeError{Type: typeName, Raw: trimRaw(v.Raw)}
	}
	return v, nil
}

// present reports whether a field exists with a non-null value.
func present(v gjson.Result) bool {
	return v.Exists() && v.Type != gjson.Null
}

func reqString(obj gjson.Result, typeName, key string) (string, error) {
	v := obj.Get(key)
	if !present(v) {
		return "", &FieldError{Type: typeName, Field: key}
	}
	if v.Type != gjson.String {
		return "", &FieldError{Type: typeName, Field: key, Raw: trimRaw(v.Raw)}
	}
	return v.String(), nil
}

func optString(obj gjson.Result, typeName, key string) (string, error) {
	v := obj.Get(key)
	if !present(v) {
		return "", nil
	}
	if v.Type != gjson.String {
		return "", &FieldError{Type: typeName, Field: key, Raw: trimRaw(v.Raw)}
	}
	return v.String(), nil
}

// wireInt extracts a non-negative integer from a numeric wire value.
func wireInt(v gjson.Result) (int, bool) {
	if v.Type != gjson.Number || v.Num != math.Trunc(v.Num) || v.Num < 0 {
		return 0, false
	}
	return int(v.Num), true
}

func reqUint(obj gjson.Result, typeName, key string) (int, error) {
	v := obj.Get(key)
	if !present(v) {
		return 0, &FieldError{Type: typeName, Field: key}
	}
	n, ok := wireInt(v)
	if !ok {
		return 0, &FieldError{Type: typeName, Field: key, Raw: trimRaw(v.Raw)}
	}
	return n, nil
}

func optUint(obj gjson.Result, typeName, key string) (*int, error) {
	v := obj.Get(key)
	if !present(v) {
		return nil, nil
	}
	n, ok := wireInt(v)
	if !ok {
		return nil, &FieldError{Type: typeName, Field: key, Raw: trimRaw(v.Raw)}
	}
	return &n, nil
}

func reqBool(obj gjson.Result, typeName, key string) (bool, error) {
	v := obj.Get(key)
	if !present(v) {
		return false, &FieldError{Type: typeName, Field: key}
	}
	if !v.IsBool() {
		return false, &FieldError{Type: typeName, Field: key, Raw: trimRaw(v.Raw)}
	}
	return v.Bool(), nil
}

func optBool(obj gjson.Result, typeName, key string) (*bool, error) {
	v := obj.Get(key)
	if !present(v) {
		return nil, nil
	}
	if !v.IsBool() {
		return nil, &FieldError{Type: typeName, Field: key, Raw: trimRaw(v.Raw)}
	}
	b := v.Bool()
	return &b, nil
}

// structured reports whether err already carries decode context.
func structured(err error) bool {
	switch err.(type) {
	case *FieldError, *EnumError, *ShapeError:
		return true
	}
	return false
}

// decodeValue decodes a nested wire value into dst, attributing plain
// unmarshalling failures to the named field.
func decodeValue(v gjson.Result, typeName, key string, dst any) error {
	if err := json.Unmarshal([]byte(v.Raw), dst); err != nil {
		if structured(err) {
			return err
		}
		return &FieldError{Type: typeName, Field: key, Raw: trimRaw(v.Raw)}
	}
	return nil
}

// decodeField decodes a required nested field into dst.
func decodeField(obj gjson.Result, typeName, key string, dst any) error {
	v := obj.Get(key)
	if !present(v) {
		return &FieldError{Type: typeName, Field: key}
	}
	return decodeValue(v, typeName, key, dst)
}

// decodeOptField decodes an optional nested field into dst, reporting
// whether the field was present.
func decodeOptField(obj gjson.Result, typeName, key string, dst any) (bool, error) {
	v := obj.Get(key)
	if !present(v) {
		return false, nil
	}
	if err := decodeValue(v, typeName, key, dst); err != nil {
		return false, err
	}
	return true, nil
}

// decodeArray decodes a required array field element by element.
func decodeArray[T any](obj gjson.Result, typeName, key string) ([]T, error) {
	v := obj.Get(key)
	if !present(v) {
		return nil, &FieldError{Type: typeName, Field: key}
	}
	return decodeElems[T](v, typeName, key)
}

// decodeOptArray decodes an optional array field; absent yields nil.
func decodeOptArray[T any](obj gjson.Result, typeName, key string) ([]T, error) {
	v := obj.Get(key)
	if !present(v) {
		return nil, nil
	}
	return decodeElems[T](v, typeName, key)
}

func decodeElems[T any](v gjson.Result, typeName, key string) ([]T, error) {
	if !v.IsArray() {
		return nil, &FieldError{Type: typeName, Field: key, Raw: trimRaw(v.Raw)}
	}
	elems := v.Array()
	out := make([]T, 0, len(elems))
	for _, el := range elems {
		var item T
		if err := decodeValue(el, typeName, key, &item); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// decodeStrings decodes an optional array of strings; absent yields nil.
func decodeStrings(obj gjson.Result, typeName, key string) ([]string, error) {
	v := obj.Get(key)
	if !present(v) {
		return nil, nil
	}
	if !v.IsArray() {
		return nil, &FieldError{Type: typeName, Field: key, Raw: trimRaw(v.Raw)}
	}
	elems := v.Array()
	out := make([]string, 0, len(elems))
	for _, el := range elems {
		if el.Type != gjson.String {
			return nil, &FieldError{Type: typeName, Field: key, Raw: trimRaw(el.Raw)}
		}
		out = append(out, el.String())
	}
	return out, nil
}

// decodeEnum reads a bare wire number and validates it against a closed
// enumeration table. Anything that is not an integer in the table fails.
func decodeEnum(data []byte, typeName string, valid func(int) bool) (int, error) {
	if !gjson.ValidBytes(data) {
		return 0, &EnumError{Type: typeName, Raw: trimRaw(string(data))}
	}
	v := gjson.ParseBytes(data)
	if v.Type != gjson.Number || v.Num != math.Trunc(v.Num) {
		return 0, &EnumError{Type: typeName, Raw: trimRaw(v.Raw)}
	}
	n := int(v.Num)
	if !valid(n) {
		return 0, &EnumError{Type: typeName, Raw: trimRaw(v.Raw)}
	}
	return n, nil
}

// nonNil normalizes a nil slice to an empty one so required sequence fields
// never encode as null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
