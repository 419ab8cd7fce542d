package backend

import (
	"bytes"
	"encoding/json"
)

// listShape форма, в которой backend вернул коллекцию
type listShape int

const (
	shapeEmpty        listShape = iota // пустое тело или null
	shapeArray                         // [...]
	shapePage                          // {"content": [...]}
	shapeData                          // {"data": [...]}
	shapeSingle                        // одиночный объект
	shapeUnrecognized                  // скаляр или невалидный JSON
)

func (s listShape) String() string {
	switch s {
	case shapeEmpty:
		return "empty"
	case shapeArray:
		return "array"
	case shapePage:
		return "page"
	case shapeData:
		return "data"
	case shapeSingle:
		return "single"
	default:
		return "unrecognized"
	}
}

// listEnvelope нормализованный ответ со списком
type listEnvelope struct {
	shape listShape
	items []json.RawMessage
}

// normalizeList приводит ответ к списку элементов, запоминая исходную форму
func normalizeList(body []byte) listEnvelope {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return listEnvelope{shape: shapeEmpty}
	}

	switch trimmed[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return listEnvelope{shape: shapeUnrecognized}
		}
		return listEnvelope{shape: shapeArray, items: items}

	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return listEnvelope{shape: shapeUnrecognized}
		}
		if items, ok := arrayField(fields, "content"); ok {
			return listEnvelope{shape: shapePage, items: items}
		}
		if items, ok := arrayField(fields, "data"); ok {
			return listEnvelope{shape: shapeData, items: items}
		}
		return listEnvelope{shape: shapeSingle, items: []json.RawMessage{json.RawMessage(trimmed)}}

	default:
		return listEnvelope{shape: shapeUnrecognized}
	}
}

func arrayField(fields map[string]json.RawMessage, name string) ([]json.RawMessage, bool) {
	raw, ok := fields[name]
	if !ok {
		return nil, false
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	return items, true
}
