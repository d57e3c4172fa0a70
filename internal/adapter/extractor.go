package adapter

import (
	"bytes"
	"encoding/json"

	"LottoBoard/internal/model"
)

// Node 解析后 JSON 对象中的一层，path 用于错误提示
type Node struct {
	path string
	m    map[string]interface{}
}

// Extractor 按精确键名逐层取值；第一次失败后记录错误，后续调用全部返回零值。
// 调用方取完所有字段后检查 Err，保证要么全部取到要么一个都不用。
type Extractor struct {
	game model.Game
	root Node
	err  error
}

// NewExtractor 解析响应体；不是 JSON 对象时返回 MalformedPayloadError
func NewExtractor(game model.Game, payload []byte) (*Extractor, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	var root map[string]interface{}
	if err := dec.Decode(&root); err != nil {
		return nil, &model.MalformedPayloadError{Game: game, Err: err}
	}
	if root == nil {
		return nil, &model.MalformedPayloadError{Game: game, Key: "$"}
	}
	return &Extractor{game: game, root: Node{m: root}}, nil
}

// Root 顶层对象
func (x *Extractor) Root() Node {
	return x.root
}

// Err 第一个取值错误
func (x *Extractor) Err() error {
	return x.err
}

// Object 取子对象
func (x *Extractor) Object(parent Node, key string) Node {
	path := joinPath(parent.path, key)
	v, ok := x.lookup(parent, key, path)
	if !ok {
		return Node{path: path}
	}
	m, isObj := v.(map[string]interface{})
	if !isObj {
		x.fail(path)
		return Node{path: path}
	}
	return Node{path: path, m: m}
}

// String 取标量字段，字符串原样返回，数字按字面值返回
func (x *Extractor) String(parent Node, key string) string {
	path := joinPath(parent.path, key)
	v, ok := x.lookup(parent, key, path)
	if !ok {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	default:
		x.fail(path)
		return ""
	}
}

// Strings 按顺序取多个标量字段
func (x *Extractor) Strings(parent Node, keys ...string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, x.String(parent, k))
	}
	return out
}

func (x *Extractor) lookup(parent Node, key, path string) (interface{}, bool) {
	if x.err != nil || parent.m == nil {
		x.fail(path)
		return nil, false
	}
	v, ok := parent.m[key]
	if !ok || v == nil {
		x.fail(path)
		return nil, false
	}
	return v, true
}

func (x *Extractor) fail(path string) {
	if x.err == nil {
		x.err = &model.MalformedPayloadError{Game: x.game, Key: path}
	}
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}
