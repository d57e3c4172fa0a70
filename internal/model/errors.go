package model

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedPayload 响应体可解析但缺少必需字段
	ErrMalformedPayload = errors.New("malformed payload")
	// ErrNetwork 请求未完成或返回非成功状态码
	ErrNetwork = errors.New("network failure")
	// ErrUnsupportedCurrency 只支持 USD/EUR/CAD
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrUnknownGame         = errors.New("unknown game")
)

// MalformedPayloadError names the key path that could not be extracted.
// Err is set when the body was not valid JSON at all.
type MalformedPayloadError struct {
	Game Game
	Key  string
	Err  error
}

func (e *MalformedPayloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Game, ErrMalformedPayload, e.Err)
	}
	return fmt.Sprintf("%s %s: missing key %q", e.Game, ErrMalformedPayload, e.Key)
}

func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}

func (e *MalformedPayloadError) Is(target error) bool {
	return target == ErrMalformedPayload
}

// NetworkError wraps transport failures and non-2xx responses.
type NetworkError struct {
	Game       Game
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Game, ErrNetwork, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Game, ErrNetwork, e.Err)
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
