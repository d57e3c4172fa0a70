package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
)

// NewServer 所有请求的上下文都派生自 ctx，ctx 结束时 SSE 等长连接随之退出，
// 之后 Shutdown 才能在超时前等到连接空闲
func NewServer(ctx context.Context, port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: handler,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
}
