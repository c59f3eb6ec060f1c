package app

import (
	"context"
	"errors"
	"net/http"
)

// HTTPServer 对 http.Server 的薄封装，正常关闭不作为错误返回。
type HTTPServer struct {
	server *http.Server
}

// NewHTTPServer 创建 HTTP 服务
func NewHTTPServer(addr string, handler http.Handler) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{
			Addr:    addr,
			Handler: handler,
		},
	}
}

// Addr 监听地址
func (s *HTTPServer) Addr() string {
	if s == nil || s.server == nil {
		return ""
	}
	return s.server.Addr
}

// ListenAndServe 阻塞运行直到服务被关闭
func (s *HTTPServer) ListenAndServe() error {
	if s == nil || s.server == nil {
		return errors.New("http server not initialized")
	}
	err := s.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown 优雅关闭，等待在途请求完成
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
