package app

import (
	"context"
	"errors"
	"os/signal"
	"time"

	"go.uber.org/zap"
)

// Runner 负责 HTTP 服务的启动与优雅停机
type Runner struct {
	server *HTTPServer
}

// NewRunner 创建服务运行器
func NewRunner(server *HTTPServer) *Runner {
	return &Runner{server: server}
}

// RunWithOptions 运行服务并处理系统信号
func RunWithOptions(runner *Runner, opts Options) error {
	if runner == nil {
		return errors.New("runner is nil")
	}
	opts = normalizeOptions(opts)
	ctx := context.Background()
	if len(opts.Signals) > 0 {
		var cancel context.CancelFunc
		ctx, cancel = signal.NotifyContext(ctx, opts.Signals...)
		defer cancel()
	}
	return runner.Run(ctx, opts.ShutdownTimeout, opts.Logger)
}

// Run 启动服务，ctx 取消或服务退出后执行优雅停机。
func (r *Runner) Run(ctx context.Context, stopTimeout time.Duration, logger *zap.SugaredLogger) error {
	if r == nil || r.server == nil {
		return errors.New("no http server to run")
	}

	serveErr := make(chan error, 1)
	go func() {
		if logger != nil {
			logger.Infow("http_start", "addr", r.server.Addr())
		}
		serveErr <- r.server.ListenAndServe()
	}()

	var runErr error
	select {
	case <-ctx.Done():
		runErr = ctx.Err()
	case err := <-serveErr:
		runErr = err
	}

	if stopTimeout <= 0 {
		stopTimeout = 10 * time.Second
	}
	stopCtx, stopCancel := context.WithTimeout(context.Background(), stopTimeout)
	defer stopCancel()
	if err := r.server.Shutdown(stopCtx); err != nil {
		if logger != nil {
			logger.Errorw("http_stop_failed", "error", err)
		}
	}
	if logger != nil {
		logger.Infow("http_stopped")
	}

	if errors.Is(runErr, context.Canceled) {
		return nil
	}
	return runErr
}
