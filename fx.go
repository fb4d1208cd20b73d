package eventkit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/dep2p/go-eventkit/config"
	"github.com/dep2p/go-eventkit/internal/core/cancellation"
	"github.com/dep2p/go-eventkit/internal/core/event"
	"github.com/dep2p/go-eventkit/internal/core/metrics"
	"github.com/dep2p/go-eventkit/internal/core/pump"
	"github.com/dep2p/go-eventkit/pkg/lib/log"
)

var logger = log.Logger("eventkit/app")

// 停止超时
const closeTimeout = 10 * time.Second

// Module 返回组装所有核心组件的 Fx 模块
//
// 加载顺序（按依赖）：
//  1. 配置注入
//  2. metrics：Reporter（启动时安装为进程级默认）
//  3. cancellation：根 Source 与根令牌
//  4. pump：以根令牌为父的动作泵
func Module(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		metrics.Module,
		cancellation.Module,
		pump.Module,
	)
}

// App 组装完成的应用
type App struct {
	mu      sync.Mutex
	app     *fx.App
	cfg     *config.Config
	started bool
	closed  bool

	// Source 根 Source，应用停止时取消
	Source *cancellation.Source

	// Pump 以根令牌为父的动作泵
	Pump *pump.Pump

	// Reporter 当前使用的指标 Reporter
	Reporter metrics.Reporter
}

// AppOption 应用选项
type AppOption func(*appOptions)

type appOptions struct {
	fxOptions  []fx.Option
	zapLogger  *zap.Logger
	registerer prometheus.Registerer
}

// WithFxOptions 追加自定义 Fx 选项
func WithFxOptions(opts ...fx.Option) AppOption {
	return func(o *appOptions) {
		o.fxOptions = append(o.fxOptions, opts...)
	}
}

// WithZapLogger 使用 l 记录 Fx 生命周期事件（默认丢弃）
func WithZapLogger(l *zap.Logger) AppOption {
	return func(o *appOptions) {
		o.zapLogger = l
	}
}

// WithRegisterer 指定 Prometheus 指标注册器（仅在启用指标时使用）
func WithRegisterer(reg prometheus.Registerer) AppOption {
	return func(o *appOptions) {
		o.registerer = reg
	}
}

// New 根据配置组装应用
//
// cfg 为 nil 时使用默认配置。配置中的日志级别与格式在组装前生效。
func New(cfg *config.Config, opts ...AppOption) (*App, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	if !log.Configure(cfg.Log.Level, cfg.Log.Format) {
		logger.Warn("存在无法识别的日志级别", "level", cfg.Log.Level)
	}

	o := &appOptions{zapLogger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}

	a := &App{cfg: cfg}
	modules := []fx.Option{
		Module(cfg),
		fx.Populate(&a.Source, &a.Pump, &a.Reporter),
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: o.zapLogger}
		}),
	}
	if o.registerer != nil {
		reg := o.registerer
		modules = append(modules, fx.Provide(func() prometheus.Registerer { return reg }))
	}
	modules = append(modules, o.fxOptions...)

	app := fx.New(modules...)
	if err := app.Err(); err != nil {
		return nil, fmt.Errorf("build fx app: %w", err)
	}
	a.app = app
	return a, nil
}

// Start 启动应用
func (a *App) Start(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return ErrAppClosed
	}
	if a.started {
		return ErrAlreadyStarted
	}
	if err := a.app.Start(ctx); err != nil {
		logger.Error("应用启动失败", "error", err)
		return fmt.Errorf("start failed: %w", err)
	}
	a.started = true
	logger.Info("应用已启动", "version", Version)
	return nil
}

// Stop 停止应用：排空并释放动作泵，取消根令牌
func (a *App) Stop(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.started {
		return nil
	}
	a.started = false
	a.closed = true
	if err := a.app.Stop(ctx); err != nil {
		return fmt.Errorf("stop failed: %w", err)
	}
	logger.Info("应用已停止")
	return nil
}

// Close 在默认超时内停止应用
func (a *App) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	return a.Stop(ctx)
}

// Token 返回根令牌
func (a *App) Token() CancellationToken {
	return a.Source.Token()
}

// Config 返回应用配置
func (a *App) Config() *config.Config {
	return a.cfg
}

// EmitterOptions 返回按配置设置的发射器选项
//
//	em := eventkit.NewEmitter[string](app.EmitterOptions(eventkit.WithEmitterName("jobs"))...)
func (a *App) EmitterOptions(extra ...EmitterOption) []EmitterOption {
	opts := []EmitterOption{
		event.WithLeakThreshold(a.cfg.Event.LeakThreshold),
		event.WithReporter(a.Reporter),
	}
	return append(opts, extra...)
}
