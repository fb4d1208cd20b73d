// Package main 提供 eventkit 演示命令行入口
//
// 按配置组装应用，周期性触发事件，每个事件向动作泵投递一个动作；
// 收到 SIGINT/SIGTERM 或达到指定次数后，取消根令牌并排空动作泵。
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dep2p/go-eventkit"
	"github.com/dep2p/go-eventkit/pkg/lib/log"
)

var logger = log.Logger("eventkit/cmd")

// ═══════════════════════════════════════════════════════════════════════════
// 命令行参数
// ═══════════════════════════════════════════════════════════════════════════
var (
	configFile  = flag.String("config", "", "配置文件路径")
	interval    = flag.Duration("interval", time.Second, "事件触发间隔")
	count       = flag.Int("count", 0, "触发次数后退出（0 = 直到收到信号）")
	work        = flag.Duration("work", 50*time.Millisecond, "每个动作的模拟耗时")
	metricsAddr = flag.String("metrics-addr", "", "Prometheus 指标监听地址（为空不启用）")
	logLevel    = flag.String("log-level", "", "日志级别，例如 core/pump=debug,info")
	fxDebug     = flag.Bool("fx-debug", false, "输出 Fx 生命周期事件")
	showVersion = flag.Bool("version", false, "显示版本信息")
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	if *showVersion {
		fmt.Println(eventkit.VersionInfo())
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("配置错误: %w", err)
	}

	var appOpts []eventkit.AppOption
	reg := prometheus.NewRegistry()
	if *metricsAddr != "" {
		cfg.Metrics.Enabled = true
		appOpts = append(appOpts, eventkit.WithRegisterer(reg))
	}
	if *fxDebug {
		zl, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("创建 zap logger 失败: %w", err)
		}
		defer func() { _ = zl.Sync() }()
		appOpts = append(appOpts, eventkit.WithZapLogger(zl))
	}

	app, err := eventkit.New(cfg, appOpts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		fmt.Println("正在关闭...")
		if err := app.Close(); err != nil {
			logger.Error("关闭失败", "error", err)
		}
	}()

	fmt.Printf("📦 %s\n", eventkit.VersionInfo())
	logger.Info("应用已就绪", "interval", *interval, "count", *count)

	g, gctx := errgroup.WithContext(ctx)

	if *metricsAddr != "" {
		srv := &http.Server{
			Addr:              *metricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			logger.Info("指标服务已启动", "addr", *metricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	g.Go(func() error {
		return drive(gctx, app)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errDone) {
		return err
	}
	return nil
}

// errDone 达到触发次数
var errDone = errors.New("done")

// drive 周期性触发 tick 事件，直到 ctx 结束、根令牌取消或达到触发次数
func drive(ctx context.Context, app *eventkit.App) error {
	// 信号与根令牌任一取消都结束循环
	ctxTok, release := eventkit.FromContext(ctx)
	defer release.Dispose()
	src := eventkit.NewSourceWithParent(ctxTok)
	defer src.Dispose()

	store := eventkit.NewStore()
	defer store.Dispose()

	ticks := eventkit.NewEmitter[int](app.EmitterOptions(eventkit.WithEmitterName("ticks"))...)
	store.Add(ticks)

	ticks.Event().Subscribe(func(n int) {
		if err := app.Pump.Post(func(actx context.Context) error {
			return simulate(actx, n)
		}); err != nil {
			logger.Warn("投递动作失败", "tick", n, "error", err)
		}
	}, eventkit.CollectInto(store))

	app.Token().OnCancellationRequested().Subscribe(func(struct{}) {
		src.Cancel()
	}, eventkit.CollectInto(store))

	done := make(chan struct{})
	src.Token().OnCancellationRequested().Subscribe(func(struct{}) {
		close(done)
	}, eventkit.CollectInto(store))

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for n := 1; ; n++ {
		select {
		case <-done:
			return nil
		case <-ticker.C:
		}
		ticks.Fire(n)
		if *count > 0 && n >= *count {
			return finish(app)
		}
	}
}

// finish 等待已投递的动作执行完毕
func finish(app *eventkit.App) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Pump.WaitForAllActions(ctx); err != nil {
		return err
	}
	return errDone
}

// simulate 模拟一个耗时动作，ctx 取消时提前结束
func simulate(ctx context.Context, n int) error {
	select {
	case <-time.After(*work):
		logger.Info("动作完成", "tick", n)
		return nil
	case <-ctx.Done():
		return fmt.Errorf("tick %d: %w", n, context.Cause(ctx))
	}
}
