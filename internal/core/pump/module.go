package pump

import (
	"context"

	"go.uber.org/fx"

	"github.com/dep2p/go-eventkit/config"
	pkgif "github.com/dep2p/go-eventkit/pkg/interfaces"
)

// Config 动作泵配置
type Config struct {
	MaxPending   int
	DrainTimeout config.Duration
	RateLimit    float64
	Burst        int
}

// ConfigFromUnified 从统一配置创建动作泵配置
func ConfigFromUnified(cfg *config.Config) Config {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return Config{
		MaxPending:   cfg.Pump.MaxPending,
		DrainTimeout: cfg.Pump.DrainTimeout,
		RateLimit:    cfg.Pump.RateLimit,
		Burst:        cfg.Pump.Burst,
	}
}

// Params 动作泵依赖参数
type Params struct {
	fx.In

	UnifiedCfg *config.Config          `optional:"true"`
	Token      pkgif.CancellationToken `optional:"true"`
	Handler    ErrorHandler            `optional:"true"`
}

// Module 是 pump 的 Fx 模块
var Module = fx.Module("pump",
	fx.Provide(
		NewFromParams,
		func(p *Pump) pkgif.ActionPump { return p },
	),
)

// NewFromParams 从参数创建动作泵
//
// 应用停止时先在 DrainTimeout 内等待已排队动作完成，再释放。
func NewFromParams(lc fx.Lifecycle, p Params) *Pump {
	cfg := ConfigFromUnified(p.UnifiedCfg)
	pump := New(p.Handler,
		WithName("pump"),
		WithMaxPending(cfg.MaxPending),
		WithParentToken(p.Token),
		WithRateLimit(cfg.RateLimit, cfg.Burst),
	)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			defer pump.Dispose()
			if cfg.DrainTimeout <= 0 {
				return nil
			}
			drainCtx, cancel := context.WithTimeout(ctx, cfg.DrainTimeout.Duration())
			defer cancel()
			if err := pump.WaitForAllActions(drainCtx); err != nil {
				log.Warn("停止时未能等待所有动作完成", "err", err, "pending", pump.Pending())
			}
			return nil
		},
	})
	return pump
}
