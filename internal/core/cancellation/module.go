package cancellation

import (
	"context"

	"go.uber.org/fx"

	pkgif "github.com/dep2p/go-eventkit/pkg/interfaces"
)

// Module 是 cancellation 的 Fx 模块
//
// 提供应用级根 Source 及其令牌；应用停止时根 Source 先取消再释放，
// 以其令牌为父的 Source 随之取消。
var Module = fx.Module("cancellation",
	fx.Provide(
		NewRootSource,
		func(s *Source) pkgif.CancellationToken { return s.Token() },
	),
)

// NewRootSource 创建随应用生命周期释放的根 Source
func NewRootSource(lc fx.Lifecycle) *Source {
	s := NewSource()
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			log.Debug("取消根令牌")
			s.DisposeWith(true)
			return nil
		},
	})
	return s
}
