// Package metrics 提供事件、取消与动作泵的指标收集
//
// Reporter 是唯一的记录接口，组件通过 Default() 获取进程级实例：
//   - Nop：默认实现，不记录任何数据
//   - PrometheusReporter：基于 prometheus/client_golang 的计数器
//   - MockReporter：gomock 生成的测试替身
//
// # 快速开始
//
//	reg := prometheus.NewRegistry()
//	r, err := metrics.NewPrometheusReporter(reg, "eventkit")
//	if err != nil {
//	    return err
//	}
//	restore := metrics.SetDefault(r)
//	defer restore()
//
// # 指标
//
//	<ns>_event_fires_total{source}             触发次数
//	<ns>_event_deliveries_total{source}        入队投递数
//	<ns>_event_listener_faults_total{source}   监听器故障数
//	<ns>_cancellation_cancellations_total{kind} 令牌取消数
//	<ns>_pump_actions_total{outcome}           动作结束数
//
// # Fx 模块
//
// Module 在 OnStart 时安装 Reporter，在 OnStop 时恢复之前的默认值。
package metrics

import "github.com/dep2p/go-eventkit/internal/util/logger"

var log = logger.Logger("core/metrics")
