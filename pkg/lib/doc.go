// Package lib 包含基础设施工具库
//
// 本目录包含与架构组件无关的通用工具库：
//
//   - log: 日志封装，供模块外部的调用方配置 go-eventkit 的日志输出
//
// # 与 pkg/ 其他目录的关系
//
//   - interfaces/: 组件公共接口（架构核心）
//   - lib/: 基础设施工具库（本目录）
//
// # 使用示例
//
//	import "github.com/dep2p/go-eventkit/pkg/lib/log"
//
//	log.SetOutput(file)
//	log.SetLevel(log.LevelDebug)
package lib
