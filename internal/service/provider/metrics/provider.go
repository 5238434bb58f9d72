package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"fitsync-notify/internal/domain"
	"fitsync-notify/internal/service/provider"
)

// 定义Prometheus指标配置常量
const (
	// 摘要指标的分位数配置
	median = 0.5
	p90    = 0.9
	p95    = 0.95
	p99    = 0.99

	medianError = 0.05
	p90Error    = 0.01
	p95Error    = 0.005
	p99Error    = 0.001

	// 摘要指标的最大保留时间
	maxAgeDuration = 5 * time.Minute
)

// 指标在进程内只注册一次，多个装饰器实例通过 provider 标签区分
var (
	sendDurationSummary = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "provider_send_duration_seconds",
			Help: "适配器发送消息耗时统计（秒）",
			Objectives: map[float64]float64{
				median: medianError,
				p90:    p90Error,
				p95:    p95Error,
				p99:    p99Error,
			},
			MaxAge: maxAgeDuration,
		},
		[]string{"provider", "channel", "success"},
	)

	sendCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_send_total",
			Help: "适配器发送消息总数",
		},
		[]string{"provider", "channel"},
	)

	sendResultCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_send_result_total",
			Help: "适配器发送消息结果统计",
		},
		[]string{"provider", "channel", "success"},
	)
)

func init() {
	prometheus.MustRegister(sendDurationSummary, sendCounter, sendResultCounter)
}

// Provider 为适配器实现添加指标收集的装饰器
type Provider struct {
	provider provider.Provider
	name     string
}

// Send 发送消息并记录指标
func (p *Provider) Send(ctx context.Context, req domain.MessageRequest) (domain.DeliveryResult, error) {
	startTime := time.Now()

	sendCounter.WithLabelValues(
		p.name,
		string(req.Channel),
	).Inc()

	result, err := p.provider.Send(ctx, req)

	duration := time.Since(startTime).Seconds()
	success := strconv.FormatBool(err == nil && result.Success)

	sendResultCounter.WithLabelValues(
		p.name,
		string(req.Channel),
		success,
	).Inc()

	sendDurationSummary.WithLabelValues(
		p.name,
		string(req.Channel),
		success,
	).Observe(duration)

	return result, err
}

// NewProvider 创建一个新的带有指标收集的适配器
func NewProvider(name string, p provider.Provider) *Provider {
	return &Provider{
		provider: p,
		name:     name,
	}
}
