// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector はメトリクス収集のインターフェース。
// サービス層やミドルウェアから利用する。
type MetricsCollector interface {
	RecordLogin(success bool)
	RecordDecision(outcome string)
	RecordReopen()
	RecordRuleUpdate()
	RecordSessionExpired()
	RecordHTTPRequest(statusCode int, duration time.Duration)
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	loginSuccess   prometheus.Counter
	loginFail      prometheus.Counter
	decisions      *prometheus.CounterVec
	reopens        prometheus.Counter
	ruleUpdates    prometheus.Counter
	sessionExpired prometheus.Counter
	httpStatus     *prometheus.CounterVec
	requestLatency prometheus.Histogram
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		loginSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hireadmin_login_success_total",
			Help: "ログイン成功の合計数",
		}),
		loginFail: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hireadmin_login_fail_total",
			Help: "ログイン失敗の合計数",
		}),
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hireadmin_decisions_total",
			Help: "採否決定の合計数（結果別）",
		}, []string{"outcome"}),
		reopens: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hireadmin_reopens_total",
			Help: "再オープンの合計数",
		}),
		ruleUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hireadmin_rule_updates_total",
			Help: "適格性ルール更新の合計数",
		}),
		sessionExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hireadmin_session_expired_total",
			Help: "期限切れで失効したセッションの合計数",
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hireadmin_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
		requestLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "hireadmin_request_latency_seconds",
			Help:    "HTTPリクエスト処理のレイテンシ（秒）",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.loginSuccess,
		c.loginFail,
		c.decisions,
		c.reopens,
		c.ruleUpdates,
		c.sessionExpired,
		c.httpStatus,
		c.requestLatency,
	)

	return c
}

// RecordLogin はログイン試行の結果を記録する。
func (c *Collector) RecordLogin(success bool) {
	if success {
		c.loginSuccess.Inc()
		return
	}
	c.loginFail.Inc()
}

// RecordDecision は採否決定を結果別に記録する。
func (c *Collector) RecordDecision(outcome string) {
	c.decisions.WithLabelValues(outcome).Inc()
}

// RecordReopen は再オープンを記録する。
func (c *Collector) RecordReopen() {
	c.reopens.Inc()
}

// RecordRuleUpdate は適格性ルールの更新を記録する。
func (c *Collector) RecordRuleUpdate() {
	c.ruleUpdates.Inc()
}

// RecordSessionExpired は期限切れセッションの失効を記録する。
func (c *Collector) RecordSessionExpired() {
	c.sessionExpired.Inc()
}

// RecordHTTPRequest はHTTPリクエストのステータスとレイテンシを記録する。
func (c *Collector) RecordHTTPRequest(statusCode int, duration time.Duration) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
	c.requestLatency.Observe(duration.Seconds())
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
