package metrics

import (
	"reflect"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector Prometheus 采集器
type Collector struct {
	slots SlotSource
	pools PoolSource

	slotsDesc       *prometheus.Desc
	handlersDesc    *prometheus.Desc
	poolIdleDesc    *prometheus.Desc
	poolCreatedDesc *prometheus.Desc
	poolGetsDesc    *prometheus.Desc
	poolPutsDesc    *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector 创建采集器，pools 可为 nil
func NewCollector(namespace string, slots SlotSource, pools PoolSource) *Collector {
	return &Collector{
		slots: slots,
		pools: pools,

		slotsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "slots"),
			"Number of event slots.",
			nil, nil),
		handlersDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "handlers"),
			"Number of handlers registered per event type.",
			[]string{"event", "name"}, nil),
		poolIdleDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "pool", "idle"),
			"Number of idle objects per pool.",
			[]string{"type"}, nil),
		poolCreatedDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "pool", "created_total"),
			"Objects created by the pool factory.",
			[]string{"type"}, nil),
		poolGetsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "pool", "gets_total"),
			"Objects checked out of the pool.",
			[]string{"type"}, nil),
		poolPutsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "pool", "puts_total"),
			"Objects returned to the pool.",
			[]string{"type"}, nil),
	}
}

// Describe 实现 prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.slotsDesc
	ch <- c.handlersDesc
	if c.pools != nil {
		ch <- c.poolIdleDesc
		ch <- c.poolCreatedDesc
		ch <- c.poolGetsDesc
		ch <- c.poolPutsDesc
	}
}

// Collect 实现 prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snap := TakeSnapshot(c.slots, c.pools)

	ch <- prometheus.MustNewConstMetric(c.slotsDesc, prometheus.GaugeValue, float64(snap.Slots))
	for _, e := range snap.Events {
		ch <- prometheus.MustNewConstMetric(c.handlersDesc, prometheus.GaugeValue,
			float64(e.Handlers), typeLabel(e.EventType), e.Name)
	}

	if c.pools == nil {
		return
	}
	for _, p := range snap.Pools {
		typ := typeLabel(p.Type)
		ch <- prometheus.MustNewConstMetric(c.poolIdleDesc, prometheus.GaugeValue, float64(p.Idle), typ)
		ch <- prometheus.MustNewConstMetric(c.poolCreatedDesc, prometheus.CounterValue, float64(p.Created), typ)
		ch <- prometheus.MustNewConstMetric(c.poolGetsDesc, prometheus.CounterValue, float64(p.Gets), typ)
		ch <- prometheus.MustNewConstMetric(c.poolPutsDesc, prometheus.CounterValue, float64(p.Puts), typ)
	}
}

// typeLabel 返回带完整包路径的类型名
//
// reflect.Type.String 只包含包名，不同包中的同名类型会产生重复的标签集。
func typeLabel(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if t.Kind() == reflect.Pointer && t.Name() == "" {
		return "*" + typeLabel(t.Elem())
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
