package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// TestInitMetrics 测试指标初始化
func TestInitMetrics(t *testing.T) {
	InitMetrics()

	if HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal未初始化")
	}
	if HTTPRequestDuration == nil {
		t.Error("HTTPRequestDuration未初始化")
	}
	if HTTPRequestsInProgress == nil {
		t.Error("HTTPRequestsInProgress未初始化")
	}
	if CartMutationsTotal == nil {
		t.Error("CartMutationsTotal未初始化")
	}
	if AuthAttemptsTotal == nil {
		t.Error("AuthAttemptsTotal未初始化")
	}
	if CatalogQueriesTotal == nil {
		t.Error("CatalogQueriesTotal未初始化")
	}

	// 重复调用不应panic(promauto重复注册会panic,靠initialized标志保护)
	InitMetrics()
}

// TestRecordCartMutation 测试购物车变更计数
func TestRecordCartMutation(t *testing.T) {
	InitMetrics()

	before := getCounterVecValue(t, CartMutationsTotal, map[string]string{"op": "add"})

	RecordCartMutation("add")
	RecordCartMutation("add")
	RecordCartMutation("remove")

	after := getCounterVecValue(t, CartMutationsTotal, map[string]string{"op": "add"})
	if after-before != 2 {
		t.Errorf("add计数错误: expected=+2, got=+%f", after-before)
	}
}

// TestRecordAuthAttempt 测试认证操作计数
func TestRecordAuthAttempt(t *testing.T) {
	InitMetrics()

	labels := map[string]string{"op": "sign_in", "result": "failure"}
	before := getCounterVecValue(t, AuthAttemptsTotal, labels)

	RecordAuthAttempt("sign_in", false)
	RecordAuthAttempt("sign_in", true)

	after := getCounterVecValue(t, AuthAttemptsTotal, labels)
	if after-before != 1 {
		t.Errorf("sign_in失败计数错误: expected=+1, got=+%f", after-before)
	}
}

// TestRecordBeforeInit 测试未初始化时记录不panic
func TestRecordBeforeInit(t *testing.T) {
	// 记录函数都有nil保护,即使跳过InitMetrics也不应崩溃
	RecordCartMutation("add")
	RecordAuthAttempt("sign_in", true)
	RecordCatalogQuery("newest")
}

// getCounterVecValue 读取CounterVec中指定标签组合的当前值
func getCounterVecValue(t *testing.T, vec *prometheus.CounterVec, labels map[string]string) float64 {
	t.Helper()

	counter, err := vec.GetMetricWith(labels)
	if err != nil {
		t.Fatalf("获取指标失败: %v", err)
	}

	metric := &dto.Metric{}
	if err := counter.Write(metric); err != nil {
		t.Fatalf("读取指标值失败: %v", err)
	}

	return metric.GetCounter().GetValue()
}
