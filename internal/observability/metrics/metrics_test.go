package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestBookingMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBookingMetrics(reg)
	m.ObserveBackendRequest("list_services", "ok", 0.12)
	m.ObserveSlotQuery("ok")
	m.ObserveSlotQuery("error")
	m.ObserveBooking("confirmed")

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	found := map[string]*dto.MetricFamily{}
	for _, mf := range families {
		found[mf.GetName()] = mf
	}

	if _, ok := found["bookingweb_backend_requests_total"]; !ok {
		t.Fatal("backend requests counter not registered")
	}
	slot, ok := found["bookingweb_booking_slot_queries_total"]
	if !ok {
		t.Fatal("slot queries counter not registered")
	}
	var total float64
	for _, metric := range slot.GetMetric() {
		total += metric.GetCounter().GetValue()
	}
	if total != 2 {
		t.Fatalf("slot query count = %v, want 2", total)
	}
}

func TestBookingMetricsNilSafe(t *testing.T) {
	var m *BookingMetrics
	m.ObserveBackendRequest("op", "ok", 0.1)
	m.ObserveSlotQuery("ok")
	m.ObserveBooking("failed")
}
