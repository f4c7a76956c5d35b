package metrics

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// ObserveRemoteCall records one finished call to the remote coaching api.
func (m *Manager) ObserveRemoteCall(endpoint, outcome string, duration time.Duration) {
	m.CounterRemoteCalls.WithLabelValues(endpoint, outcome).Inc()
	m.HistogramRemoteCallDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// StorageFailed, ProfileChanged and SubscribersChanged make the manager the
// profile store's diagnostics observer.
func (m *Manager) StorageFailed(op string, err error) {
	m.CounterStorageFailures.WithLabelValues(op).Inc()
	log.Warnf("profile storage [%s] degraded: %s", op, err)
}

func (m *Manager) ProfileChanged(present bool) {
	if present {
		m.GaugeProfilePresent.Set(1)
	} else {
		m.GaugeProfilePresent.Set(0)
	}
}

func (m *Manager) SubscribersChanged(count int) {
	m.GaugeSubscribers.Set(float64(count))
}

// ProfileSaved, ProfileCleared and PresetApplied count what users do with
// their profile through the views.
func (m *Manager) ProfileSaved() {
	m.CounterProfileSaves.Inc()
}

func (m *Manager) ProfileCleared() {
	m.CounterProfileClears.Inc()
}

func (m *Manager) PresetApplied(key string) {
	m.CounterPresetsApplied.WithLabelValues(key).Inc()
	m.CounterProfileSaves.Inc()
}
