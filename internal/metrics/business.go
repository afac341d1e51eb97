package metrics

// IncrementListCreated increments list creation counter
func (m *Metrics) IncrementListCreated() {
	m.safeExecute("IncrementListCreated", func() {
		m.ListCreatedTotal.Inc()
	})
}

// IncrementVideoCreated increments video bookmark counter
func (m *Metrics) IncrementVideoCreated() {
	m.safeExecute("IncrementVideoCreated", func() {
		m.VideoCreatedTotal.Inc()
	})
}

// SetListsTotal sets total lists gauge
func (m *Metrics) SetListsTotal(count int64) {
	m.safeExecute("SetListsTotal", func() {
		m.ListsTotal.Set(float64(count))
	})
}

// SetVideosTotal sets total videos gauge
func (m *Metrics) SetVideosTotal(count int64) {
	m.safeExecute("SetVideosTotal", func() {
		m.VideosTotal.Set(float64(count))
	})
}
