package metrics

// MultiSink fans out records to several sinks, returning the first error.
type MultiSink struct {
	sinks []MetricsSink
}

// NewMultiSink combines the given sinks into one.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// RecordRun implements MetricsSink.
func (m *MultiSink) RecordRun(res RunResult) error {
	for _, s := range m.sinks {
		if err := s.RecordRun(res); err != nil {
			return err
		}
	}
	return nil
}

// RecordAssignments implements AssignmentRecorder for sinks that support it.
func (m *MultiSink) RecordAssignments(recs []AssignmentRecord) error {
	for _, s := range m.sinks {
		if r, ok := s.(AssignmentRecorder); ok {
			if err := r.RecordAssignments(recs); err != nil {
				return err
			}
		}
	}
	return nil
}
