package types

// LoadMetadata holds the run-level counters for an extraction run
type LoadMetadata struct {
	RecordCounter        int      `json:"record_counter" yaml:"record_counter"`
	SkippedRecordCounter int      `json:"skipped_record_counter" yaml:"skipped_record_counter"`
	Errors               []string `json:"errors" yaml:"errors"`
}

func NewLoadMetadata() *LoadMetadata {
	return &LoadMetadata{Errors: []string{}}
}

// RecordError records a skipped record and its error message
func (m *LoadMetadata) RecordError(err error) {
	m.SkippedRecordCounter++
	m.Errors = append(m.Errors, err.Error())
}

// Clone returns a deep copy
func (m *LoadMetadata) Clone() *LoadMetadata {
	return &LoadMetadata{
		RecordCounter:        m.RecordCounter,
		SkippedRecordCounter: m.SkippedRecordCounter,
		Errors:               append([]string{}, m.Errors...),
	}
}

// Merge adds the counters and errors of other to m
func (m *LoadMetadata) Merge(other *LoadMetadata) {
	if other == nil {
		return
	}
	m.RecordCounter += other.RecordCounter
	m.SkippedRecordCounter += other.SkippedRecordCounter
	m.Errors = append(m.Errors, other.Errors...)
}
