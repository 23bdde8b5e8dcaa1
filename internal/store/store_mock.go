package store

import (
	"time"

	"github.com/huangsam/vegwatch/internal/contract"
	"github.com/huangsam/vegwatch/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetAssessmentStore implements the StoreManager interface.
func (m *MockStoreManager) GetAssessmentStore() contract.AssessmentStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.AssessmentStore)
	return store
}

// MockAssessmentStore is a mock implementation of AssessmentStore for testing.
type MockAssessmentStore struct {
	mock.Mock
}

var _ contract.AssessmentStore = &MockAssessmentStore{} // Compile-time check

// BeginRun implements the AssessmentStore interface.
func (m *MockAssessmentStore) BeginRun(startTime time.Time, configParams map[string]any) (int64, error) {
	args := m.Called(startTime, configParams)
	return args.Get(0).(int64), args.Error(1)
}

// EndRun implements the AssessmentStore interface.
func (m *MockAssessmentStore) EndRun(runID int64, endTime time.Time, totalSeries int) error {
	args := m.Called(runID, endTime, totalSeries)
	return args.Error(0)
}

// RecordAssessment implements the AssessmentStore interface.
func (m *MockAssessmentStore) RecordAssessment(runID int64, assessment schema.ChangeAssessment) error {
	args := m.Called(runID, assessment)
	return args.Error(0)
}

// GetAllRuns implements the AssessmentStore interface.
func (m *MockAssessmentStore) GetAllRuns() ([]schema.RunRecord, error) {
	args := m.Called()
	runs, _ := args.Get(0).([]schema.RunRecord)
	return runs, args.Error(1)
}

// GetAllAssessments implements the AssessmentStore interface.
func (m *MockAssessmentStore) GetAllAssessments() ([]schema.AssessmentRecord, error) {
	args := m.Called()
	assessments, _ := args.Get(0).([]schema.AssessmentRecord)
	return assessments, args.Error(1)
}

// GetStatus implements the AssessmentStore interface.
func (m *MockAssessmentStore) GetStatus() (schema.StoreStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// Close implements the AssessmentStore interface.
func (m *MockAssessmentStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
