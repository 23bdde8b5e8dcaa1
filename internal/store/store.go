// Package store persists evaluation runs and their assessments.
package store

import (
	"sync"

	"github.com/huangsam/vegwatch/internal/contract"
)

// AssessmentStoreManager manages the persistence store instances.
type AssessmentStoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization
	assessment   contract.AssessmentStore
}

var _ contract.StoreManager = &AssessmentStoreManager{} // Compile-time check

// GetAssessmentStore returns the assessment AssessmentStore.
func (mgr *AssessmentStoreManager) GetAssessmentStore() contract.AssessmentStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.assessment
}
