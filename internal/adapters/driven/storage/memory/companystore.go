package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/orgair-labs/orgair-cli/internal/core/domain"
	"github.com/orgair-labs/orgair-cli/internal/core/ports/driven"
)

// Ensure CompanyStore implements the interface.
var _ driven.CompanyStore = (*CompanyStore)(nil)

// CompanyStore is an in-memory implementation of driven.CompanyStore.
type CompanyStore struct {
	mu        sync.RWMutex
	companies map[string]domain.Company
}

// NewCompanyStore creates a new in-memory company store.
func NewCompanyStore() *CompanyStore {
	return &CompanyStore{
		companies: make(map[string]domain.Company),
	}
}

// Save stores or updates a company.
func (s *CompanyStore) Save(_ context.Context, company domain.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.companies[company.CompanyID] = company
	return nil
}

// Get retrieves a company by ID.
func (s *CompanyStore) Get(_ context.Context, id string) (*domain.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	company, ok := s.companies[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &company, nil
}

// List returns all companies, ordered by name for stable output.
func (s *CompanyStore) List(_ context.Context) ([]domain.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Company, 0, len(s.companies))
	for _, company := range s.companies {
		result = append(result, company)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].CompanyID < result[j].CompanyID
	})
	return result, nil
}
