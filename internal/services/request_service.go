package services

import (
	"strings"
	"time"

	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/models"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/store"
)

// RequestService handles purchase request submission and listing. Lists are
// always filtered to the owner; there is no global list, and no status
// transition after creation.
type RequestService interface {
	ListRequestsFor(email string) []models.Request
	SubmitRequest(ownerEmail, requestType string, items []models.RequestItem) (models.Request, error)
}

type requestService struct {
	store *store.Store
}

// NewRequestService creates a new instance of RequestService
func NewRequestService(st *store.Store) RequestService {
	return &requestService{store: st}
}

func (s *requestService) ListRequestsFor(email string) []models.Request {
	requests := []models.Request{}
	s.store.View(func(doc *models.Document) {
		for _, r := range doc.Requests {
			if r.EmployeeEmail == email {
				requests = append(requests, r)
			}
		}
	})
	return requests
}

func (s *requestService) SubmitRequest(ownerEmail, requestType string, items []models.RequestItem) (models.Request, error) {
	requestType = strings.TrimSpace(requestType)
	if requestType == "" {
		return models.Request{}, models.NewDomainError(models.ErrValidationFailed, "Request type is required.")
	}

	// Rows without a name are skipped; quantities below one take the form
	// default of one.
	named := make([]models.RequestItem, 0, len(items))
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			continue
		}
		qty := item.Qty
		if qty < 1 {
			qty = 1
		}
		named = append(named, models.RequestItem{Name: name, Qty: qty})
	}
	if len(named) == 0 {
		return models.Request{}, models.NewDomainError(models.ErrValidationFailed, "Please add at least one item.")
	}

	request := models.Request{
		ID:            store.NextID(),
		Type:          requestType,
		Items:         named,
		Status:        models.StatusPending,
		Date:          time.Now().Format("1/2/2006"),
		EmployeeEmail: ownerEmail,
	}

	err := s.store.Update(func(doc *models.Document) error {
		doc.Requests = append(doc.Requests, request)
		return nil
	})
	if err != nil {
		return models.Request{}, err
	}
	return request, nil
}
