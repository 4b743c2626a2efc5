package health

import "context"

// Counter reports how many records are stored.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// Status is the health payload.
type Status struct {
	OK      bool `json:"ok"`
	Records int  `json:"records"`
}

// Service encapsulates health-related checks.
type Service struct {
	store Counter
}

// NewService constructs a new health service.
func NewService(store Counter) *Service {
	return &Service{store: store}
}

// Status reports liveness and the number of stored records. A store that
// cannot be read reports ok=false.
func (s *Service) Status(ctx context.Context) Status {
	if s == nil || s.store == nil {
		return Status{OK: true}
	}
	n, err := s.store.Count(ctx)
	if err != nil {
		return Status{OK: false}
	}
	return Status{OK: true, Records: n}
}
