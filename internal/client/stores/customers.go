package stores

import (
	"context"

	"github.com/aidirectory/adminctl/internal/client/api"
	"github.com/aidirectory/adminctl/internal/client/models"
	"github.com/aidirectory/adminctl/internal/logging"
)

// CustomerStore owns the customer collection. Block and Unblock mutate only
// the flag on the matching element, without a full re-fetch.
type CustomerStore struct {
	opState
	api api.Client

	customers []models.Customer
}

func NewCustomerStore(c api.Client, log logging.Logger) *CustomerStore {
	s := &CustomerStore{api: c}
	s.log = log
	return s
}

func (s *CustomerStore) Fetch(ctx context.Context) error {
	if err := s.begin(); err != nil {
		return err
	}
	customers, err := s.api.ListCustomers(ctx)
	if err != nil {
		s.fail(ctx, "fetch customers", err)
		return err
	}
	s.finish(func() {
		s.customers = customers
	})
	return nil
}

// Block marks the customer blocked. IsActive is untouched: blocked and active
// are independent flags.
func (s *CustomerStore) Block(ctx context.Context, id string) error {
	return s.setBlocked(ctx, "block customer", id, true)
}

// Unblock clears the blocked flag.
func (s *CustomerStore) Unblock(ctx context.Context, id string) error {
	return s.setBlocked(ctx, "unblock customer", id, false)
}

func (s *CustomerStore) setBlocked(ctx context.Context, op, id string, blocked bool) error {
	if err := s.begin(); err != nil {
		return err
	}
	var err error
	if blocked {
		err = s.api.BlockCustomer(ctx, id)
	} else {
		err = s.api.UnblockCustomer(ctx, id)
	}
	if err != nil {
		s.fail(ctx, op, err)
		return err
	}
	s.finish(func() {
		for i := range s.customers {
			if s.customers[i].ID == id {
				s.customers[i].IsBlocked = blocked
				break
			}
		}
	})
	return nil
}

// Update applies a partial edit and replaces the matching element with the
// server's canonical record.
func (s *CustomerStore) Update(ctx context.Context, id string, u models.CustomerUpdate) error {
	if err := s.begin(); err != nil {
		return err
	}
	customer, err := s.api.UpdateCustomer(ctx, id, u)
	if err != nil {
		s.fail(ctx, "update customer", err)
		return err
	}
	s.finish(func() {
		for i := range s.customers {
			if s.customers[i].ID == id {
				s.customers[i] = *customer
				break
			}
		}
	})
	return nil
}

func (s *CustomerStore) Delete(ctx context.Context, id string) error {
	if err := s.begin(); err != nil {
		return err
	}
	if err := s.api.DeleteCustomer(ctx, id); err != nil {
		s.fail(ctx, "delete customer", err)
		return err
	}
	s.finish(func() {
		kept := s.customers[:0]
		for _, c := range s.customers {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		s.customers = kept
	})
	return nil
}

// Customers returns a copy of the collection in server order.
func (s *CustomerStore) Customers() []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	customers := make([]models.Customer, len(s.customers))
	copy(customers, s.customers)
	return customers
}
