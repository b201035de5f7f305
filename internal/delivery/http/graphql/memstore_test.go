package graphql

import (
	"context"
	"sort"
	"strings"
	"sync"

	"sews/internal/domain/entity"
	"sews/internal/domain/repository"

	"github.com/google/uuid"
)

// memStore is an in-memory credential store and catalogue. It serves as both
// the RepositoryFactory and the TransactionManager; transactions are not isolated.
type memStore struct {
	mu        sync.Mutex
	customers map[uuid.UUID]*entity.Customer
	tailors   map[uuid.UUID]*entity.Tailor
	styles    map[uuid.UUID]*entity.ClothingStyle
	products  map[uuid.UUID]*entity.TailorProduct
}

func newMemStore() *memStore {
	return &memStore{
		customers: map[uuid.UUID]*entity.Customer{},
		tailors:   map[uuid.UUID]*entity.Tailor{},
		styles:    map[uuid.UUID]*entity.ClothingStyle{},
		products:  map[uuid.UUID]*entity.TailorProduct{},
	}
}

func (s *memStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s)
}

func (s *memStore) CustomerRepo() repository.CustomerRepository           { return memCustomers{s} }
func (s *memStore) TailorRepo() repository.TailorRepository               { return memTailors{s} }
func (s *memStore) ClothingStyleRepo() repository.ClothingStyleRepository { return memStyles{s} }
func (s *memStore) TailorProductRepo() repository.TailorProductRepository { return memProducts{s} }

type memCustomers struct{ s *memStore }

func (r memCustomers) FindByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.customers[id]; ok {
		cp := *c
		return &cp, nil
	}

	return nil, repository.ErrCustomerNotFound
}

func (r memCustomers) FindByEmail(_ context.Context, email string) (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.customers {
		if strings.EqualFold(c.Email, email) {
			cp := *c
			return &cp, nil
		}
	}

	return nil, repository.ErrCustomerNotFound
}

func (r memCustomers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)

	return err == nil, nil
}

func (r memCustomers) Create(_ context.Context, c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := *c
	r.s.customers[c.ID] = &cp

	return nil
}

func (r memCustomers) List(_ context.Context) ([]*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Customer, 0, len(r.s.customers))
	for _, c := range r.s.customers {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FirstName < out[j].FirstName })

	return out, nil
}

type memTailors struct{ s *memStore }

func (r memTailors) find(match func(*entity.Tailor) bool) (*entity.Tailor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.tailors {
		if match(t) {
			cp := *t
			return &cp, nil
		}
	}

	return nil, repository.ErrTailorNotFound
}

func (r memTailors) FindByID(_ context.Context, id uuid.UUID) (*entity.Tailor, error) {
	return r.find(func(t *entity.Tailor) bool { return t.ID == id })
}

func (r memTailors) FindByUsername(_ context.Context, username string) (*entity.Tailor, error) {
	return r.find(func(t *entity.Tailor) bool { return strings.EqualFold(t.Username, username) })
}

func (r memTailors) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.FindByUsername(ctx, username)

	return err == nil, nil
}

func (r memTailors) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := r.find(func(t *entity.Tailor) bool { return strings.EqualFold(t.Email, email) })

	return err == nil, nil
}

func (r memTailors) ExistsByNationalID(_ context.Context, nationalID string) (bool, error) {
	_, err := r.find(func(t *entity.Tailor) bool { return t.NationalIDNumber == nationalID })

	return err == nil, nil
}

func (r memTailors) Create(_ context.Context, t *entity.Tailor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	cp := *t
	r.s.tailors[t.ID] = &cp

	return nil
}

func (r memTailors) List(_ context.Context) ([]*entity.Tailor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Tailor, 0, len(r.s.tailors))
	for _, t := range r.s.tailors {
		cp := *t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })

	return out, nil
}

type memStyles struct{ s *memStore }

func (r memStyles) FindByID(_ context.Context, id uuid.UUID) (*entity.ClothingStyle, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if st, ok := r.s.styles[id]; ok {
		cp := *st
		return &cp, nil
	}

	return nil, repository.ErrClothingStyleNotFound
}

func (r memStyles) List(_ context.Context, activeOnly bool) ([]*entity.ClothingStyle, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.ClothingStyle{}
	for _, st := range r.s.styles {
		if activeOnly && !st.IsActive {
			continue
		}
		cp := *st
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r memStyles) Create(_ context.Context, st *entity.ClothingStyle) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if st.ID == uuid.Nil {
		st.ID = uuid.New()
	}
	cp := *st
	r.s.styles[st.ID] = &cp

	return nil
}

func (r memStyles) Update(_ context.Context, st *entity.ClothingStyle) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.styles[st.ID]; !ok {
		return repository.ErrClothingStyleNotFound
	}
	cp := *st
	r.s.styles[st.ID] = &cp

	return nil
}

func (r memStyles) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.styles[id]; !ok {
		return repository.ErrClothingStyleNotFound
	}
	delete(r.s.styles, id)

	return nil
}

func (r memStyles) DeleteAll(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := int64(len(r.s.styles))
	r.s.styles = map[uuid.UUID]*entity.ClothingStyle{}

	return n, nil
}

type memProducts struct{ s *memStore }

func (r memProducts) ListByTailor(_ context.Context, tailorID uuid.UUID) ([]*entity.TailorProduct, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.TailorProduct{}
	for _, p := range r.s.products {
		if p.TailorID == tailorID {
			cp := *p
			out = append(out, &cp)
		}
	}

	return out, nil
}

func (r memProducts) Create(_ context.Context, p *entity.TailorProduct) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	r.s.products[p.ID] = &cp

	return nil
}
