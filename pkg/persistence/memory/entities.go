package memory

import (
	"context"
	"sort"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/models"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/persistence"
)

type bikeRepository struct{ p *Persistence }

func (r *bikeRepository) GetAll(_ context.Context) ([]*models.Bike, error) {
	r.p.mu.RLock()
	defer r.p.mu.RUnlock()

	bikes := make([]*models.Bike, 0, len(r.p.bikes))
	for _, bike := range r.p.bikes {
		clone := *bike
		bikes = append(bikes, &clone)
	}

	sort.Slice(bikes, func(i, j int) bool { return bikes[i].ID < bikes[j].ID })

	return bikes, nil
}

func (r *bikeRepository) GetByID(_ context.Context, id string) (*models.Bike, error) {
	r.p.mu.RLock()
	defer r.p.mu.RUnlock()

	bike, ok := r.p.bikes[id]
	if !ok {
		return nil, persistence.ErrBikeNotFound
	}

	clone := *bike

	return &clone, nil
}

func (r *bikeRepository) Save(_ context.Context, bike *models.Bike) error {
	r.p.mu.Lock()
	defer r.p.mu.Unlock()

	clone := *bike
	r.p.bikes[bike.ID] = &clone

	return nil
}

func (r *bikeRepository) Delete(_ context.Context, id string) error {
	r.p.mu.Lock()
	defer r.p.mu.Unlock()

	if _, ok := r.p.bikes[id]; !ok {
		return persistence.ErrBikeNotFound
	}

	delete(r.p.bikes, id)

	return nil
}

type customerRepository struct{ p *Persistence }

func (r *customerRepository) GetAll(_ context.Context) ([]*models.Customer, error) {
	r.p.mu.RLock()
	defer r.p.mu.RUnlock()

	customers := make([]*models.Customer, 0, len(r.p.customers))
	for _, customer := range r.p.customers {
		clone := *customer
		customers = append(customers, &clone)
	}

	sort.Slice(customers, func(i, j int) bool { return customers[i].ID < customers[j].ID })

	return customers, nil
}

func (r *customerRepository) GetByID(_ context.Context, id string) (*models.Customer, error) {
	r.p.mu.RLock()
	defer r.p.mu.RUnlock()

	customer, ok := r.p.customers[id]
	if !ok {
		return nil, persistence.ErrCustomerNotFound
	}

	clone := *customer

	return &clone, nil
}

func (r *customerRepository) Save(_ context.Context, customer *models.Customer) error {
	r.p.mu.Lock()
	defer r.p.mu.Unlock()

	clone := *customer
	r.p.customers[customer.ID] = &clone

	return nil
}

func (r *customerRepository) Delete(_ context.Context, id string) error {
	r.p.mu.Lock()
	defer r.p.mu.Unlock()

	if _, ok := r.p.customers[id]; !ok {
		return persistence.ErrCustomerNotFound
	}

	delete(r.p.customers, id)

	return nil
}

type itemRepository struct{ p *Persistence }

func (r *itemRepository) GetAll(_ context.Context) ([]*models.Item, error) {
	r.p.mu.RLock()
	defer r.p.mu.RUnlock()

	items := make([]*models.Item, 0, len(r.p.items))
	for _, item := range r.p.items {
		clone := *item
		items = append(items, &clone)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	return items, nil
}

func (r *itemRepository) GetByID(_ context.Context, id string) (*models.Item, error) {
	r.p.mu.RLock()
	defer r.p.mu.RUnlock()

	item, ok := r.p.items[id]
	if !ok {
		return nil, persistence.ErrItemNotFound
	}

	clone := *item

	return &clone, nil
}

func (r *itemRepository) Save(_ context.Context, item *models.Item) error {
	r.p.mu.Lock()
	defer r.p.mu.Unlock()

	clone := *item
	r.p.items[item.ID] = &clone

	return nil
}

func (r *itemRepository) Delete(_ context.Context, id string) error {
	r.p.mu.Lock()
	defer r.p.mu.Unlock()

	if _, ok := r.p.items[id]; !ok {
		return persistence.ErrItemNotFound
	}

	delete(r.p.items, id)

	return nil
}

type repairRepository struct{ p *Persistence }

func (r *repairRepository) GetAll(_ context.Context) ([]*models.Repair, error) {
	r.p.mu.RLock()
	defer r.p.mu.RUnlock()

	repairs := make([]*models.Repair, 0, len(r.p.repairs))
	for _, repair := range r.p.repairs {
		clone := *repair
		repairs = append(repairs, &clone)
	}

	sort.Slice(repairs, func(i, j int) bool { return repairs[i].ID < repairs[j].ID })

	return repairs, nil
}

func (r *repairRepository) GetByID(_ context.Context, id string) (*models.Repair, error) {
	r.p.mu.RLock()
	defer r.p.mu.RUnlock()

	repair, ok := r.p.repairs[id]
	if !ok {
		return nil, persistence.ErrRepairNotFound
	}

	clone := *repair

	return &clone, nil
}

func (r *repairRepository) Save(_ context.Context, repair *models.Repair) error {
	r.p.mu.Lock()
	defer r.p.mu.Unlock()

	clone := *repair
	r.p.repairs[repair.ID] = &clone

	return nil
}

func (r *repairRepository) Delete(_ context.Context, id string) error {
	r.p.mu.Lock()
	defer r.p.mu.Unlock()

	if _, ok := r.p.repairs[id]; !ok {
		return persistence.ErrRepairNotFound
	}

	delete(r.p.repairs, id)

	return nil
}

type userRepository struct{ p *Persistence }

func (r *userRepository) GetAll(_ context.Context) ([]*models.User, error) {
	r.p.mu.RLock()
	defer r.p.mu.RUnlock()

	users := make([]*models.User, 0, len(r.p.users))
	for _, user := range r.p.users {
		clone := *user
		users = append(users, &clone)
	}

	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	return users, nil
}

func (r *userRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	r.p.mu.RLock()
	defer r.p.mu.RUnlock()

	user, ok := r.p.users[id]
	if !ok {
		return nil, persistence.ErrUserNotFound
	}

	clone := *user

	return &clone, nil
}

func (r *userRepository) Save(_ context.Context, user *models.User) error {
	r.p.mu.Lock()
	defer r.p.mu.Unlock()

	clone := *user
	r.p.users[user.ID] = &clone

	return nil
}

func (r *userRepository) Delete(_ context.Context, id string) error {
	r.p.mu.Lock()
	defer r.p.mu.Unlock()

	if _, ok := r.p.users[id]; !ok {
		return persistence.ErrUserNotFound
	}

	delete(r.p.users, id)

	return nil
}
