package memory

import (
	"context"
	"sort"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/models"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/persistence"
)

type transactionRepository struct{ p *Persistence }

func (r *transactionRepository) GetAll(_ context.Context) ([]*models.Transaction, error) {
	r.p.mu.RLock()
	defer r.p.mu.RUnlock()

	transactions := make([]*models.Transaction, 0, len(r.p.transactions))
	for _, transaction := range r.p.transactions {
		clone := *transaction
		transactions = append(transactions, &clone)
	}

	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].TransactionNum < transactions[j].TransactionNum
	})

	return transactions, nil
}

func (r *transactionRepository) GetByID(_ context.Context, id string) (*models.Transaction, error) {
	r.p.mu.RLock()
	defer r.p.mu.RUnlock()

	transaction, ok := r.p.transactions[id]
	if !ok {
		return nil, persistence.ErrTransactionNotFound
	}

	clone := *transaction

	return &clone, nil
}

func (r *transactionRepository) Save(_ context.Context, transaction *models.Transaction) error {
	r.p.mu.Lock()
	defer r.p.mu.Unlock()

	if existing, ok := r.p.transactions[transaction.ID]; ok {
		transaction.TransactionNum = existing.TransactionNum
	} else {
		transaction.TransactionNum = r.p.nextTransactionNum
		r.p.nextTransactionNum++
	}

	clone := *transaction
	r.p.transactions[transaction.ID] = &clone

	return nil
}

func (r *transactionRepository) Delete(_ context.Context, id string) error {
	r.p.mu.Lock()
	defer r.p.mu.Unlock()

	if _, ok := r.p.transactions[id]; !ok {
		return persistence.ErrTransactionNotFound
	}

	delete(r.p.transactions, id)

	// Cascade, mirroring the schema-level FK behavior.
	for stepID, step := range r.p.steps {
		if step.TransactionID == id {
			delete(r.p.steps, stepID)
		}
	}

	return nil
}

func (r *transactionRepository) Exists(_ context.Context, id string) (bool, error) {
	r.p.mu.RLock()
	defer r.p.mu.RUnlock()

	_, ok := r.p.transactions[id]

	return ok, nil
}

func (r *transactionRepository) GetContext(_ context.Context, id string) (*models.TransactionContext, error) {
	r.p.mu.RLock()
	defer r.p.mu.RUnlock()

	transaction, ok := r.p.transactions[id]
	if !ok {
		return nil, persistence.ErrTransactionNotFound
	}

	tctx := &models.TransactionContext{
		TransactionID:  transaction.ID,
		TransactionNum: transaction.TransactionNum,
		TotalCost:      transaction.TotalCost,
		IsCompleted:    transaction.IsCompleted,
		IsPaid:         transaction.IsPaid,
	}

	if transaction.BikeID != nil {
		if bike, ok := r.p.bikes[*transaction.BikeID]; ok {
			tctx.Bike = &models.BikeSummary{
				Make:      bike.Make,
				Model:     bike.Model,
				Condition: bike.Condition,
			}
		}
	}

	if transaction.CustomerID != nil {
		if customer, ok := r.p.customers[*transaction.CustomerID]; ok {
			tctx.Customer = &models.CustomerSummary{
				FirstName: customer.FirstName,
				LastName:  customer.LastName,
			}
		}
	}

	return tctx, nil
}
