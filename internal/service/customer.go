package service

import (
	"context"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) Create(ctx context.Context, customer *domain.Customer) error {
	return s.customerRepo.Create(ctx, customer)
}

func (s *customerService) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}
