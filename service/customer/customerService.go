package customer

import (
	"context"

	"github.com/perpetual-pelican/vidly-backend/model"
	crepo "github.com/perpetual-pelican/vidly-backend/repository/customer"
)

type Service interface {
	List(ctx context.Context) ([]model.Customer, error)
	ByID(ctx context.Context, id string) (*model.Customer, error)
	Create(ctx context.Context, req model.CreateCustomerReq) (*model.Customer, error)
	Update(ctx context.Context, c *model.Customer, req model.UpdateCustomerReq) (*model.Customer, error)
	Delete(ctx context.Context, id string) error
}

type service struct{ r crepo.Repo }

func New(r crepo.Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context) ([]model.Customer, error) {
	return s.r.List(ctx)
}

func (s *service) ByID(ctx context.Context, id string) (*model.Customer, error) {
	return s.r.ByID(ctx, id)
}

func (s *service) Create(ctx context.Context, req model.CreateCustomerReq) (*model.Customer, error) {
	c := &model.Customer{Name: req.Name, Phone: req.Phone}
	if req.IsGold != nil {
		c.IsGold = *req.IsGold
	}
	if err := s.r.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, c *model.Customer, req model.UpdateCustomerReq) (*model.Customer, error) {
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.IsGold != nil {
		c.IsGold = *req.IsGold
	}
	if err := s.r.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.r.Delete(ctx, id)
}
