package model

type Customer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	IsGold bool   `json:"isGold"`
}

type CreateCustomerReq struct {
	Name   string `json:"name" validate:"required,min=3,max=128"`
	Phone  string `json:"phone" validate:"required,min=5,max=32"`
	IsGold *bool  `json:"isGold" validate:"omitempty"`
}

type UpdateCustomerReq struct {
	Name   *string `json:"name" validate:"omitempty,min=3,max=128"`
	Phone  *string `json:"phone" validate:"omitempty,min=5,max=32"`
	IsGold *bool   `json:"isGold"`
}

// Empty reports whether the payload carries no recognized field at all.
func (r UpdateCustomerReq) Empty() bool {
	return r.Name == nil && r.Phone == nil && r.IsGold == nil
}
