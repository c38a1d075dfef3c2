package types

// CustomerSummary là DTO cho thông tin khách trong booking
type CustomerSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
