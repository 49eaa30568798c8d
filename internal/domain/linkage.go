package domain

// ClientAccountLink is the value object the two services exchange to
// request creation or removal of a cross-service linkage record.
// It carries no identity of its own and is immutable once built.
type ClientAccountLink struct {
	AccountID int64 `json:"account_id" validate:"required"`
	ClientID  int64 `json:"client_id"  validate:"required"`
}
