package requests

type FetchAllAccountsRequest struct {
	Name   string `query:"name"`
	Email  string `query:"email"`
	Limit  uint64 `query:"limit" default:"0" validate:"lte=500"`
	Offset uint64 `query:"offset"`
}
