package services

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/osamigbe/account-service/errors"
	"github.com/osamigbe/account-service/models"
	"github.com/osamigbe/account-service/types/requests"
)

type AccountService interface {
	CreateAccount(context.Context, *requests.CreateAccountRequest) (*models.Account, error)
	FetchAccount(ctx context.Context, id uint64) (*models.Account, error)
	FetchAllAccounts(context.Context, *requests.FetchAllAccountsRequest) ([]*models.Account, error)
	UpdateAccount(context.Context, *requests.UpdateAccountRequest) (*models.Account, error)
	DeleteAccount(ctx context.Context, id uint64) error

	CountAccounts(ctx context.Context) (uint64, error)
}

func NewAccountService(dataDatabase *sql.DB, log *zap.Logger) AccountService {
	return &accountService{
		service{
			dataDB: dataDatabase,
			log:    log,
		},
	}
}

type accountService struct {
	service
}

func (a *accountService) CreateAccount(ctx context.Context, req *requests.CreateAccountRequest) (*models.Account, error) {
	account := &models.Account{
		Name:        req.Name,
		Email:       req.Email,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		DateJoined:  models.Today(),
	}
	if req.DateJoined != nil {
		account.DateJoined = *req.DateJoined
	}

	res, err := sq.
		Insert("accounts").
		Columns("name", "email", "address", "phone_number", "date_joined").
		Values(account.Name, account.Email, account.Address, account.PhoneNumber, account.DateJoined).
		RunWith(a.dataDB).
		ExecContext(ctx)

	if err != nil {
		return nil, errors.HandleDataDBError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.HandleDataDBError(err)
	}
	account.ID = uint64(id)

	a.log.Info("account created", zap.Uint64("id", account.ID))

	return account, nil
}

func (a *accountService) FetchAccount(ctx context.Context, id uint64) (*models.Account, error) {
	row := sq.
		Select(accountColumns...).
		From("accounts").
		Where(sq.Eq{"id": id}).
		RunWith(a.dataDB).
		QueryRowContext(ctx)

	account := new(models.Account)
	err := row.Scan(&account.ID, &account.Name, &account.Email, &account.Address, &account.PhoneNumber, &account.DateJoined)
	if err != nil {
		return nil, errors.HandleDataDBError(err)
	}

	return account, nil
}

func (a *accountService) FetchAllAccounts(ctx context.Context, req *requests.FetchAllAccountsRequest) ([]*models.Account, error) {
	stmt := sq.
		Select(accountColumns...).
		From("accounts").
		OrderBy("id")

	if req.Name != "" {
		stmt = stmt.Where(sq.Like{"name": "%" + req.Name + "%"})
	}
	if req.Email != "" {
		stmt = stmt.Where(sq.Eq{"email": req.Email})
	}
	if req.Limit > 0 {
		stmt = stmt.Limit(req.Limit).Offset(req.Offset)
	}

	rows, err := stmt.RunWith(a.dataDB).QueryContext(ctx)
	if err != nil {
		return nil, errors.HandleDataDBError(err)
	}
	defer rows.Close()

	accounts := make([]*models.Account, 0)
	for rows.Next() {
		account := new(models.Account)
		if err := rows.Scan(&account.ID, &account.Name, &account.Email, &account.Address, &account.PhoneNumber, &account.DateJoined); err != nil {
			return nil, errors.HandleDataDBError(err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.HandleDataDBError(err)
	}

	return accounts, nil
}

func (a *accountService) UpdateAccount(ctx context.Context, req *requests.UpdateAccountRequest) (*models.Account, error) {
	account, err := a.FetchAccount(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}

	account.Name = req.Name
	account.Email = req.Email
	account.Address = req.Address
	account.PhoneNumber = req.PhoneNumber
	if req.DateJoined != nil {
		account.DateJoined = *req.DateJoined
	}

	_, err = sq.
		Update("accounts").
		Set("name", account.Name).
		Set("email", account.Email).
		Set("address", account.Address).
		Set("phone_number", account.PhoneNumber).
		Set("date_joined", account.DateJoined).
		Where(sq.Eq{"id": account.ID}).
		RunWith(a.dataDB).
		ExecContext(ctx)

	if err != nil {
		return nil, errors.HandleDataDBError(err)
	}

	a.log.Info("account updated", zap.Uint64("id", account.ID))

	return account, nil
}

// DeleteAccount removes the row if it exists. Deleting an absent id is a
// no-op so the operation stays idempotent.
func (a *accountService) DeleteAccount(ctx context.Context, id uint64) error {
	_, err := sq.
		Delete("accounts").
		Where(sq.Eq{"id": id}).
		RunWith(a.dataDB).
		ExecContext(ctx)

	if err != nil {
		return errors.HandleDataDBError(err)
	}

	a.log.Info("account deleted", zap.Uint64("id", id))

	return nil
}

func (a *accountService) CountAccounts(ctx context.Context) (uint64, error) {
	row := sq.
		Select("COUNT(*)").
		From("accounts").
		RunWith(a.dataDB).
		QueryRowContext(ctx)

	var count uint64
	if err := row.Scan(&count); err != nil {
		return 0, errors.HandleDataDBError(err)
	}

	return count, nil
}
