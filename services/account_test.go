package services

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/osamigbe/account-service/errors"
	"github.com/osamigbe/account-service/models"
	"github.com/osamigbe/account-service/types/requests"
)

const (
	insertAccountSQL = "INSERT INTO accounts (name,email,address,phone_number,date_joined) VALUES (?,?,?,?,?)"
	selectAccountSQL = "SELECT id, name, email, address, phone_number, date_joined FROM accounts WHERE id = ?"
	listAccountsSQL  = "SELECT id, name, email, address, phone_number, date_joined FROM accounts ORDER BY id"
	updateAccountSQL = "UPDATE accounts SET name = ?, email = ?, address = ?, phone_number = ?, date_joined = ? WHERE id = ?"
	deleteAccountSQL = "DELETE FROM accounts WHERE id = ?"
	countAccountsSQL = "SELECT COUNT(*) FROM accounts"
)

func newTestService(t *testing.T) (AccountService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewAccountService(db, zap.NewNop()), mock
}

func accountRows(accounts ...*models.Account) *sqlmock.Rows {
	rows := sqlmock.NewRows(accountColumns)
	for _, a := range accounts {
		var phone any
		if a.PhoneNumber != nil {
			phone = *a.PhoneNumber
		}
		rows.AddRow(a.ID, a.Name, a.Email, a.Address, phone, time.Time(a.DateJoined))
	}
	return rows
}

func TestCreateAccountAssignsID(t *testing.T) {
	svc, mock := newTestService(t)

	phone := "+234801234567"
	joined := models.NewDate(2020, time.January, 2)
	mock.ExpectExec(regexp.QuoteMeta(insertAccountSQL)).
		WithArgs("Jane Doe", "jane@example.com", "12 Broad Street", &phone, time.Time(joined)).
		WillReturnResult(sqlmock.NewResult(42, 1))

	account, err := svc.CreateAccount(context.Background(), &requests.CreateAccountRequest{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Address:     "12 Broad Street",
		PhoneNumber: &phone,
		DateJoined:  &joined,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(42), account.ID)
	assert.Equal(t, "2020-01-02", account.DateJoined.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAccountDefaultsDateJoined(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectExec(regexp.QuoteMeta(insertAccountSQL)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	account, err := svc.CreateAccount(context.Background(), &requests.CreateAccountRequest{
		Name:    "John Doe",
		Email:   "john@example.com",
		Address: "1 Marina Road",
	})
	require.NoError(t, err)
	assert.Equal(t, models.Today().String(), account.DateJoined.String())
	assert.Nil(t, account.PhoneNumber)
}

func TestCreateAccountDuplicateEntry(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectExec(regexp.QuoteMeta(insertAccountSQL)).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	_, err := svc.CreateAccount(context.Background(), &requests.CreateAccountRequest{
		Name:    "John Doe",
		Email:   "john@example.com",
		Address: "1 Marina Road",
	})
	require.Error(t, err)
	assert.Equal(t, 409, errors.AsAppError(err).Code)
}

func TestFetchAccount(t *testing.T) {
	svc, mock := newTestService(t)

	phone := "+234801234567"
	stored := &models.Account{
		ID:          7,
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Address:     "12 Broad Street",
		PhoneNumber: &phone,
		DateJoined:  models.NewDate(2019, time.July, 2),
	}
	mock.ExpectQuery(regexp.QuoteMeta(selectAccountSQL)).
		WithArgs(uint64(7)).
		WillReturnRows(accountRows(stored))

	account, err := svc.FetchAccount(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, stored.Name, account.Name)
	assert.Equal(t, phone, *account.PhoneNumber)
	assert.Equal(t, "2019-07-02", account.DateJoined.String())
}

func TestFetchAccountNotFound(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectAccountSQL)).
		WithArgs(uint64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := svc.FetchAccount(context.Background(), 99)
	require.Error(t, err)

	appErr := errors.AsAppError(err)
	assert.Equal(t, 404, appErr.Code)
	assert.Equal(t, errors.ErrNotFound, appErr.Type)
}

func TestFetchAllAccountsEmpty(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(regexp.QuoteMeta(listAccountsSQL)).
		WillReturnRows(accountRows())

	accounts, err := svc.FetchAllAccounts(context.Background(), &requests.FetchAllAccountsRequest{})
	require.NoError(t, err)
	assert.NotNil(t, accounts)
	assert.Len(t, accounts, 0)
}

func TestFetchAllAccountsFiltered(t *testing.T) {
	svc, mock := newTestService(t)

	stored := &models.Account{ID: 1, Name: "Jane Doe", Email: "jane@example.com", Address: "12 Broad Street", DateJoined: models.NewDate(2019, time.July, 2)}
	mock.ExpectQuery(regexp.QuoteMeta("FROM accounts WHERE name LIKE ? ORDER BY id LIMIT 10")).
		WithArgs("%Jane%").
		WillReturnRows(accountRows(stored))

	accounts, err := svc.FetchAllAccounts(context.Background(), &requests.FetchAllAccountsRequest{Name: "Jane", Limit: 10})
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Jane Doe", accounts[0].Name)
}

func TestUpdateAccountOverwritesFields(t *testing.T) {
	svc, mock := newTestService(t)

	stored := &models.Account{ID: 7, Name: "Old Name", Email: "old@example.com", Address: "Old Address", DateJoined: models.NewDate(2019, time.July, 2)}
	mock.ExpectQuery(regexp.QuoteMeta(selectAccountSQL)).
		WithArgs(uint64(7)).
		WillReturnRows(accountRows(stored))
	mock.ExpectExec(regexp.QuoteMeta(updateAccountSQL)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	account, err := svc.UpdateAccount(context.Background(), &requests.UpdateAccountRequest{
		AccountID: 7,
		Name:      "New Name",
		Email:     "new@example.com",
		Address:   "New Address",
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(7), account.ID)
	assert.Equal(t, "New Name", account.Name)
	assert.Equal(t, "2019-07-02", account.DateJoined.String(), "date_joined preserved when not supplied")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAccountNotFound(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectAccountSQL)).
		WithArgs(uint64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := svc.UpdateAccount(context.Background(), &requests.UpdateAccountRequest{
		AccountID: 99,
		Name:      "New Name",
		Email:     "new@example.com",
		Address:   "New Address",
	})
	require.Error(t, err)
	assert.Equal(t, 404, errors.AsAppError(err).Code)
	require.NoError(t, mock.ExpectationsWereMet(), "no write should happen for an unknown id")
}

func TestDeleteAccountIdempotent(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteAccountSQL)).
		WithArgs(uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteAccountSQL)).
		WithArgs(uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, svc.DeleteAccount(context.Background(), 7))
	require.NoError(t, svc.DeleteAccount(context.Background(), 7), "deleting an absent row is a no-op")
}

func TestCountAccounts(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(regexp.QuoteMeta(countAccountsSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(3))

	count, err := svc.CountAccounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(3), count)
}
