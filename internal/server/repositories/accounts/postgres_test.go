package accounts

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/DATA-DOG/go-sqlmock"

	"github.com/tidemill/haulbatch/internal/common"
	"github.com/tidemill/haulbatch/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const selectQuery = `(?s)^SELECT\s+address,\s*pending_deposit,\s*pending_withdraw,\s*settled_shares,\s*updated_at\s+FROM\s+accounts\s+WHERE\s+address\s*=\s*\$1\s*$`

func TestGet_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	updated := time.Now()
	rows := sqlmock.NewRows([]string{"address", "pending_deposit", "pending_withdraw", "settled_shares", "updated_at"}).
		AddRow("user1", "100", "0", "250", updated)
	mock.ExpectQuery(selectQuery).
		WithArgs("user1").
		WillReturnRows(rows)

	got, err := repo.Get(context.Background(), "user1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Address != "user1" {
		t.Fatalf("unexpected account: %+v", got)
	}
	if !got.PendingDeposit.Equal(math.NewInt(100)) || !got.SettledShares.Equal(math.NewInt(250)) {
		t.Fatalf("unexpected amounts: %+v", got)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectQuery).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "ghost")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestGet_InvalidNumeric(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"address", "pending_deposit", "pending_withdraw", "settled_shares", "updated_at"}).
		AddRow("user1", "not-a-number", "0", "0", time.Now())
	mock.ExpectQuery(selectQuery).
		WithArgs("user1").
		WillReturnRows(rows)

	_, err := repo.Get(context.Background(), "user1")
	if err == nil || !regexp.MustCompile(`invalid numeric`).MatchString(err.Error()) {
		t.Fatalf("expected invalid numeric error, got %v", err)
	}
}

func TestSave_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+accounts\s*\(address,\s*pending_deposit,\s*pending_withdraw,\s*settled_shares,\s*updated_at\)\s*VALUES.*ON\s+CONFLICT\s*\(address\)\s+DO\s+UPDATE`

	mock.ExpectExec(q).
		WithArgs("user1", "100", "0", "250").
		WillReturnResult(sqlmock.NewResult(0, 1))

	a := &models.Account{
		Address:         "user1",
		PendingDeposit:  math.NewInt(100),
		PendingWithdraw: math.ZeroInt(),
		SettledShares:   math.NewInt(250),
	}
	if err := repo.Save(context.Background(), a); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSave_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+accounts`).
		WillReturnError(errors.New("db down"))

	a := models.NewAccount("user1")
	err := repo.Save(context.Background(), a)
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
