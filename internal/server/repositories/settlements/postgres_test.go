package settlements

import (
	"context"
	"database/sql"
	"errors"
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

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+settlements\s*\(id,\s*direction,\s*users,\s*total_requested,\s*reported,\s*measured,\s*residue,\s*created_at\)`

	mock.ExpectExec(q).
		WithArgs("b-1", "deposits", []byte(`["user1","user2"]`), "150", "75", "75", "0").
		WillReturnResult(sqlmock.NewResult(0, 1))

	s := &models.Settlement{
		ID:        "b-1",
		Direction: models.SettleDeposits,
		Users:     []string{"user1", "user2"},
		Requested: math.NewInt(150),
		Reported:  math.NewInt(75),
		Measured:  math.NewInt(75),
		Residue:   math.ZeroInt(),
	}
	if err := repo.Create(context.Background(), s); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGet_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*direction,\s*users,\s*total_requested,\s*reported,\s*measured,\s*residue,\s*created_at\s+FROM\s+settlements\s+WHERE\s+id\s*=\s*\$1\s*$`

	rows := sqlmock.NewRows([]string{"id", "direction", "users", "total_requested", "reported", "measured", "residue", "created_at"}).
		AddRow("b-1", "withdrawals", []byte(`["user1"]`), "100", "120", "120", "0", time.Now())
	mock.ExpectQuery(q).
		WithArgs("b-1").
		WillReturnRows(rows)

	got, err := repo.Get(context.Background(), "b-1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Direction != models.SettleWithdrawals {
		t.Fatalf("direction = %s, want withdrawals", got.Direction)
	}
	if len(got.Users) != 1 || got.Users[0] != "user1" {
		t.Fatalf("users = %v", got.Users)
	}
	if !got.Measured.Equal(math.NewInt(120)) {
		t.Fatalf("measured = %s, want 120", got.Measured)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+id,\s*direction`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}
