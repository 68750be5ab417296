package postgres

import (
	"context"
	"errors"
	"testing"

	"advocates/internal/model"
	"advocates/internal/repository"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var advocateRowColumns = []string{"id", "first_name", "last_name", "city", "degree", "specialties", "years_of_experience", "phone_number"}

func TestAdvocatePostgres_Search(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAdvocatePostgres(db)
	ctx := context.Background()

	t.Run("no filter", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM advocates$").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

		rows := sqlmock.NewRows(advocateRowColumns).
			AddRow("id-1", "Jane", "Doe", "Austin", "MD", []byte(`["Bipolar","LGBTQ"]`), 7, "5551234567")

		mock.ExpectQuery("SELECT (.+) FROM advocates ORDER BY (.+) LIMIT \\$1 OFFSET \\$2").
			WithArgs(10, 10).
			WillReturnRows(rows)

		res, err := repo.Search(ctx, repository.AdvocateFilter{}, repository.PageQuery{Limit: 10, Offset: 10})

		require.NoError(t, err)
		assert.Equal(t, 12, res.Total)
		require.Len(t, res.Items, 1)
		assert.Equal(t, []string{"Bipolar", "LGBTQ"}, res.Items[0].Specialties)
		assert.Equal(t, 7, res.Items[0].YearsOfExperience)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("escaped substring filter", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM advocates WHERE search_text LIKE \\$1").
			WithArgs(`%100\%%`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		mock.ExpectQuery("SELECT (.+) FROM advocates WHERE search_text LIKE \\$1 (.+) LIMIT \\$2 OFFSET \\$3").
			WithArgs(`%100\%%`, 5, 0).
			WillReturnRows(sqlmock.NewRows(advocateRowColumns))

		res, err := repo.Search(ctx, repository.AdvocateFilter{Search: "100%"}, repository.PageQuery{Limit: 5, Offset: 0})

		require.NoError(t, err)
		assert.Equal(t, 0, res.Total)
		assert.NotNil(t, res.Items)
		assert.Empty(t, res.Items)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("count error", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("connection reset"))

		res, err := repo.Search(ctx, repository.AdvocateFilter{}, repository.PageQuery{Limit: 10})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "count advocates: connection reset")
		assert.Nil(t, res)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("bad specialties payload", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("SELECT (.+) FROM advocates").
			WithArgs(10, 0).
			WillReturnRows(sqlmock.NewRows(advocateRowColumns).
				AddRow("id-1", "Jane", "Doe", "Austin", "MD", []byte(`not-json`), 7, "5551234567"))

		res, err := repo.Search(ctx, repository.AdvocateFilter{}, repository.PageQuery{Limit: 10})

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAdvocatePostgres_Count(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM advocates").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(15))

	n, err := NewAdvocatePostgres(db).Count(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 15, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdvocatePostgres_InsertMany(t *testing.T) {
	a := model.Advocate{
		ID:                "id-1",
		FirstName:         "Jane",
		LastName:          "Doe",
		City:              "Austin",
		Degree:            "MD",
		YearsOfExperience: 3,
		PhoneNumber:       "5551234567",
	}

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		prep := mock.ExpectPrepare("INSERT INTO advocates")
		prep.ExpectExec().
			WithArgs("id-1", "Jane", "Doe", "Austin", "MD", "[]", 3, "5551234567", "jane doe austin md 3").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err = NewAdvocatePostgres(db).InsertMany(context.Background(), []model.Advocate{a})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		prep := mock.ExpectPrepare("INSERT INTO advocates")
		prep.ExpectExec().WillReturnError(errors.New("duplicate"))
		mock.ExpectRollback()

		err = NewAdvocatePostgres(db).InsertMany(context.Background(), []model.Advocate{a})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "insert advocate id-1: duplicate")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
