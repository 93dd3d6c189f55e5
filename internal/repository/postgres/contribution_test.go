package postgres

import (
	"context"
	"testing"

	"masjidhub-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContributionCreateInserts(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO contributions`).
		WithArgs(int32(10), int32(3), "2026-08", int32(150000), "due").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	repo := NewContributionRepository(db)
	c := &domain.Contribution{
		SocietyID: 10, ResidentID: 3, Month: "2026-08",
		AmountCents: 150000, Status: domain.ContributionDue,
	}
	ok, err := repo.Create(context.Background(), c)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int32(42), c.ID)
}

func TestContributionCreateSkipsExistingMonth(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	// ON CONFLICT DO NOTHING returns no row when the month already exists.
	mock.ExpectQuery(`INSERT INTO contributions`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewContributionRepository(db)
	ok, err := repo.Create(context.Background(), &domain.Contribution{
		SocietyID: 10, ResidentID: 3, Month: "2026-08", Status: domain.ContributionDue,
	})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestContributionListDueByMonthParallelSlices(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM contributions c\s+JOIN residents r`).
		WithArgs("2026-08").
		WillReturnRows(sqlmock.NewRows([]string{
			"c.id", "c.society_id", "c.resident_id", "c.month", "c.amount_cents", "c.status",
			"r.id", "r.society_id", "r.name", "r.email", "r.phone_number", "r.house_number", "r.status",
		}).AddRow(1, 10, 3, "2026-08", 150000, "due", 3, 10, "R", "r@example.com", "", "H-12", "approved"))

	repo := NewContributionRepository(db)
	contributions, residents, err := repo.ListDueByMonth(context.Background(), "2026-08")
	require.NoError(t, err)
	require.Len(t, contributions, 1)
	require.Len(t, residents, 1)
	assert.Equal(t, contributions[0].ResidentID, residents[0].ID)
	assert.Equal(t, "r@example.com", residents[0].Email)
}
