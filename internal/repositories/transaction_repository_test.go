package repositories

import (
	"testing"
	"time"

	"finboard/internal/database"
	"finboard/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestTransactionRepository(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

type TransactionRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo TransactionRepositoryInterface
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TransactionRepositorySuite) newTransaction(id int64, userID string, overrides func(*models.Transaction)) *models.Transaction {
	txn := &models.Transaction{
		ID:       id,
		Date:     time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.NewFromFloat(100.50),
		Name:     "Office Supplies",
		Category: models.CategoryExpense,
		Status:   models.StatusCompleted,
		UserID:   userID,
	}
	if overrides != nil {
		overrides(txn)
	}
	return txn
}

func (s *TransactionRepositorySuite) TestCreate() {
	txn := s.newTransaction(1, "user-1", nil)

	err := s.repo.Create(txn)
	s.NoError(err)
	s.NotZero(txn.CreatedAt)
}

func (s *TransactionRepositorySuite) TestCreate_DuplicateID() {
	s.NoError(s.repo.Create(s.newTransaction(1, "user-1", nil)))

	err := s.repo.Create(s.newTransaction(1, "user-2", nil))
	s.ErrorIs(err, ErrDuplicateTransaction)
}

func (s *TransactionRepositorySuite) TestGetByID() {
	s.NoError(s.repo.Create(s.newTransaction(42, "user-1", nil)))

	found, err := s.repo.GetByID(42)
	s.NoError(err)
	s.Equal(int64(42), found.ID)
	s.Equal("user-1", found.UserID)

	_, err = s.repo.GetByID(7000)
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestExists() {
	s.NoError(s.repo.Create(s.newTransaction(5, "user-1", nil)))

	exists, err := s.repo.Exists(5)
	s.NoError(err)
	s.True(exists)

	exists, err = s.repo.Exists(6)
	s.NoError(err)
	s.False(exists)
}

func (s *TransactionRepositorySuite) TestGetWithFilters_ScopedToUser() {
	s.NoError(s.repo.Create(s.newTransaction(1, "user-a", nil)))
	s.NoError(s.repo.Create(s.newTransaction(2, "user-a", nil)))
	s.NoError(s.repo.Create(s.newTransaction(3, "user-b", nil)))

	transactions, total, err := s.repo.GetWithFilters(
		models.TransactionFilters{UserID: "user-a"},
		models.ListParams{Page: 1, Limit: 10, SortBy: "date", SortOrder: models.SortOrderDesc},
	)
	s.NoError(err)
	s.Equal(int64(2), total)
	s.Len(transactions, 2)
	for _, txn := range transactions {
		s.Equal("user-a", txn.UserID)
	}
}

func (s *TransactionRepositorySuite) TestGetWithFilters_Search() {
	s.NoError(s.repo.Create(s.newTransaction(1, "user-a", func(t *models.Transaction) {
		t.Name = "Cloud Hosting"
	})))
	s.NoError(s.repo.Create(s.newTransaction(2, "user-a", func(t *models.Transaction) {
		t.Name = "Lunch"
		t.Description = "Team lunch at the hosting conference"
	})))
	s.NoError(s.repo.Create(s.newTransaction(3, "user-a", func(t *models.Transaction) {
		t.Name = "Printer Paper"
	})))

	transactions, total, err := s.repo.GetWithFilters(
		models.TransactionFilters{UserID: "user-a", Search: "HOSTING"},
		models.ListParams{Page: 1, Limit: 10, SortBy: "id", SortOrder: models.SortOrderAsc},
	)
	s.NoError(err)
	s.Equal(int64(2), total)
	s.Len(transactions, 2)
	s.Equal(int64(1), transactions[0].ID)
	s.Equal(int64(2), transactions[1].ID)
}

func (s *TransactionRepositorySuite) TestGetWithFilters_CategoryAndStatus() {
	s.NoError(s.repo.Create(s.newTransaction(1, "user-a", func(t *models.Transaction) {
		t.Category = models.CategoryRevenue
		t.Status = models.StatusCompleted
	})))
	s.NoError(s.repo.Create(s.newTransaction(2, "user-a", func(t *models.Transaction) {
		t.Category = models.CategoryRevenue
		t.Status = models.StatusPending
	})))
	s.NoError(s.repo.Create(s.newTransaction(3, "user-a", func(t *models.Transaction) {
		t.Category = models.CategoryExpense
	})))

	_, total, err := s.repo.GetWithFilters(
		models.TransactionFilters{UserID: "user-a", Category: models.CategoryRevenue},
		models.ListParams{Page: 1, Limit: 10, SortBy: "date", SortOrder: models.SortOrderDesc},
	)
	s.NoError(err)
	s.Equal(int64(2), total)

	_, total, err = s.repo.GetWithFilters(
		models.TransactionFilters{UserID: "user-a", Category: models.CategoryRevenue, Status: models.StatusPending},
		models.ListParams{Page: 1, Limit: 10, SortBy: "date", SortOrder: models.SortOrderDesc},
	)
	s.NoError(err)
	s.Equal(int64(1), total)

	// Unrecognized values match nothing instead of failing
	_, total, err = s.repo.GetWithFilters(
		models.TransactionFilters{UserID: "user-a", Status: "archived"},
		models.ListParams{Page: 1, Limit: 10, SortBy: "date", SortOrder: models.SortOrderDesc},
	)
	s.NoError(err)
	s.Equal(int64(0), total)
}

func (s *TransactionRepositorySuite) TestGetWithFilters_DateRange() {
	dates := []time.Time{
		time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	for i, d := range dates {
		date := d
		s.NoError(s.repo.Create(s.newTransaction(int64(i+1), "user-a", func(t *models.Transaction) {
			t.Date = date
		})))
	}

	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 28, 23, 59, 59, 0, time.UTC)

	transactions, total, err := s.repo.GetWithFilters(
		models.TransactionFilters{UserID: "user-a", DateFrom: &from, DateTo: &to},
		models.ListParams{Page: 1, Limit: 10, SortBy: "date", SortOrder: models.SortOrderAsc},
	)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Equal(int64(2), transactions[0].ID)
}

func (s *TransactionRepositorySuite) TestGetWithFilters_Pagination() {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= 25; i++ {
		day := i
		s.NoError(s.repo.Create(s.newTransaction(int64(i), "user-a", func(t *models.Transaction) {
			t.Date = base.AddDate(0, 0, day)
		})))
	}

	// Page 3 of 25 records at 10 per page holds the last 5
	transactions, total, err := s.repo.GetWithFilters(
		models.TransactionFilters{UserID: "user-a"},
		models.ListParams{Page: 3, Limit: 10, SortBy: "id", SortOrder: models.SortOrderAsc},
	)
	s.NoError(err)
	s.Equal(int64(25), total)
	s.Len(transactions, 5)
	s.Equal(int64(21), transactions[0].ID)
	s.Equal(int64(25), transactions[4].ID)

	// A page past the end is empty but keeps the total
	transactions, total, err = s.repo.GetWithFilters(
		models.TransactionFilters{UserID: "user-a"},
		models.ListParams{Page: 4, Limit: 10, SortBy: "id", SortOrder: models.SortOrderAsc},
	)
	s.NoError(err)
	s.Equal(int64(25), total)
	s.Empty(transactions)
}

func (s *TransactionRepositorySuite) TestGetWithFilters_Sorting() {
	amounts := []float64{30, 10, 20}
	for i, a := range amounts {
		amount := a
		s.NoError(s.repo.Create(s.newTransaction(int64(i+1), "user-a", func(t *models.Transaction) {
			t.Amount = decimal.NewFromFloat(amount)
		})))
	}

	transactions, _, err := s.repo.GetWithFilters(
		models.TransactionFilters{UserID: "user-a"},
		models.ListParams{Page: 1, Limit: 10, SortBy: "amount", SortOrder: models.SortOrderAsc},
	)
	s.NoError(err)
	s.Equal(int64(2), transactions[0].ID)
	s.Equal(int64(3), transactions[1].ID)
	s.Equal(int64(1), transactions[2].ID)

	transactions, _, err = s.repo.GetWithFilters(
		models.TransactionFilters{UserID: "user-a"},
		models.ListParams{Page: 1, Limit: 10, SortBy: "amount", SortOrder: models.SortOrderDesc},
	)
	s.NoError(err)
	s.Equal(int64(1), transactions[0].ID)
}

func (s *TransactionRepositorySuite) TestGetWithFilters_UnsortableField() {
	_, _, err := s.repo.GetWithFilters(
		models.TransactionFilters{UserID: "user-a"},
		models.ListParams{Page: 1, Limit: 10, SortBy: "password_hash", SortOrder: models.SortOrderAsc},
	)
	s.Error(err)
	s.Contains(err.Error(), "unsortable field")
}

func (s *TransactionRepositorySuite) TestGetAllWithFilters() {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= 3; i++ {
		day := i
		s.NoError(s.repo.Create(s.newTransaction(int64(i), "user-a", func(t *models.Transaction) {
			t.Date = base.AddDate(0, 0, day)
		})))
	}
	s.NoError(s.repo.Create(s.newTransaction(4, "user-b", nil)))

	transactions, err := s.repo.GetAllWithFilters(models.TransactionFilters{UserID: "user-a"})
	s.NoError(err)
	s.Len(transactions, 3)
	// Newest first
	s.Equal(int64(3), transactions[0].ID)
	s.Equal(int64(1), transactions[2].ID)
}

func (s *TransactionRepositorySuite) TestGetSummaryTotals() {
	s.NoError(s.repo.Create(s.newTransaction(1, "user-a", func(t *models.Transaction) {
		t.Category = models.CategoryRevenue
		t.Amount = decimal.NewFromFloat(1000)
	})))
	s.NoError(s.repo.Create(s.newTransaction(2, "user-a", func(t *models.Transaction) {
		t.Category = models.CategoryRevenue
		t.Amount = decimal.NewFromFloat(500)
	})))
	s.NoError(s.repo.Create(s.newTransaction(3, "user-a", func(t *models.Transaction) {
		t.Category = models.CategoryExpense
		t.Amount = decimal.NewFromFloat(300)
	})))
	// Pending records never count toward the summary
	s.NoError(s.repo.Create(s.newTransaction(4, "user-a", func(t *models.Transaction) {
		t.Category = models.CategoryRevenue
		t.Amount = decimal.NewFromFloat(9999)
		t.Status = models.StatusPending
	})))
	s.NoError(s.repo.Create(s.newTransaction(5, "user-b", func(t *models.Transaction) {
		t.Category = models.CategoryRevenue
		t.Amount = decimal.NewFromFloat(777)
	})))

	revenue, expenses, err := s.repo.GetSummaryTotals("user-a")
	s.NoError(err)
	s.True(revenue.Equal(decimal.NewFromFloat(1500)), "revenue = %s", revenue)
	s.True(expenses.Equal(decimal.NewFromFloat(300)), "expenses = %s", expenses)
}

func (s *TransactionRepositorySuite) TestGetSummaryTotals_NoRecords() {
	revenue, expenses, err := s.repo.GetSummaryTotals("nobody")
	s.NoError(err)
	s.True(revenue.IsZero())
	s.True(expenses.IsZero())
}

func (s *TransactionRepositorySuite) TestGetCompletedSince() {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	s.NoError(s.repo.Create(s.newTransaction(1, "user-a", func(t *models.Transaction) {
		t.Date = now.AddDate(0, -1, 0)
	})))
	s.NoError(s.repo.Create(s.newTransaction(2, "user-a", func(t *models.Transaction) {
		t.Date = now.AddDate(-2, 0, 0)
	})))
	s.NoError(s.repo.Create(s.newTransaction(3, "user-a", func(t *models.Transaction) {
		t.Date = now.AddDate(0, -2, 0)
		t.Status = models.StatusFailed
	})))

	transactions, err := s.repo.GetCompletedSince("user-a", now.AddDate(-1, 0, 0))
	s.NoError(err)
	s.Len(transactions, 1)
	s.Equal(int64(1), transactions[0].ID)
}

func (s *TransactionRepositorySuite) TestGetCategoryBreakdown() {
	s.NoError(s.repo.Create(s.newTransaction(1, "user-a", func(t *models.Transaction) {
		t.Category = models.CategoryRevenue
		t.Amount = decimal.NewFromFloat(100)
	})))
	s.NoError(s.repo.Create(s.newTransaction(2, "user-a", func(t *models.Transaction) {
		t.Category = models.CategoryRevenue
		t.Amount = decimal.NewFromFloat(50)
	})))
	s.NoError(s.repo.Create(s.newTransaction(3, "user-a", func(t *models.Transaction) {
		t.Category = models.CategoryExpense
		t.Amount = decimal.NewFromFloat(25)
	})))

	breakdown, err := s.repo.GetCategoryBreakdown("user-a")
	s.NoError(err)
	s.Len(breakdown, 2)

	// Ordered by category name
	s.Equal(models.CategoryExpense, breakdown[0].Category)
	s.True(breakdown[0].Total.Equal(decimal.NewFromFloat(25)))
	s.Equal(int64(1), breakdown[0].Count)

	s.Equal(models.CategoryRevenue, breakdown[1].Category)
	s.True(breakdown[1].Total.Equal(decimal.NewFromFloat(150)))
	s.Equal(int64(2), breakdown[1].Count)
}

func (s *TransactionRepositorySuite) TestGetCategoryBreakdown_Empty() {
	breakdown, err := s.repo.GetCategoryBreakdown("nobody")
	s.NoError(err)
	s.Empty(breakdown)
}
