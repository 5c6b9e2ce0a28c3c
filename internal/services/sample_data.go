package services

import (
	"fmt"
	"log/slog"
	"time"

	"finboard/internal/models"
	"finboard/internal/repositories"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

// SampleDataService seeds demo transactions for a user. It backs the
// development-only seed endpoint and is never wired in production.
type SampleDataService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	logger          *slog.Logger
}

// NewSampleDataService creates a new sample data service
func NewSampleDataService(
	transactionRepo repositories.TransactionRepositoryInterface,
	logger *slog.Logger,
) *SampleDataService {
	return &SampleDataService{
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// SeedTransactions generates count fake transactions owned by the given
// user, spread over the trailing year so the analytics views have data to
// show. Returns the number actually created.
func (s *SampleDataService) SeedTransactions(identity models.Identity, count int) (int, error) {
	if count < 1 {
		count = 25
	}

	faker := gofakeit.New(0)
	statuses := []string{models.StatusCompleted, models.StatusCompleted, models.StatusPending, models.StatusFailed}

	created := 0
	for i := 0; i < count; i++ {
		category := models.CategoryExpense
		amount := decimal.NewFromFloat(faker.Price(5, 900))
		name := faker.Company()
		if faker.Bool() {
			category = models.CategoryRevenue
			amount = decimal.NewFromFloat(faker.Price(100, 5000))
			name = fmt.Sprintf("Invoice %s", faker.LetterN(6))
		}

		txn := &models.Transaction{
			ID:          time.Now().UnixNano() + int64(i),
			Date:        time.Now().AddDate(0, 0, -faker.Number(0, 364)),
			Amount:      amount,
			Name:        name,
			Description: faker.ProductDescription(),
			Category:    category,
			Status:      statuses[faker.Number(0, len(statuses)-1)],
			UserID:      identity.UserID,
			UserProfile: faker.ImageURL(64, 64),
		}

		if err := s.transactionRepo.Create(txn); err != nil {
			return created, fmt.Errorf("failed to seed transaction %d: %w", i, err)
		}
		created++
	}

	s.logger.Info("sample transactions seeded", "user_id", identity.UserID, "count", created)
	return created, nil
}
