package services

import (
	"context"
	"time"

	"finboard/internal/dto"
	"finboard/internal/models"

	"github.com/google/uuid"
)

// AuthServiceInterface defines authentication business operations
type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest) (*models.User, *dto.TokenResponse, error)
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshTokens(refreshToken string) (*dto.TokenResponse, error)
	GetProfile(userID uuid.UUID) (*models.User, error)
}

// TokenServiceInterface defines JWT token operations
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ValidateRefreshToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// PasswordServiceInterface defines password hashing operations
type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// TransactionServiceInterface defines transaction listing and creation
type TransactionServiceInterface interface {
	// List returns one page of the caller's transactions matching the
	// filters, with pagination metadata
	List(identity models.Identity, req *dto.ListTransactionsRequest) (*dto.ListTransactionsResponse, error)

	// Create persists a new transaction owned by the caller regardless of
	// any owner value supplied in the request
	Create(identity models.Identity, req *dto.CreateTransactionRequest) (*models.Transaction, error)
}

// AnalyticsServiceInterface computes the aggregate dashboard views
type AnalyticsServiceInterface interface {
	// GetAnalytics computes summary totals, the trailing-year monthly trend
	// and the per-category breakdown for the caller. The three aggregates
	// are independent and run concurrently.
	GetAnalytics(ctx context.Context, identity models.Identity) (*models.AnalyticsResult, error)
}

// ExportServiceInterface produces delimited-text exports
type ExportServiceInterface interface {
	// ExportCSV renders the caller's full filtered transaction set as a
	// CSV document restricted to the requested columns
	ExportCSV(identity models.Identity, req *dto.ExportCSVRequest) (string, error)
}
