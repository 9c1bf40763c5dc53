package accounts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisheksit27/agrovest/internal/client/models"
	"github.com/abhisheksit27/agrovest/internal/common"
	"github.com/abhisheksit27/agrovest/internal/dbx"
)

// usersKey is the fixed metadata key holding the JSON-encoded account
// collection. The value is part of the on-disk format and must not change.
const usersKey = "farm_investment_users"

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Account, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, usersKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return []models.Account{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}

	var accounts []models.Account
	if err := json.Unmarshal(value, &accounts); err != nil {
		return nil, fmt.Errorf("failed to decode accounts: %w", err)
	}
	return accounts, nil
}

func (r *SQLiteRepository) SaveAll(ctx context.Context, accounts []models.Account) error {
	value, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("failed to encode accounts: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, usersKey, value)
	if err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	accounts, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if strings.EqualFold(accounts[i].Email, email) {
			acc := accounts[i]
			return &acc, nil
		}
	}
	return nil, common.ErrorNotFound
}
