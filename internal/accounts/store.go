package accounts

import (
	"errors"

	"github.com/MarketPulse/MP-Backend/internal/apperr"
	"github.com/MarketPulse/MP-Backend/internal/db"
	"github.com/MarketPulse/MP-Backend/internal/gate"
	"golang.org/x/text/cases"
	"gorm.io/gorm"
)

// FoldEmail normalizes an email for the case-insensitive uniqueness check.
// Accounts store the folded form, so the unique index does the enforcing.
// A Caser is stateful, so each call gets its own.
func FoldEmail(email string) string {
	return cases.Fold().String(email)
}

// CreateAccount inserts the account, relying on the unique indexes to close
// the check-then-insert race on username and email.
func CreateAccount(account *Account) error {
	account.Email = FoldEmail(account.Email)
	if err := db.DB.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.ErrConflict
		}
		return apperr.Internalf("creating account: %v", err)
	}
	return nil
}

func FindByEmail(email string) (*Account, error) {
	var account Account
	err := db.DB.First(&account, "email = ?", FoldEmail(email)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Internalf("finding account by email: %v", err)
	}
	return &account, nil
}

func FindByID(accountID string) (*Account, error) {
	var account Account
	err := db.DB.First(&account, "account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Internalf("finding account by id: %v", err)
	}
	return &account, nil
}

func ListPending() ([]Account, error) {
	var pending []Account
	if err := db.DB.Where("status = ?", StatusPending).Order("created_at asc").Find(&pending).Error; err != nil {
		return nil, apperr.Internalf("listing pending accounts: %v", err)
	}
	return pending, nil
}

func ListAll() ([]Account, error) {
	var accounts []Account
	if err := db.DB.Order("created_at asc").Find(&accounts).Error; err != nil {
		return nil, apperr.Internalf("listing accounts: %v", err)
	}
	return accounts, nil
}

// Activate transitions a pending account to active. Approving an already
// active account is a no-op.
func Activate(accountID string) (*Account, error) {
	account, err := FindByID(accountID)
	if err != nil {
		return nil, err
	}
	if account.Status == StatusActive {
		return account, nil
	}
	if err := db.DB.Model(account).Update("status", StatusActive).Error; err != nil {
		return nil, apperr.Internalf("activating account: %v", err)
	}
	account.Status = StatusActive
	return account, nil
}

// CountSuperadmins gates the one-time bootstrap path.
func CountSuperadmins() (int64, error) {
	var n int64
	if err := db.DB.Model(&Account{}).Where("role = ?", gate.RoleSuperadmin).Count(&n).Error; err != nil {
		return 0, apperr.Internalf("counting superadmins: %v", err)
	}
	return n, nil
}

// UpdateFields applies a column patch to an account.
func UpdateFields(accountID string, fields map[string]any) (*Account, error) {
	account, err := FindByID(accountID)
	if err != nil {
		return nil, err
	}
	if email, ok := fields["email"].(string); ok {
		fields["email"] = FoldEmail(email)
	}
	if err := db.DB.Model(account).Updates(fields).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.ErrConflict
		}
		return nil, apperr.Internalf("updating account: %v", err)
	}
	return FindByID(accountID)
}

func DeleteAccount(accountID string) error {
	result := db.DB.Delete(&Account{}, "account_id = ?", accountID)
	if result.Error != nil {
		return apperr.Internalf("deleting account: %v", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
