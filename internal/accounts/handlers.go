package accounts

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/MarketPulse/MP-Backend/internal/apperr"
	"github.com/MarketPulse/MP-Backend/internal/gate"
	"github.com/MarketPulse/MP-Backend/internal/token"
	"github.com/MarketPulse/MP-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// BootstrapPassword is the known initial password of a provisioned
// superadmin. It must be rotated immediately after first login.
const BootstrapPassword = "rotate-me-immediately"

func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	var missing []string
	for field, value := range map[string]string{
		"username": req.Username,
		"name":     req.Name,
		"email":    req.Email,
		"password": req.Password,
	} {
		if value == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		utils.RespondError(w, apperr.Validation(missing...))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Server error hashing password", http.StatusInternalServerError)
		return
	}

	account := Account{
		AccountID:      uuid.New().String(),
		Username:       req.Username,
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: string(hashed),
		Role:           gate.RoleAdmin,
		Status:         StatusPending,
	}
	if err := CreateAccount(&account); err != nil {
		utils.RespondError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]string{
		"account_id": account.AccountID,
		"username":   account.Username,
		"status":     account.Status,
	})
}

func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.RespondError(w, apperr.Validation("email", "password"))
		return
	}

	account, err := FindByEmail(req.Email)
	if err != nil {
		// Same response as a wrong password: don't reveal which one it was.
		utils.RespondError(w, apperr.ErrBadCredentials)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.HashedPassword), []byte(req.Password)); err != nil {
		utils.RespondError(w, apperr.ErrBadCredentials)
		return
	}

	// A pending account never authenticates, even with correct credentials.
	if account.Status != StatusActive {
		utils.RespondError(w, apperr.ErrAccountPending)
		return
	}

	signed, err := tokens.Issue(account.AccountID, account.Role, account.Name)
	if err != nil {
		http.Error(w, "Server error issuing token", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, gate.SessionCookie(signed, token.Lifetime, secureCookies))
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"token":   signed,
		"account": account,
	})
}

func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	gate.ClearSessionCookie(w)
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

func MeHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		utils.RespondError(w, apperr.ErrAuthRequired)
		return
	}

	account, err := FindByID(claims.AccountID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, account)
}

func ChangePasswordHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		utils.RespondError(w, apperr.ErrAuthRequired)
		return
	}

	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CurrentPassword == "" || req.NewPassword == "" {
		utils.RespondError(w, apperr.Validation("current_password", "new_password"))
		return
	}

	account, err := FindByID(claims.AccountID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	// Make sure the caller's current password matches before updating.
	if err := bcrypt.CompareHashAndPassword([]byte(account.HashedPassword), []byte(req.CurrentPassword)); err != nil {
		utils.RespondError(w, apperr.ErrBadCredentials)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Server error hashing password", http.StatusInternalServerError)
		return
	}
	if _, err := UpdateFields(account.AccountID, map[string]any{"hashed_password": string(hashed)}); err != nil {
		utils.RespondError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}

// ProvisionHandler bootstraps the first superadmin. It refuses to run once
// any superadmin exists, so the route is safe to leave mounted.
func ProvisionHandler(w http.ResponseWriter, r *http.Request) {
	n, err := CountSuperadmins()
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	if n > 0 {
		utils.RespondError(w, fmt.Errorf("superadmin already provisioned: %w", apperr.ErrConflict))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(BootstrapPassword), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Server error hashing password", http.StatusInternalServerError)
		return
	}

	account := Account{
		AccountID:      uuid.New().String(),
		Username:       "superadmin",
		Name:           "Superadmin",
		Email:          "superadmin@marketpulse.news",
		HashedPassword: string(hashed),
		Role:           gate.RoleSuperadmin,
		Status:         StatusActive,
	}
	if err := CreateAccount(&account); err != nil {
		utils.RespondError(w, err)
		return
	}

	log.Printf("[accounts] superadmin %s provisioned with the bootstrap password; rotate it now", account.AccountID)
	utils.RespondJSON(w, http.StatusCreated, map[string]string{
		"account_id": account.AccountID,
		"username":   account.Username,
		"message":    "superadmin created with the bootstrap password; rotate it immediately",
	})
}

// ListPendingHandler returns accounts awaiting approval. Password hashes
// are excluded by the model's json tags.
func ListPendingHandler(w http.ResponseWriter, r *http.Request) {
	pending, err := ListPending()
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{"pendingUsers": pending})
}

// ApproveHandler transitions a pending account to active.
func ApproveHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"userId"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}
	if req.UserID == "" || req.Status != StatusActive {
		utils.RespondError(w, apperr.Validation("userId", "status"))
		return
	}

	account, err := Activate(req.UserID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, account)
}

func ListAccountsHandler(w http.ResponseWriter, r *http.Request) {
	accounts, err := ListAll()
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{"users": accounts})
}

func UpdateAccountHandler(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")

	var req struct {
		Username *string `json:"username"`
		Name     *string `json:"name"`
		Email    *string `json:"email"`
		Role     *string `json:"role"`
		Status   *string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	fields := map[string]any{}
	if req.Username != nil {
		fields["username"] = *req.Username
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Role != nil {
		if *req.Role != gate.RoleAdmin && *req.Role != gate.RoleSuperadmin {
			utils.RespondError(w, apperr.Validation("role"))
			return
		}
		fields["role"] = *req.Role
	}
	if req.Status != nil {
		if *req.Status != StatusPending && *req.Status != StatusActive {
			utils.RespondError(w, apperr.Validation("status"))
			return
		}
		fields["status"] = *req.Status
	}
	if len(fields) == 0 {
		utils.RespondError(w, apperr.Validation("no fields to update"))
		return
	}

	account, err := UpdateFields(accountID, fields)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, account)
}

func DeleteAccountHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		utils.RespondError(w, apperr.ErrAuthRequired)
		return
	}
	accountID := chi.URLParam(r, "id")

	// An account may not delete itself.
	if accountID == claims.AccountID {
		utils.RespondError(w, fmt.Errorf("an account may not delete itself: %w", apperr.ErrInvalidOperation))
		return
	}

	if err := DeleteAccount(accountID); err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "account deleted"})
}
