package auth

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	DB     *sql.DB
	Secret []byte
}

type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
}

func NewAuthHandler(db *sql.DB, secret []byte) *AuthHandler {
	return &AuthHandler{DB: db, Secret: secret}
}

// ------------------------------------------------------------------
// Registration: POST /auth/register
// ------------------------------------------------------------------

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", 400)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "email and password are required", 400)
		return
	}

	// check duplicate email
	var exists int
	err := h.DB.QueryRowContext(
		r.Context(),
		"SELECT COUNT(*) FROM users WHERE email=$1", req.Email,
	).Scan(&exists)

	if err == nil && exists > 0 {
		http.Error(w, "email already exists", 400)
		return
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

	var id int64
	err = h.DB.QueryRowContext(
		r.Context(),
		"INSERT INTO users (email, password) VALUES ($1, $2) RETURNING id",
		req.Email, string(hash),
	).Scan(&id)

	if err != nil {
		http.Error(w, "db error: "+err.Error(), 500)
		return
	}

	token, _ := GenerateToken(h.Secret, id)

	json.NewEncoder(w).Encode(AuthResponse{Token: token})
}

// ------------------------------------------------------------------
// Login: POST /auth/login
// ------------------------------------------------------------------

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", 400)
		return
	}

	var (
		id       int64
		email    string
		password string
	)
	err := h.DB.QueryRowContext(
		r.Context(),
		"SELECT id, email, password FROM users WHERE email=$1",
		req.Email,
	).Scan(&id, &email, &password)

	if err != nil {
		http.Error(w, "invalid credentials", 403)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(password), []byte(req.Password)) != nil {
		http.Error(w, "invalid credentials", 403)
		return
	}

	token, _ := GenerateToken(h.Secret, id)

	json.NewEncoder(w).Encode(AuthResponse{Token: token})
}

// ------------------------------------------------------------------
// Get current user: GET /auth/me
// ------------------------------------------------------------------

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", 401)
		return
	}

	var email string
	err := h.DB.QueryRowContext(
		r.Context(),
		"SELECT email FROM users WHERE id=$1", userID,
	).Scan(&email)

	if err != nil {
		http.Error(w, "user not found", 404)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"id":    userID,
		"email": email,
	})
}
