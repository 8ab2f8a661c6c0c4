package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/dravedigitals/careerguard/server/middleware"
	"github.com/dravedigitals/careerguard/server/models"
	"github.com/dravedigitals/careerguard/server/service"
	"github.com/dravedigitals/careerguard/server/store"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	DB        *store.DB
	JWTSecret string
	Uploader  *service.Uploader
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserSummary is the credential-free view of a user returned with tokens.
type UserSummary struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	ProfileCompleted bool   `json:"profileCompleted,omitempty"`
}

type AuthResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserSummary `json:"user"`
}

// Register creates a user from a JSON body. Duplicate email is a 400.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Name, email and password are required")
		return
	}
	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if !models.RoleValid(role) {
		writeMessage(w, http.StatusBadRequest, "Invalid role")
		return
	}

	existing, err := h.DB.UserByEmail(r.Context(), req.Email)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if existing != nil {
		writeMessage(w, http.StatusBadRequest, "User already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeServerError(w, err)
		return
	}
	user := &models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hash),
		Role:      role,
		CreatedAt: time.Now(),
	}
	id, err := h.DB.CreateUser(r.Context(), user)
	if err != nil {
		writeServerError(w, err)
		return
	}
	user.ID = id

	token, err := h.createToken(user)
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, AuthResponse{
		Message: "User created successfully",
		Token:   token,
		User:    UserSummary{ID: id.Hex(), Name: user.Name, Email: user.Email, Role: user.Role},
	})
}

// RegisterDetailed creates a user from a multipart form carrying the full
// profile and an optional resume file. The profile is marked completed.
func (h *AuthHandler) RegisterDetailed(w http.ResponseWriter, r *http.Request) {
	if h.Uploader.MaxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.Uploader.MaxBytes+1<<20)
	}
	if err := r.ParseMultipartForm(h.Uploader.MaxBytes); err != nil {
		writeMessage(w, http.StatusBadRequest, "Failed to parse multipart form")
		return
	}

	name := r.FormValue("name")
	email := r.FormValue("email")
	password := r.FormValue("password")
	if name == "" || email == "" || password == "" {
		writeMessage(w, http.StatusBadRequest, "Name, email and password are required")
		return
	}

	existing, err := h.DB.UserByEmail(r.Context(), email)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if existing != nil {
		writeMessage(w, http.StatusBadRequest, "User already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		writeServerError(w, err)
		return
	}

	user := &models.User{
		Name:              name,
		Email:             email,
		Password:          string(hash),
		Role:              models.RoleUser,
		Phone:             r.FormValue("phone"),
		Gender:            r.FormValue("gender"),
		Address:           r.FormValue("address"),
		City:              r.FormValue("city"),
		State:             r.FormValue("state"),
		Pincode:           r.FormValue("pincode"),
		CurrentPosition:   r.FormValue("currentPosition"),
		Experience:        r.FormValue("experience"),
		Skills:            r.FormValue("skills"),
		Education:         r.FormValue("education"),
		ExpectedSalary:    r.FormValue("expectedSalary"),
		PreferredLocation: r.FormValue("preferredLocation"),
		JobType:           r.FormValue("jobType"),
		WorkMode:          r.FormValue("workMode"),
		ProfileCompleted:  true,
		CreatedAt:         time.Now(),
	}
	if dob := parseDate(r.FormValue("dateOfBirth")); dob != nil {
		user.DateOfBirth = dob
	}
	if raw := r.FormValue("interestedServices"); raw != "" {
		var services []string
		if err := json.Unmarshal([]byte(raw), &services); err == nil {
			user.InterestedServices = services
		}
	}

	if files := r.MultipartForm.File["resume"]; len(files) > 0 {
		name, err := h.Uploader.SaveFile(r.Context(), "resume", files[0])
		if err != nil {
			writeUploadError(w, err)
			return
		}
		user.Resume = name
	}

	id, err := h.DB.CreateUser(r.Context(), user)
	if err != nil {
		// The stored resume must not outlive a failed registration.
		if user.Resume != "" {
			_ = h.Uploader.Storage.Delete(r.Context(), user.Resume)
		}
		writeServerError(w, err)
		return
	}
	user.ID = id

	token, err := h.createToken(user)
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User: UserSummary{
			ID: id.Hex(), Name: user.Name, Email: user.Email,
			Role: user.Role, ProfileCompleted: user.ProfileCompleted,
		},
	})
}

// Login exchanges credentials for a token. Unknown email and wrong password
// produce the same response, so callers cannot enumerate accounts.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.DB.UserByEmail(r.Context(), req.Email)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if user == nil {
		writeMessage(w, http.StatusBadRequest, "Invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, err := h.createToken(user)
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    UserSummary{ID: user.ID.Hex(), Name: user.Name, Email: user.Email, Role: user.Role},
	})
}

func (h *AuthHandler) createToken(user *models.User) (string, error) {
	claims := &middleware.Claims{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.JWTSecret))
}

// parseDate accepts RFC 3339 or plain yyyy-mm-dd form values.
func parseDate(v string) *time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return &t
	}
	return nil
}
