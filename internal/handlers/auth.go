package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Tanmay1202/macnmanage/internal/models"
	"github.com/Tanmay1202/macnmanage/internal/utils"
)

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// register handles user registration
func (r *Router) register(w http.ResponseWriter, req *http.Request) {
	var regReq RegisterRequest
	if err := json.NewDecoder(req.Body).Decode(&regReq); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	regReq.Name = strings.TrimSpace(regReq.Name)
	regReq.Email = strings.TrimSpace(regReq.Email)
	if regReq.Name == "" || regReq.Email == "" || regReq.Password == "" {
		respondError(w, http.StatusBadRequest, "Please add all fields")
		return
	}

	var existing models.User
	if err := r.db.Where("email = ?", regReq.Email).First(&existing).Error; err == nil {
		respondError(w, http.StatusBadRequest, "User already exists")
		return
	}

	hashedPassword, err := utils.HashPassword(regReq.Password)
	if err != nil {
		r.serverError(w, "Failed to hash password", err)
		return
	}

	user := models.User{
		Name:     regReq.Name,
		Email:    regReq.Email,
		Password: hashedPassword,
	}
	if err := r.db.Create(&user).Error; err != nil {
		respondError(w, http.StatusBadRequest, "Failed to create user")
		return
	}

	token, err := utils.GenerateToken(&user, r.cfg.JWTSecret)
	if err != nil {
		r.serverError(w, "User created but failed to generate token", err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

// login handles user login
func (r *Router) login(w http.ResponseWriter, req *http.Request) {
	var loginReq LoginRequest
	if err := json.NewDecoder(req.Body).Decode(&loginReq); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	var user models.User
	if err := r.db.Where("email = ?", loginReq.Email).First(&user).Error; err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !utils.CheckPasswordHash(loginReq.Password, user.Password) {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(&user, r.cfg.JWTSecret)
	if err != nil {
		r.serverError(w, "Failed to generate token", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

// me returns the authenticated user
func (r *Router) me(w http.ResponseWriter, req *http.Request) {
	var user models.User
	if err := r.db.First(&user, "id = ?", r.caller(req)).Error; err != nil {
		respondError(w, http.StatusUnauthorized, "User not found")
		return
	}
	respondJSON(w, http.StatusOK, user)
}
