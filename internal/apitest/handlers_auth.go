// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apitest

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/glow-up-client/internal/utils"
	"github.com/MKhiriev/glow-up-client/models"
	"golang.org/x/crypto/bcrypt"
)

// Backend error bodies the client shows verbatim.
const (
	MsgInvalidCredentials = "Credenciales inválidas"
	MsgEmailTaken         = "El email ya está registrado"
	MsgMissingFields      = "Todos los campos son obligatorios"
	MsgWrongPassword      = "La contraseña actual es incorrecta"
	MsgNotFound           = "Recurso no encontrado"
	MsgInvalidJSON        = "JSON inválido"
)

// AddUser creates an account directly and returns it.
func (s *Server) AddUser(name, email, password string) models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addAccountLocked(name, email, hash)
}

// IssueToken returns a valid bearer token for userID.
func (s *Server) IssueToken(userID int64) string {
	token, err := utils.GenerateJWTToken(tokenIssuer, userID, tokenDuration, tokenSignKey)
	if err != nil {
		panic(err)
	}
	return token
}

// User returns the stored account.
func (s *Server) User(id int64) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[id]
	if !ok {
		return models.User{}, false
	}
	return acc.user, true
}

func (s *Server) addAccountLocked(name, email string, hash []byte) models.User {
	s.nextUser++
	user := models.User{
		ID:        s.nextUser,
		Name:      name,
		Email:     strings.ToLower(strings.TrimSpace(email)),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	s.accounts[user.ID] = &account{user: user, passwordHash: hash}
	return user
}

func (s *Server) findByEmailLocked(email string) *account {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, acc := range s.accounts {
		if acc.user.Email == email {
			return acc
		}
	}
	return nil
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	acc := s.findByEmailLocked(req.Email)
	s.mu.Unlock()

	if acc == nil || bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(req.Password)) != nil {
		utils.WriteError(w, MsgInvalidCredentials, http.StatusUnauthorized)
		return
	}

	_, _ = utils.WriteJSON(w, models.AuthResponse{
		AccessToken: s.IssueToken(acc.user.ID),
		User:        acc.user,
	}, http.StatusOK)
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.WriteError(w, MsgMissingFields, http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.MinCost)
	if err != nil {
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	if s.findByEmailLocked(req.Email) != nil {
		s.mu.Unlock()
		utils.WriteError(w, MsgEmailTaken, http.StatusConflict)
		return
	}
	user := s.addAccountLocked(req.Name, req.Email, hash)
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, models.AuthResponse{
		AccessToken: s.IssueToken(user.ID),
		User:        user,
	}, http.StatusCreated)
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	user, ok := s.User(currentUserID(r))
	if !ok {
		utils.WriteError(w, MsgNotFound, http.StatusNotFound)
		return
	}
	_, _ = utils.WriteJSON(w, models.UserResponse{User: user}, http.StatusOK)
}

func (s *Server) refresh(w http.ResponseWriter, r *http.Request) {
	token, err := utils.GenerateJWTToken(tokenIssuer, currentUserID(r), refreshTokenDuration, tokenSignKey)
	if err != nil {
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	_, _ = utils.WriteJSON(w, models.RefreshResponse{AccessToken: token}, http.StatusOK)
}

func (s *Server) changePassword(w http.ResponseWriter, r *http.Request) {
	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[currentUserID(r)]
	if !ok {
		utils.WriteError(w, MsgNotFound, http.StatusNotFound)
		return
	}
	if bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(req.CurrentPassword)) != nil {
		utils.WriteError(w, MsgWrongPassword, http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.MinCost)
	if err != nil {
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	acc.passwordHash = hash

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "Contraseña actualizada"}, http.StatusOK)
}
