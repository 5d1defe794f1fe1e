// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterForm is what the registration view collects. The confirmation is
// checked locally and never leaves the client.
type RegisterForm struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

// Request returns the payload sent to the backend.
func (f RegisterForm) Request() RegisterRequest {
	return RegisterRequest{Name: f.Name, Email: f.Email, Password: f.Password}
}

// AuthResponse is returned by POST /auth/login and POST /auth/register.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// RefreshResponse is returned by POST /auth/refresh.
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

// ChangePasswordRequest is the body of POST /auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePasswordForm is what the profile view collects before a password
// change.
type ChangePasswordForm struct {
	CurrentPassword    string
	NewPassword        string
	NewPasswordConfirm string
}

// Request returns the payload sent to the backend.
func (f ChangePasswordForm) Request() ChangePasswordRequest {
	return ChangePasswordRequest{CurrentPassword: f.CurrentPassword, NewPassword: f.NewPassword}
}

// MessageResponse is the generic acknowledgement body used by endpoints that
// return no resource.
type MessageResponse struct {
	Message string `json:"message,omitempty"`
}

// TokenClaims is the subset of the bearer token claims the client shows.
// They are read without signature verification; the backend stays the only
// authority on token validity.
type TokenClaims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry that is before now.
func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(now)
}
