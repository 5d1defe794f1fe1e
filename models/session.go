// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session is a snapshot of the client-held identity.
//
// Token mirrors the durable token row. User is nil until the profile has been
// fetched or returned by login/registration. Loading is true while the
// startup identity check has not settled yet.
type Session struct {
	Token   string
	User    *User
	Loading bool
}

// IsAuthenticated reports whether a user profile is held in memory.
func (s Session) IsAuthenticated() bool {
	return s.User != nil
}
