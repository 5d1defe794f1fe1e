// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/glow-up-client/internal/adapter"
	"github.com/MKhiriev/glow-up-client/internal/app"
	"github.com/MKhiriev/glow-up-client/internal/logger"
	"github.com/MKhiriev/glow-up-client/internal/mock"
	"github.com/MKhiriev/glow-up-client/internal/validators"
	"github.com/MKhiriev/glow-up-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestProfileSvc(t *testing.T, ctrl *gomock.Controller) (
	*clientProfileService,
	*sessionManager,
	*mock.MockServerAdapter,
	*mock.MockTokenRepository,
) {
	t.Helper()
	session, mockAdapter, mockTokens, _ := newTestSession(t, ctrl)
	svc := NewClientProfileService(mockAdapter, session, validators.NewFormValidator(), logger.Nop()).(*clientProfileService)
	return svc, session, mockAdapter, mockTokens
}

func TestProfileService_Profile_RefreshesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, session, mockAdapter, _ := newTestProfileSvc(t, ctrl)
	session.authenticate("tok", ana())

	mockAdapter.EXPECT().GetProfile(gomock.Any()).Return(models.User{ID: 1, Name: "Ana", Age: 31}, nil)

	res := svc.Profile(context.Background())
	require.True(t, res.Success())
	assert.Equal(t, 31, res.Data.Age)
	assert.Equal(t, "a@b.com", res.Data.Email, "fields the backend omitted are kept")
}

func TestProfileService_UpdateProfile_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestProfileSvc(t, ctrl)

	res := svc.UpdateProfile(context.Background(), models.ProfileUpdate{Age: 7})
	require.False(t, res.Success())
	assert.True(t, res.Is(app.KindValidation))
	assert.Equal(t, app.MsgInvalidAge, res.Message())
}

func TestProfileService_UpdateProfile_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, session, mockAdapter, _ := newTestProfileSvc(t, ctrl)
	session.authenticate("tok", ana())

	mockAdapter.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(models.User{}, &adapter.ResponseError{StatusCode: 500})

	res := svc.UpdateProfile(context.Background(), models.ProfileUpdate{Weight: 70})
	assert.Equal(t, app.MsgProfileUpdateFailed, res.Message())

	user, _ := session.User()
	assert.Zero(t, user.Weight, "session untouched on failure")
}

func TestProfileService_UpdateProfile_SessionEndedMidFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockAdapter, _ := newTestProfileSvc(t, ctrl)

	mockAdapter.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(models.User{ID: 1, Weight: 70}, nil)

	res := svc.UpdateProfile(context.Background(), models.ProfileUpdate{Weight: 70})
	require.True(t, res.Success())
	assert.Equal(t, 70.0, res.Data.Weight)
}

func TestProfileService_UpdateProfile_ClearsFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, session, mockAdapter, _ := newTestProfileSvc(t, ctrl)
	session.authenticate("tok", models.User{ID: 1, Name: "Ana", Email: "a@b.com", Age: 30, DietaryRestrictions: "vegano"})

	edit := models.ProfileUpdate{Name: "Ana"}
	mockAdapter.EXPECT().UpdateProfile(gomock.Any(), edit).
		Return(models.User{ID: 1, Name: "Ana", Email: "a@b.com"}, nil)

	res := svc.UpdateProfile(context.Background(), edit)
	require.True(t, res.Success())
	assert.Empty(t, res.Data.DietaryRestrictions)
	assert.Zero(t, res.Data.Age)

	user, _ := session.User()
	assert.Empty(t, user.DietaryRestrictions)
	assert.Zero(t, user.Age)
	assert.Equal(t, "a@b.com", user.Email, "identity fields are kept")
}

func TestProfileService_ChangePassword(t *testing.T) {
	tests := []struct {
		name string
		form models.ChangePasswordForm
		want string
	}{
		{"no current", models.ChangePasswordForm{NewPassword: "secret2", NewPasswordConfirm: "secret2"}, app.MsgPasswordRequired},
		{"mismatch", models.ChangePasswordForm{CurrentPassword: "secret1", NewPassword: "secret2", NewPasswordConfirm: "secret3"}, app.MsgPasswordMismatch},
		{"short", models.ChangePasswordForm{CurrentPassword: "secret1", NewPassword: "abc", NewPasswordConfirm: "abc"}, app.MsgNewPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _, _ := newTestProfileSvc(t, ctrl)

			res := svc.ChangePassword(context.Background(), tt.form)
			assert.True(t, res.Is(app.KindValidation))
			assert.Equal(t, tt.want, res.Message())
		})
	}
}

func TestProfileService_ChangePassword_Sent(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockAdapter, _ := newTestProfileSvc(t, ctrl)

	mockAdapter.EXPECT().ChangePassword(gomock.Any(), models.ChangePasswordRequest{CurrentPassword: "secret1", NewPassword: "secret2"}).Return(nil)

	res := svc.ChangePassword(context.Background(), models.ChangePasswordForm{
		CurrentPassword: "secret1", NewPassword: "secret2", NewPasswordConfirm: "secret2",
	})
	assert.True(t, res.Success())
}

func TestProfileService_StatsAndSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockAdapter, _ := newTestProfileSvc(t, ctrl)

	mockAdapter.EXPECT().GetStats(gomock.Any()).Return(models.UserStats{TotalWorkoutPlans: 2}, nil)
	mockAdapter.EXPECT().GetSubscription(gomock.Any()).Return(models.Subscription{}, &adapter.ResponseError{StatusCode: 404, Message: "sin suscripción"})

	assert.Equal(t, 2, svc.Stats(context.Background()).Data.TotalWorkoutPlans)
	assert.Equal(t, "sin suscripción", svc.Subscription(context.Background()).Message())
}

func TestProfileService_DeleteAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, session, mockAdapter, mockTokens := newTestProfileSvc(t, ctrl)
	session.authenticate("tok", ana())

	gomock.InOrder(
		mockAdapter.EXPECT().DeleteAccount(gomock.Any()).Return(nil),
		mockTokens.EXPECT().DeleteToken(gomock.Any()).Return(nil),
	)

	require.True(t, svc.DeleteAccount(context.Background()).Success())
	assert.False(t, session.IsAuthenticated())
}

func TestProfileService_DeleteAccount_FailureKeepsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, session, mockAdapter, _ := newTestProfileSvc(t, ctrl)
	session.authenticate("tok", ana())

	mockAdapter.EXPECT().DeleteAccount(gomock.Any()).Return(&adapter.ResponseError{StatusCode: 500})

	res := svc.DeleteAccount(context.Background())
	assert.Equal(t, app.MsgAccountDeleteFailed, res.Message())
	assert.True(t, session.IsAuthenticated())
}
