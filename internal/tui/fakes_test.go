// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/glow-up-client/internal/app"
	"github.com/MKhiriev/glow-up-client/internal/service"
	"github.com/MKhiriev/glow-up-client/models"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// ── command helpers ─────────────────────────────────────────────────────────

// collect runs cmd and every command it batches, returning the produced
// messages. Commands that do not answer quickly (timers) are dropped.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(200 * time.Millisecond):
		return nil
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// find returns the first message of type T.
func find[T any](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// feed delivers msgs to model and keeps delivering whatever the resulting
// commands produce, so a load triggered by a save is applied too. Spinner
// ticks are dropped. Every produced message is returned.
func feed(model tea.Model, msgs []tea.Msg) (tea.Model, []tea.Msg) {
	var out []tea.Msg
	queue := msgs
	for round := 0; len(queue) > 0 && round < 8; round++ {
		var next []tea.Msg
		for _, msg := range queue {
			if _, tick := msg.(spinner.TickMsg); tick {
				continue
			}
			var cmd tea.Cmd
			model, cmd = model.Update(msg)
			next = append(next, collect(cmd)...)
		}
		out = append(out, next...)
		queue = next
	}
	return model, out
}

func stubClipboard(t *testing.T, fn func(string) error) {
	t.Helper()
	orig := writeClipboard
	writeClipboard = fn
	t.Cleanup(func() { writeClipboard = orig })
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+y":
		return tea.KeyMsg{Type: tea.KeyCtrlY}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(model tea.Model, s string) tea.Model {
	for _, r := range s {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return model
}

// ── session ─────────────────────────────────────────────────────────────────

type fakeSession struct {
	mu            sync.Mutex
	user          *models.User
	loginCalls    []string
	loginResult   app.Result[models.User]
	registerForms []models.RegisterForm
	logoutCalls   int
	claims        models.TokenClaims
	refreshCalls  int
	refreshErr    *app.Error
}

var _ service.SessionManager = (*fakeSession)(nil)

func (f *fakeSession) Token() string { return "" }

func (f *fakeSession) User() (models.User, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.user == nil {
		return models.User{}, false
	}
	return *f.user, true
}

func (f *fakeSession) IsAuthenticated() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.user != nil
}

func (f *fakeSession) Session() models.Session { return models.Session{User: f.user} }

func (f *fakeSession) Restore(context.Context) models.Session { return f.Session() }

func (f *fakeSession) Login(_ context.Context, email, password string) app.Result[models.User] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loginCalls = append(f.loginCalls, email+"/"+password)
	if f.loginResult.Success() {
		u := f.loginResult.Data
		f.user = &u
	}
	return f.loginResult
}

func (f *fakeSession) Register(_ context.Context, form models.RegisterForm) app.Result[models.User] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registerForms = append(f.registerForms, form)
	if form.Password != form.PasswordConfirmation {
		return app.Fail[models.User](&app.Error{Kind: app.KindValidation, Message: app.MsgPasswordMismatch})
	}
	u := models.User{ID: 2, Name: form.Name, Email: form.Email}
	f.user = &u
	return app.Ok(u)
}

func (f *fakeSession) Logout(context.Context) app.Result[app.Empty] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logoutCalls++
	f.user = nil
	return app.Ok(app.Empty{})
}

func (f *fakeSession) UpdateUser(models.User) (models.User, bool) { return models.User{}, false }

func (f *fakeSession) ReplaceProfile(profile models.ProfileUpdate) (models.User, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.user == nil {
		return models.User{}, false
	}
	profile.ApplyTo(f.user)
	return *f.user, true
}

func (f *fakeSession) RefreshToken(context.Context) app.Result[app.Empty] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshCalls++
	if f.refreshErr != nil {
		return app.Fail[app.Empty](f.refreshErr)
	}
	return app.Ok(app.Empty{})
}

func (f *fakeSession) TokenClaims() (models.TokenClaims, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.claims, !f.claims.ExpiresAt.IsZero()
}

func (f *fakeSession) SetNavigator(service.Navigator) {}

// ── workouts ────────────────────────────────────────────────────────────────

type fakeWorkouts struct {
	mu        sync.Mutex
	plans     []models.WorkoutPlan
	progress  []int
	deleted   []int64
	created   []models.WorkoutPlan
	listError *app.Error
}

var _ service.WorkoutService = (*fakeWorkouts)(nil)

func (f *fakeWorkouts) List(context.Context) app.Result[[]models.WorkoutPlan] {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listError != nil {
		return app.Fail[[]models.WorkoutPlan](f.listError)
	}
	return app.Ok(append([]models.WorkoutPlan(nil), f.plans...))
}

func (f *fakeWorkouts) find(id int64) (int, bool) {
	for i, p := range f.plans {
		if p.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (f *fakeWorkouts) Get(_ context.Context, id int64) app.Result[models.WorkoutPlan] {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, _ := f.find(id)
	return app.Ok(f.plans[i])
}

func (f *fakeWorkouts) Create(_ context.Context, plan models.WorkoutPlan) app.Result[models.WorkoutPlan] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, plan)
	plan.ID = int64(len(f.plans) + 1)
	f.plans = append(f.plans, plan)
	return app.Ok(plan)
}

func (f *fakeWorkouts) Update(_ context.Context, id int64, plan models.WorkoutPlan) app.Result[models.WorkoutPlan] {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, _ := f.find(id)
	plan.ID = id
	f.plans[i] = plan
	return app.Ok(plan)
}

func (f *fakeWorkouts) Delete(_ context.Context, id int64) app.Result[app.Empty] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	if i, ok := f.find(id); ok {
		f.plans = append(f.plans[:i], f.plans[i+1:]...)
	}
	return app.Ok(app.Empty{})
}

func (f *fakeWorkouts) setStatus(id int64, status string) app.Result[models.WorkoutPlan] {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, _ := f.find(id)
	f.plans[i].Status = status
	return app.Ok(f.plans[i])
}

func (f *fakeWorkouts) Start(_ context.Context, id int64) app.Result[models.WorkoutPlan] {
	return f.setStatus(id, models.WorkoutStatusActive)
}

func (f *fakeWorkouts) Complete(_ context.Context, id int64) app.Result[models.WorkoutPlan] {
	return f.setStatus(id, models.WorkoutStatusCompleted)
}

func (f *fakeWorkouts) UpdateProgress(_ context.Context, id int64, progress int) app.Result[models.WorkoutPlan] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.progress = append(f.progress, progress)
	i, _ := f.find(id)
	f.plans[i].Progress = progress
	return app.Ok(f.plans[i])
}

func (f *fakeWorkouts) Generate(_ context.Context, req models.WorkoutGenerationRequest) app.Result[models.WorkoutPlan] {
	return f.Create(context.Background(), models.WorkoutPlan{Name: "IA " + req.FitnessGoal, DurationWeeks: req.DurationWeeks})
}

// ── AI ──────────────────────────────────────────────────────────────────────

type fakeAI struct {
	mu        sync.Mutex
	questions []string
	fail      bool
}

func (f *fakeAI) Chat(_ context.Context, message string) app.Result[string] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.questions = append(f.questions, message)
	if f.fail {
		return app.Fail[string](&app.Error{Kind: app.KindServer, Message: app.MsgChatFailed})
	}
	return app.Ok("respuesta a " + message)
}

// ── dashboard ───────────────────────────────────────────────────────────────

type fakeDashboard struct {
	data models.DashboardData
}

func (f *fakeDashboard) Load(context.Context) app.Result[models.DashboardData] {
	return app.Ok(f.data)
}

// ── nutrition ───────────────────────────────────────────────────────────────

type fakeNutrition struct {
	mu           sync.Mutex
	plans        []models.NutritionPlan
	calorieCalls []models.CalorieRequest
	calories     app.Result[models.CalorieResult]
}

var _ service.NutritionService = (*fakeNutrition)(nil)

func (f *fakeNutrition) List(context.Context) app.Result[[]models.NutritionPlan] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return app.Ok(append([]models.NutritionPlan(nil), f.plans...))
}

func (f *fakeNutrition) Get(_ context.Context, id int64) app.Result[models.NutritionPlan] {
	return app.Ok(models.NutritionPlan{ID: id})
}

func (f *fakeNutrition) Create(_ context.Context, plan models.NutritionPlan) app.Result[models.NutritionPlan] {
	f.mu.Lock()
	defer f.mu.Unlock()
	plan.ID = int64(len(f.plans) + 1)
	f.plans = append(f.plans, plan)
	return app.Ok(plan)
}

func (f *fakeNutrition) Update(_ context.Context, id int64, plan models.NutritionPlan) app.Result[models.NutritionPlan] {
	plan.ID = id
	return app.Ok(plan)
}

func (f *fakeNutrition) Delete(context.Context, int64) app.Result[app.Empty] {
	return app.Ok(app.Empty{})
}

func (f *fakeNutrition) CalculateCalories(_ context.Context, req models.CalorieRequest) app.Result[models.CalorieResult] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calorieCalls = append(f.calorieCalls, req)
	return f.calories
}

func (f *fakeNutrition) Generate(ctx context.Context, req models.NutritionGenerationRequest) app.Result[models.NutritionPlan] {
	return f.Create(ctx, models.NutritionPlan{Name: "IA " + req.Goal, Goal: req.Goal})
}

// ── progress ────────────────────────────────────────────────────────────────

type fakeProgress struct {
	mu        sync.Mutex
	entries   []models.ProgressEntry
	stats     models.ProgressStats
	created   []models.ProgressEntryRequest
	updated   map[int64]models.ProgressEntryRequest
	analytics models.ProgressAnalytics
	goalsErr  *app.Error
}

var _ service.ProgressService = (*fakeProgress)(nil)

func (f *fakeProgress) List(context.Context) app.Result[[]models.ProgressEntry] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return app.Ok(append([]models.ProgressEntry(nil), f.entries...))
}

func (f *fakeProgress) Create(_ context.Context, req models.ProgressEntryRequest) app.Result[models.ProgressEntry] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, req)
	entry := models.ProgressEntry{ID: int64(len(f.entries) + 1), Date: req.Date, Weight: req.Weight}
	f.entries = append(f.entries, entry)
	return app.Ok(entry)
}

func (f *fakeProgress) Update(_ context.Context, id int64, req models.ProgressEntryRequest) app.Result[models.ProgressEntry] {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updated == nil {
		f.updated = make(map[int64]models.ProgressEntryRequest)
	}
	f.updated[id] = req
	return app.Ok(models.ProgressEntry{ID: id, Date: req.Date, Weight: req.Weight})
}

func (f *fakeProgress) Delete(context.Context, int64) app.Result[app.Empty] {
	return app.Ok(app.Empty{})
}

func (f *fakeProgress) Stats(context.Context) app.Result[models.ProgressStats] {
	return app.Ok(f.stats)
}

func (f *fakeProgress) Analytics(context.Context) app.Result[models.ProgressAnalytics] {
	return app.Ok(f.analytics)
}

func (f *fakeProgress) Goals(context.Context) app.Result[models.ProgressGoals] {
	if f.goalsErr != nil {
		return app.Fail[models.ProgressGoals](f.goalsErr)
	}
	return app.Ok(models.ProgressGoals{})
}

// ── profile ─────────────────────────────────────────────────────────────────

type fakeProfile struct {
	mu            sync.Mutex
	session       *fakeSession
	updates       []models.ProfileUpdate
	passwordForms []models.ChangePasswordForm
	deleteErr     *app.Error
	deleted       int
}

var _ service.ProfileService = (*fakeProfile)(nil)

func (f *fakeProfile) Profile(context.Context) app.Result[models.User] {
	user, _ := f.session.User()
	return app.Ok(user)
}

func (f *fakeProfile) UpdateProfile(_ context.Context, profile models.ProfileUpdate) app.Result[models.User] {
	f.mu.Lock()
	f.updates = append(f.updates, profile)
	f.mu.Unlock()

	user, _ := f.session.ReplaceProfile(profile)
	return app.Ok(user)
}

func (f *fakeProfile) ChangePassword(_ context.Context, form models.ChangePasswordForm) app.Result[app.Empty] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.passwordForms = append(f.passwordForms, form)
	if form.NewPassword != form.NewPasswordConfirm {
		return app.Fail[app.Empty](&app.Error{Kind: app.KindValidation, Message: app.MsgPasswordMismatch})
	}
	return app.Ok(app.Empty{})
}

func (f *fakeProfile) Stats(context.Context) app.Result[models.UserStats] {
	return app.Ok(models.UserStats{TotalWorkoutPlans: 2, TotalProgressEntries: 5})
}

func (f *fakeProfile) Subscription(context.Context) app.Result[models.Subscription] {
	return app.Fail[models.Subscription](&app.Error{Kind: app.KindServer, Status: 404, Message: "sin suscripción"})
}

func (f *fakeProfile) DeleteAccount(ctx context.Context) app.Result[app.Empty] {
	f.mu.Lock()
	f.deleted++
	f.mu.Unlock()
	if f.deleteErr != nil {
		return app.Fail[app.Empty](f.deleteErr)
	}
	return f.session.Logout(ctx)
}
