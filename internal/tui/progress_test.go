// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/glow-up-client/internal/app"
	"github.com/MKhiriev/glow-up-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedProgress(t *testing.T, svc *fakeProgress) *ProgressModel {
	t.Helper()
	m := NewProgressModel(context.Background(), svc)
	m.now = func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }
	feed(m, collect(m.Init()))
	require.False(t, m.list.loading)
	return m
}

func TestProgressModel_ListAndStats(t *testing.T) {
	m := loadedProgress(t, &fakeProgress{
		entries: []models.ProgressEntry{
			{ID: 1, Date: "2026-03-01", Weight: 62, Measurements: models.Measurements{Waist: 70}, Notes: "inicio"},
		},
		stats: models.ProgressStats{LatestWeight: 62, WeightChange: -1.5, TotalEntries: 1},
	})

	view := m.View()
	assert.Contains(t, view, "Peso actual: 62 kg")
	assert.Contains(t, view, "Cambio: -1.5 kg")
	assert.Contains(t, view, "Registros: 1")
	assert.Contains(t, view, "2026-03-01")
	assert.Contains(t, view, "70 cm")
}

func TestProgressModel_NewEntryDefaultsToToday(t *testing.T) {
	svc := &fakeProgress{}
	m := loadedProgress(t, svc)

	m.Update(keyPress("n"))
	require.Equal(t, modeForm, m.mode)
	assert.Equal(t, "2026-03-14", m.form.value(entryDate))

	m.Update(keyPress("tab"))
	typeText(m, "61,5")
	_, cmd := m.Update(keyPress("enter"))
	feed(m, collect(cmd))

	require.Len(t, svc.created, 1)
	assert.Equal(t, "2026-03-14", svc.created[0].Date)
	assert.Equal(t, 61.5, svc.created[0].Weight)
	assert.Equal(t, modeList, m.mode)
	assert.Contains(t, m.View(), "Medición guardada")
	assert.Len(t, m.list.items, 1, "list is reloaded after saving")
}

func TestProgressModel_EditPrefillsForm(t *testing.T) {
	svc := &fakeProgress{entries: []models.ProgressEntry{
		{ID: 4, Date: "2026-03-01", Weight: 62, Measurements: models.Measurements{Hips: 95}},
	}}
	m := loadedProgress(t, svc)

	m.Update(keyPress("e"))
	require.Equal(t, modeForm, m.mode)
	assert.Equal(t, "62", m.form.value(entryWeight))
	assert.Equal(t, "95", m.form.value(entryHips))
	assert.Empty(t, m.form.value(entryChest))

	_, cmd := m.Update(keyPress("enter"))
	feed(m, collect(cmd))

	require.Contains(t, svc.updated, int64(4))
	assert.Equal(t, 95.0, svc.updated[4].Hips)
	assert.Contains(t, m.View(), "Medición actualizada")
}

func TestProgressModel_RejectsBadNumbers(t *testing.T) {
	svc := &fakeProgress{}
	m := loadedProgress(t, svc)

	m.Update(keyPress("n"))
	m.Update(keyPress("tab"))
	typeText(m, "mucho")
	_, cmd := m.Update(keyPress("enter"))

	assert.Nil(t, cmd)
	assert.Empty(t, svc.created)
	assert.Contains(t, m.View(), app.MsgInvalidData)
}

func TestProgressModel_InsightsShowGoalFailureInline(t *testing.T) {
	svc := &fakeProgress{
		entries:   []models.ProgressEntry{{ID: 1, Date: "2026-03-01", Weight: 62}},
		analytics: models.ProgressAnalytics{"trend": "down"},
		goalsErr:  &app.Error{Kind: app.KindServer, Message: "sin objetivos"},
	}
	m := loadedProgress(t, svc)

	_, cmd := m.Update(keyPress("enter"))
	require.Equal(t, modeDetail, m.mode)
	assert.Contains(t, m.View(), "Cargando análisis")

	feed(m, collect(cmd))
	view := m.View()
	assert.Contains(t, view, `"trend": "down"`)
	assert.Contains(t, view, "sin objetivos")

	m.Update(keyPress("esc"))
	assert.Equal(t, modeList, m.mode)
}

func TestDocumentView(t *testing.T) {
	assert.Equal(t, "-", documentView(nil))
	assert.Equal(t, "{\n  \"a\": 1\n}", documentView(map[string]any{"a": 1}))
}
