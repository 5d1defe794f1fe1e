// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_Ok(t *testing.T) {
	r := Ok(42)

	assert.True(t, r.Success())
	assert.Equal(t, 42, r.Data)
	assert.Empty(t, r.Message())
	assert.False(t, r.Is(KindUnknown))
}

func TestResult_Fail(t *testing.T) {
	r := Fail[string](&Error{Kind: KindConnectivity, Message: MsgNoConnection})

	assert.False(t, r.Success())
	assert.Empty(t, r.Data)
	assert.Equal(t, MsgNoConnection, r.Message())
	assert.True(t, r.Is(KindConnectivity))
}

func TestResult_FailWithNilIsStillFailure(t *testing.T) {
	r := Fail[Empty](nil)

	assert.False(t, r.Success())
	assert.True(t, r.Is(KindUnknown))
	assert.Equal(t, MsgUnexpected, r.Message())
}
