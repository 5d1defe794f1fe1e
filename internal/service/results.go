// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/glow-up-client/internal/app"

// resultOf turns an adapter (value, error) pair into a Result. The returned
// func takes the message used when the backend supplied none:
//
//	return resultOf(s.adapter.GetWorkoutPlan(ctx, id))(app.MsgLoadPlansFailed)
func resultOf[T any](data T, err error) func(fallback string) app.Result[T] {
	return func(fallback string) app.Result[T] {
		if err != nil {
			return app.Fail[T](app.Describe(err, fallback))
		}
		return app.Ok(data)
	}
}

// emptyResultOf is resultOf for calls that return only an error.
func emptyResultOf(err error, fallback string) app.Result[app.Empty] {
	if err != nil {
		return app.Fail[app.Empty](app.Describe(err, fallback))
	}
	return app.Ok(app.Empty{})
}
