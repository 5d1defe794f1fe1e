// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

// User-facing messages. The product speaks Spanish; every string the views
// show for a failure comes from here or from the backend's own error body.
const (
	// MsgLoginFailed is the fallback when a login attempt fails without a
	// server-supplied message.
	MsgLoginFailed = "Error al iniciar sesión"

	// MsgRegistrationFailed is the fallback when registration fails for an
	// unexpected local reason.
	MsgRegistrationFailed = "Error al registrarse"

	// MsgServerStatus is formatted with the status code when the server
	// answered without a usable body.
	MsgServerStatus = "Error %d"

	// MsgNoConnection is shown when the request never got a response.
	MsgNoConnection = "No se pudo conectar con el servidor. Verifica tu conexión a internet."

	// MsgSessionExpired is shown after a 401 ended the session.
	MsgSessionExpired = "Tu sesión ha expirado. Inicia sesión de nuevo."

	// MsgUnexpected is the last-resort message.
	MsgUnexpected = "Ocurrió un error inesperado"

	MsgSessionStorageFailed = "No se pudo guardar la sesión en este equipo"

	MsgPasswordMismatch    = "Las contraseñas no coinciden"
	MsgPasswordTooShort    = "La contraseña debe tener al menos 6 caracteres"
	MsgNewPasswordTooShort = "La nueva contraseña debe tener al menos 6 caracteres"
	MsgPasswordRequired    = "La contraseña es obligatoria"
	MsgNameRequired        = "El nombre es obligatorio"
	MsgEmailRequired       = "El email es obligatorio"
	MsgInvalidEmail        = "El email no es válido"
	MsgInvalidAge          = "La edad no es válida"
	MsgInvalidHeight       = "La altura no es válida"
	MsgInvalidWeight       = "El peso no es válido"
	MsgInvalidGender       = "Selecciona un género válido"
	MsgActivityRequired    = "Selecciona un nivel de actividad"
	MsgGoalRequired        = "Selecciona un objetivo"
	MsgInvalidDuration     = "La duración debe estar entre 1 y 52 semanas"
	MsgInvalidCalories     = "Las calorías diarias no son válidas"
	MsgInvalidDate         = "La fecha debe tener el formato AAAA-MM-DD"
	MsgNoMeasurements      = "Registra al menos una medida"
	MsgNegativeMeasurement = "Las medidas no pueden ser negativas"
	MsgEmptyMessage        = "Escribe un mensaje"
	MsgInvalidProgress     = "El progreso debe estar entre 0 y 100"
	MsgPlanNameRequired    = "El nombre del plan es obligatorio"
	MsgInvalidData         = "Los datos introducidos no son válidos"

	MsgProfileUpdateFailed  = "Error actualizando perfil"
	MsgProfileUpdated       = "Perfil actualizado exitosamente"
	MsgPasswordChangeFailed = "Error cambiando contraseña"
	MsgPasswordChanged      = "Contraseña cambiada exitosamente"
	MsgAccountDeleteFailed  = "Error eliminando la cuenta"

	MsgLoadDashboardFailed = "Error cargando el panel"
	MsgLoadPlansFailed     = "Error cargando los planes"
	MsgCreatePlanFailed    = "Error creando el plan"
	MsgUpdatePlanFailed    = "Error actualizando el plan"
	MsgDeletePlanFailed    = "Error eliminando el plan"
	MsgCaloriesFailed      = "Error calculando calorías"
	MsgLoadProgressFailed  = "Error cargando el progreso"
	MsgSaveProgressFailed  = "Error guardando la medición"
	MsgDeleteEntryFailed   = "Error eliminando la medición"
	MsgChatFailed          = "El asistente no está disponible en este momento"
	MsgLoadProfileFailed   = "Error cargando el perfil"
	MsgRefreshTokenFailed  = "No se pudo renovar la sesión"
	MsgSessionRefreshed    = "Sesión renovada"
)
