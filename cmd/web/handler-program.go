package main

import (
	"errors"
	"net/http"

	"github.com/ompo-dev/gymrats/internal/contexthelpers"
	"github.com/ompo-dev/gymrats/internal/workout"
)

// programGeneratePOST builds a fresh four week program from the submitted
// fitness profile, replacing whatever program the user had before.
func (app *application) programGeneratePOST(w http.ResponseWriter, r *http.Request) {
	var profile workout.Profile
	if err := readJSON(r, &profile); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid profile payload")
		return
	}

	userID := contexthelpers.CurrentUserID(r.Context())
	program, err := app.workoutService.RegeneratePlan(r.Context(), userID, profile)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, program)
}

// programGET returns the user's current program.
func (app *application) programGET(w http.ResponseWriter, r *http.Request) {
	userID := contexthelpers.CurrentUserID(r.Context())
	program, err := app.workoutService.GetProgram(r.Context(), userID)
	if err != nil {
		if errors.Is(err, workout.ErrNoProgram) {
			app.clientError(w, r, http.StatusNotFound, "no program generated yet")
			return
		}
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, program)
}
