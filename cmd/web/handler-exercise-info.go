package main

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/ompo-dev/gymrats/internal/catalog"
	"github.com/yuin/goldmark"
)

// exerciseInfoResponse carries one catalog entry together with a rendered
// HTML version of its guide for clients that show rich content.
type exerciseInfoResponse struct {
	Exercise  catalog.ExerciseInfo `json:"exercise"`
	GuideHTML string               `json:"guideHtml"`
}

// exercisesGET lists the catalog, optionally filtered to one muscle group
// with the muscle query parameter.
func (app *application) exercisesGET(w http.ResponseWriter, r *http.Request) {
	muscle := strings.TrimSpace(r.URL.Query().Get("muscle"))

	exercises := app.catalog.Exercises()
	if muscle != "" {
		filtered := make([]catalog.ExerciseInfo, 0, len(exercises))
		for _, exercise := range exercises {
			if exercise.TargetsPrimary(muscle) || exercise.TargetsSecondary(muscle) {
				filtered = append(filtered, exercise)
			}
		}
		exercises = filtered
	}

	app.writeJSON(w, r, http.StatusOK, map[string]any{"exercises": exercises})
}

// exerciseInfoGET returns one exercise by catalog ID with its guide rendered
// from Markdown to HTML.
func (app *application) exerciseInfoGET(w http.ResponseWriter, r *http.Request) {
	exercise, ok := app.catalog.ByID(r.PathValue("id"))
	if !ok {
		app.clientError(w, r, http.StatusNotFound, "exercise not found")
		return
	}

	guideHTML, err := renderGuide(exercise)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, exerciseInfoResponse{
		Exercise:  exercise,
		GuideHTML: guideHTML,
	})
}

// renderGuide assembles the guide fields into a Markdown document and
// converts it to HTML.
func renderGuide(exercise catalog.ExerciseInfo) (string, error) {
	var md strings.Builder

	if len(exercise.Instructions) > 0 {
		md.WriteString("## Como executar\n\n")
		for i, step := range exercise.Instructions {
			fmt.Fprintf(&md, "%d. %s\n", i+1, step)
		}
		md.WriteString("\n")
	}
	writeBulletSection(&md, "Dicas", exercise.Tips)
	writeBulletSection(&md, "Erros comuns", exercise.CommonMistakes)
	writeBulletSection(&md, "Benefícios", exercise.Benefits)
	if exercise.ScientificEvidence != "" {
		md.WriteString("## Evidência científica\n\n")
		md.WriteString(exercise.ScientificEvidence)
		md.WriteString("\n")
	}

	var html bytes.Buffer
	if err := goldmark.Convert([]byte(md.String()), &html); err != nil {
		return "", fmt.Errorf("convert guide markdown: %w", err)
	}
	return html.String(), nil
}

func writeBulletSection(md *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(md, "## %s\n\n", title)
	for _, item := range items {
		fmt.Fprintf(md, "- %s\n", item)
	}
	md.WriteString("\n")
}
