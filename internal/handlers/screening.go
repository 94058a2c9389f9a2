package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/mvickers/diarisk-backend/internal/predict"
	"github.com/mvickers/diarisk-backend/internal/requestdata"
	"github.com/mvickers/diarisk-backend/internal/services"
)

type ScreeningHandler struct {
	screeningService services.ScreeningService
	staticDir        string
}

func NewScreeningHandler(screeningService services.ScreeningService, staticDir string) *ScreeningHandler {
	return &ScreeningHandler{screeningService: screeningService, staticDir: staticDir}
}

func (sh *ScreeningHandler) Form(c *gin.Context) {
	c.File(filepath.Join(sh.staticDir, "test.html"))
}

// Submit parses the eight clinical fields, runs the classifier and reports
// the verdict. Malformed numeric input is a client error, never a 500.
func (sh *ScreeningHandler) Submit(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.User == nil {
		RespondError(c, http.StatusUnauthorized, "unauthenticated", nil)
		return
	}

	features, err := predict.ParseFeatures(func(name string) string {
		return c.PostForm(name)
	})
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}

	outcome, err := sh.screeningService.Evaluate(c.Request.Context(), rd.UserID, features)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "screening_failed", err)
		return
	}

	RespondOK(c, gin.H{
		"prediction":               boolToClass(outcome.Diabetic),
		"label":                    outcome.Label(),
		"probability_diabetic":     outcome.Probability,
		"probability_not_diabetic": 1 - outcome.Probability,
		"message":                  verdictMessage(outcome),
	})
}

// Latest serves the caller's stored submission so the screening form can
// be pre-filled with their previous values.
func (sh *ScreeningHandler) Latest(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.User == nil {
		RespondError(c, http.StatusUnauthorized, "unauthenticated", nil)
		return
	}

	record, err := sh.screeningService.LastSubmission(c.Request.Context(), rd.UserID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "load_submission_failed", err)
		return
	}
	if record == nil {
		RespondError(c, http.StatusNotFound, "no_submission", fmt.Errorf("no stored submission"))
		return
	}
	RespondOK(c, gin.H{"submission": record})
}

func boolToClass(diabetic bool) int {
	if diabetic {
		return 1
	}
	return 0
}

func verdictMessage(o predict.Outcome) string {
	if o.Diabetic {
		return fmt.Sprintf("Based on the input values, you are predicted to be diabetic (probability %.2f).", o.Probability)
	}
	return fmt.Sprintf("Based on the input values, you are predicted to not be diabetic (probability %.2f).", 1-o.Probability)
}
