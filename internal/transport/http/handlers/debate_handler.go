package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/vedran77/arbiter/internal/judge"
	"github.com/vedran77/arbiter/internal/service"
	"github.com/vedran77/arbiter/internal/transport/http/middleware"
	"github.com/vedran77/arbiter/pkg/validator"
)

type DebateHandler struct {
	debateService *service.DebateService
}

func NewDebateHandler(debateService *service.DebateService) *DebateHandler {
	return &DebateHandler{debateService: debateService}
}

func (h *DebateHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var input service.SubmitInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateSubmit(input.SideA, input.SideB); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	identity := middleware.GetIdentity(r.Context())

	debate, err := h.debateService.Submit(r.Context(), identity.UserID, input)
	if err != nil {
		switch {
		case errors.Is(err, judge.ErrUnavailable), errors.Is(err, judge.ErrBadVerdict):
			log.Printf("ERROR judging: %v", err)
			writeError(w, http.StatusBadGateway, "JUDGE_FAILED", "Judging service failed")
		default:
			log.Printf("ERROR submit: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, debate)
}

func (h *DebateHandler) History(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())

	debates, err := h.debateService.History(r.Context(), identity.UserID)
	if err != nil {
		log.Printf("ERROR history: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, debates)
}

func (h *DebateHandler) Get(w http.ResponseWriter, r *http.Request) {
	// A syntactically invalid id is indistinguishable from an absent one.
	debateID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Debate not found")
		return
	}

	identity := middleware.GetIdentity(r.Context())

	debate, err := h.debateService.GetByID(r.Context(), identity.UserID, debateID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDebateNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Debate not found")
		case errors.Is(err, service.ErrNotDebateOwner):
			writeError(w, http.StatusUnauthorized, "NOT_OWNER", "Not authorized")
		default:
			log.Printf("ERROR get debate: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, debate)
}
