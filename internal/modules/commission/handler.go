package commission

import (
	"errors"
	"net/http"
	"time"

	"crochetstudio/internal/domain"
	"crochetstudio/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	tokens  TokenIssuer
}

func NewHandler(service *Service, tokens TokenIssuer) *Handler {
	return &Handler{service: service, tokens: tokens}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	commissions := rg.Group("/commissions")
	{
		commissions.POST("", h.Start)
		commissions.GET("/:token", h.GetState)
		commissions.PUT("/:token/slot", h.SelectSlot)
		commissions.PUT("/:token/details", h.UpdateDetails)
		commissions.POST("/:token/attachments", h.AddAttachments)
		commissions.POST("/:token/next", h.Next)
		commissions.POST("/:token/previous", h.Previous)
		commissions.GET("/:token/validation", h.Validation)
		commissions.POST("/:token/submit", h.Submit)
	}
}

func (h *Handler) Start(c *gin.Context) {
	st, err := h.service.Start(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.reply(c, http.StatusCreated, st)
}

func (h *Handler) GetState(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	st, err := h.service.Get(c.Request.Context(), id)
	h.respond(c, st, err)
}

func (h *Handler) SelectSlot(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req SelectSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "slot_id is required")
		return
	}
	st, err := h.service.SelectSlot(c.Request.Context(), id, req.SlotID)
	h.respond(c, st, err)
}

func (h *Handler) UpdateDetails(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req domain.CommissionDetails
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	st, err := h.service.UpdateDetails(c.Request.Context(), id, req)
	h.respond(c, st, err)
}

func (h *Handler) AddAttachments(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req AttachmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "attachments are required")
		return
	}
	st, err := h.service.AddAttachments(c.Request.Context(), id, req.Attachments...)
	h.respond(c, st, err)
}

func (h *Handler) Next(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	st, err := h.service.Next(c.Request.Context(), id)
	h.respond(c, st, err)
}

func (h *Handler) Previous(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	st, err := h.service.Previous(c.Request.Context(), id)
	h.respond(c, st, err)
}

func (h *Handler) Validation(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	errs, err := h.service.Validate(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, ValidationResponse{Valid: len(errs) == 0, Errors: errs})
}

func (h *Handler) Submit(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	ack, err := h.service.Submit(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, ack)
}

func (h *Handler) respond(c *gin.Context, st *State, err error) {
	if err != nil {
		h.fail(c, err)
		return
	}
	h.reply(c, http.StatusOK, st)
}

// reply writes the state with a freshly signed token; saves extend the session,
// so the token handed out at start would run out first.
func (h *Handler) reply(c *gin.Context, status int, st *State) {
	token, exp, err := h.tokens.IssueToken(st.ID, Flow)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, status, h.stateResponse(token, exp, st))
}

func (h *Handler) sessionID(c *gin.Context) (string, bool) {
	id, err := h.tokens.SessionFor(c.Param("token"), Flow)
	if err != nil {
		response.Error(c, http.StatusNotFound, "SESSION_NOT_FOUND", "Commission session not found or expired")
		return "", false
	}
	return id, true
}

func (h *Handler) stateResponse(token string, tokenExp time.Time, st *State) StateResponse {
	expires := st.UpdatedAt.Add(h.tokens.TTL())
	if tokenExp.Before(expires) {
		expires = tokenExp
	}
	return StateResponse{
		Token:         token,
		Step:          st.Step,
		StepName:      st.Step.String(),
		SlotID:        st.SlotID,
		Details:       st.Details,
		CanContinue:   CanContinue(st),
		MissingFields: MissingFields(st),
		ExpiresAt:     expires,
	}
}

func (h *Handler) fail(c *gin.Context, err error) {
	status, code, message := classify(err)
	var incomplete *IncompleteError
	switch {
	case errors.As(err, &incomplete):
		response.ErrorWithDetails(c, status, code, message, gin.H{"missing_fields": incomplete.Missing})
	case status >= http.StatusInternalServerError:
		response.Internal(c, err)
	default:
		response.Error(c, status, code, message)
	}
}

func classify(err error) (int, string, string) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound, "SESSION_NOT_FOUND", "Your session has expired. Please start again."
	case errors.Is(err, ErrSlotNotFound):
		return http.StatusNotFound, "SLOT_NOT_FOUND", "Please select a week first."
	case errors.Is(err, ErrSlotBooked):
		return http.StatusConflict, "SLOT_BOOKED", "That week is already booked. Please choose another one."
	case errors.Is(err, ErrWrongStep):
		return http.StatusConflict, "WRONG_STEP", "That action is not available at this step."
	case errors.Is(err, ErrSlotRequired):
		return http.StatusUnprocessableEntity, "SLOT_REQUIRED", "Please select a week first."
	case errors.Is(err, ErrInvalidForm):
		return http.StatusBadRequest, "VALIDATION_ERROR", "Some fields could not be read. Please check the form."
	case errors.Is(err, ErrDetailsIncomplete):
		return http.StatusUnprocessableEntity, "DETAILS_INCOMPLETE", "Please fill in the required fields."
	default:
		return http.StatusInternalServerError, response.CodeInternal, "Something went wrong"
	}
}
