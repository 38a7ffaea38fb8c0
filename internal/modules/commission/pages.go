package commission

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"crochetstudio/internal/domain"
	"crochetstudio/internal/middleware"
	"crochetstudio/internal/web"
	"crochetstudio/internal/wizard"

	"github.com/gin-gonic/gin"
)

const (
	CookieName = "commission_session"
	// FileField is the multipart field carrying reference images.
	FileField = "reference_images"
)

type PageView struct {
	State        *State
	Progress     []wizard.Marker
	Slots        []domain.TimeSlot
	Sizes        []domain.Option
	Complexities []domain.Option
	Budgets      []domain.Option
	Review       *Review
	CanContinue  bool
	Error        string
	Missing      []string
}

type actionForm struct {
	Action string `form:"action"`
	SlotID int64  `form:"slot_id"`
}

var fieldLabels = map[string]string{
	"name":                "Name",
	"email":               "Email",
	"project_description": "Project Description",
}

type Pages struct {
	service *Service
	tokens  TokenIssuer
	cookies web.CookieConfig
}

func NewPages(service *Service, tokens TokenIssuer, cookies web.CookieConfig) *Pages {
	return &Pages{service: service, tokens: tokens, cookies: cookies}
}

func (p *Pages) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/custom-commission", p.Show)
	rg.POST("/custom-commission", p.Act)
}

func (p *Pages) Show(c *gin.Context) {
	st, err := p.current(c)
	if errors.Is(err, ErrSessionNotFound) {
		st, err = p.start(c)
	}
	if err != nil {
		p.serverError(c, err)
		return
	}
	p.render(c, http.StatusOK, st, nil)
}

func (p *Pages) Act(c *gin.Context) {
	ctx := c.Request.Context()
	l := middleware.GetLocalizer(c)

	st, err := p.current(c)
	if errors.Is(err, ErrSessionNotFound) {
		if st, err = p.start(c); err != nil {
			p.serverError(c, err)
			return
		}
		p.render(c, http.StatusOK, st, ErrSessionNotFound)
		return
	}
	if err != nil {
		p.serverError(c, err)
		return
	}

	var form actionForm
	_ = c.ShouldBind(&form)

	var next *State
	switch form.Action {
	case "select-slot":
		next, err = p.service.SelectSlot(ctx, st.ID, form.SlotID)
	case "next":
		next, err = p.next(c, st, form)
	case "back":
		next, err = st, nil
		if st.Step == wizard.StepEnterDetails {
			next, err = p.saveDetails(c, st)
		}
		if err == nil {
			next, err = p.service.Previous(ctx, st.ID)
		}
	case "submit":
		ack, err := p.service.Submit(ctx, st.ID)
		if err != nil {
			p.fail(c, st, err)
			return
		}
		p.cookies.ClearCookie(c, CookieName)
		c.Redirect(http.StatusSeeOther, l.Path("/checkout/success")+"?ref="+url.QueryEscape(ack.Reference))
		return
	default:
		p.render(c, http.StatusBadRequest, st, nil)
		return
	}

	if next != nil {
		st = next
	}
	if err != nil {
		p.fail(c, st, err)
		return
	}
	p.refreshCookie(c, st.ID)
	c.Redirect(http.StatusSeeOther, l.Path("/custom-commission"))
}

func (p *Pages) next(c *gin.Context, st *State, form actionForm) (*State, error) {
	ctx := c.Request.Context()
	switch st.Step {
	case wizard.StepSelectSlot:
		if form.SlotID != 0 {
			if _, err := p.service.SelectSlot(ctx, st.ID, form.SlotID); err != nil {
				return st, err
			}
		}
	case wizard.StepEnterDetails:
		if _, err := p.saveDetails(c, st); err != nil {
			return st, err
		}
	}
	return p.service.Next(ctx, st.ID)
}

// saveDetails stores the typed fields and the metadata of any uploaded reference images.
func (p *Pages) saveDetails(c *gin.Context, st *State) (*State, error) {
	ctx := c.Request.Context()
	var details domain.CommissionDetails
	if err := c.ShouldBind(&details); err != nil {
		return st, ErrInvalidForm
	}
	next, err := p.service.UpdateDetails(ctx, st.ID, details)
	if err != nil {
		details.ReferenceImages = st.Details.ReferenceImages
		st.Details = details
		return st, err
	}
	if files := uploadedFiles(c); len(files) > 0 {
		return p.service.AddAttachments(ctx, st.ID, files...)
	}
	return next, nil
}

func uploadedFiles(c *gin.Context) []domain.Attachment {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	var out []domain.Attachment
	for _, fh := range form.File[FileField] {
		if fh.Filename == "" {
			continue
		}
		out = append(out, domain.Attachment{
			Name:        fh.Filename,
			Size:        fh.Size,
			ContentType: fh.Header.Get("Content-Type"),
		})
	}
	return out
}

func (p *Pages) fail(c *gin.Context, st *State, err error) {
	status, _, _ := classify(err)
	if status >= http.StatusInternalServerError {
		p.serverError(c, err)
		return
	}
	p.render(c, status, st, err)
}

func (p *Pages) render(c *gin.Context, status int, st *State, cause error) {
	l := middleware.GetLocalizer(c)

	view, err := p.view(c.Request.Context(), st)
	if err != nil {
		p.serverError(c, err)
		return
	}

	var incomplete *IncompleteError
	switch {
	case cause == nil:
	case errors.As(cause, &incomplete):
		for _, f := range incomplete.Missing {
			view.Missing = append(view.Missing, l.T(fieldLabels[f]))
		}
	default:
		_, _, view.Error = classify(cause)
	}

	web.Render(c, status, "commission", web.Page{Title: "Custom Commission", Content: view})
}

func (p *Pages) view(ctx context.Context, st *State) (*PageView, error) {
	slots, err := p.service.ListSlots(ctx)
	if err != nil {
		return nil, err
	}
	view := &PageView{
		State:        st,
		Progress:     wizard.Progress(st.Step),
		Slots:        slots,
		Sizes:        domain.CustomSizes,
		Complexities: domain.Complexities,
		Budgets:      domain.Budgets,
		CanContinue:  CanContinue(st),
	}
	if st.Step == wizard.StepReview {
		if view.Review, err = p.service.Review(ctx, st); err != nil {
			return nil, err
		}
	}
	return view, nil
}

func (p *Pages) current(c *gin.Context) (*State, error) {
	token, err := c.Cookie(CookieName)
	if err != nil || token == "" {
		return nil, ErrSessionNotFound
	}
	id, err := p.tokens.SessionFor(token, Flow)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	return p.service.Get(c.Request.Context(), id)
}

func (p *Pages) start(c *gin.Context) (*State, error) {
	st, err := p.service.Start(c.Request.Context())
	if err != nil {
		return nil, err
	}
	p.refreshCookie(c, st.ID)
	return st, nil
}

func (p *Pages) refreshCookie(c *gin.Context, id string) {
	token, err := p.tokens.GenerateToken(id, Flow)
	if err != nil {
		_ = c.Error(err)
		return
	}
	p.cookies.SetCookie(c, CookieName, token, p.tokens.TTL())
}

func (p *Pages) serverError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Status(http.StatusInternalServerError)
	web.ServerError(c)
}
