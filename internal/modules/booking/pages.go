package booking

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"crochetstudio/internal/domain"
	"crochetstudio/internal/middleware"
	"crochetstudio/internal/web"
	"crochetstudio/internal/wizard"

	"github.com/gin-gonic/gin"
)

// CookieName holds the signed session token of the HTML wizard.
const CookieName = "booking_session"

// PageView is the template data of the booking page.
type PageView struct {
	State       *State
	Progress    []wizard.Marker
	Slots       []domain.TimeSlot
	Items       []domain.CatalogItem
	Sizes       []domain.Option
	Review      *Review
	CanContinue bool
	Error       string
	Missing     []string
}

type actionForm struct {
	Action string `form:"action"`
	SlotID int64  `form:"slot_id"`
}

var fieldLabels = map[string]string{
	"item":     "Catalog item",
	"name":     "Name",
	"email":    "Email",
	"street":   "Street Address",
	"city":     "City",
	"state":    "State/Province",
	"zip_code": "ZIP/Postal Code",
	"country":  "Country",
}

// Pages serves the server-rendered booking wizard.
type Pages struct {
	service *Service
	tokens  TokenIssuer
	cookies web.CookieConfig
}

func NewPages(service *Service, tokens TokenIssuer, cookies web.CookieConfig) *Pages {
	return &Pages{service: service, tokens: tokens, cookies: cookies}
}

func (p *Pages) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/booking", p.Show)
	rg.POST("/booking", p.Act)
}

// Show renders the current step. ?item={id} naming a catalog design starts over with
// that design preselected; unknown ids are ignored.
func (p *Pages) Show(c *gin.Context) {
	l := middleware.GetLocalizer(c)
	item := c.Query("item")
	if item == "custom" {
		c.Redirect(http.StatusSeeOther, l.Path("/custom-commission"))
		return
	}
	itemID, _ := strconv.ParseInt(item, 10, 64)
	if !p.service.KnownItem(c.Request.Context(), itemID) {
		itemID = 0
	}

	st, err := p.current(c)
	if err != nil && !errors.Is(err, ErrSessionNotFound) {
		p.serverError(c, err)
		return
	}
	if st == nil || (itemID > 0 && st.ItemID != itemID) {
		if st, err = p.start(c, itemID); err != nil {
			p.serverError(c, err)
			return
		}
	}
	p.render(c, http.StatusOK, st, nil)
}

// Act applies one form action and redirects back on success.
func (p *Pages) Act(c *gin.Context) {
	ctx := c.Request.Context()
	l := middleware.GetLocalizer(c)

	st, err := p.current(c)
	if errors.Is(err, ErrSessionNotFound) {
		if st, err = p.start(c, 0); err != nil {
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
	c.Redirect(http.StatusSeeOther, l.Path("/booking"))
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

func (p *Pages) saveDetails(c *gin.Context, st *State) (*State, error) {
	var req UpdateDetailsRequest
	if err := c.ShouldBind(&req); err != nil {
		return st, ErrInvalidForm
	}
	next, err := p.service.UpdateDetails(c.Request.Context(), st.ID, req.ItemID, req.BookingDetails)
	if err != nil {
		// keep what the customer typed on the re-rendered form
		st.ItemID = req.ItemID
		st.Details = req.BookingDetails
		return st, err
	}
	return next, nil
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
	ctx := c.Request.Context()
	l := middleware.GetLocalizer(c)

	view, err := p.view(ctx, st)
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

	web.Render(c, status, "booking", web.Page{Title: "Book a Slot", Content: view})
}

func (p *Pages) view(ctx context.Context, st *State) (*PageView, error) {
	slots, err := p.service.ListSlots(ctx)
	if err != nil {
		return nil, err
	}
	items, err := p.service.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	view := &PageView{
		State:       st,
		Progress:    wizard.Progress(st.Step),
		Slots:       slots,
		Items:       items,
		Sizes:       domain.BookingSizes,
		CanContinue: CanContinue(st),
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

func (p *Pages) start(c *gin.Context, itemID int64) (*State, error) {
	st, err := p.service.Start(c.Request.Context(), itemID)
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
