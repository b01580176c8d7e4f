package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"smartcity-portal/model"
)

type BannerKind string

const (
	BannerSuccess BannerKind = "success"
	BannerError   BannerKind = "error"
)

// Banner is the dismissible message shown above the pending list.
type Banner struct {
	Kind    BannerKind
	Message string
}

// ApprovalBoard holds the admin's view of pending registrations. It is safe
// for concurrent use; a registration can only have one decision in flight.
type ApprovalBoard struct {
	client *Client

	mu         sync.Mutex
	pending    []*model.Registration
	processing map[string]bool
	banner     *Banner
}

func NewApprovalBoard(c *Client) *ApprovalBoard {
	return &ApprovalBoard{
		client:     c,
		processing: make(map[string]bool),
	}
}

func (b *ApprovalBoard) fetch(ctx context.Context) Result[[]*model.Registration] {
	var regs []*model.Registration
	if err := b.client.do(ctx, http.MethodGet, "/admin/registrations/pending", nil, &regs, true); err != nil {
		return Fail[[]*model.Registration](err)
	}
	return Ok(regs)
}

// Load replaces the board's list with the server's pending registrations.
func (b *ApprovalBoard) Load(ctx context.Context) Result[[]*model.Registration] {
	res := b.fetch(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	if !res.OK() {
		b.banner = &Banner{Kind: BannerError, Message: res.Err.Message}
		return res
	}
	b.pending = res.Value
	return Ok(append([]*model.Registration(nil), res.Value...))
}

// List filters the loaded registrations. An empty query returns all of them.
func (b *ApprovalBoard) List(query string) []*model.Registration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return model.FilterRegistrations(b.pending, query)
}

func (b *ApprovalBoard) Approve(ctx context.Context, id, email string) Result[string] {
	return b.decide(ctx, id, email, model.StatusApproved)
}

func (b *ApprovalBoard) Disapprove(ctx context.Context, id, email string) Result[string] {
	return b.decide(ctx, id, email, model.StatusDisapproved)
}

// Processing reports whether a decision on id is in flight.
func (b *ApprovalBoard) Processing(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.processing[id]
}

func (b *ApprovalBoard) Banner() (Banner, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.banner == nil {
		return Banner{}, false
	}
	return *b.banner, true
}

func (b *ApprovalBoard) DismissBanner() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.banner = nil
}

func (b *ApprovalBoard) indexOf(id string) int {
	for i, reg := range b.pending {
		if reg.ID == id {
			return i
		}
	}
	return -1
}

func (b *ApprovalBoard) decide(ctx context.Context, id, email string, status model.RegistrationStatus) Result[string] {
	b.mu.Lock()
	if b.indexOf(id) < 0 {
		b.mu.Unlock()
		return Fail[string](&Error{Kind: KindRejected, Message: "This registration is no longer pending"})
	}
	if b.processing[id] {
		b.mu.Unlock()
		return Fail[string](&Error{Kind: KindRejected, Message: "This registration is already being processed"})
	}
	b.processing[id] = true
	b.mu.Unlock()

	action := "approve"
	if status == model.StatusDisapproved {
		action = "disapprove"
	}
	var resp model.DecisionResponse
	apiErr := b.client.do(ctx, http.MethodPost, "/admin/registrations/"+url.PathEscape(id)+"/"+action, nil, &resp, true)

	b.mu.Lock()
	delete(b.processing, id)
	if apiErr != nil {
		b.banner = &Banner{Kind: BannerError, Message: apiErr.Message}
		b.mu.Unlock()
		return Fail[string](apiErr)
	}

	message := resp.Message
	if message == "" {
		message = fmt.Sprintf("Registration %s. Email sent to %s", status, email)
	}
	if i := b.indexOf(id); i >= 0 {
		b.pending = append(b.pending[:i:i], b.pending[i+1:]...)
	}
	b.banner = &Banner{Kind: BannerSuccess, Message: message}
	b.mu.Unlock()

	// The server is authoritative; keep the local removal if the refresh fails.
	if fresh := b.fetch(ctx); fresh.OK() {
		b.mu.Lock()
		b.pending = fresh.Value
		b.mu.Unlock()
	}
	return Ok(message)
}
