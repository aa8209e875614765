package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ai-tireshop-be/internal/dto"
	"ai-tireshop-be/internal/entity"
	"ai-tireshop-be/internal/repository/contract"
	"ai-tireshop-be/internal/repository/specification"
	"ai-tireshop-be/internal/repository/unitofwork"
	"ai-tireshop-be/pkg/chat/chaterr"
	"ai-tireshop-be/pkg/chat/grounding"
	"ai-tireshop-be/pkg/chat/ratelimit"
	"ai-tireshop-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

type stubProvider struct {
	reply      string
	err        error
	calls      int
	lastSystem string
}

func (p *stubProvider) Chat(_ context.Context, history []llm.Message, _ ...llm.Option) (string, error) {
	p.calls++
	if len(history) > 0 && history[0].Role == "system" {
		p.lastSystem = history[0].Content
	}
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

func (p *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

type stubLimiter struct {
	decision ratelimit.Decision
	err      error
}

func (l stubLimiter) Allow(context.Context, string) (ratelimit.Decision, error) {
	return l.decision, l.err
}

func allowAll() stubLimiter {
	return stubLimiter{decision: ratelimit.Decision{Allowed: true}}
}

type capturedAlerts struct {
	alerts []*dto.LeadAlertMessage
}

func (c *capturedAlerts) PublishLeadAlert(alert *dto.LeadAlertMessage) error {
	c.alerts = append(c.alerts, alert)
	return nil
}

type fakeConversationRepo struct {
	bySession map[string]*entity.Conversation
	createErr error
	findErr   error
	appends   int
	// findNilTimes makes the next N FindOne calls miss, to simulate a row
	// created by a concurrent request between lookup and insert.
	findNilTimes int
}

func newFakeConversationRepo() *fakeConversationRepo {
	return &fakeConversationRepo{bySession: make(map[string]*entity.Conversation)}
}

func (r *fakeConversationRepo) Create(_ context.Context, c *entity.Conversation) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, exists := r.bySession[c.SessionId]; exists {
		return errors.New("duplicate key value violates unique constraint")
	}
	c.Id = uuid.New()
	r.bySession[c.SessionId] = c
	return nil
}

func (r *fakeConversationRepo) AppendMessages(_ context.Context, id uuid.UUID, messages []entity.ChatMessage, intent string, recommended []string) error {
	r.appends++
	for _, c := range r.bySession {
		if c.Id == id {
			c.Messages = append(c.Messages, messages...)
			c.Intent = intent
			c.RecommendedProducts = recommended
			return nil
		}
	}
	return errors.New("conversation not found")
}

func (r *fakeConversationRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Conversation, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	if r.findNilTimes > 0 {
		r.findNilTimes--
		return nil, nil
	}
	for _, s := range specs {
		if bs, ok := s.(specification.BySessionID); ok {
			return r.bySession[bs.SessionID], nil
		}
	}
	return nil, nil
}

func (r *fakeConversationRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.Conversation, error) {
	out := make([]*entity.Conversation, 0, len(r.bySession))
	for _, c := range r.bySession {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeConversationRepo) Count(context.Context, ...specification.Specification) (int64, error) {
	return int64(len(r.bySession)), nil
}

type fakeLeadRepo struct {
	byConversation map[uuid.UUID]*entity.Lead
	upsertErr      error
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{byConversation: make(map[uuid.UUID]*entity.Lead)}
}

func (r *fakeLeadRepo) Upsert(_ context.Context, lead *entity.Lead) (bool, error) {
	if r.upsertErr != nil {
		return false, r.upsertErr
	}
	if existing, ok := r.byConversation[lead.ConversationId]; ok {
		existing.LeadType = lead.LeadType
		if lead.Email != "" {
			existing.Email = lead.Email
		}
		if lead.Phone != "" {
			existing.Phone = lead.Phone
		}
		if lead.TireSize != "" {
			existing.TireSize = lead.TireSize
		}
		lead.Id = existing.Id
		return false, nil
	}
	lead.Id = uuid.New()
	r.byConversation[lead.ConversationId] = lead
	return true, nil
}

func (r *fakeLeadRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Lead, error) {
	for _, s := range specs {
		if bc, ok := s.(specification.ByConversationID); ok {
			return r.byConversation[bc.ConversationID], nil
		}
	}
	return nil, nil
}

func (r *fakeLeadRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.Lead, error) {
	out := make([]*entity.Lead, 0, len(r.byConversation))
	for _, l := range r.byConversation {
		out = append(out, l)
	}
	return out, nil
}

func (r *fakeLeadRepo) Count(context.Context, ...specification.Specification) (int64, error) {
	return int64(len(r.byConversation)), nil
}

type staticCompanyInfoRepo struct{ rows []*entity.CompanyInfo }

func (r staticCompanyInfoRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.CompanyInfo, error) {
	return r.rows, nil
}

type staticSettingRepo struct{ rows []*entity.SiteSetting }

func (r staticSettingRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.SiteSetting, error) {
	return r.rows, nil
}

type staticFAQRepo struct{}

func (staticFAQRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.FAQEntry, error) {
	return nil, nil
}

type staticServiceRepo struct{}

func (staticServiceRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.ServiceItem, error) {
	return nil, nil
}

type staticPolicyRepo struct{}

func (staticPolicyRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.Policy, error) {
	return nil, nil
}

type staticProductRepo struct{ rows []*entity.Product }

func (r staticProductRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.Product, error) {
	return r.rows, nil
}

func (r staticProductRepo) Count(context.Context, ...specification.Specification) (int64, error) {
	return int64(len(r.rows)), nil
}

type fakeUow struct {
	conversations *fakeConversationRepo
	leads         *fakeLeadRepo
	products      []*entity.Product
	companyInfo   []*entity.CompanyInfo
}

func (u *fakeUow) Begin(context.Context) error { return nil }
func (u *fakeUow) Commit() error               { return nil }
func (u *fakeUow) Rollback() error             { return nil }

func (u *fakeUow) ConversationRepository() contract.ConversationRepository { return u.conversations }
func (u *fakeUow) LeadRepository() contract.LeadRepository                 { return u.leads }
func (u *fakeUow) CompanyInfoRepository() contract.CompanyInfoRepository {
	return staticCompanyInfoRepo{rows: u.companyInfo}
}
func (u *fakeUow) SiteSettingRepository() contract.SiteSettingRepository {
	return staticSettingRepo{}
}
func (u *fakeUow) FAQRepository() contract.FAQRepository                 { return staticFAQRepo{} }
func (u *fakeUow) ServiceItemRepository() contract.ServiceItemRepository { return staticServiceRepo{} }
func (u *fakeUow) PolicyRepository() contract.PolicyRepository           { return staticPolicyRepo{} }
func (u *fakeUow) ProductRepository() contract.ProductRepository {
	return staticProductRepo{rows: u.products}
}

type fakeUowFactory struct{ uow *fakeUow }

func (f fakeUowFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork { return f.uow }

// ---- harness ----

type harness struct {
	service  IChatService
	provider *stubProvider
	uow      *fakeUow
	alerts   *capturedAlerts
}

func newHarness(provider *stubProvider, limiter ratelimit.Limiter) *harness {
	uow := &fakeUow{
		conversations: newFakeConversationRepo(),
		leads:         newFakeLeadRepo(),
		companyInfo: []*entity.CompanyInfo{
			{Category: "contact", Key: "phone", Value: "780-555-0137"},
		},
		products: []*entity.Product{
			{Id: uuid.New(), Size: "225/65R17", Vendor: "Michelin", Price: 218.99, Availability: "in_stock", IsActive: true},
			{Id: uuid.New(), Size: "225/65R17", Vendor: "Bridgestone", Price: 189.50, Availability: "in_stock", IsActive: true},
		},
	}
	factory := fakeUowFactory{uow: uow}
	alerts := &capturedAlerts{}
	svc := NewChatService(
		factory,
		provider,
		limiter,
		grounding.NewAssembler(factory, noopLogger{}),
		alerts,
		nil,
		noopLogger{},
	)
	return &harness{service: svc, provider: provider, uow: uow, alerts: alerts}
}

func body(message, sessionId string) map[string]interface{} {
	return map[string]interface{}{"message": message, "sessionId": sessionId}
}

// ---- tests ----

func TestSendMessageTireSearch(t *testing.T) {
	provider := &stubProvider{reply: "We stock the Michelin Defender in 225/65R17 at $218.99."}
	h := newHarness(provider, allowAll())

	res, err := h.service.SendMessage(context.Background(), body("looking for 225/65R17 tires", "s1"))
	require.NoError(t, err)

	assert.Equal(t, "tire_search", res.Intent)
	assert.Equal(t, provider.reply, res.Message)
	assert.False(t, res.LeadCreated)
	assert.Nil(t, res.LeadId)
	// Reply names Michelin and the size, so both 225/65R17 rows match.
	assert.Len(t, res.RecommendedProducts, 2)

	// Prompt carried the grounding facts.
	assert.Contains(t, h.provider.lastSystem, "780-555-0137")
	assert.Contains(t, h.provider.lastSystem, "Michelin")

	// Transcript persisted with both turns.
	conv := h.uow.conversations.bySession["s1"]
	require.NotNil(t, conv)
	assert.Len(t, conv.Messages, 2)
	assert.Equal(t, "user", conv.Messages[0].Role)
	assert.Equal(t, "assistant", conv.Messages[1].Role)
}

func TestSendMessageQuoteCreatesLead(t *testing.T) {
	provider := &stubProvider{reply: "Happy to quote that. Can I get your phone number?"}
	h := newHarness(provider, allowAll())

	res, err := h.service.SendMessage(context.Background(),
		body("how much for 225/65R17? call me at 780-555-1234", "s1"))
	require.NoError(t, err)

	assert.Equal(t, "quote_request", res.Intent)
	assert.True(t, res.LeadCreated)
	require.NotNil(t, res.LeadId)

	conv := h.uow.conversations.bySession["s1"]
	require.NotNil(t, conv)
	lead := h.uow.leads.byConversation[conv.Id]
	require.NotNil(t, lead)
	assert.Equal(t, "quote_request", lead.LeadType)
	assert.Equal(t, "780-555-1234", lead.Phone)
	assert.Equal(t, "225/65/17", lead.TireSize)
	assert.Equal(t, "new", lead.Status)

	// New lead with contact info fires exactly one staff alert.
	require.Len(t, h.alerts.alerts, 1)
	assert.Equal(t, lead.Id, h.alerts.alerts[0].LeadId)
}

func TestSendMessageLeadIdempotentPerConversation(t *testing.T) {
	provider := &stubProvider{reply: "Sure, our team will follow up."}
	h := newHarness(provider, allowAll())
	ctx := context.Background()

	_, err := h.service.SendMessage(ctx, body("please call me back at 780-555-1234", "s1"))
	require.NoError(t, err)

	res, err := h.service.SendMessage(ctx, body("also email me a quote, jo@example.com", "s1"))
	require.NoError(t, err)

	// Second qualifying message updates the lead, never duplicates it.
	assert.False(t, res.LeadCreated)
	require.NotNil(t, res.LeadId)
	assert.Len(t, h.uow.leads.byConversation, 1)

	conv := h.uow.conversations.bySession["s1"]
	lead := h.uow.leads.byConversation[conv.Id]
	assert.Equal(t, "780-555-1234", lead.Phone, "earlier phone must survive the update")
	assert.Equal(t, "jo@example.com", lead.Email)

	// Only the first capture alerts staff.
	assert.Len(t, h.alerts.alerts, 1)
}

func TestSendMessageAppendsToExistingConversation(t *testing.T) {
	provider := &stubProvider{reply: "ok"}
	h := newHarness(provider, allowAll())
	ctx := context.Background()

	_, err := h.service.SendMessage(ctx, body("first message", "s1"))
	require.NoError(t, err)
	_, err = h.service.SendMessage(ctx, body("second message", "s1"))
	require.NoError(t, err)

	conv := h.uow.conversations.bySession["s1"]
	require.NotNil(t, conv)
	assert.Len(t, conv.Messages, 4)
	assert.Equal(t, 1, h.uow.conversations.appends)
}

func TestSendMessageProviderFailureFallsBack(t *testing.T) {
	provider := &stubProvider{err: errors.New("upstream timeout")}
	h := newHarness(provider, allowAll())

	res, err := h.service.SendMessage(context.Background(), body("looking for 225/65R17", "s1"))
	require.NoError(t, err, "provider failure must not surface as an HTTP error")

	assert.Contains(t, res.Message, "780-555-0137", "fallback carries the shop phone")
	assert.Contains(t, strings.ToLower(res.Message), "apologize")
	assert.Empty(t, res.RecommendedProducts, "no recommendations extracted from a canned reply")

	// The exchange, fallback included, is still persisted.
	conv := h.uow.conversations.bySession["s1"]
	require.NotNil(t, conv)
	assert.Len(t, conv.Messages, 2)
	assert.Equal(t, res.Message, conv.Messages[1].Content)
}

func TestSendMessageValidationShortCircuits(t *testing.T) {
	provider := &stubProvider{reply: "should never be called"}
	h := newHarness(provider, allowAll())

	_, err := h.service.SendMessage(context.Background(), body("", "s1"))
	require.Error(t, err)
	assert.True(t, chaterr.IsKind(err, chaterr.KindInvalidMessage))
	assert.Equal(t, 0, provider.calls)
	assert.Empty(t, h.uow.conversations.bySession, "nothing persisted on validation failure")
}

func TestSendMessageRateLimited(t *testing.T) {
	provider := &stubProvider{reply: "should never be called"}
	limiter := stubLimiter{decision: ratelimit.Decision{Allowed: false, RetryAfterSeconds: 42}}
	h := newHarness(provider, limiter)

	_, err := h.service.SendMessage(context.Background(), body("hi", "s1"))
	require.Error(t, err)
	assert.True(t, chaterr.IsKind(err, chaterr.KindRateLimited))

	var ce *chaterr.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 42, ce.RetryAfter)
	assert.Equal(t, 0, provider.calls)
}

func TestSendMessageLimiterFailureFailsOpen(t *testing.T) {
	provider := &stubProvider{reply: "ok"}
	limiter := stubLimiter{err: errors.New("redis down")}
	h := newHarness(provider, limiter)

	res, err := h.service.SendMessage(context.Background(), body("hi", "s1"))
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Message)
}

func TestSendMessageNoProviderConfigured(t *testing.T) {
	h := newHarness(&stubProvider{}, allowAll())
	svc := NewChatService(
		fakeUowFactory{uow: h.uow}, nil, allowAll(),
		grounding.NewAssembler(fakeUowFactory{uow: h.uow}, noopLogger{}),
		h.alerts, nil, noopLogger{},
	)

	_, err := svc.SendMessage(context.Background(), body("hi", "s1"))
	require.Error(t, err)
	assert.True(t, chaterr.IsKind(err, chaterr.KindMisconfiguredServer))
}

func TestSendMessagePersistenceFailureStillReplies(t *testing.T) {
	provider := &stubProvider{reply: "ok"}
	h := newHarness(provider, allowAll())
	h.uow.conversations.findErr = errors.New("db down")

	res, err := h.service.SendMessage(context.Background(), body("hi", "s1"))
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Message)
	assert.False(t, res.LeadCreated)
}

func TestSendMessageCreateRaceFallsBackToAppend(t *testing.T) {
	provider := &stubProvider{reply: "ok"}
	h := newHarness(provider, allowAll())

	// A concurrent writer created the row between FindOne and Create: the
	// first lookup misses, Create hits the unique index, the retry lookup
	// finds the winner's row.
	winner := &entity.Conversation{Id: uuid.New(), SessionId: "s1"}
	h.uow.conversations.bySession["s1"] = winner
	h.uow.conversations.findNilTimes = 1
	h.uow.conversations.createErr = errors.New("duplicate key value violates unique constraint")

	_, err := h.service.SendMessage(context.Background(), body("hi", "s1"))
	require.NoError(t, err)
	assert.Len(t, winner.Messages, 2, "loser appended to the winner's row")
}

func TestGetHistory(t *testing.T) {
	provider := &stubProvider{reply: "we have those in stock"}
	h := newHarness(provider, allowAll())
	ctx := context.Background()

	_, err := h.service.SendMessage(ctx, body("got 225/65R17?", "s1"))
	require.NoError(t, err)

	res, err := h.service.GetHistory(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", res.SessionId)
	require.Len(t, res.Messages, 2)
	assert.Equal(t, "got 225/65R17?", res.Messages[0].Content)
	assert.Equal(t, "we have those in stock", res.Messages[1].Content)
}

func TestGetHistoryUnknownSession(t *testing.T) {
	h := newHarness(&stubProvider{}, allowAll())

	res, err := h.service.GetHistory(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.Equal(t, "never-seen", res.SessionId)
	assert.Empty(t, res.Messages)
}

func TestGetHistoryEmptySessionRejected(t *testing.T) {
	h := newHarness(&stubProvider{}, allowAll())

	_, err := h.service.GetHistory(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, chaterr.IsKind(err, chaterr.KindInvalidSession))
}
