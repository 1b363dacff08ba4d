package service

import (
	"context"
	"time"

	"directory_backend/internal/directory"
	"directory_backend/internal/leads/repository"
	"directory_backend/internal/leads/scoring"
	"directory_backend/internal/leads/transport"
	"directory_backend/platform/apperr"
	"directory_backend/platform/logger"
)

// companyLeadsPool caps how many contacts of a company are scored for the top-leads view.
const companyLeadsPool = 200

// EngagementStore provides interaction history. It is optional.
type EngagementStore interface {
	Get(ctx context.Context, contactIDs ...string) (map[string]directory.Engagement, error)
	RecordInteraction(ctx context.Context, contactID string, at time.Time) (directory.Engagement, error)
}

// Service serves lead scores over stored directory data.
type Service struct {
	repo       repository.ContactReader
	engagement EngagementStore
	log        *logger.Logger
	now        func() time.Time
}

// New creates a new lead scoring service. engagement may be nil, in which case
// every contact scores with an empty history.
func New(repo repository.ContactReader, engagement EngagementStore, log *logger.Logger) *Service {
	return &Service{repo: repo, engagement: engagement, log: log, now: time.Now}
}

// Score returns the lead score of a stored contact.
func (s *Service) Score(ctx context.Context, contactID string) (transport.LeadScoreResponse, error) {
	contact, err := s.loadContact(ctx, contactID)
	if err != nil {
		return transport.LeadScoreResponse{}, err
	}

	resp := s.scoreResponse(contact)
	resp.ContactID = contactID
	return resp, nil
}

// Insights explains the lead score of a stored contact.
func (s *Service) Insights(ctx context.Context, contactID string) (transport.LeadInsightsResponse, error) {
	contact, err := s.loadContact(ctx, contactID)
	if err != nil {
		return transport.LeadInsightsResponse{}, err
	}

	return transport.LeadInsightsResponse{
		ContactID:    contactID,
		Insights:     scoring.GenerateLeadInsightsAt(contact, s.now()),
		ModelVersion: scoring.Version,
	}, nil
}

// CompanyLeads ranks the active contacts of a company and returns the best limit of them
// together with the average score across all rated contacts. A limit of zero or
// less means scoring.DefaultTopLeadsLimit.
func (s *Service) CompanyLeads(ctx context.Context, companyID string, limit int) (transport.CompanyLeadsResponse, error) {
	if limit <= 0 {
		limit = scoring.DefaultTopLeadsLimit
	}

	contacts, err := s.repo.ListActiveContactsByCompany(ctx, companyID, companyLeadsPool)
	if err != nil {
		return transport.CompanyLeadsResponse{}, s.dataError(ctx, "leads.CompanyLeads", err)
	}
	contacts = s.withEngagement(ctx, contacts)

	now := s.now()
	top := scoring.GetTopLeadsAt(contacts, limit, now)

	resp := transport.CompanyLeadsResponse{
		CompanyID:     companyID,
		ContactsRated: len(contacts),
		AverageScore:  scoring.CalculateAverageLeadScoreAt(contacts, now),
		Leads:         make([]transport.TopLead, 0, len(top)),
		ModelVersion:  scoring.Version,
	}
	if len(contacts) > 0 {
		resp.CompanyName = contacts[0].Company.Name
	}
	for _, lead := range top {
		resp.Leads = append(resp.Leads, transport.TopLead{
			Contact:  lead.Contact,
			Score:    lead.LeadScore,
			Tier:     scoring.GetLeadTier(lead.LeadScore.Total),
			Priority: scoring.GetContactPriorityAt(lead.ContactWithCompany, now),
		})
	}
	return resp, nil
}

// ScoreAdHoc scores a caller-supplied record without touching storage.
func (s *Service) ScoreAdHoc(_ context.Context, req transport.ScoreContactRequest) transport.LeadScoreResponse {
	return s.scoreResponse(req.ToContact())
}

// RecordInteraction counts an interaction with a stored contact.
func (s *Service) RecordInteraction(ctx context.Context, contactID string, at *time.Time) (transport.EngagementResponse, error) {
	if s.engagement == nil {
		return transport.EngagementResponse{}, apperr.New(apperr.KindUnavailable, "engagement tracking is disabled")
	}
	if _, err := s.repo.GetContactWithCompany(ctx, contactID); err != nil {
		return transport.EngagementResponse{}, s.dataError(ctx, "leads.RecordInteraction", err)
	}

	when := s.now()
	if at != nil {
		when = *at
	}

	history, err := s.engagement.RecordInteraction(ctx, contactID, when)
	if err != nil {
		s.log.WithContext(ctx).Error("failed to record interaction", "contact_id", contactID, "error", err)
		return transport.EngagementResponse{}, apperr.Wrap(apperr.KindUnavailable, "engagement store unavailable", err)
	}
	return transport.EngagementResponse{ContactID: contactID, Engagement: history}, nil
}

func (s *Service) loadContact(ctx context.Context, contactID string) (directory.ContactWithCompany, error) {
	contact, err := s.repo.GetContactWithCompany(ctx, contactID)
	if err != nil {
		return directory.ContactWithCompany{}, s.dataError(ctx, "leads.GetContactWithCompany", err)
	}
	enriched := s.withEngagement(ctx, []directory.ContactWithCompany{contact})
	return enriched[0], nil
}

// withEngagement attaches interaction history. A failing store is logged and
// the contacts are scored without history.
func (s *Service) withEngagement(ctx context.Context, contacts []directory.ContactWithCompany) []directory.ContactWithCompany {
	if s.engagement == nil || len(contacts) == 0 {
		return contacts
	}

	ids := make([]string, len(contacts))
	for i, c := range contacts {
		ids[i] = c.ID
	}

	history, err := s.engagement.Get(ctx, ids...)
	if err != nil {
		s.log.WithContext(ctx).Warn("engagement history unavailable, scoring without it", "contacts", len(ids), "error", err)
		return contacts
	}

	out := make([]directory.ContactWithCompany, len(contacts))
	for i, c := range contacts {
		c.Engagement = history[c.ID]
		out[i] = c
	}
	return out
}

// dataError passes typed repository errors through and logs the rest as
// database failures.
func (s *Service) dataError(ctx context.Context, op string, err error) error {
	if apperr.GetKind(err) != apperr.KindUnknown {
		return err
	}
	s.log.WithContext(ctx).DatabaseError(op, err)
	return apperr.Wrap(apperr.KindInternal, "data access failure", err).WithOp(op)
}

func (s *Service) scoreResponse(c directory.ContactWithCompany) transport.LeadScoreResponse {
	now := s.now()
	score := scoring.CalculateLeadScoreAt(c, now)
	return transport.LeadScoreResponse{
		ContactID:    c.ID,
		Score:        score,
		Tier:         scoring.GetLeadTier(score.Total),
		Priority:     scoring.GetContactPriorityAt(c, now),
		ModelVersion: scoring.Version,
	}
}
