package services

import (
	"context"
	"strings"

	"realestate-backend/internal/models"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// AgentStore and SiteStore cover the directory-style collections with no
// filter state.
type AgentStore interface {
	ListAll(ctx context.Context) ([]models.Agent, error)
}

type SiteStore interface {
	Partners(ctx context.Context) ([]models.Partner, error)
	Testimonials(ctx context.Context) ([]models.Testimonial, error)
}

type SiteService struct {
	agents AgentStore
	site   SiteStore
	logger *zap.Logger
}

func NewSiteService(agents AgentStore, site SiteStore, logger *zap.Logger) *SiteService {
	return &SiteService{agents: agents, site: site, logger: logger}
}

func (s *SiteService) Agents(ctx context.Context) ([]models.Agent, error) {
	agents, err := s.agents.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if agents == nil {
		agents = []models.Agent{}
	}
	return agents, nil
}

func (s *SiteService) Partners(ctx context.Context) ([]models.Partner, error) {
	partners, err := s.site.Partners(ctx)
	if err != nil {
		return nil, err
	}
	if partners == nil {
		partners = []models.Partner{}
	}
	return partners, nil
}

func (s *SiteService) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	testimonials, err := s.site.Testimonials(ctx)
	if err != nil {
		return nil, err
	}
	if testimonials == nil {
		testimonials = []models.Testimonial{}
	}
	return testimonials, nil
}

// ContactEnquiry is a contact-form submission. Enquiries are logged, not
// persisted; the store is read-only for this service.
type ContactEnquiry struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Subject    string `json:"subject"`
	Budget     string `json:"budget"`
	LookingFor string `json:"lookingFor"`
	Message    string `json:"message"`
}

// Validate requires name, email and message; email must at least look like
// an address.
func (e ContactEnquiry) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return errors.New("name is required")
	}
	email := strings.TrimSpace(e.Email)
	if email == "" {
		return errors.New("email is required")
	}
	if !strings.Contains(email, "@") {
		return errors.New("email is invalid")
	}
	if strings.TrimSpace(e.Message) == "" {
		return errors.New("message is required")
	}
	return nil
}

// SubmitEnquiry validates and records the enquiry in the log. Nothing is
// written to the store.
func (s *SiteService) SubmitEnquiry(ctx context.Context, enquiry ContactEnquiry) error {
	if err := enquiry.Validate(); err != nil {
		return err
	}
	s.logger.Info("contact enquiry received",
		zap.String("name", enquiry.Name),
		zap.String("email", enquiry.Email),
		zap.String("subject", enquiry.Subject),
		zap.String("budget", enquiry.Budget),
		zap.String("looking_for", enquiry.LookingFor),
	)
	return nil
}
