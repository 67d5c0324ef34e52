package services

import (
	"strings"

	"github.com/google/uuid"

	"github.com/erasmusedu/erasmus-portal/internal/app/models"
	"github.com/erasmusedu/erasmus-portal/internal/app/models/dto"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/apperrors"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/validation"
	"github.com/erasmusedu/erasmus-portal/internal/registry"
)

// SiteService serves the public marketing content and the admin-side editor
// for it. The content is a single aggregate; page edits rewrite the whole
// aggregate through the registry.
type SiteService interface {
	Content() models.SiteContent
	UpdateContent(content models.SiteContent) (*models.SiteContent, error)
	ListPages() []models.SitePage
	// PageBySlug resolves an active extra page for the public site. Inactive
	// pages are invisible here.
	PageBySlug(slug string) (*models.SitePage, error)
	CreatePage(req dto.SitePageRequest) (*models.SitePage, error)
	UpdatePage(id string, req dto.SitePageRequest) (*models.SitePage, error)
	DeletePage(id string) error
}

type siteServiceImpl struct {
	reg *registry.Registry
}

// NewSiteService creates the site content view-model over the shared registry.
func NewSiteService(reg *registry.Registry) SiteService {
	return &siteServiceImpl{reg: reg}
}

func (s *siteServiceImpl) Content() models.SiteContent {
	return s.reg.Site()
}

// UpdateContent replaces the aggregate wholesale. Only the institution name
// is mandatory; everything else may be emptied by the editor.
func (s *siteServiceImpl) UpdateContent(content models.SiteContent) (*models.SiteContent, error) {
	b := validation.NewBuilder("siteContent")
	b.Require("institutionName", content.InstitutionName)
	if err := b.Finalize(); err != nil {
		return nil, err
	}

	s.reg.SetSite(content)
	return &content, nil
}

func (s *siteServiceImpl) ListPages() []models.SitePage {
	return s.reg.Site().Pages
}

func (s *siteServiceImpl) PageBySlug(slug string) (*models.SitePage, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, p := range s.reg.Site().Pages {
		if p.Active && strings.EqualFold(p.Slug, slug) {
			return &p, nil
		}
	}
	return nil, apperrors.ErrPageNotFound
}

func buildPage(req dto.SitePageRequest) (models.SitePage, error) {
	b := validation.NewBuilder("sitePage")
	title := b.Require("title", req.Title)
	slug := b.Require("slug", req.Slug)
	if err := b.Finalize(); err != nil {
		return models.SitePage{}, err
	}

	return models.SitePage{
		Title:   title,
		Slug:    strings.ToLower(slug),
		Content: req.Content,
		Active:  req.Active,
	}, nil
}

func (s *siteServiceImpl) CreatePage(req dto.SitePageRequest) (*models.SitePage, error) {
	page, err := buildPage(req)
	if err != nil {
		return nil, err
	}
	page.ID = uuid.NewString()

	s.reg.UpdateSite(func(content models.SiteContent) models.SiteContent {
		content.Pages = append(append([]models.SitePage(nil), content.Pages...), page)
		return content
	})
	return &page, nil
}

func (s *siteServiceImpl) UpdatePage(id string, req dto.SitePageRequest) (*models.SitePage, error) {
	page, err := buildPage(req)
	if err != nil {
		return nil, err
	}
	page.ID = id

	found := false
	s.reg.UpdateSite(func(content models.SiteContent) models.SiteContent {
		pages := append([]models.SitePage(nil), content.Pages...)
		for i := range pages {
			if pages[i].ID == id {
				pages[i] = page
				found = true
				break
			}
		}
		content.Pages = pages
		return content
	})
	if !found {
		return nil, apperrors.ErrPageNotFound
	}
	return &page, nil
}

func (s *siteServiceImpl) DeletePage(id string) error {
	removed := false
	s.reg.UpdateSite(func(content models.SiteContent) models.SiteContent {
		kept := make([]models.SitePage, 0, len(content.Pages))
		for _, p := range content.Pages {
			if !removed && p.ID == id {
				removed = true
				continue
			}
			kept = append(kept, p)
		}
		content.Pages = kept
		return content
	})
	if !removed {
		return apperrors.ErrPageNotFound
	}
	return nil
}
