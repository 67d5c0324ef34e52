package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erasmusedu/erasmus-portal/internal/app/models/dto"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/apperrors"
	"github.com/erasmusedu/erasmus-portal/internal/registry"
	"github.com/erasmusedu/erasmus-portal/internal/seed"
)

func newTestSiteService(t *testing.T) SiteService {
	t.Helper()
	reg := registry.New()
	seed.Apply(reg)
	return NewSiteService(reg)
}

func TestPageBySlugOnlyFindsActivePages(t *testing.T) {
	svc := newTestSiteService(t)

	page, err := svc.PageBySlug("matricula")
	require.NoError(t, err)
	assert.Equal(t, "Processo de Matrícula", page.Title)

	// Slug match is case-insensitive.
	_, err = svc.PageBySlug("MATRICULA")
	assert.NoError(t, err)

	// Deactivate it and the public lookup stops finding it.
	_, err = svc.UpdatePage("p1", dto.SitePageRequest{
		Title: "Processo de Matrícula", Slug: "matricula", Active: false,
	})
	require.NoError(t, err)

	_, err = svc.PageBySlug("matricula")
	assert.ErrorIs(t, err, apperrors.ErrPageNotFound)

	// The admin listing still sees it.
	assert.Len(t, svc.ListPages(), 2)
}

func TestCreateAndDeletePage(t *testing.T) {
	svc := newTestSiteService(t)

	page, err := svc.CreatePage(dto.SitePageRequest{
		Title: "Calendário Escolar", Slug: "Calendario", Content: "...", Active: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "calendario", page.Slug, "slugs are stored lowercase")

	require.NoError(t, svc.DeletePage(page.ID))
	_, err = svc.PageBySlug("calendario")
	assert.ErrorIs(t, err, apperrors.ErrPageNotFound)
}

func TestUpdateContentRequiresInstitutionName(t *testing.T) {
	svc := newTestSiteService(t)

	content := svc.Content()
	content.InstitutionName = ""
	_, err := svc.UpdateContent(content)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	content.InstitutionName = "Complexo Erasmus"
	content.HeroTitle = "Novo Título"
	updated, err := svc.UpdateContent(content)
	require.NoError(t, err)
	assert.Equal(t, "Novo Título", updated.HeroTitle)
	assert.Equal(t, "Novo Título", svc.Content().HeroTitle)
}
