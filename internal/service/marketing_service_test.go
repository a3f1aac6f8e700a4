package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/eventpass/internal/domain"
)

func TestQRCreateRedirect(t *testing.T) {
	repo := newMockQRRepo()
	svc := NewMarketingService(repo, nil)

	qr, err := svc.Create(context.Background(), QRCreateInput{
		Type:           domain.QRTypeRedirect,
		Title:          "Campanha Instagram",
		DestinationURL: "https://instagram.com/gala",
	})
	require.NoError(t, err)
	assert.Len(t, qr.ShortID, 7)
	assert.Equal(t, int64(0), qr.ScanCount)
	assert.False(t, qr.LeadCapture.Enabled)
	assert.Equal(t, []domain.PageLink{}, qr.Links)
}

func TestQRCreateLinkpageDefaults(t *testing.T) {
	repo := newMockQRRepo()
	svc := NewMarketingService(repo, nil)

	qr, err := svc.Create(context.Background(), QRCreateInput{
		Type:  domain.QRTypeLinkPage,
		Links: []domain.PageLink{{Title: "Ingressos", URL: "https://gala.example/ingressos"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Página de Links", qr.Title)
	assert.Len(t, qr.Links, 1)
}

func TestQRCreateValidation(t *testing.T) {
	svc := NewMarketingService(newMockQRRepo(), nil)

	_, err := svc.Create(context.Background(), QRCreateInput{Type: domain.QRTypeRedirect})
	requireDomainStatus(t, err, http.StatusBadRequest)

	_, err = svc.Create(context.Background(), QRCreateInput{Type: domain.QRTypeLinkPage})
	requireDomainStatus(t, err, http.StatusBadRequest)

	_, err = svc.Create(context.Background(), QRCreateInput{})
	requireDomainStatus(t, err, http.StatusBadRequest)

	_, err = svc.Create(context.Background(), QRCreateInput{Type: "banner"})
	requireDomainStatus(t, err, http.StatusBadRequest)
}

func TestQRCreateRetriesOnceOnCollision(t *testing.T) {
	repo := newMockQRRepo()
	repo.duplicates = 1
	svc := NewMarketingService(repo, nil)

	qr, err := svc.Create(context.Background(), QRCreateInput{
		Type:           domain.QRTypeRedirect,
		DestinationURL: "https://gala.example",
	})
	require.NoError(t, err)
	assert.Len(t, qr.ShortID, 7)
}

func TestResolveRedirectCountsScan(t *testing.T) {
	repo := newMockQRRepo()
	svc := NewMarketingService(repo, nil)

	qr, err := svc.Create(context.Background(), QRCreateInput{
		Type:           domain.QRTypeRedirect,
		DestinationURL: "https://instagram.com/gala",
	})
	require.NoError(t, err)

	res, err := svc.Resolve(context.Background(), qr.ShortID)
	require.NoError(t, err)
	assert.Equal(t, domain.QRTypeRedirect, res.Type)
	assert.Equal(t, "https://instagram.com/gala", res.RedirectURL)

	got, err := svc.Get(context.Background(), qr.ShortID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ScanCount)

	_, err = svc.Resolve(context.Background(), qr.ShortID)
	require.NoError(t, err)
	got, err = svc.Get(context.Background(), qr.ShortID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ScanCount)
}

func TestResolveNormalizesBareDestination(t *testing.T) {
	repo := newMockQRRepo()
	svc := NewMarketingService(repo, nil)

	qr, err := svc.Create(context.Background(), QRCreateInput{
		Type:           domain.QRTypeRedirect,
		DestinationURL: "example.com/promo",
	})
	require.NoError(t, err)

	res, err := svc.Resolve(context.Background(), qr.ShortID)
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/promo", res.RedirectURL)
}

func TestResolveLinkpage(t *testing.T) {
	repo := newMockQRRepo()
	svc := NewMarketingService(repo, nil)

	qr, err := svc.Create(context.Background(), QRCreateInput{
		Type:  domain.QRTypeLinkPage,
		Title: "Links da Gala",
		Links: []domain.PageLink{{Title: "Ingressos", URL: "https://gala.example"}},
	})
	require.NoError(t, err)

	res, err := svc.Resolve(context.Background(), qr.ShortID)
	require.NoError(t, err)
	assert.Equal(t, domain.QRTypeLinkPage, res.Type)
	require.NotNil(t, res.QR)
	assert.Equal(t, "Links da Gala", res.QR.Title)
	assert.Empty(t, res.RedirectURL)
}

func TestResolveUnknownShortID(t *testing.T) {
	svc := NewMarketingService(newMockQRRepo(), nil)

	_, err := svc.Resolve(context.Background(), "zzzzzzz")
	requireDomainStatus(t, err, http.StatusNotFound)
}

func TestQRUpdateValidationAndNotFound(t *testing.T) {
	svc := NewMarketingService(newMockQRRepo(), nil)

	err := svc.Update(context.Background(), "abc1234", "", "https://gala.example")
	requireDomainStatus(t, err, http.StatusBadRequest)

	err = svc.Update(context.Background(), "abc1234", "Novo título", "https://gala.example")
	requireDomainStatus(t, err, http.StatusNotFound)
}

func TestQRDeleteIsHard(t *testing.T) {
	repo := newMockQRRepo()
	svc := NewMarketingService(repo, nil)

	qr, err := svc.Create(context.Background(), QRCreateInput{
		Type:           domain.QRTypeRedirect,
		DestinationURL: "https://gala.example",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), qr.ShortID))
	_, err = svc.Get(context.Background(), qr.ShortID)
	requireDomainStatus(t, err, http.StatusNotFound)
	err = svc.Delete(context.Background(), qr.ShortID)
	requireDomainStatus(t, err, http.StatusNotFound)
}
