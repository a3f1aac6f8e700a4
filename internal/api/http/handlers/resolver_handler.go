package handlers

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/eventpass/internal/api/http/web"
	"github.com/spec-kit/eventpass/internal/domain"
	"github.com/spec-kit/eventpass/internal/service"
)

// ResolverHandler serves the public short-link endpoint.
type ResolverHandler struct {
	service *service.MarketingService
}

// NewResolverHandler constructs handler.
func NewResolverHandler(marketingService *service.MarketingService) *ResolverHandler {
	return &ResolverHandler{service: marketingService}
}

// Resolve GET /r/:shortId. The scan is counted before the redirect or
// page is served.
func (h *ResolverHandler) Resolve(c *fiber.Ctx) error {
	resolution, err := h.service.Resolve(c.Context(), c.Params("shortId"))
	if err != nil {
		return err
	}

	if resolution.Type == domain.QRTypeLinkPage {
		var buf bytes.Buffer
		if err := web.Linkpage.Execute(&buf, resolution.QR); err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(buf.Bytes())
	}
	return c.Redirect(resolution.RedirectURL, fiber.StatusFound)
}
