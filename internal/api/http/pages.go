package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/eventpass/internal/api/http/web"
)

var pageRoutes = map[string]string{
	"/":                       "landing.html",
	"/login":                  "login.html",
	"/validator":              "validator.html",
	"/admin/users":            "users.html",
	"/admin/dashboard":        "dashboard.html",
	"/admin/leads":            "leads.html",
	"/admin/marketing/create": "marketing.html",
	"/admin/events":           "events_dashboard.html",
	"/admin/events/create":    "events_create.html",
	"/admin/tickets":          "tickets.html",
}

// RegisterPages wires the prebuilt admin and validator pages.
func RegisterPages(app *fiber.App) {
	for route, page := range pageRoutes {
		app.Get(route, servePage(page))
	}
	app.Get("/admin", func(c *fiber.Ctx) error {
		return c.Redirect("/login", fiber.StatusFound)
	})
	app.Get("/admin/events/report/:id", servePage("event_report.html"))
	app.Get("/assets/app.css", func(c *fiber.Ctx) error {
		payload, err := web.Page("app.css")
		if err != nil {
			return fiber.ErrNotFound
		}
		c.Set(fiber.HeaderContentType, "text/css")
		return c.Send(payload)
	})
	app.Get("/favicon.ico", func(c *fiber.Ctx) error {
		payload, err := web.Page("favicon.ico")
		if err != nil {
			return fiber.ErrNotFound
		}
		c.Set(fiber.HeaderContentType, "image/x-icon")
		return c.Send(payload)
	})
}

func servePage(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload, err := web.Page(name)
		if err != nil {
			return fiber.ErrNotFound
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(payload)
	}
}
