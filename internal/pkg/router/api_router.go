package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/salonhub/salonhub/app/controllers"
	"github.com/salonhub/salonhub/app/models"
	"github.com/salonhub/salonhub/internal/pkg/middleware"
)

// ApiRouter installs the versioned REST API. Public routes precede the
// tenancy gate; everything else is authenticated, and license enforcement
// wraps all tenant business routes except the read-only settings/billing
// endpoints a locked-out tenant still needs.
type ApiRouter struct {
	Gate           *middleware.TenancyGate
	LimiterStorage fiber.Storage

	Auth         *controllers.AuthController
	Salon        *controllers.SalonController
	License      *controllers.LicenseController
	Availability *controllers.AvailabilityController
	Booking      *controllers.BookingController
	Appointment  *controllers.AppointmentController
	Client       *controllers.ClientController
	Service      *controllers.ServiceController
	Product      *controllers.ProductController
	Transaction  *controllers.TransactionController
	Ticket       *controllers.TicketController
	User         *controllers.UserController
}

func (r *ApiRouter) InstallRouter(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	// Public allow-list: no gate, regardless of headers supplied.
	v1.Post("/auth/login", r.Auth.HandleLogin)
	v1.Post("/salons/register", r.Salon.HandleRegister)

	public := v1.Group("/public", limiter.New(limiter.Config{
		Max:        30,
		Expiration: time.Minute,
		Storage:    r.LimiterStorage,
	}))
	public.Get("/:slug/slots", r.Availability.HandleSlots)
	public.Get("/:slug/professionals", r.Availability.HandleProfessionals)
	public.Post("/:slug/bookings", r.Booking.HandleCreateBooking)

	// Authenticated but license-free: settings and billing reads.
	authed := v1.Group("", r.Gate.Authenticate())
	authed.Get("/license", r.License.HandleGetLicense)
	authed.Get("/salon", r.Salon.HandleGetSalon)

	// Platform administration. Platform roles pass the license gate
	// unconditionally; RequireRole keeps tenants out.
	admin := authed.Group("/admin", middleware.RequireRole(models.RolePlatformAssistant))
	admin.Get("/salons", r.License.HandleAdminListSalons)
	admin.Put("/salons/:id/license", r.License.HandleAdminUpdateLicense)
	admin.Get("/tickets", r.Ticket.HandleAdminList)
	admin.Post("/salons/:salon_id/tickets/:id/reply", r.Ticket.HandleReply)

	// Tenant business routes: license enforced on every one.
	gated := authed.Group("", r.Gate.EnforceLicense())

	gated.Put("/salon", middleware.RequireRole(models.RoleAdmin), r.Salon.HandleUpdateSalon)

	gated.Get("/appointments", r.Appointment.HandleList)
	gated.Post("/appointments", r.Appointment.HandleCreate)
	gated.Put("/appointments/:id", r.Appointment.HandleUpdate)
	gated.Post("/appointments/:id/cancel", r.Appointment.HandleCancel)
	gated.Post("/appointments/:id/checkout", r.Appointment.HandleCheckout)

	gated.Get("/clients", r.Client.HandleList)
	gated.Post("/clients", r.Client.HandleCreate)
	gated.Get("/clients/:id", r.Client.HandleGet)
	gated.Put("/clients/:id", r.Client.HandleUpdate)
	gated.Delete("/clients/:id", middleware.RequireRole(models.RoleAdmin), r.Client.HandleDelete)

	gated.Get("/services", r.Service.HandleList)
	gated.Post("/services", middleware.RequireRole(models.RoleAdmin), r.Service.HandleCreate)
	gated.Put("/services/:id", middleware.RequireRole(models.RoleAdmin), r.Service.HandleUpdate)
	gated.Delete("/services/:id", middleware.RequireRole(models.RoleAdmin), r.Service.HandleDelete)

	gated.Get("/products", r.Product.HandleList)
	gated.Post("/products", middleware.RequireRole(models.RoleAdmin), r.Product.HandleCreate)
	gated.Put("/products/:id", middleware.RequireRole(models.RoleAdmin), r.Product.HandleUpdate)
	gated.Post("/products/:id/stock", r.Product.HandleAdjustStock)
	gated.Delete("/products/:id", middleware.RequireRole(models.RoleAdmin), r.Product.HandleDelete)

	gated.Get("/transactions", middleware.RequireRole(models.RoleAdmin), r.Transaction.HandleList)
	gated.Post("/transactions/expenses", middleware.RequireRole(models.RoleAdmin), r.Transaction.HandleCreateExpense)
	gated.Get("/reports/summary", middleware.RequireRole(models.RoleAdmin), r.Transaction.HandleReport)

	gated.Get("/tickets", r.Ticket.HandleList)
	gated.Post("/tickets", r.Ticket.HandleCreate)
	gated.Get("/tickets/:id", r.Ticket.HandleGet)
	gated.Post("/tickets/:id/reply", r.Ticket.HandleReply)

	gated.Get("/users", r.User.HandleList)
	gated.Post("/users", middleware.RequireRole(models.RoleAdmin), r.User.HandleCreate)
	gated.Put("/users/:id", middleware.RequireRole(models.RoleAdmin), r.User.HandleUpdate)
	gated.Delete("/users/:id", middleware.RequireRole(models.RoleAdmin), r.User.HandleDelete)
}
