package web

import (
	"github.com/gofiber/fiber/v2"
)

// Router registra las rutas de página. Toda petición pasa antes por
// resolveSession, que ata la identidad y el cliente del backend al ciclo.
func Router(app *fiber.App, h *Handler) {
	app.Use(h.resolveSession)

	// Tienda (pública)
	app.Get("/", h.Home)
	app.Get("/products/:id", h.ProductDetail)
	app.Post("/cart", h.AddToCart)

	// Autenticación
	app.Get("/login", h.LoginPage)
	app.Post("/login", h.Login)
	app.Get("/signup", h.SignupPage)
	app.Post("/signup", h.Signup)
	app.Post("/logout", h.Logout)

	// Panel del cliente
	app.Get("/account", h.Account)
	app.Post("/cart/:id", h.UpdateCartItem)
	app.Post("/cart/:id/delete", h.RemoveCartItem)
	app.Post("/checkout", h.Checkout)
	app.Post("/profile", h.UpdateProfile)

	// Métodos de pago
	app.Get("/payment-info", h.PaymentInfo)
	app.Post("/payment-info", h.AddPaymentMethod)
	app.Post("/payment-info/:id/delete", h.DeletePaymentMethod)

	// Órdenes
	app.Get("/orders/:id", h.OrderDetail)
	app.Post("/orders/:id/accept", h.AcceptOrder)
	app.Post("/orders/:id/cancel", h.CancelOrder)

	// Mesa del empleado
	app.Get("/employee", h.EmployeeDesk)
	app.Post("/employee/profile", h.UpdateEmployeeProfile)

	// Back-office (solo admin; cada handler aplica su guard)
	admin := app.Group("/admin")
	admin.Get("/", h.AdminDashboard)
	admin.Get("/employees", h.AdminEmployees)
	admin.Post("/employees", h.CreateEmployee)
	admin.Get("/employees/:id/salary", h.EmployeeSalaryForm)
	admin.Post("/employees/:id/salary", h.UpdateEmployeeSalary)
	admin.Post("/employees/:id/delete", h.DeleteEmployee)
	admin.Get("/products", h.AdminProducts)
	admin.Post("/products", h.CreateProduct)
	admin.Get("/products/:id/price", h.ProductPriceForm)
	admin.Post("/products/:id/price", h.UpdateProductPrice)
	admin.Post("/products/:id/delete", h.DeleteProduct)
	admin.Get("/stock", h.AdminStock)
	admin.Post("/stock/:id", h.UpdateStock)
	admin.Get("/orders", h.AdminOrders)
	admin.Get("/suppliers", h.AdminSuppliers)
	admin.Post("/suppliers", h.CreateSupplier)
	admin.Get("/suppliers/:id/edit", h.SupplierEditForm)
	admin.Post("/suppliers/:id", h.UpdateSupplier)
	admin.Post("/suppliers/:id/delete", h.DeleteSupplier)
	admin.Get("/purchases", h.AdminPurchases)
	admin.Post("/purchases", h.CreatePurchase)
}
