package domain

// Tipos de cuenta que emite el backend en /api/session.
const (
	UserTypeCustomer = "customer"
	UserTypeEmployee = "employee"
)

// RoleAdmin es el atributo de rol elevado de un empleado; un admin no es un
// tipo de identidad aparte.
const RoleAdmin = "ADMIN"

// RequiredRole nivel de acceso exigido por una página.
type RequiredRole string

const (
	RequireCustomer RequiredRole = "customer"
	RequireEmployee RequiredRole = "employee"
	RequireAdmin    RequiredRole = "admin"
)

// OrderStatus estado de una orden. El conjunto autoritativo del backend
// incluye Shipped además de los tres estados clásicos.
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderAccepted  OrderStatus = "Accepted"
	OrderShipped   OrderStatus = "Shipped"
	OrderCancelled OrderStatus = "Cancelled"
)

// OrderStatuses en el orden en que se muestran en los filtros.
var OrderStatuses = []OrderStatus{OrderPending, OrderAccepted, OrderShipped, OrderCancelled}
