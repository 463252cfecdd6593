package web

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/ashhabsport/storefront-web/internal/domain"
	"github.com/ashhabsport/storefront-web/internal/domain/entity"
	"github.com/ashhabsport/storefront-web/internal/infrastructure/backend"
	"github.com/ashhabsport/storefront-web/internal/interfaces/web/view"
)

// AdminEmployees listado de empleados con el formulario de alta.
func (h *Handler) AdminEmployees(c *fiber.Ctx) error {
	if _, ok := h.guard(c, domain.RequireAdmin); !ok {
		return nil
	}

	var emps []entity.Employee
	if list, err := h.conn(c).Employees(c.Context()); err != nil {
		h.failSection(c, "employees", err)
	} else {
		emps = list
	}

	return h.render(c, "admin_employees", fiber.Map{
		"Layout": h.layout(c, "Employees", "admin"),
		"Table":  view.EmployeesTable(emps),
	})
}

// CreateEmployee alta de empleado desde el formulario del panel.
func (h *Handler) CreateEmployee(c *fiber.Ctx) error {
	if _, ok := h.guard(c, domain.RequireAdmin); !ok {
		return nil
	}

	in := backend.EmployeePayload{
		FirstName: strings.TrimSpace(c.FormValue("first_name")),
		LastName:  strings.TrimSpace(c.FormValue("last_name")),
		Email:     strings.TrimSpace(c.FormValue("email")),
		Username:  strings.TrimSpace(c.FormValue("username")),
		Password:  c.FormValue("password"),
		Role:      strings.TrimSpace(c.FormValue("role")),
		Phone:     strings.TrimSpace(c.FormValue("phone")),
	}
	if in.FirstName == "" || in.LastName == "" || in.Username == "" || in.Password == "" {
		h.flashBad(c, "Missing fields", "Name, username, and password are required.")
		return h.redirect(c, "/admin/employees")
	}
	if salary, err := decimal.NewFromString(strings.TrimSpace(c.FormValue("salary"))); err == nil && !salary.IsNegative() {
		in.Salary = salary
	}

	if err := h.conn(c).CreateEmployee(c.Context(), in); err != nil {
		h.flashBad(c, "Error", err.Error())
		return h.redirect(c, "/admin/employees")
	}

	h.flashOK(c, "Created", "Employee added successfully.")
	return h.redirect(c, "/admin/employees")
}

// EmployeeSalaryForm formulario de edición de salario, precargado con el
// salario actual del empleado.
func (h *Handler) EmployeeSalaryForm(c *fiber.Ctx) error {
	if _, ok := h.guard(c, domain.RequireAdmin); !ok {
		return nil
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return h.redirect(c, "/admin/employees")
	}

	list, err := h.conn(c).Employees(c.Context())
	if err != nil {
		h.flashBad(c, "Error", err.Error())
		return h.redirect(c, "/admin/employees")
	}
	var emp *entity.Employee
	for i := range list {
		if list[i].ID == id {
			emp = &list[i]
			break
		}
	}
	if emp == nil {
		h.flashBad(c, "Not found", "Employee not found.")
		return h.redirect(c, "/admin/employees")
	}

	return h.render(c, "admin_salary", fiber.Map{
		"Layout":   h.layout(c, "Edit salary", "admin"),
		"Employee": emp,
		"Salary":   emp.SalaryOrZero().StringFixed(2),
	})
}

// UpdateEmployeeSalary actualización parcial: solo el salario viaja al backend.
func (h *Handler) UpdateEmployeeSalary(c *fiber.Ctx) error {
	if _, ok := h.guard(c, domain.RequireAdmin); !ok {
		return nil
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return h.redirect(c, "/admin/employees")
	}

	salary, err := decimal.NewFromString(strings.TrimSpace(c.FormValue("salary")))
	if err != nil || salary.IsNegative() {
		h.flashBad(c, "Invalid salary", "Enter a non-negative amount.")
		return h.redirect(c, c.Path())
	}

	if err := h.conn(c).UpdateEmployeeSalary(c.Context(), id, salary); err != nil {
		h.flashBad(c, "Error", err.Error())
	} else {
		h.flashOK(c, "Saved", "Salary updated.")
	}
	return h.redirect(c, "/admin/employees")
}

// DeleteEmployee elimina un empleado. El backend rechaza borrar la cuenta
// admin; la tabla tampoco ofrece ese control.
func (h *Handler) DeleteEmployee(c *fiber.Ctx) error {
	if _, ok := h.guard(c, domain.RequireAdmin); !ok {
		return nil
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return h.redirect(c, "/admin/employees")
	}
	if err := h.conn(c).DeleteEmployee(c.Context(), id); err != nil {
		h.flashBad(c, "Error", err.Error())
	} else {
		h.flashOK(c, "Deleted", "Employee removed.")
	}
	return h.redirect(c, "/admin/employees")
}
