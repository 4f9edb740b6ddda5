package entity

import "time"

// Estados de un registro de auditoría.
const (
	LogStatusInfo    = "INFO"
	LogStatusSuccess = "SUCCESS"
	LogStatusFailure = "FAILURE"
)

// Acciones auditadas.
const (
	LogActionLogin    = "Login"
	LogActionLogout   = "Logout"
	LogActionRegister = "Register"

	LogActionCreateInvoice = "Create Invoice"
	LogActionUpdateInvoice = "Update Invoice"
	LogActionDeleteInvoice = "Delete Invoice"
	LogActionViewInvoice   = "View Invoice"

	LogActionCreateProduct = "Create Product"
	LogActionUpdateProduct = "Update Product"
	LogActionDeleteProduct = "Delete Product"

	LogActionCreateUser  = "Create User"
	LogActionUpdateUser  = "Update User"
	LogActionDeleteUser  = "Delete User"
	LogActionViewUser    = "View User"
	LogActionGetAllUsers = "Get All Users"

	LogActionCreateBrand  = "Create Brand"
	LogActionUpdateBrand  = "Update Brand"
	LogActionDeleteBrand  = "Delete Brand"
	LogActionViewBrand    = "View Brand"
	LogActionGetAllBrands = "Get All Brands"

	LogActionViewProvider    = "View Provider"
	LogActionGetAllProviders = "Get All Providers"

	LogActionViewCategory     = "View Category"
	LogActionGetAllCategories = "Get All Categories"
)

// AuditLog registro de auditoría de una acción de usuario.
type AuditLog struct {
	ID        int64
	Status    string
	Action    string
	UserID    *int64
	UserEmail string // solo lectura, resuelto por JOIN
	Details   string
	Timestamp time.Time
}

// ValidLogStatus indica si status es un estado de auditoría soportado.
func ValidLogStatus(status string) bool {
	switch status {
	case LogStatusInfo, LogStatusSuccess, LogStatusFailure:
		return true
	}
	return false
}
