// Package view declares the page views of the grocery store and loads their
// documents into a Catalog.
//
// Every view a route can reference is an ID constant here. A route pointing at
// a view that does not exist in this list does not compile; a route pointing at
// a listed view whose document is missing fails when the navigation table is
// built.
package view

import (
	"sort"

	"github.com/rs/zerolog"
)

var viewLogger = zerolog.Nop()

func SetLogger(l zerolog.Logger) {
	viewLogger = l
}

// ID identifies a renderable view.
type ID string

const (
	Hello                 ID = "Hello"
	GroceryStore          ID = "GroceryStore"
	SignInCustomer        ID = "SignInCustomer"
	Login                 ID = "Login"
	ViewCustomerOrders    ID = "ViewCustomerOrders"
	ChangeOrderStatus     ID = "ChangeOrderStatus"
	UpdateAccountCustomer ID = "UpdateAccountCustomer"
	UpdateAccountEmployee ID = "UpdateAccountEmployee"
	UpdateAccountAdmin    ID = "UpdateAccountAdmin"
	EmployeeManagement    ID = "EmployeeManagement"
	ManageStoreInfo       ID = "ManageStoreInfo"
	DeleteDailySchedule   ID = "DeleteDailySchedule"
	AddDailySchedule      ID = "AddDailySchedule"
	CustomerMenu          ID = "CustomerMenu"
	OwnerMenu             ID = "OwnerMenu"
	EmployeeMenu          ID = "EmployeeMenu"
	ViewItemsOwner        ID = "ViewItemsOwner"

	// NotFound is rendered by the page handler for unknown paths.
	NotFound ID = "NotFound"
)

// View document file names, relative to the view source root.
var files = map[ID]string{
	Hello:                 "hello.md",
	GroceryStore:          "grocery_store.md",
	SignInCustomer:        "sign_in_customer.md",
	Login:                 "login.md",
	ViewCustomerOrders:    "view_customer_orders.md",
	ChangeOrderStatus:     "change_order_status.md",
	UpdateAccountCustomer: "update_account_customer.md",
	UpdateAccountEmployee: "update_account_employee.md",
	UpdateAccountAdmin:    "update_account_admin.md",
	EmployeeManagement:    "employee_management.md",
	ManageStoreInfo:       "manage_store_info.md",
	DeleteDailySchedule:   "delete_daily_schedule.md",
	AddDailySchedule:      "add_daily_schedule.md",
	CustomerMenu:          "customer_menu.md",
	OwnerMenu:             "owner_menu.md",
	EmployeeMenu:          "employee_menu.md",
	ViewItemsOwner:        "view_items_owner.md",
	NotFound:              "not_found.md",
}

func (id ID) String() string {
	return string(id)
}

// File returns the document name for id, or "" for an unknown id.
func (id ID) File() string {
	return files[id]
}

func (id ID) Valid() bool {
	_, ok := files[id]
	return ok
}

// All returns every declared view ID, sorted.
func All() []ID {
	ids := make([]ID, 0, len(files))
	for id := range files {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
