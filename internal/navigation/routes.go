package navigation

import "github.com/debemdeboas/grocery-store/internal/view"

// Routes is the grocery store route table in declaration order.
//
// /OwnerMenuu is the published path of the owner menu and is kept as is.
// /ViewItemsOwner points at a view with no document; building a Table from
// this list fails with UnresolvedReferenceError until one is added.
var Routes = []Route{
	{Path: "/", Name: "Hello", View: view.Hello},
	{Path: "/app", Name: "GroceryStore", View: view.GroceryStore},
	{Path: "/SignInCustomer", Name: "signincustomer", View: view.SignInCustomer},
	{Path: "/Login", Name: "login", View: view.Login},
	{Path: "/UpdateAccountCustomer", Name: "updateaccountcustomer", View: view.UpdateAccountCustomer},
	{Path: "/UpdateAccountEmployee", Name: "updateaccountemployee", View: view.UpdateAccountEmployee},
	{Path: "/UpdateAccountAdmin", Name: "updateaccountadmin", View: view.UpdateAccountAdmin},
	{Path: "/ViewCustomerOrders", Name: "viewCustomerOrders", View: view.ViewCustomerOrders},
	{Path: "/ChangeOrderStatus", Name: "changeorderstatus", View: view.ChangeOrderStatus},
	{Path: "/EmployeeManagement", Name: "employeeManagement", View: view.EmployeeManagement},
	{Path: "/ManageStoreInfo", Name: "manageStoreInfo", View: view.ManageStoreInfo},
	{Path: "/CustomerMenu", Name: "customermenu", View: view.CustomerMenu},
	{Path: "/DeleteDailySchedule", Name: "deleteDailySchedule", View: view.DeleteDailySchedule},
	{Path: "/AddDailySchedule", Name: "addDailySchedule", View: view.AddDailySchedule},
	{Path: "/EmployeeMenu", Name: "employeemenu", View: view.EmployeeMenu},
	{Path: "/OwnerMenuu", Name: "ownermenu", View: view.OwnerMenu},
	{Path: "/ViewItemsOwner", Name: "viewItemsOwner", View: view.ViewItemsOwner},
}
