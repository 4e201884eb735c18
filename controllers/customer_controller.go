package controllers

import (
	"net/http"
	"strconv"

	"horizon-hotel-backend/services"
	"horizon-hotel-backend/utils"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	CustomerSvc *services.CustomerService
}

func NewCustomerController(svc *services.CustomerService) *CustomerController {
	return &CustomerController{CustomerSvc: svc}
}

// SearchCustomers (GET /api/customers?q=) - staff lookup by name/email.
func (ctrl *CustomerController) SearchCustomers(c *gin.Context) {
	limit := 0
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		limit = v
	}
	customers, err := ctrl.CustomerSvc.Search(c.Query("q"), limit)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customers)
}

func (ctrl *CustomerController) GetCustomer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid customer id")
		return
	}
	customer, err := ctrl.CustomerSvc.GetByID(uint(id))
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customer)
}
