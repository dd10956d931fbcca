package salarystructure

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	structures := r.Group("/salary-structures")
	structures.Use(middleware.AuthMiddleware())
	{
		structures.GET("", middleware.RBACAuthorize(rbacService, "salary_structure", "read"), handler.GetAll)
		structures.GET("/:id", middleware.RBACAuthorize(rbacService, "salary_structure", "read"), handler.GetById)
		structures.POST("", middleware.RBACAuthorize(rbacService, "salary_structure", "create"), handler.Create)
		structures.PUT("/:id", middleware.RBACAuthorize(rbacService, "salary_structure", "update"), handler.Update)
		structures.DELETE("/:id", middleware.RBACAuthorize(rbacService, "salary_structure", "delete"), handler.Delete)
	}
}
