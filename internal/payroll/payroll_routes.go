package payroll

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	payrolls := r.Group("/payrolls")
	payrolls.Use(middleware.AuthMiddleware())
	{
		payrolls.GET("", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetAll)
		payrolls.GET("/:id", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetById)
		payrolls.GET("/:id/pay-advice", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetPayAdvice)
		payrolls.GET("/:id/slips", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.ListSlips)
		payrolls.GET("/:id/slips/:slipId", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetSlip)

		if redisClient != nil {
			payrolls.POST(
				"",
				middleware.Idempotency(redisClient),
				middleware.RBACAuthorize(rbacService, "payroll", "create"),
				handler.Create,
			)
		} else {
			payrolls.POST("", middleware.RBACAuthorize(rbacService, "payroll", "create"), handler.Create)
		}

		payrolls.POST("/:id/process", middleware.RBACAuthorize(rbacService, "payroll", "process"), handler.Process)
		payrolls.POST("/:id/verify", middleware.RBACAuthorize(rbacService, "payroll", "verify"), handler.Verify)
		payrolls.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "payroll", "approve"), handler.Approve)
		payrolls.POST("/:id/post-to-gl", middleware.RBACAuthorize(rbacService, "payroll", "post"), handler.PostToLedger)
		payrolls.POST("/:id/mark-as-paid", middleware.RBACAuthorize(rbacService, "payroll", "pay"), handler.MarkPaid)
		payrolls.POST("/:id/cancel", middleware.RBACAuthorize(rbacService, "payroll", "delete"), handler.Cancel)
		payrolls.POST("/:id/slips/send", middleware.RBACAuthorize(rbacService, "payroll", "approve"), handler.SendSlips)
		payrolls.POST("/:id/slips/:slipId/hold", middleware.RBACAuthorize(rbacService, "payroll", "update"), handler.HoldSlip)
		payrolls.POST("/:id/slips/:slipId/cancel", middleware.RBACAuthorize(rbacService, "payroll", "update"), handler.CancelSlip)
		payrolls.DELETE("/:id", middleware.RBACAuthorize(rbacService, "payroll", "delete"), handler.Delete)
	}
}
